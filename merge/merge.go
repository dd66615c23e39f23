// Package merge renders data into a DOCX template. The template's
// word/document.xml is treated as a text template; every other part of the
// package passes through byte-identical.
package merge

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"text/template"
)

const documentPart = "word/document.xml"

// Render executes word/document.xml of the DOCX template against data and
// returns the rebuilt package. Placeholders use text/template syntax
// ({{.name}}, {{range ...}}), which is what the documentation templates
// carry in their runs.
func Render(tmpl []byte, data any) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(tmpl), int64(len(tmpl)))
	if err != nil {
		return nil, fmt.Errorf("opening template archive: %w", err)
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)

	rendered := false
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}

		if f.Name == documentPart {
			content, err = renderDocument(content, data)
			if err != nil {
				return nil, err
			}
			rendered = true
		}

		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Name, err)
		}
		if _, err := w.Write(content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	if !rendered {
		return nil, fmt.Errorf("template has no %s", documentPart)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing output archive: %w", err)
	}
	return out.Bytes(), nil
}

func renderDocument(content []byte, data any) ([]byte, error) {
	t, err := template.New(documentPart).Option("missingkey=zero").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing document template: %w", err)
	}
	return buf.Bytes(), nil
}

// FetchFunc loads the bytes behind a local path or URL referenced by
// template data.
type FetchFunc func(path string) ([]byte, error)

// PrepareData walks decoded JSON template data and inlines referenced
// images: for every object key ending in ".image" whose value is a path, the
// value is replaced with the base64-encoded content and the same content is
// added under the key with the suffix stripped. Fetch failures inline empty
// content rather than failing the render.
func PrepareData(value any, fetch FetchFunc) {
	switch v := value.(type) {
	case map[string]any:
		added := make(map[string]any)
		for k, item := range v {
			if strings.HasSuffix(k, ".image") {
				if path, ok := item.(string); ok {
					content, err := fetch(path)
					if err != nil {
						content = nil
					}
					encoded := base64.StdEncoding.EncodeToString(content)
					v[k] = encoded
					added[strings.TrimSuffix(k, ".image")] = encoded
					continue
				}
			}
			PrepareData(item, fetch)
		}
		for k, item := range added {
			v[k] = item
		}
	case []any:
		for _, item := range v {
			PrepareData(item, fetch)
		}
	}
}
