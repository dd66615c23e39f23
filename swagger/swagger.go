// Package swagger parses Swagger 2.0 API documents and flattens them into
// the data shape consumed by DOCX document templates.
package swagger

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a Swagger 2.0 API description. Only the parts consumed by the
// documentation templates are modeled.
type Document struct {
	Swagger     string                          `json:"swagger" yaml:"swagger"`
	Info        Info                            `json:"info" yaml:"info"`
	Host        string                          `json:"host" yaml:"host"`
	BasePath    string                          `json:"basePath" yaml:"basePath"`
	Tags        []Tag                           `json:"tags" yaml:"tags"`
	Paths       map[string]map[string]Operation `json:"paths" yaml:"paths"`
	Definitions map[string]Definition           `json:"definitions" yaml:"definitions"`
}

// Info holds the API title and version.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Title   string `json:"title" yaml:"title"`
}

// Tag groups operations.
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Operation describes one method on one path.
type Operation struct {
	Tags        []string            `json:"tags" yaml:"tags"`
	Summary     string              `json:"summary" yaml:"summary"`
	OperationID string              `json:"operationId" yaml:"operationId"`
	Produces    []string            `json:"produces" yaml:"produces"`
	Parameters  []Parameter         `json:"parameters" yaml:"parameters"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

// Parameter describes one request parameter. Body parameters reference a
// definition through Schema.
type Parameter struct {
	Name        string     `json:"name" yaml:"name"`
	In          string     `json:"in" yaml:"in"`
	Description string     `json:"description" yaml:"description"`
	Required    bool       `json:"required" yaml:"required"`
	Type        string     `json:"type" yaml:"type"`
	Schema      *SchemaRef `json:"schema" yaml:"schema"`
}

// SchemaRef is a reference to a definition.
type SchemaRef struct {
	Ref         string `json:"$ref" yaml:"$ref"`
	OriginalRef string `json:"originalRef" yaml:"originalRef"`
}

// Name returns the referenced definition name: OriginalRef when present,
// otherwise the last segment of $ref.
func (r *SchemaRef) Name() string {
	if r == nil {
		return ""
	}
	if r.OriginalRef != "" {
		return r.OriginalRef
	}
	if i := strings.LastIndex(r.Ref, "/"); i >= 0 {
		return r.Ref[i+1:]
	}
	return r.Ref
}

// Response describes one status code of an operation.
type Response struct {
	Description string     `json:"description" yaml:"description"`
	Schema      *SchemaRef `json:"schema" yaml:"schema"`
}

// Definition is a named model from the definitions section.
type Definition struct {
	Type       string              `json:"type" yaml:"type"`
	Required   []string            `json:"required" yaml:"required"`
	Properties map[string]Property `json:"properties" yaml:"properties"`
}

// Property is one field of a definition.
type Property struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// Parse reads a Swagger 2.0 document from JSON or YAML bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document

	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing swagger JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing swagger YAML: %w", err)
		}
	}

	if doc.Swagger == "" {
		return nil, fmt.Errorf("not a swagger document: missing swagger version")
	}
	return &doc, nil
}

// Definition resolves a schema reference against the definitions section.
func (d *Document) Definition(ref *SchemaRef) (Definition, bool) {
	def, ok := d.Definitions[ref.Name()]
	return def, ok
}
