package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Write serializes the whole DOCX package to w. Every part is copied
// byte-for-byte from the source package except word/document.xml, which is
// regenerated from the current state of the document tree.
func (r *Reader) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, f := range r.zr.File {
		if f.Name == documentPart {
			continue
		}
		content, err := r.getFileContent(f.Name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.Name, err)
		}
		fw, err := zw.Create(f.Name)
		if err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
		if _, err := fw.Write(content); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}

	fw, err := zw.Create(documentPart)
	if err != nil {
		return fmt.Errorf("writing %s: %w", documentPart, err)
	}
	if _, err := fw.Write(r.doc.XML()); err != nil {
		return fmt.Errorf("writing %s: %w", documentPart, err)
	}

	return zw.Close()
}

// Save writes the package to a file.
func (r *Reader) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := r.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// XML renders the document tree as the content of word/document.xml.
func (d *Document) XML() []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString("\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	sb.WriteString(`<w:body>`)
	for _, el := range d.Elements {
		switch {
		case el.Paragraph != nil:
			writeParagraph(&sb, el.Paragraph)
		case el.Table != nil:
			writeTable(&sb, el.Table)
		}
	}
	sb.WriteString(`</w:body></w:document>`)
	return []byte(sb.String())
}

func writeParagraph(sb *strings.Builder, p *Paragraph) {
	sb.WriteString(`<w:p>`)
	if p.Property.StyleID != "" || p.Property.Justification != "" {
		sb.WriteString(`<w:pPr>`)
		if p.Property.StyleID != "" {
			writeValElement(sb, "pStyle", p.Property.StyleID)
		}
		if p.Property.Justification != "" {
			writeValElement(sb, "jc", string(p.Property.Justification))
		}
		sb.WriteString(`</w:pPr>`)
	}
	for _, r := range p.Runs {
		writeRun(sb, r)
	}
	sb.WriteString(`</w:p>`)
}

func writeRun(sb *strings.Builder, r *Run) {
	sb.WriteString(`<w:r>`)
	for _, c := range r.Children {
		switch {
		case c.Text != nil:
			if c.Text.PreserveSpace {
				sb.WriteString(`<w:t xml:space="preserve">`)
			} else {
				sb.WriteString(`<w:t>`)
			}
			escapeXML(sb, c.Text.Value)
			sb.WriteString(`</w:t>`)
		case c.Tab != nil:
			sb.WriteString(`<w:tab/>`)
		case c.Break != nil:
			if c.Break.Type != "" {
				sb.WriteString(`<w:br w:type="`)
				escapeXML(sb, c.Break.Type)
				sb.WriteString(`"/>`)
			} else {
				sb.WriteString(`<w:br/>`)
			}
		}
	}
	sb.WriteString(`</w:r>`)
}

func writeTable(sb *strings.Builder, t *Table) {
	sb.WriteString(`<w:tbl>`)

	sb.WriteString(`<w:tblPr>`)
	if t.Property.StyleID != "" {
		writeValElement(sb, "tblStyle", t.Property.StyleID)
	}
	if t.Property.Width != nil {
		writeWidthElement(sb, "tblW", t.Property.Width)
	}
	if t.Property.Justification != "" {
		writeValElement(sb, "jc", string(t.Property.Justification))
	}
	writeBorders(sb, "tblBorders", t.Property.Borders)
	sb.WriteString(`</w:tblPr>`)

	if len(t.Grid) > 0 {
		sb.WriteString(`<w:tblGrid>`)
		for _, w := range t.Grid {
			sb.WriteString(`<w:gridCol w:w="`)
			sb.WriteString(strconv.FormatUint(uint64(w), 10))
			sb.WriteString(`"/>`)
		}
		sb.WriteString(`</w:tblGrid>`)
	}

	for _, row := range t.Rows {
		sb.WriteString(`<w:tr>`)
		for _, cell := range row.Cells {
			writeCell(sb, cell)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
}

func writeCell(sb *strings.Builder, c *TableCell) {
	sb.WriteString(`<w:tc>`)

	p := c.Property
	if p.Width != nil || p.Borders != nil || p.GridSpan > 0 ||
		p.VerticalMerge != "" || p.VerticalAlign != "" || p.Shading != "" {
		sb.WriteString(`<w:tcPr>`)
		if p.Width != nil {
			writeWidthElement(sb, "tcW", p.Width)
		}
		if p.GridSpan > 0 {
			writeValElement(sb, "gridSpan", strconv.FormatUint(uint64(p.GridSpan), 10))
		}
		if p.VerticalMerge == "continue" {
			sb.WriteString(`<w:vMerge/>`)
		} else if p.VerticalMerge != "" {
			writeValElement(sb, "vMerge", p.VerticalMerge)
		}
		writeBorders(sb, "tcBorders", p.Borders)
		if p.Shading != "" {
			sb.WriteString(`<w:shd w:val="clear" w:fill="`)
			escapeXML(sb, p.Shading)
			sb.WriteString(`"/>`)
		}
		if p.VerticalAlign != "" {
			writeValElement(sb, "vAlign", p.VerticalAlign)
		}
		sb.WriteString(`</w:tcPr>`)
	}

	// A cell must contain at least one paragraph.
	if len(c.Paragraphs) == 0 {
		sb.WriteString(`<w:p/>`)
	}
	for _, para := range c.Paragraphs {
		writeParagraph(sb, para)
	}
	sb.WriteString(`</w:tc>`)
}

func writeBorders(sb *strings.Builder, element string, b *TableBorders) {
	if b == nil {
		return
	}
	sb.WriteString(`<w:` + element + `>`)
	for _, pos := range BorderPositions {
		border := b.Get(pos)
		if border == nil {
			continue
		}
		sb.WriteString(`<w:` + string(pos) + ` w:val="`)
		escapeXML(sb, string(border.Type))
		sb.WriteString(`" w:sz="`)
		sb.WriteString(strconv.FormatUint(uint64(border.Size), 10))
		sb.WriteString(`"`)
		if border.Color != "" {
			sb.WriteString(` w:color="`)
			escapeXML(sb, border.Color)
			sb.WriteString(`"`)
		}
		sb.WriteString(`/>`)
	}
	sb.WriteString(`</w:` + element + `>`)
}

func writeWidthElement(sb *strings.Builder, element string, w *TableWidth) {
	sb.WriteString(`<w:` + element + ` w:w="`)
	sb.WriteString(strconv.FormatUint(uint64(w.Width), 10))
	sb.WriteString(`" w:type="`)
	escapeXML(sb, string(w.Type))
	sb.WriteString(`"/>`)
}

func writeValElement(sb *strings.Builder, element, val string) {
	sb.WriteString(`<w:` + element + ` w:val="`)
	escapeXML(sb, val)
	sb.WriteString(`"/>`)
}

func escapeXML(sb *strings.Builder, s string) {
	// strings.Builder never returns a write error.
	xml.EscapeText(sb, []byte(s))
}
