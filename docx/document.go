package docx

import "strings"

// Document is the mutable in-memory tree of a parsed DOCX body. Elements
// appear in document order. The tree is owned by the Reader that produced it
// and is mutated in place; it is not safe for concurrent use.
type Document struct {
	Elements []BodyElement `json:"children"`
}

// BodyElement is a single child of the document body: a paragraph or a table.
// Exactly one field is non-nil.
type BodyElement struct {
	Paragraph *Paragraph `json:"paragraph,omitempty"`
	Table     *Table     `json:"table,omitempty"`
}

// Tables returns the top-level tables of the document in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, el := range d.Elements {
		if el.Table != nil {
			tables = append(tables, el.Table)
		}
	}
	return tables
}

// Paragraphs returns the top-level paragraphs of the document in document order.
func (d *Document) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range d.Elements {
		if el.Paragraph != nil {
			paras = append(paras, el.Paragraph)
		}
	}
	return paras
}

// AddParagraph appends a paragraph to the document body.
func (d *Document) AddParagraph(p *Paragraph) {
	d.Elements = append(d.Elements, BodyElement{Paragraph: p})
}

// AddTable appends a table to the document body.
func (d *Document) AddTable(t *Table) {
	d.Elements = append(d.Elements, BodyElement{Table: t})
}

// Paragraph represents a paragraph (<w:p>) and its runs.
type Paragraph struct {
	Runs     []*Run            `json:"children"`
	Property ParagraphProperty `json:"property"`
}

// ParagraphProperty holds the paragraph-level style attributes this package
// models.
type ParagraphProperty struct {
	StyleID       string        `json:"style,omitempty"`
	Justification Justification `json:"justification,omitempty"`
}

// Text returns the concatenated text of all text children of all runs,
// with no separator. Non-text run children (tabs, breaks) are ignored.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

// AddRun appends a run to the paragraph.
func (p *Paragraph) AddRun(r *Run) *Paragraph {
	p.Runs = append(p.Runs, r)
	return p
}

// NewParagraph returns a paragraph containing a single run of text.
func NewParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.AddRun(NewRun(text))
	}
	return p
}

// Run represents a text run (<w:r>). Children appear in run order.
type Run struct {
	Children []RunChild `json:"children"`
}

// RunChild is a single child of a run. Exactly one field is non-nil.
type RunChild struct {
	Text  *Text  `json:"text,omitempty"`
	Tab   *Tab   `json:"tab,omitempty"`
	Break *Break `json:"break,omitempty"`
}

// Text returns the concatenated text children of the run, ignoring tabs and
// breaks.
func (r *Run) Text() string {
	var sb strings.Builder
	for _, c := range r.Children {
		if c.Text != nil {
			sb.WriteString(c.Text.Value)
		}
	}
	return sb.String()
}

// NewRun returns a run holding a single text child.
func NewRun(text string) *Run {
	return &Run{Children: []RunChild{{Text: &Text{Value: text, PreserveSpace: true}}}}
}

// Text is literal text content (<w:t>).
type Text struct {
	Value         string `json:"text"`
	PreserveSpace bool   `json:"preserveSpace,omitempty"`
}

// Tab is a tab character (<w:tab>).
type Tab struct{}

// Break is a line, column, or page break (<w:br>).
type Break struct {
	Type string `json:"breakType,omitempty"` // page, column, textWrapping
}
