package docx

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the document as a standalone HTML page: paragraphs become
// <p> elements and tables become <table> markup with colspan preserved.
func (d *Document) HTML() ([]byte, error) {
	root := &html.Node{Type: html.ElementNode, DataAtom: atom.Html, Data: "html"}

	head := newElement(atom.Head, "head")
	meta := newElement(atom.Meta, "meta")
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	root.AppendChild(head)

	body := newElement(atom.Body, "body")
	for _, el := range d.Elements {
		switch {
		case el.Paragraph != nil:
			body.AppendChild(paragraphNode(el.Paragraph))
		case el.Table != nil:
			body.AppendChild(tableNode(el.Table))
		}
	}
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.Bytes(), nil
}

func newElement(a atom.Atom, name string) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: name}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func paragraphNode(p *Paragraph) *html.Node {
	node := newElement(atom.P, "p")
	if p.Property.Justification != "" {
		node.Attr = append(node.Attr, html.Attribute{
			Key: "style",
			Val: "text-align: " + string(p.Property.Justification),
		})
	}
	for _, r := range p.Runs {
		for _, c := range r.Children {
			switch {
			case c.Text != nil:
				node.AppendChild(textNode(c.Text.Value))
			case c.Tab != nil:
				node.AppendChild(textNode("\t"))
			case c.Break != nil:
				node.AppendChild(newElement(atom.Br, "br"))
			}
		}
	}
	return node
}

func tableNode(t *Table) *html.Node {
	node := newElement(atom.Table, "table")
	if t.Property.Borders != nil {
		node.Attr = append(node.Attr, html.Attribute{Key: "border", Val: "1"})
	}
	for _, row := range t.Rows {
		tr := newElement(atom.Tr, "tr")
		for _, cell := range row.Cells {
			td := newElement(atom.Td, "td")
			if span := cell.Property.GridSpan; span > 1 {
				td.Attr = append(td.Attr, html.Attribute{
					Key: "colspan",
					Val: strconv.FormatUint(uint64(span), 10),
				})
			}
			for _, para := range cell.Paragraphs {
				td.AppendChild(paragraphNode(para))
			}
			tr.AppendChild(td)
		}
		node.AppendChild(tr)
	}
	return node
}
