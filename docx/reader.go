// Package docx provides DOCX (Office Open XML) document parsing, a mutable
// document tree, and serialization back into the package.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html/charset"
)

const documentPart = "word/document.xml"

// Reader provides access to DOCX document content. The tree returned by
// Document may be mutated in place and written back with Write or Save.
type Reader struct {
	zr     *zip.Reader
	closer io.Closer
	doc    *Document
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zrc, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zrc.Reader)
	if err != nil {
		zrc.Close()
		return nil, err
	}
	r.closer = zrc
	return r, nil
}

// OpenBytes opens a DOCX package held in memory.
func OpenBytes(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{zr: zr}

	if err := r.validate(); err != nil {
		return nil, err
	}
	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// Document returns the parsed document tree. The same tree is returned on
// every call; mutations are visible to later Write/Save calls.
func (r *Reader) Document() *Document {
	return r.doc
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		documentPart,
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zr.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}
	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseDocument parses the main document content into the mutable tree.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent(documentPart)
	if err != nil {
		return err
	}

	var docXML documentXML
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&docXML); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}

	r.doc = &Document{}
	if docXML.Body == nil {
		return nil
	}
	for _, el := range docXML.Body.Elements {
		switch {
		case el.Paragraph != nil:
			r.doc.AddParagraph(paragraphFromXML(*el.Paragraph))
		case el.Table != nil:
			r.doc.AddTable(tableFromXML(*el.Table))
		}
	}
	return nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML collects body children in document order.
type bodyXML struct {
	Elements []bodyElementXML
}

type bodyElementXML struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML walks the body token stream so paragraphs and tables keep
// their relative order, which struct-field decoding would lose.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElementXML{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElementXML{Table: &tbl})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML      `xml:"pStyle"`
	Justification justificationXML `xml:"jc"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents justification (<w:jc>).
type justificationXML struct {
	Val string `xml:"val,attr"`
}

// runXML collects run children (<w:t>, <w:tab>, <w:br>) in run order.
type runXML struct {
	Children []runChildXML
}

type runChildXML struct {
	Text      *textXML
	Tab       bool
	Break     bool
	BreakType string
}

// UnmarshalXML walks the run token stream so text, tabs, and breaks keep
// their relative order.
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				var txt textXML
				if err := d.DecodeElement(&txt, &t); err != nil {
					return err
				}
				r.Children = append(r.Children, runChildXML{Text: &txt})
			case "tab":
				if err := d.Skip(); err != nil {
					return err
				}
				r.Children = append(r.Children, runChildXML{Tab: true})
			case "br":
				brType := attrValue(t, "type")
				if err := d.Skip(); err != nil {
					return err
				}
				r.Children = append(r.Children, runChildXML{Break: true, BreakType: brType})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// textXML represents text content (<w:t>).
type textXML struct {
	Space string `xml:"space,attr"`
	Value string `xml:",chardata"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	Properties tablePropsXML `xml:"tblPr"`
	Grid       tableGridXML  `xml:"tblGrid"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties (<w:tblPr>).
type tablePropsXML struct {
	Style         styleRefXML      `xml:"tblStyle"`
	Width         tableSizeXML     `xml:"tblW"`
	Justification justificationXML `xml:"jc"`
	Borders       *tableBordersXML `xml:"tblBorders"`
}

// tableSizeXML represents table/cell size (<w:tblW>/<w:tcW>).
type tableSizeXML struct {
	W    string `xml:"w,attr"`
	Type string `xml:"type,attr"` // dxa (twips), pct, auto
}

// tableBordersXML represents a border set (<w:tblBorders>/<w:tcBorders>).
type tableBordersXML struct {
	Top     borderXML `xml:"top"`
	Left    borderXML `xml:"left"`
	Bottom  borderXML `xml:"bottom"`
	Right   borderXML `xml:"right"`
	InsideH borderXML `xml:"insideH"`
	InsideV borderXML `xml:"insideV"`
}

// borderXML represents a single border edge.
type borderXML struct {
	Val   string `xml:"val,attr"`   // Border style: single, double, etc.
	Sz    string `xml:"sz,attr"`    // Size in eighths of a point
	Space string `xml:"space,attr"` // Space from text
	Color string `xml:"color,attr"`
}

// tableGridXML represents the table grid definition.
type tableGridXML struct {
	Cols []gridColXML `xml:"gridCol"`
}

type gridColXML struct {
	W string `xml:"w,attr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	Properties cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// cellPropsXML represents cell properties (<w:tcPr>).
type cellPropsXML struct {
	Width    tableSizeXML     `xml:"tcW"`
	GridSpan styleRefXML      `xml:"gridSpan"`
	VMerge   vMergeXML        `xml:"vMerge"`
	Borders  *tableBordersXML `xml:"tcBorders"`
	Shading  shadingXML       `xml:"shd"`
	VAlign   styleRefXML      `xml:"vAlign"`
}

// vMergeXML represents vertical merge. XMLName records element presence;
// an empty val means "continue".
type vMergeXML struct {
	XMLName xml.Name `xml:"vMerge"`
	Val     string   `xml:"val,attr"`
}

// shadingXML represents cell shading.
type shadingXML struct {
	Val   string `xml:"val,attr"`
	Color string `xml:"color,attr"`
	Fill  string `xml:"fill,attr"`
}

// attrValue returns the value of the named attribute, matching by local name.
func attrValue(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// parseUint32 parses a decimal attribute, returning 0 for anything invalid.
func parseUint32(s string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// paragraphFromXML converts a parsed paragraph into the mutable model.
func paragraphFromXML(p paragraphXML) *Paragraph {
	para := &Paragraph{
		Property: ParagraphProperty{
			StyleID:       p.Properties.Style.Val,
			Justification: Justification(p.Properties.Justification.Val),
		},
	}
	for _, r := range p.Runs {
		run := &Run{}
		for _, c := range r.Children {
			switch {
			case c.Text != nil:
				run.Children = append(run.Children, RunChild{Text: &Text{
					Value:         c.Text.Value,
					PreserveSpace: c.Text.Space == "preserve",
				}})
			case c.Tab:
				run.Children = append(run.Children, RunChild{Tab: &Tab{}})
			case c.Break:
				run.Children = append(run.Children, RunChild{Break: &Break{Type: c.BreakType}})
			}
		}
		para.Runs = append(para.Runs, run)
	}
	return para
}

// tableFromXML converts a parsed table into the mutable model.
func tableFromXML(t tableXML) *Table {
	table := &Table{
		Property: TableProperty{
			StyleID:       t.Properties.Style.Val,
			Width:         widthFromXML(t.Properties.Width),
			Justification: Justification(t.Properties.Justification.Val),
			Borders:       bordersFromXML(t.Properties.Borders),
		},
	}
	for _, col := range t.Grid.Cols {
		table.Grid = append(table.Grid, parseUint32(col.W))
	}
	for _, row := range t.Rows {
		tr := &TableRow{}
		for _, cell := range row.Cells {
			tr.Cells = append(tr.Cells, cellFromXML(cell))
		}
		table.Rows = append(table.Rows, tr)
	}
	return table
}

// cellFromXML converts a parsed cell into the mutable model.
func cellFromXML(c tableCellXML) *TableCell {
	cell := &TableCell{
		Property: CellProperty{
			Width:         widthFromXML(c.Properties.Width),
			Borders:       bordersFromXML(c.Properties.Borders),
			GridSpan:      parseUint32(c.Properties.GridSpan.Val),
			VerticalAlign: c.Properties.VAlign.Val,
		},
	}
	if c.Properties.VMerge.XMLName.Local == "vMerge" {
		cell.Property.VerticalMerge = c.Properties.VMerge.Val
		if cell.Property.VerticalMerge == "" {
			cell.Property.VerticalMerge = "continue"
		}
	}
	if c.Properties.Shading.Fill != "" && c.Properties.Shading.Fill != "auto" {
		cell.Property.Shading = c.Properties.Shading.Fill
	}
	for _, p := range c.Paragraphs {
		cell.Paragraphs = append(cell.Paragraphs, paragraphFromXML(p))
	}
	return cell
}

// widthFromXML converts a size element into an optional width pair. An
// element with neither attribute yields nil, so absence stays explicit.
func widthFromXML(s tableSizeXML) *TableWidth {
	if s.W == "" && s.Type == "" {
		return nil
	}
	wt := WidthType(s.Type)
	if s.Type == "" {
		wt = WidthAuto
	}
	return &TableWidth{Width: parseUint32(s.W), Type: wt}
}

// bordersFromXML converts a border set, keeping only edges that carry a
// style value. Styles are kept verbatim; validation happens on update, not
// on read.
func bordersFromXML(b *tableBordersXML) *TableBorders {
	if b == nil {
		return nil
	}
	out := &TableBorders{}
	found := false
	for _, pos := range BorderPositions {
		var bx borderXML
		switch pos {
		case BorderTop:
			bx = b.Top
		case BorderLeft:
			bx = b.Left
		case BorderBottom:
			bx = b.Bottom
		case BorderRight:
			bx = b.Right
		case BorderInsideH:
			bx = b.InsideH
		case BorderInsideV:
			bx = b.InsideV
		}
		if bx.Val == "" {
			continue
		}
		out.set(pos, Border{
			Type:  BorderType(bx.Val),
			Size:  parseUint32(bx.Sz),
			Color: bx.Color,
		})
		found = true
	}
	if !found {
		return nil
	}
	return out
}
