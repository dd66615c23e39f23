package docx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

// createTestDOCX builds a minimal DOCX package around the given body XML.
func createTestDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
	w, err := zw.Create("[Content_Types].xml")
	if err != nil {
		t.Fatalf("creating zip entry: %v", err)
	}
	w.Write([]byte(contentTypes))

	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
	w, _ = zw.Create("_rels/.rels")
	w.Write([]byte(rels))

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>` + bodyXML + `</w:body>
</w:document>`
	w, _ = zw.Create("word/document.xml")
	w.Write([]byte(document))

	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func openTestDOCX(t *testing.T, bodyXML string) *Document {
	t.Helper()

	r, err := OpenBytes(createTestDOCX(t, bodyXML))
	if err != nil {
		t.Fatalf("OpenBytes failed: %v", err)
	}
	return r.Document()
}

func TestOpenBytes_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte("<Types/>"))
	zw.Close()

	_, err := OpenBytes(buf.Bytes())
	if err == nil {
		t.Fatal("expected error for package without word/document.xml")
	}
	if !strings.Contains(err.Error(), "word/document.xml") {
		t.Errorf("error should name the missing part, got: %v", err)
	}
}

func TestOpenBytes_NotAZip(t *testing.T) {
	_, err := OpenBytes([]byte("this is not a zip archive"))
	if err == nil {
		t.Fatal("expected error for non-zip input")
	}
}

func TestReader_ParagraphText(t *testing.T) {
	doc := openTestDOCX(t, `
<w:p>
  <w:r><w:t>Hello, </w:t></w:r>
  <w:r><w:t>world</w:t></w:r>
</w:p>`)

	paras := doc.Paragraphs()
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
	if got := paras[0].Text(); got != "Hello, world" {
		t.Errorf("paragraph text = %q, want %q", got, "Hello, world")
	}
}

func TestReader_BodyOrderPreserved(t *testing.T) {
	doc := openTestDOCX(t, `
<w:p><w:r><w:t>before</w:t></w:r></w:p>
<w:tbl>
  <w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>
<w:p><w:r><w:t>after</w:t></w:r></w:p>`)

	if len(doc.Elements) != 3 {
		t.Fatalf("expected 3 body elements, got %d", len(doc.Elements))
	}
	if doc.Elements[0].Paragraph == nil || doc.Elements[0].Paragraph.Text() != "before" {
		t.Error("element 0 should be the paragraph 'before'")
	}
	if doc.Elements[1].Table == nil {
		t.Error("element 1 should be the table")
	}
	if doc.Elements[2].Paragraph == nil || doc.Elements[2].Paragraph.Text() != "after" {
		t.Error("element 2 should be the paragraph 'after'")
	}
}

func TestReader_TableProperties(t *testing.T) {
	doc := openTestDOCX(t, `
<w:tbl>
  <w:tblPr>
    <w:tblStyle w:val="TableGrid"/>
    <w:tblW w:w="5000" w:type="dxa"/>
    <w:jc w:val="center"/>
    <w:tblBorders>
      <w:top w:val="single" w:sz="4" w:color="FF0000"/>
      <w:bottom w:val="double" w:sz="8"/>
    </w:tblBorders>
  </w:tblPr>
  <w:tblGrid>
    <w:gridCol w:w="2500"/>
    <w:gridCol w:w="2500"/>
  </w:tblGrid>
  <w:tr>
    <w:tc><w:p><w:r><w:t>a</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>b</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`)

	tables := doc.Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	tbl := tables[0]

	if tbl.Property.StyleID != "TableGrid" {
		t.Errorf("style = %q, want TableGrid", tbl.Property.StyleID)
	}
	if tbl.Property.Width == nil {
		t.Fatal("width should be set")
	}
	if tbl.Property.Width.Width != 5000 || tbl.Property.Width.Type != WidthDXA {
		t.Errorf("width = %+v, want {5000 dxa}", *tbl.Property.Width)
	}
	if tbl.Property.Justification != JustificationCenter {
		t.Errorf("justification = %q, want center", tbl.Property.Justification)
	}

	if tbl.Property.Borders == nil {
		t.Fatal("borders should be set")
	}
	top := tbl.Property.Borders.Get(BorderTop)
	if top == nil {
		t.Fatal("top border should be set")
	}
	if top.Type != BorderTypeSingle || top.Size != 4 || top.Color != "FF0000" {
		t.Errorf("top border = %+v, want {single 4 FF0000}", *top)
	}
	bottom := tbl.Property.Borders.Get(BorderBottom)
	if bottom == nil || bottom.Type != BorderTypeDouble || bottom.Size != 8 {
		t.Errorf("bottom border = %+v, want double size 8", bottom)
	}
	if left := tbl.Property.Borders.Get(BorderLeft); left != nil {
		t.Errorf("left border should be absent, got %+v", *left)
	}

	if len(tbl.Grid) != 2 || tbl.Grid[0] != 2500 {
		t.Errorf("grid = %v, want [2500 2500]", tbl.Grid)
	}
	if tbl.RowCount() != 1 || tbl.ColCount() != 2 {
		t.Errorf("dimensions = %dx%d, want 1x2", tbl.RowCount(), tbl.ColCount())
	}
}

func TestReader_TableWithoutProperties(t *testing.T) {
	doc := openTestDOCX(t, `
<w:tbl>
  <w:tr><w:tc><w:p><w:r><w:t>x</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>`)

	tbl := doc.Tables()[0]
	if tbl.Property.Width != nil {
		t.Errorf("width should be absent, got %+v", *tbl.Property.Width)
	}
	if tbl.Property.Borders != nil {
		t.Errorf("borders should be absent, got %+v", *tbl.Property.Borders)
	}
	if tbl.Property.Justification != "" {
		t.Errorf("justification should be empty, got %q", tbl.Property.Justification)
	}
}

func TestReader_CellProperties(t *testing.T) {
	doc := openTestDOCX(t, `
<w:tbl>
  <w:tr>
    <w:tc>
      <w:tcPr>
        <w:tcW w:w="1200" w:type="dxa"/>
        <w:gridSpan w:val="2"/>
        <w:shd w:val="clear" w:fill="EEEEEE"/>
        <w:vAlign w:val="center"/>
        <w:tcBorders>
          <w:left w:val="dotted" w:sz="2" w:color="00FF00"/>
        </w:tcBorders>
      </w:tcPr>
      <w:p><w:r><w:t>spanned</w:t></w:r></w:p>
    </w:tc>
  </w:tr>
  <w:tr>
    <w:tc>
      <w:tcPr><w:vMerge w:val="restart"/></w:tcPr>
      <w:p><w:r><w:t>merged</w:t></w:r></w:p>
    </w:tc>
  </w:tr>
  <w:tr>
    <w:tc>
      <w:tcPr><w:vMerge/></w:tcPr>
      <w:p/>
    </w:tc>
  </w:tr>
</w:tbl>`)

	tbl := doc.Tables()[0]
	cell := tbl.Cell(0, 0)
	if cell == nil {
		t.Fatal("cell (0,0) missing")
	}
	if cell.Property.Width == nil || cell.Property.Width.Width != 1200 {
		t.Errorf("cell width = %+v, want 1200", cell.Property.Width)
	}
	if cell.Property.GridSpan != 2 {
		t.Errorf("gridSpan = %d, want 2", cell.Property.GridSpan)
	}
	if cell.Property.Shading != "EEEEEE" {
		t.Errorf("shading = %q, want EEEEEE", cell.Property.Shading)
	}
	if cell.Property.VerticalAlign != "center" {
		t.Errorf("vAlign = %q, want center", cell.Property.VerticalAlign)
	}
	left := cell.Property.Borders.Get(BorderLeft)
	if left == nil || left.Type != BorderTypeDotted || left.Color != "00FF00" {
		t.Errorf("left border = %+v, want dotted 00FF00", left)
	}

	if got := tbl.Cell(1, 0).Property.VerticalMerge; got != "restart" {
		t.Errorf("vMerge = %q, want restart", got)
	}
	if got := tbl.Cell(2, 0).Property.VerticalMerge; got != "continue" {
		t.Errorf("empty vMerge = %q, want continue", got)
	}
}

func TestCellText_ConcatenatesRunsWithoutSeparator(t *testing.T) {
	doc := openTestDOCX(t, `
<w:tbl>
  <w:tr>
    <w:tc>
      <w:p>
        <w:r><w:t>foo</w:t></w:r>
        <w:r><w:t>bar</w:t></w:r>
      </w:p>
      <w:p><w:r><w:t>baz</w:t></w:r></w:p>
    </w:tc>
  </w:tr>
</w:tbl>`)

	cell := doc.Tables()[0].Cell(0, 0)
	if got := cell.Text(); got != "foobarbaz" {
		t.Errorf("cell text = %q, want foobarbaz", got)
	}
}

func TestCellText_IgnoresNonTextRunChildren(t *testing.T) {
	doc := openTestDOCX(t, `
<w:tbl>
  <w:tr>
    <w:tc>
      <w:p>
        <w:r><w:t>a</w:t><w:tab/><w:br/><w:t>b</w:t></w:r>
      </w:p>
    </w:tc>
  </w:tr>
</w:tbl>`)

	cell := doc.Tables()[0].Cell(0, 0)
	if got := cell.Text(); got != "ab" {
		t.Errorf("cell text = %q, want ab", got)
	}

	// The tab and break are still present in the tree.
	run := cell.Paragraphs[0].Runs[0]
	if len(run.Children) != 4 {
		t.Errorf("run children = %d, want 4", len(run.Children))
	}
}
