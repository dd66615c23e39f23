package docx

import (
	"strings"
	"testing"
)

func TestHTML_Paragraphs(t *testing.T) {
	doc := &Document{}
	doc.AddParagraph(NewParagraph("hello"))
	centered := NewParagraph("centered")
	centered.Property.Justification = JustificationCenter
	doc.AddParagraph(centered)

	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	page := string(out)

	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Errorf("missing doctype: %q", page[:40])
	}
	if !strings.Contains(page, "<p>hello</p>") {
		t.Errorf("paragraph missing: %s", page)
	}
	if !strings.Contains(page, `style="text-align: center"`) {
		t.Errorf("justification style missing: %s", page)
	}
	if !strings.Contains(page, `<meta charset="utf-8"`) {
		t.Errorf("charset meta missing: %s", page)
	}
}

func TestHTML_Table(t *testing.T) {
	doc := &Document{}
	tbl := buildTable([][]string{
		{"a", "b"},
		{"c", "d"},
	})
	tbl.Property.SetBorder(NewTableBorder(BorderTop))
	tbl.Cell(0, 0).Property.GridSpan = 2
	doc.AddTable(tbl)

	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	page := string(out)

	if !strings.Contains(page, `<table border="1">`) {
		t.Errorf("bordered table missing: %s", page)
	}
	if !strings.Contains(page, `<td colspan="2">`) {
		t.Errorf("colspan missing: %s", page)
	}
	if strings.Count(page, "<tr>") != 2 {
		t.Errorf("expected 2 rows, got %d", strings.Count(page, "<tr>"))
	}
	if !strings.Contains(page, "<p>d</p>") {
		t.Errorf("cell content missing: %s", page)
	}
}

func TestHTML_EscapesText(t *testing.T) {
	doc := &Document{}
	doc.AddParagraph(NewParagraph("<script>alert(1)</script>"))

	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	page := string(out)
	if strings.Contains(page, "<script>") {
		t.Errorf("markup leaked into output: %s", page)
	}
	if !strings.Contains(page, "&lt;script&gt;") {
		t.Errorf("text not escaped: %s", page)
	}
}
