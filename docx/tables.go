package docx

import "strings"

// Table represents a table (<w:tbl>): its rows, grid column widths, and
// style-property bag.
type Table struct {
	Rows     []*TableRow   `json:"rows"`
	Grid     []uint32      `json:"grid"`
	Property TableProperty `json:"property"`
}

// NewTable creates a table with the given dimensions, every cell holding one
// empty paragraph.
func NewTable(rows, cols int) *Table {
	t := &Table{Grid: make([]uint32, cols)}
	for i := 0; i < rows; i++ {
		row := &TableRow{}
		for j := 0; j < cols; j++ {
			row.Cells = append(row.Cells, &TableCell{Paragraphs: []*Paragraph{{}}})
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the cell count of the first row, or 0 for an empty table.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}

// Cell returns the cell at the given row and column (0-indexed), or nil when
// out of bounds.
func (t *Table) Cell(row, col int) *TableCell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	cells := t.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return nil
	}
	return cells[col]
}

// Text returns a plain text representation of the table: cells separated by
// tabs, rows by newlines.
func (t *Table) Text() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(strings.ReplaceAll(cell.Text(), "\n", " "))
		}
	}
	return sb.String()
}

// Markdown returns a markdown table representation. The first row becomes the
// header.
func (t *Table) Markdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	colCount := t.ColCount()
	if colCount == 0 {
		return ""
	}

	var sb strings.Builder
	for rowIdx, row := range t.Rows {
		sb.WriteString("|")
		written := 0
		for _, cell := range row.Cells {
			text := strings.ReplaceAll(cell.Text(), "\n", " ")
			text = strings.ReplaceAll(text, "|", "\\|")
			sb.WriteString(" ")
			sb.WriteString(strings.TrimSpace(text))
			sb.WriteString(" |")
			written++
		}
		for written < colCount {
			sb.WriteString(" |")
			written++
		}
		sb.WriteString("\n")

		if rowIdx == 0 {
			sb.WriteString("|")
			for i := 0; i < colCount; i++ {
				sb.WriteString(" --- |")
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// TableRow represents a table row (<w:tr>).
type TableRow struct {
	Cells []*TableCell `json:"cells"`
}

// TableCell represents a table cell (<w:tc>): its paragraphs and
// style-property bag.
type TableCell struct {
	Paragraphs []*Paragraph `json:"children"`
	Property   CellProperty `json:"property"`
}

// Text returns the concatenated text of every text child of every run in
// every paragraph of the cell, with no separator.
func (c *TableCell) Text() string {
	var sb strings.Builder
	for _, p := range c.Paragraphs {
		sb.WriteString(p.Text())
	}
	return sb.String()
}

// SetText replaces the cell content with a single paragraph of text.
func (c *TableCell) SetText(text string) {
	c.Paragraphs = []*Paragraph{NewParagraph(text)}
}
