package store

import "github.com/docxkit/docxsql/docx"

// cellTable projects every table cell of the document into one virtual row
// and applies keyed column updates back onto the cells.
type cellTable struct{}

// scan produces one row per cell, row-major within each table, tables in
// document order. table_hash is the owning table's hash computed from its
// state at scan time, so it matches the "tables" row of the same scan only
// while the document is not mutated in between.
func (cellTable) scan(doc *docx.Document) *RowIter {
	var rows []KeyedRow
	for _, tbl := range doc.Tables() {
		tableKey := ElementKey(tbl)
		for _, tr := range tbl.Rows {
			for _, cell := range tr.Cells {
				key := ElementKey(cell)
				rows = append(rows, KeyedRow{Key: key, Row: projectCell(cell, key, tableKey)})
			}
		}
	}
	return newRowIter(rows)
}

func projectCell(cell *docx.TableCell, key, tableKey Key) Row {
	row := Row{
		"hash":         string(key),
		"table_hash":   string(tableKey),
		"content":      cell.Text(),
		"width":        uint32(0),
		"width_type":   "",
		"json_content": canonicalJSON(cell),
	}
	if w := cell.Property.Width; w != nil {
		row["width"] = w.Width
		row["width_type"] = string(w.Type)
	}
	for i, name := range borderColumns {
		row[name] = borderValue(cell.Property.Borders, docx.BorderPositions[i])
	}
	return row
}

// update re-walks the live cells, hashing each immediately before its match
// checks. Cells with identical content share a key and all receive the
// update.
func (cellTable) update(doc *docx.Document, updates []KeyedRow) error {
	for _, tbl := range doc.Tables() {
		for _, tr := range tbl.Rows {
			for _, cell := range tr.Cells {
				key := ElementKey(cell)
				for _, upd := range updates {
					if upd.Key != key {
						continue
					}
					for col, val := range upd.Row {
						applyCellColumn(cell, col, val)
					}
				}
			}
		}
	}
	return nil
}

// applyCellColumn replaces exactly one property of the cell, with the same
// per-column semantics as the "tables" applier.
func applyCellColumn(cell *docx.TableCell, col string, val any) {
	if pos, ok := borderColumnPositions[col]; ok {
		text, ok := val.(string)
		if !ok {
			return
		}
		cell.Property.SetBorder(borderFromJSON(pos, text))
		return
	}

	switch col {
	case "width":
		w, ok := uint32Value(val)
		if !ok {
			return
		}
		widthType := docx.WidthUnsupported
		if cell.Property.Width != nil {
			widthType = cell.Property.Width.Type
		}
		cell.Property.SetWidth(w, widthType)
	case "width_type":
		s, ok := val.(string)
		if !ok {
			return
		}
		widthType, err := docx.ParseWidthType(s)
		if err != nil {
			widthType = docx.WidthAuto
		}
		var width uint32
		if cell.Property.Width != nil {
			width = cell.Property.Width.Width
		}
		cell.Property.SetWidth(width, widthType)
	}
}
