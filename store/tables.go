package store

import "github.com/docxkit/docxsql/docx"

// tablesTable projects every top-level table of the document into one
// virtual row and applies keyed column updates back onto the tables.
type tablesTable struct{}

// scan produces one row per table, in document order. Every row is built
// from the table's state at scan time; nothing is cached.
func (tablesTable) scan(doc *docx.Document) *RowIter {
	var rows []KeyedRow
	for _, tbl := range doc.Tables() {
		key := ElementKey(tbl)
		rows = append(rows, KeyedRow{Key: key, Row: projectTable(tbl, key)})
	}
	return newRowIter(rows)
}

func projectTable(tbl *docx.Table, key Key) Row {
	row := Row{
		"hash":          string(key),
		"row_number":    uint32(tbl.RowCount()),
		"column_number": uint32(tbl.ColCount()),
		"width":         uint32(0),
		"width_type":    "",
		"justification": string(tbl.Property.Justification),
		"json_content":  canonicalJSON(tbl),
	}
	if w := tbl.Property.Width; w != nil {
		row["width"] = w.Width
		row["width_type"] = string(w.Type)
	}
	for i, name := range borderColumns {
		row[name] = borderValue(tbl.Property.Borders, docx.BorderPositions[i])
	}
	return row
}

// update re-walks the live tables and applies matching updates. Each table's
// hash is recomputed when the walk reaches it, so a key computed before an
// earlier update in the same batch mutated that table no longer matches.
func (tablesTable) update(doc *docx.Document, updates []KeyedRow) error {
	for _, tbl := range doc.Tables() {
		key := ElementKey(tbl)
		for _, upd := range updates {
			if upd.Key != key {
				continue
			}
			for col, val := range upd.Row {
				applyTableColumn(tbl, col, val)
			}
		}
	}
	return nil
}

// applyTableColumn replaces exactly one property of the table. Values that
// cannot be interpreted for their column are dropped without signaling.
func applyTableColumn(tbl *docx.Table, col string, val any) {
	if pos, ok := borderColumnPositions[col]; ok {
		text, ok := val.(string)
		if !ok {
			return
		}
		tbl.Property.SetBorder(borderFromJSON(pos, text))
		return
	}

	switch col {
	case "width":
		w, ok := uint32Value(val)
		if !ok {
			return
		}
		// Carry the current unit forward; only the magnitude is targeted.
		widthType := docx.WidthUnsupported
		if tbl.Property.Width != nil {
			widthType = tbl.Property.Width.Type
		}
		tbl.Property.SetWidth(w, widthType)
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
		if tbl.Property.Width != nil {
			width = tbl.Property.Width.Width
		}
		tbl.Property.SetWidth(width, widthType)
	case "justification":
		s, ok := val.(string)
		if !ok {
			return
		}
		j, err := docx.ParseJustification(s)
		if err != nil {
			return
		}
		tbl.Property.Align(j)
	}
}
