package store

import (
	"encoding/json"

	"github.com/docxkit/docxsql/docx"
)

// borderColumnPositions maps border column names to border-set positions.
// The parallel orders of borderColumns and docx.BorderPositions line up.
var borderColumnPositions = func() map[string]docx.BorderPosition {
	m := make(map[string]docx.BorderPosition, len(borderColumns))
	for i, name := range borderColumns {
		m[name] = docx.BorderPositions[i]
	}
	return m
}()

// borderValue projects one edge of a border set into its column value:
// the JSON BorderSpec text when the edge carries a border, nil otherwise.
// Absent borders project to NULL while absent widths project to zero; that
// asymmetry is part of the schema contract.
func borderValue(borders *docx.TableBorders, pos docx.BorderPosition) any {
	b := borders.Get(pos)
	if b == nil {
		return nil
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil
	}
	return string(data)
}

// borderFromJSON builds a positioned border descriptor from update text.
// Only fields present in the JSON override the defaults; an unrecognized
// borderType leaves that sub-field at its default without failing the
// update, and malformed JSON yields the default descriptor.
func borderFromJSON(pos docx.BorderPosition, text string) docx.TableBorder {
	b := docx.NewTableBorder(pos)

	var spec map[string]any
	if err := json.Unmarshal([]byte(text), &spec); err != nil {
		spec = nil
	}
	if color, ok := spec["color"].(string); ok {
		b = b.WithColor(color)
	}
	if size, ok := uint32Value(spec["size"]); ok {
		b = b.WithSize(size)
	}
	if s, ok := spec["borderType"].(string); ok {
		if bt, err := docx.ParseBorderType(s); err == nil {
			b = b.WithType(bt)
		}
	}
	return b
}
