package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docxkit/docxsql/docx"
)

func TestScanCells_RowMajorOrder(t *testing.T) {
	s, _ := newTestStore(t, [][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
	})

	rows := scanAll(t, s, CellName)
	require.Len(t, rows, 6)

	var contents []string
	for _, r := range rows {
		contents = append(contents, r.Row["content"].(string))
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, contents)
}

func TestScanCells_ShareTableHash(t *testing.T) {
	s, tbl := newTestStore(t, [][]string{
		{"a", "b"},
		{"c", "d"},
	})

	tableRows := scanAll(t, s, TablesName)
	require.Len(t, tableRows, 1)

	cellRows := scanAll(t, s, CellName)
	require.Len(t, cellRows, 4)
	for _, r := range cellRows {
		assert.Equal(t, string(tableRows[0].Key), r.Row["table_hash"])
	}
	assert.Equal(t, string(ElementKey(tbl)), cellRows[0].Row["table_hash"])
}

func TestScanCells_Defaults(t *testing.T) {
	s, _ := newTestStore(t, [][]string{{"x"}})

	rows := scanAll(t, s, CellName)
	require.Len(t, rows, 1)
	row := rows[0].Row

	assert.Equal(t, string(rows[0].Key), row["hash"])
	assert.Equal(t, uint32(0), row["width"])
	assert.Equal(t, "", row["width_type"])
	for _, col := range borderColumns {
		assert.Nil(t, row[col], col)
	}

	content, ok := row["json_content"].(string)
	require.True(t, ok)
	assert.True(t, json.Valid([]byte(content)))
}

func TestScanCells_ContentConcatenatesParagraphs(t *testing.T) {
	tbl := docx.NewTable(1, 1)
	cell := tbl.Cell(0, 0)
	cell.Paragraphs = []*docx.Paragraph{
		docx.NewParagraph("foo"),
		docx.NewParagraph("bar"),
	}
	doc := &docx.Document{}
	doc.AddTable(tbl)

	rows := scanAll(t, NewDocStore(doc), CellName)
	require.Len(t, rows, 1)
	assert.Equal(t, "foobar", rows[0].Row["content"])
}

func TestUpdateCell_Width(t *testing.T) {
	s, tbl := newTestStore(t, [][]string{{"x"}})
	cell := tbl.Cell(0, 0)

	err := s.Update(CellName, []KeyedRow{{
		Key: ElementKey(cell),
		Row: Row{"width": uint32(1440), "width_type": "dxa"},
	}})
	require.NoError(t, err)

	require.NotNil(t, cell.Property.Width)
	assert.Equal(t, uint32(1440), cell.Property.Width.Width)
	assert.Equal(t, docx.WidthDXA, cell.Property.Width.Type)

	rows := scanAll(t, s, CellName)
	require.Len(t, rows, 1)
	assert.Equal(t, uint32(1440), rows[0].Row["width"])
	assert.Equal(t, "dxa", rows[0].Row["width_type"])
}

func TestUpdateCell_BorderScenario(t *testing.T) {
	s, _ := newTestStore(t, [][]string{{"hello"}})

	rows := scanAll(t, s, CellName)
	require.Len(t, rows, 1)
	assert.Equal(t, "hello", rows[0].Row["content"])
	assert.Nil(t, rows[0].Row["borders_top"])

	err := s.Update(CellName, []KeyedRow{{
		Key: rows[0].Key,
		Row: Row{"borders_top": `{"size":50,"color":"ff0000"}`},
	}})
	require.NoError(t, err)

	after := scanAll(t, s, CellName)
	require.Len(t, after, 1)
	assert.Equal(t, "hello", after[0].Row["content"], "content is untouched by a border update")
	assert.NotEqual(t, rows[0].Key, after[0].Key)

	top, ok := after[0].Row["borders_top"].(string)
	require.True(t, ok)
	var spec map[string]any
	require.NoError(t, json.Unmarshal([]byte(top), &spec))
	assert.Equal(t, "single", spec["borderType"])
	assert.Equal(t, float64(50), spec["size"])
	assert.Equal(t, "ff0000", spec["color"])

	for _, col := range borderColumns[1:] {
		assert.Nil(t, after[0].Row[col], col)
	}
}

func TestUpdateCell_IdenticalCellsShareKeyAndUpdate(t *testing.T) {
	s, tbl := newTestStore(t, [][]string{
		{"same", "same"},
	})

	left := tbl.Cell(0, 0)
	right := tbl.Cell(0, 1)
	require.Equal(t, ElementKey(left), ElementKey(right))

	err := s.Update(CellName, []KeyedRow{{
		Key: ElementKey(left),
		Row: Row{"width": uint32(600), "width_type": "dxa"},
	}})
	require.NoError(t, err)

	require.NotNil(t, left.Property.Width)
	require.NotNil(t, right.Property.Width)
	assert.Equal(t, uint32(600), left.Property.Width.Width)
	assert.Equal(t, uint32(600), right.Property.Width.Width)
}

func TestUpdateCell_JustificationColumnIgnored(t *testing.T) {
	s, tbl := newTestStore(t, [][]string{{"x"}})
	cell := tbl.Cell(0, 0)
	before := ElementKey(cell)

	err := s.Update(CellName, []KeyedRow{{
		Key: before,
		Row: Row{"justification": "center"},
	}})
	require.NoError(t, err)
	assert.Equal(t, before, ElementKey(cell), "cells have no justification column")
}

func TestUpdateCell_StaleKeyIsNoop(t *testing.T) {
	s, tbl := newTestStore(t, [][]string{{"x"}})
	cell := tbl.Cell(0, 0)
	stale := ElementKey(cell)
	cell.SetText("changed")

	err := s.Update(CellName, []KeyedRow{{
		Key: stale,
		Row: Row{"width": uint32(999)},
	}})
	require.NoError(t, err)
	assert.Nil(t, cell.Property.Width)
}
