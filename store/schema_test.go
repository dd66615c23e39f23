package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesSchema(t *testing.T) {
	schema := TablesSchema()
	assert.Equal(t, "tables", schema.Table)

	names := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		names[i] = c.Name
	}
	assert.Equal(t, []string{
		"hash", "row_number", "column_number", "width", "width_type", "justification",
		"borders_top", "borders_left", "borders_bottom", "borders_right",
		"borders_inside_h", "borders_inside_v",
		"json_content",
	}, names)

	hash, ok := schema.Column("hash")
	require.True(t, ok)
	assert.Equal(t, TypeText, hash.Type)
	assert.False(t, hash.Nullable)

	rowNum, ok := schema.Column("row_number")
	require.True(t, ok)
	assert.Equal(t, TypeUint32, rowNum.Type)

	top, ok := schema.Column("borders_top")
	require.True(t, ok)
	assert.True(t, top.Nullable)

	_, ok = schema.Column("no_such_column")
	assert.False(t, ok)
}

func TestCellSchema(t *testing.T) {
	schema := CellSchema()
	assert.Equal(t, "cell", schema.Table)

	names := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		names[i] = c.Name
	}
	assert.Equal(t, []string{
		"hash", "table_hash", "content", "width", "width_type",
		"borders_top", "borders_left", "borders_bottom", "borders_right",
		"borders_inside_h", "borders_inside_v",
		"json_content",
	}, names)

	tableHash, ok := schema.Column("table_hash")
	require.True(t, ok)
	assert.False(t, tableHash.Nullable)

	content, ok := schema.Column("content")
	require.True(t, ok)
	assert.True(t, content.Nullable)
}

func TestSchema_FreshValuePerCall(t *testing.T) {
	first := TablesSchema()
	first.Columns[0].Name = "mutated"

	second := TablesSchema()
	assert.Equal(t, "hash", second.Columns[0].Name,
		"callers must not be able to mutate the catalog")
}

func TestColumnType_String(t *testing.T) {
	assert.Equal(t, "TEXT", TypeText.String())
	assert.Equal(t, "UINT32", TypeUint32.String())
	assert.Equal(t, "UNKNOWN", ColumnType(99).String())
}
