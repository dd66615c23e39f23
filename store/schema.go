package store

// ColumnType is the SQL type of a virtual column.
type ColumnType int

// Column types used by the virtual tables.
const (
	TypeText ColumnType = iota
	TypeUint32
)

// String returns the SQL spelling of the type.
func (t ColumnType) String() string {
	switch t {
	case TypeText:
		return "TEXT"
	case TypeUint32:
		return "UINT32"
	}
	return "UNKNOWN"
}

// Column defines one virtual column.
type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
	Comment  string
}

// Schema defines one virtual table.
type Schema struct {
	Table   string
	Columns []Column
}

// Column returns the definition of the named column.
func (s *Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Virtual table names.
const (
	TablesName = "tables"
	CellName   = "cell"
)

// borderColumns lists the six border columns in schema order. Values are
// JSON BorderSpec text: {"borderType","size","color"}.
var borderColumns = []string{
	"borders_top",
	"borders_left",
	"borders_bottom",
	"borders_right",
	"borders_inside_h",
	"borders_inside_v",
}

func borderColumnDefs() []Column {
	comments := []string{
		"top border",
		"left border",
		"bottom border",
		"right border",
		"inside horizontal border",
		"inside vertical border",
	}
	cols := make([]Column, len(borderColumns))
	for i, name := range borderColumns {
		cols[i] = Column{Name: name, Type: TypeText, Nullable: true, Comment: comments[i]}
	}
	return cols
}

// TablesSchema returns the schema of the "tables" virtual table. A fresh
// value is returned on every call so callers cannot mutate the catalog.
func TablesSchema() Schema {
	cols := []Column{
		{Name: "hash", Type: TypeText, Comment: "content hash of the table"},
		{Name: "row_number", Type: TypeUint32, Comment: "row count"},
		{Name: "column_number", Type: TypeUint32, Comment: "column count of the first row"},
		{Name: "width", Type: TypeUint32, Nullable: true, Comment: "table width"},
		{Name: "width_type", Type: TypeText, Nullable: true, Comment: "table width unit"},
		{Name: "justification", Type: TypeText, Nullable: true, Comment: "table alignment"},
	}
	cols = append(cols, borderColumnDefs()...)
	cols = append(cols, Column{Name: "json_content", Type: TypeText, Comment: "canonical JSON form of the table"})
	return Schema{Table: TablesName, Columns: cols}
}

// CellSchema returns the schema of the "cell" virtual table.
func CellSchema() Schema {
	cols := []Column{
		{Name: "hash", Type: TypeText, Comment: "content hash of the cell"},
		{Name: "table_hash", Type: TypeText, Comment: "content hash of the owning table"},
		{Name: "content", Type: TypeText, Nullable: true, Comment: "concatenated cell text"},
		{Name: "width", Type: TypeUint32, Nullable: true, Comment: "cell width"},
		{Name: "width_type", Type: TypeText, Nullable: true, Comment: "cell width unit"},
	}
	cols = append(cols, borderColumnDefs()...)
	cols = append(cols, Column{Name: "json_content", Type: TypeText, Comment: "canonical JSON form of the cell"})
	return Schema{Table: CellName, Columns: cols}
}
