package store

import (
	"fmt"

	"github.com/docxkit/docxsql/docx"
)

// DocStore adapts one parsed document to the storage interface, dispatching
// by virtual table name. It holds a live reference: a scan after an update
// against the same DocStore observes the mutation, which callers rely on for
// the read-hash-then-write-by-hash pattern.
type DocStore struct {
	doc    *docx.Document
	tables tablesTable
	cells  cellTable
}

var (
	_ Store    = (*DocStore)(nil)
	_ StoreMut = (*DocStore)(nil)
)

// NewDocStore returns a store over the given document tree. The document
// stays owned by the caller; the store never creates or destroys elements,
// only mutates their properties in place.
func NewDocStore(doc *docx.Document) *DocStore {
	return &DocStore{doc: doc}
}

// Schemas returns the schemas of both virtual tables.
func (s *DocStore) Schemas() []Schema {
	return []Schema{TablesSchema(), CellSchema()}
}

// Schema returns the schema of the named table.
func (s *DocStore) Schema(name string) (*Schema, error) {
	switch name {
	case TablesName:
		schema := TablesSchema()
		return &schema, nil
	case CellName:
		schema := CellSchema()
		return &schema, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrTableNotFound)
}

// Scan produces the rows of the named table. Unknown names yield an empty
// iterator.
func (s *DocStore) Scan(name string) (*RowIter, error) {
	switch name {
	case TablesName:
		return s.tables.scan(s.doc), nil
	case CellName:
		return s.cells.scan(s.doc), nil
	}
	return newRowIter(nil), nil
}

// Fetch returns the row whose element hashes to key: a scan plus linear
// search, O(n) in document size. A known table without the key returns
// (nil, nil).
func (s *DocStore) Fetch(name string, key Key) (Row, error) {
	switch name {
	case TablesName, CellName:
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrTableNotFound)
	}

	it, err := s.Scan(name)
	if err != nil {
		return nil, err
	}
	for {
		k, row, ok := it.Next()
		if !ok {
			return nil, nil
		}
		if k == key {
			return row, nil
		}
	}
}

// Update applies keyed column updates to the named table. Writes against
// unknown tables succeed as a no-op.
func (s *DocStore) Update(name string, rows []KeyedRow) error {
	switch name {
	case TablesName:
		return s.tables.update(s.doc, rows)
	case CellName:
		return s.cells.update(s.doc, rows)
	}
	return nil
}

// InsertSchema is not mappable onto a document.
func (s *DocStore) InsertSchema(Schema) error {
	return fmt.Errorf("insert schema: %w", ErrUnsupported)
}

// DeleteSchema is not mappable onto a document.
func (s *DocStore) DeleteSchema(string) error {
	return fmt.Errorf("delete schema: %w", ErrUnsupported)
}

// AppendRows is not mappable onto a document.
func (s *DocStore) AppendRows(string, []Row) error {
	return fmt.Errorf("append rows: %w", ErrUnsupported)
}

// DeleteRows is not mappable onto a document.
func (s *DocStore) DeleteRows(string, []Key) error {
	return fmt.Errorf("delete rows: %w", ErrUnsupported)
}
