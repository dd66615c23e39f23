// Package store projects the tables and cells of a parsed DOCX document into
// relational rows behind a pluggable storage interface, and applies column
// updates back onto the live document tree.
//
// Two virtual tables are exposed: "tables" (one row per top-level table) and
// "cell" (one row per cell, row-major). Rows are synthesized on demand from
// the document; nothing is stored separately. Row keys are content hashes of
// the elements, so a key is only valid until the element it names is mutated.
//
// All operations are synchronous and single-threaded: no call is safe
// concurrently with another call against the same document.
package store

import "errors"

// Sentinel errors returned by Store implementations.
var (
	// ErrTableNotFound reports an unknown virtual table name.
	ErrTableNotFound = errors.New("store: table not found")

	// ErrUnsupported reports a write with no defined mapping onto the
	// document: schema mutation, row append, or row delete.
	ErrUnsupported = errors.New("store: unsupported operation")
)

// Key is the content-addressed row key: the hex-encoded digest of the
// element's canonical serialized form.
type Key string

// Row maps column names to values. Values are string, uint32, or untyped nil
// (SQL NULL).
type Row map[string]any

// KeyedRow pairs a row with its key.
type KeyedRow struct {
	Key Key
	Row Row
}

// RowIter is a finite, non-restartable sequence of keyed rows produced by a
// scan, in document order.
type RowIter struct {
	rows []KeyedRow
	pos  int
}

func newRowIter(rows []KeyedRow) *RowIter {
	return &RowIter{rows: rows}
}

// Next returns the next row in the sequence. The third result is false once
// the sequence is exhausted.
func (it *RowIter) Next() (Key, Row, bool) {
	if it.pos >= len(it.rows) {
		return "", nil, false
	}
	kr := it.rows[it.pos]
	it.pos++
	return kr.Key, kr.Row, true
}

// Store is the read side of the storage interface a SQL engine drives.
type Store interface {
	// Schemas enumerates the schemas of every virtual table.
	Schemas() []Schema

	// Schema returns the schema of one table, or ErrTableNotFound.
	Schema(name string) (*Schema, error)

	// Scan produces every row of the named table. An unknown name yields
	// an empty iterator, not an error.
	Scan(name string) (*RowIter, error)

	// Fetch returns the row with the given key, or (nil, nil) when no
	// element of a known table hashes to it. Unknown table names return
	// ErrTableNotFound.
	Fetch(name string, key Key) (Row, error)
}

// StoreMut is the write side of the storage interface.
type StoreMut interface {
	// Update applies column updates keyed by content hash onto the live
	// document. Unknown table names succeed as a no-op so unrelated-table
	// writes never fail the caller.
	Update(name string, rows []KeyedRow) error

	// The remaining mutations have no mapping onto a document and always
	// return ErrUnsupported.
	InsertSchema(schema Schema) error
	DeleteSchema(name string) error
	AppendRows(name string, rows []Row) error
	DeleteRows(name string, keys []Key) error
}

// uint32Value coerces an update value into a uint32 column value. Scans emit
// uint32, but SQL engines commonly hand back wider integer kinds; anything
// negative, fractional, or non-numeric is rejected.
func uint32Value(v any) (uint32, bool) {
	switch n := v.(type) {
	case uint32:
		return n, true
	case uint64:
		if n > 1<<32-1 {
			return 0, false
		}
		return uint32(n), true
	case uint:
		if uint64(n) > 1<<32-1 {
			return 0, false
		}
		return uint32(n), true
	case int:
		if n < 0 || int64(n) > 1<<32-1 {
			return 0, false
		}
		return uint32(n), true
	case int32:
		if n < 0 {
			return 0, false
		}
		return uint32(n), true
	case int64:
		if n < 0 || n > 1<<32-1 {
			return 0, false
		}
		return uint32(n), true
	case float64:
		if n < 0 || n > 1<<32-1 || n != float64(uint32(n)) {
			return 0, false
		}
		return uint32(n), true
	}
	return 0, false
}
