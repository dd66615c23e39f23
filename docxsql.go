// Package docxsql projects the tables of a Word document into virtual SQL
// tables that a storage-driven SQL engine can query and mutate, writing
// property changes back into the live document.
//
// Basic usage:
//
//	r, err := docxsql.Open("report.docx")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//
//	db := docxsql.NewStore(r.Document())
//	rows, _ := db.Scan("tables")
//	for key, row, ok := rows.Next(); ok; key, row, ok = rows.Next() {
//	    _ = key
//	    _ = row
//	}
//
// Updates are keyed by the content hash each scan emits; after applying
// them, r.Save writes the mutated document back out. The lower-level docx
// package is also available for direct tree access.
package docxsql

import (
	"github.com/docxkit/docxsql/docx"
	"github.com/docxkit/docxsql/store"
)

// Open opens a DOCX file. The returned Reader must be closed when done.
func Open(filename string) (*docx.Reader, error) {
	return docx.Open(filename)
}

// OpenBytes opens a DOCX package held in memory.
func OpenBytes(data []byte) (*docx.Reader, error) {
	return docx.OpenBytes(data)
}

// NewStore returns the virtual-table store over a parsed document.
func NewStore(doc *docx.Document) *store.DocStore {
	return store.NewDocStore(doc)
}
