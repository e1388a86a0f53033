// Package table selects a TableWriter by output file extension:
// SQLite databases for .db, .sqlite and .sqlite3, CSV for everything else.
package table

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/textpipe/internal/adapters/driven/table/csv"
	"github.com/custodia-labs/textpipe/internal/adapters/driven/table/sqlite"
	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.TableWriter = (*Writer)(nil)

// Writer dispatches to the CSV or SQLite writer.
type Writer struct {
	csv    driven.TableWriter
	sqlite driven.TableWriter
}

// New creates an extension-dispatching table writer.
func New() *Writer {
	return &Writer{csv: csv.New(), sqlite: sqlite.New()}
}

// WriteTable writes to path with the writer matching its extension.
func (w *Writer) WriteTable(path string, header []string, rows iter.Seq[[]string]) error {
	if IsDatabase(path) {
		return w.sqlite.WriteTable(path, header, rows)
	}
	return w.csv.WriteTable(path, header, rows)
}

// IsDatabase reports whether path names a SQLite database.
func IsDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
