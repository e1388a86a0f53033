// Package sqlite writes tables into a SQLite database file. Each export
// replaces a single table named after the file stem, so a database holds
// one snapshot per export name.
package sqlite

import (
	"database/sql"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.TableWriter = (*Writer)(nil)

// Writer exports tables to SQLite.
type Writer struct {
	// Table overrides the table name derived from the file name.
	Table string
}

// New creates a SQLite table writer.
func New() *Writer {
	return &Writer{}
}

// WriteTable replaces the table in the database at path with header
// columns (all TEXT) and rows, inside a single transaction.
func (w *Writer) WriteTable(path string, header []string, rows iter.Seq[[]string]) error {
	if len(header) == 0 {
		return fmt.Errorf("table has no columns")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	table := w.Table
	if table == "" {
		table = TableName(path)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quote(table)); err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}

	cols := make([]string, len(header))
	marks := make([]string, len(header))
	for i, h := range header {
		cols[i] = quote(h) + " TEXT"
		marks[i] = "?"
	}
	if _, err := tx.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", quote(table), strings.Join(cols, ", "))); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s VALUES (%s)", quote(table), strings.Join(marks, ", ")))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(header))
	for row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row has %d values, want %d", len(row), len(header))
		}
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing table: %w", err)
	}
	return nil
}

// TableName derives a table name from a database file name.
func TableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
