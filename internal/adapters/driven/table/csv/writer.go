// Package csv writes tables as comma-delimited UTF-8 files with a header row.
package csv

import (
	"encoding/csv"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.TableWriter = (*Writer)(nil)

// Writer exports tables to CSV files.
type Writer struct{}

// New creates a CSV table writer.
func New() *Writer {
	return &Writer{}
}

// WriteTable creates or truncates path and writes header followed by rows.
// Parent directories are created as needed.
func (w *Writer) WriteTable(path string, header []string, rows iter.Seq[[]string]) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating table directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating table file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing table file: %w", cerr)
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
