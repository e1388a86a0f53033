package sqlite

import (
	"database/sql"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path, table string) [][]string {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT "folder", "file" FROM ` + quote(table) + ` ORDER BY rowid`)
	require.NoError(t, err)
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var folder, file string
		require.NoError(t, rows.Scan(&folder, &file))
		out = append(out, []string{folder, file})
	}
	require.NoError(t, rows.Err())
	return out
}

func TestWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.db")
	rows := [][]string{{"legal", "doc1.txt"}, {"web", "page.html"}}

	require.NoError(t, New().WriteTable(path, []string{"folder", "file"}, slices.Values(rows)))

	assert.Equal(t, rows, readRows(t, path, "index"))
}

func TestWriteTable_ReplacesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.db")
	w := New()

	require.NoError(t, w.WriteTable(path, []string{"folder", "file"}, slices.Values([][]string{{"a", "1"}, {"b", "2"}})))
	require.NoError(t, w.WriteTable(path, []string{"folder", "file"}, slices.Values([][]string{{"c", "3"}})))

	assert.Equal(t, [][]string{{"c", "3"}}, readRows(t, path, "index"))
}

func TestWriteTable_RowWidthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.db")

	err := New().WriteTable(path, []string{"folder", "file"}, slices.Values([][]string{{"only-one"}}))
	assert.Error(t, err)
}

func TestWriteTable_NoColumns(t *testing.T) {
	err := New().WriteTable(filepath.Join(t.TempDir(), "x.db"), nil, slices.Values([][]string(nil)))
	assert.Error(t, err)
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "index", TableName("/tmp/corpus/index.db"))
	assert.Equal(t, "sents", TableName("sents.sqlite"))
}
