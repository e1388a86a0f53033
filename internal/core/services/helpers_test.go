package services

import (
	"iter"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeCorpus creates files under a fresh root. Keys are slash paths
// relative to the root.
func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func collect[T any](t *testing.T, seq iter.Seq[T], err error) []T {
	t.Helper()
	require.NoError(t, err)
	return slices.Collect(seq)
}
