package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textpipe/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textpipe/internal/logger"
	"github.com/custodia-labs/textpipe/internal/steps"
)

// setupTestServices points the CLI at stores under a temp directory and
// returns that directory. Everything is restored when the test ends.
func setupTestServices(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfg, err := file.NewConfigStore(filepath.Join(dir, "config"))
	require.NoError(t, err)
	stops, err := file.NewStopListStore(filepath.Join(dir, "config", "stopwords"))
	require.NoError(t, err)
	registry := steps.NewRegistry()
	steps.RegisterDefaults(registry)

	origConfig, origStops, origRegistry := configStore, stopListStore, stepRegistry
	configStore, stopListStore, stepRegistry = cfg, stops, registry
	resetFlags(rootCmd)

	t.Cleanup(func() {
		configStore, stopListStore, stepRegistry = origConfig, origStops, origRegistry
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
	})
	return dir
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// writeFiles creates files under root from slash-separated relative paths.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// testCorpus writes a small plain-text corpus and returns its root.
func testCorpus(t *testing.T, dir string) string {
	t.Helper()
	root := filepath.Join(dir, "corpus")
	writeFiles(t, root, map[string]string{
		"legal/doc1.txt": "Ст. 41. Закону\nArticle2 2020 год.",
		"legal/doc2.txt": "Running dogs bark; cats sleep.",
		"news/a.txt":     "Hello world.",
	})
	return root
}
