package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textpipe/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textpipe/internal/core/domain"
)

func TestConfigSetCmd(t *testing.T) {
	setupTestServices(t)

	tests := []struct {
		name  string
		key   string
		value string
		want  any
	}{
		{"root", file.KeyCorpusRoot, "/data", "/data"},
		{"format", file.KeyCorpusFormat, "html", "html"},
		{"clean text", file.KeyCorpusCleanText, "true", true},
		{"stemmer", file.KeyCorpusStemmer, "russian", "russian"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute("config", "set", tt.key, tt.value)
			require.NoError(t, err)
			assert.Contains(t, out, "Set "+tt.key)

			got, ok := configStore.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigSetCmd_Invalid(t *testing.T) {
	setupTestServices(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "corpus.colour", "red"},
		{"bad bool", file.KeyCorpusCleanText, "sometimes"},
		{"bad format", file.KeyCorpusFormat, "pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute("config", "set", tt.key, tt.value)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestConfigShowCmd(t *testing.T) {
	setupTestServices(t)
	require.NoError(t, configStore.Set(file.KeyCorpusLanguage, "ukrainian"))

	out, err := execute("config", "show", "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "Config: "+configStore.Path())
	assert.Contains(t, out, "language:   ukrainian")
	assert.Contains(t, out, "format:     html")
	assert.Contains(t, out, "stemmer:    (none)")
	assert.Contains(t, out, "Stop lists: "+stopListStore.Dir())
}

func TestResolveSettings(t *testing.T) {
	setupTestServices(t)

	s := resolveSettings()
	assert.Equal(t, corpusSettings{Root: ".", Format: "txt", Language: "english"}, s)

	require.NoError(t, configStore.Set(file.KeyCorpusRoot, "/from/config"))
	require.NoError(t, configStore.Set(file.KeyCorpusLanguage, "ukrainian"))
	require.NoError(t, configStore.Set(file.KeyCorpusCleanText, true))
	flagRoot = "/from/flag"

	s = resolveSettings()
	assert.Equal(t, "/from/flag", s.Root)
	assert.Equal(t, "ukrainian", s.Language)
	assert.True(t, s.CleanText)
}

func TestResolveSettings_CleanFlagOverridesConfig(t *testing.T) {
	setupTestServices(t)
	require.NoError(t, configStore.Set(file.KeyCorpusCleanText, true))
	root := testCorpus(t, t.TempDir())

	out, err := execute("words", "--root", root, "--id", "news/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, lines(out))

	resetFlags(rootCmd)
	out, err = execute("words", "--root", root, "--id", "news/a.txt", "--clean=false")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "world", "."}, lines(out))

	resetFlags(rootCmd)
	require.NoError(t, configStore.Set(file.KeyCorpusCleanText, false))
	out, err = execute("words", "--root", root, "--id", "news/a.txt", "--clean")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, lines(out))
}
