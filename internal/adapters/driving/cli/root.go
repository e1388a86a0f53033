// Package cli implements the textpipe command line using cobra.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe/internal/logger"
	"github.com/custodia-labs/textpipe/internal/steps"
)

// version is set at build time with -ldflags.
var version = "dev"

// Dependencies shared by commands. Stores left nil are opened from the
// --config directory before a command runs.
var (
	configStore   driven.ConfigStore
	stopListStore driven.StopWordStore
	stepRegistry  *steps.Registry
)

// Persistent flag values.
var (
	flagRoot      string
	flagFormat    string
	flagLang      string
	flagClean     bool
	flagStemmer   string
	flagStopWords string
	flagConfigDir string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "textpipe",
	Short: "Explore and transform folder-per-category text corpora",
	Long: `textpipe reads a corpus laid out as <root>/<category>/<file>, streams its
documents as paragraphs, sentences and words, exports them as tables, and
runs named transformation steps from one corpus into another.

Settings come from ~/.textpipe/config.toml and are overridden by flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetStepRegistry replaces the registry transform and steps commands use.
func SetStepRegistry(r *steps.Registry) {
	stepRegistry = r
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagRoot, "root", "", "Corpus root directory (default: corpus.root or .)")
	flags.StringVar(&flagFormat, "format", "", "Document format: txt, html or md (default: corpus.format or txt)")
	flags.StringVar(&flagLang, "lang", "", "Tokenizer language (default: corpus.language or english)")
	flags.BoolVar(&flagClean, "clean", false, "Clean paragraphs, sentences and words")
	flags.StringVar(&flagStemmer, "stemmer", "", "Stem cleaned words with the snowball stemmer for this language")
	flags.StringVar(&flagStopWords, "stopwords", "", "Stop-word list name or YAML file, added to the punctuation list")
	flags.StringVar(&flagConfigDir, "config", "", "Configuration directory (default: ~/.textpipe)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Log skipped files and transform steps to stderr")
}

// setup enables logging and opens any store not already configured.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	dir := flagConfigDir
	if dir == "" && (configStore == nil || stopListStore == nil) {
		d, err := file.DefaultDir()
		if err != nil {
			return fmt.Errorf("locate config directory: %w", err)
		}
		dir = d
	}

	if configStore == nil || flagConfigDir != "" {
		store, err := file.NewConfigStore(dir)
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		configStore = store
		logger.Debug("config: %s", store.Path())
	}

	if stopListStore == nil || flagConfigDir != "" {
		store, err := file.NewStopListStore(filepath.Join(dir, "stopwords"))
		if err != nil {
			return fmt.Errorf("open stop lists: %w", err)
		}
		stopListStore = store
	}

	if stepRegistry == nil {
		stepRegistry = steps.NewRegistry()
		steps.RegisterDefaults(stepRegistry)
	}
	return nil
}
