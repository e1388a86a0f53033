package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textpipe/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved settings",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Save a setting",
	Long: `Save a setting to the config file. Keys:

  corpus.root        corpus root directory
  corpus.format      txt, html or md
  corpus.language    tokenizer language
  corpus.clean_text  true or false
  corpus.stemmer     snowball stemmer language
  corpus.stopwords   stop-word list name or YAML file`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeys = []string{
	file.KeyCorpusRoot,
	file.KeyCorpusFormat,
	file.KeyCorpusLanguage,
	file.KeyCorpusCleanText,
	file.KeyCorpusStemmer,
	file.KeyCorpusStopWords,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	s := resolveSettings()

	cmd.Printf("Config: %s\n\n", configStore.Path())
	cmd.Printf("  root:       %s\n", s.Root)
	cmd.Printf("  format:     %s\n", s.Format)
	cmd.Printf("  language:   %s\n", s.Language)
	cmd.Printf("  clean text: %t\n", s.CleanText)
	cmd.Printf("  stemmer:    %s\n", displayOrNone(s.Stemmer))
	cmd.Printf("  stopwords:  %s\n", displayOrNone(s.StopWords))
	if stopListStore != nil {
		cmd.Printf("\nStop lists: %s\n", stopListStore.Dir())
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	key, raw := args[0], args[1]

	var value any = raw
	switch key {
	case file.KeyCorpusCleanText:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidArgument, key)
		}
		value = b
	case file.KeyCorpusFormat:
		if raw != formatTxt && raw != formatHTML && raw != formatMD {
			return fmt.Errorf("%w: %s must be %s, %s or %s", domain.ErrInvalidArgument, key, formatTxt, formatHTML, formatMD)
		}
	case file.KeyCorpusRoot, file.KeyCorpusLanguage, file.KeyCorpusStemmer, file.KeyCorpusStopWords:
	default:
		return fmt.Errorf("%w: unknown key %q (known: %v)", domain.ErrInvalidArgument, key, configKeys)
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

func displayOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
