package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textpipe/internal/adapters/driven/stemmer"
	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/services"
	"github.com/custodia-labs/textpipe/internal/normalisers/cleaner"
)

// Supported document formats.
const (
	formatTxt  = "txt"
	formatHTML = "html"
	formatMD   = "md"
)

// corpusSettings is the effective reader configuration: defaults, then
// config file values, then flags.
type corpusSettings struct {
	Root      string
	Format    string
	Language  string
	CleanText bool
	Stemmer   string
	StopWords string
}

func resolveSettings() corpusSettings {
	s := corpusSettings{
		Root:     ".",
		Format:   formatTxt,
		Language: services.DefaultLanguage,
	}

	if configStore != nil {
		s.Root = firstNonEmpty(configStore.GetString(file.KeyCorpusRoot), s.Root)
		s.Format = firstNonEmpty(configStore.GetString(file.KeyCorpusFormat), s.Format)
		s.Language = firstNonEmpty(configStore.GetString(file.KeyCorpusLanguage), s.Language)
		s.CleanText = configStore.GetBool(file.KeyCorpusCleanText)
		s.Stemmer = configStore.GetString(file.KeyCorpusStemmer)
		s.StopWords = configStore.GetString(file.KeyCorpusStopWords)
	}

	s.Root = firstNonEmpty(flagRoot, s.Root)
	s.Format = firstNonEmpty(flagFormat, s.Format)
	s.Language = firstNonEmpty(flagLang, s.Language)
	if rootCmd.PersistentFlags().Changed("clean") {
		s.CleanText = flagClean
	}
	s.Stemmer = firstNonEmpty(flagStemmer, s.Stemmer)
	s.StopWords = firstNonEmpty(flagStopWords, s.StopWords)
	return s
}

// newReader builds the text reader the effective settings describe.
func newReader() (*services.TextReader, error) {
	s := resolveSettings()

	opts := []services.ReaderOption{
		services.WithLanguage(s.Language),
		services.WithCleanText(s.CleanText),
	}

	if s.Stemmer != "" {
		st, err := stemmer.New(s.Stemmer)
		if err != nil {
			return nil, err
		}
		opts = append(opts, services.WithStemmer(st))
	}

	if s.StopWords != "" {
		if stopListStore == nil {
			return nil, errors.New("stop list store not configured")
		}
		terms, err := stopListStore.Load(s.StopWords)
		if err != nil {
			return nil, err
		}
		words := cleaner.DefaultStopWords()
		for _, term := range terms {
			words.Add(term)
		}
		opts = append(opts, services.WithStopWords(words))
	}

	switch s.Format {
	case formatTxt:
		return services.NewTxtReader(s.Root, opts...), nil
	case formatHTML:
		return services.NewHTMLReader(s.Root, opts...), nil
	case formatMD:
		return services.NewMarkdownReader(s.Root, opts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q (want %s, %s or %s)", domain.ErrInvalidArgument, s.Format, formatTxt, formatHTML, formatMD)
	}
}

// Selection flag values, shared by every command that takes a selection.
var (
	flagIDs        []string
	flagCategories []string
)

// addSelectionFlags registers --id and --category on cmd.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&flagIDs, "id", nil, "Document id <category>/<name> (repeatable)")
	cmd.Flags().StringSliceVar(&flagCategories, "category", nil, "Category name (repeatable)")
}

// selectionFromFlags turns the selection flags of cmd into a Selection.
// Flags that were not given stay nil.
func selectionFromFlags(cmd *cobra.Command) (domain.Selection, error) {
	var sel domain.Selection

	if cmd.Flags().Changed("id") {
		sel.IDs = make([]domain.DocID, 0, len(flagIDs))
		for _, raw := range flagIDs {
			id, err := domain.ParseDocID(raw)
			if err != nil {
				return domain.Selection{}, err
			}
			sel.IDs = append(sel.IDs, id)
		}
	}
	if cmd.Flags().Changed("category") {
		sel.Categories = append([]string{}, flagCategories...)
	}

	if err := sel.Validate(); err != nil {
		return domain.Selection{}, fmt.Errorf("%w: use --id or --category, not both", err)
	}
	return sel, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
