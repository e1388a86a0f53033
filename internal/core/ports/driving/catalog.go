package driving

import (
	"iter"

	"github.com/custodia-labs/textpipe/internal/core/domain"
)

// Catalog enumerates the categories and documents of a corpus rooted at a
// directory. Catalogs hold no index: every call re-reads the filesystem.
type Catalog interface {
	// Root returns the corpus root directory.
	Root() string

	// Categories lists non-hidden category folders, at most limit of them
	// when limit > 0.
	Categories(limit int) []string

	// IDs lists documents across categories, optionally restricted to the
	// given category names. limit applies to the whole enumeration.
	IDs(limit int, categories []string) []domain.DocID

	// Resolve expands a selection into document ids.
	// Returns domain.ErrInvalidArgument when both selectors are given.
	Resolve(sel domain.Selection) ([]domain.DocID, error)

	// AbsPaths yields the absolute path of each id whose file exists,
	// silently dropping the rest.
	AbsPaths(ids []domain.DocID) iter.Seq[string]

	// IDToAbsPath resolves a single id, returning "" if the file is missing.
	IDToAbsPath(id domain.DocID) string

	// Paths resolves sel and yields the existing document paths.
	Paths(sel domain.Selection) (iter.Seq[string], error)

	// Sizes yields the byte size of each existing resolved document.
	Sizes(sel domain.Selection) (iter.Seq[int64], error)

	// Stat summarises the resolved document set.
	// Returns domain.ErrEmptySet when no resolved file exists.
	Stat(sel domain.Selection) (domain.StatSummary, error)

	// FilesToTable exports one row per document under the root and returns
	// the written path. An empty path selects the default location.
	FilesToTable(path string) (string, error)
}

// TextCorpus is a Catalog that can decompose documents into paragraphs,
// sentences and words. Every sequence is lazy and restartable: ranging
// over it again re-reads the documents.
type TextCorpus interface {
	Catalog

	// Docs yields the full content of each resolved document.
	Docs(sel domain.Selection) (iter.Seq[string], error)

	// Paras yields paragraphs, cleaned when cleaning is enabled.
	Paras(sel domain.Selection) (iter.Seq[string], error)

	// Sents yields sentences and "; "-separated clauses.
	Sents(sel domain.Selection) (iter.Seq[string], error)

	// Words yields word tokens, lowercased, filtered and stemmed when
	// cleaning is enabled.
	Words(sel domain.Selection) (iter.Seq[string], error)

	// TextStat extends Stat with paragraph and sentence counts, and word
	// counts when countWords is set.
	TextStat(sel domain.Selection, countWords bool) (domain.StatSummary, error)

	// ParasToTable exports one row per paragraph of each id.
	ParasToTable(path string, ids []domain.DocID) (string, error)

	// SentsToTable exports one row per sentence of each id.
	SentsToTable(path string, ids []domain.DocID) (string, error)
}
