package services

import (
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/textpipe/internal/adapters/driven/markup"
	"github.com/custodia-labs/textpipe/internal/adapters/driven/table"
	"github.com/custodia-labs/textpipe/internal/adapters/driven/tokenizer"
	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
	"github.com/custodia-labs/textpipe/internal/logger"
	"github.com/custodia-labs/textpipe/internal/normalisers/cleaner"
	"github.com/custodia-labs/textpipe/internal/normalisers/html"
	"github.com/custodia-labs/textpipe/internal/normalisers/markdown"
	"github.com/custodia-labs/textpipe/internal/normalisers/plaintext"
)

// Ensure TextReader implements the interface.
var _ driving.TextCorpus = (*TextReader)(nil)

// DefaultLanguage is the tokenizer language used when none is configured.
const DefaultLanguage = "english"

// Default table file names written under the corpus root.
const (
	DefaultParasTable = "paras.csv"
	DefaultSentsTable = "sents.csv"
)

// clauseSeparator splits sentences into clauses.
const clauseSeparator = "; "

// TextReader decomposes the documents of a FileCatalog into paragraphs,
// sentences and words. Every sequence it returns reads the files again
// when ranged over.
type TextReader struct {
	*FileCatalog

	source    driven.ParagraphSource
	tokenizer driven.Tokenizer
	stemmer   driven.Stemmer
	stopWords cleaner.StopWords
	language  string
	cleanText bool
}

// ReaderOption configures a TextReader.
type ReaderOption func(*TextReader)

// WithLanguage sets the language passed to the tokenizer.
func WithLanguage(language string) ReaderOption {
	return func(r *TextReader) {
		if language != "" {
			r.language = language
		}
	}
}

// WithCleanText enables the normalisation cascade on every level.
func WithCleanText(clean bool) ReaderOption {
	return func(r *TextReader) {
		r.cleanText = clean
	}
}

// WithStemmer stems words after cleaning. Only used when cleaning is on.
func WithStemmer(s driven.Stemmer) ReaderOption {
	return func(r *TextReader) {
		r.stemmer = s
	}
}

// WithStopWords replaces the default stop-word list.
func WithStopWords(words cleaner.StopWords) ReaderOption {
	return func(r *TextReader) {
		r.stopWords = words
	}
}

// NewTextReader creates a reader over catalog that splits documents with
// source and tokenizes them with tok.
func NewTextReader(catalog *FileCatalog, source driven.ParagraphSource, tok driven.Tokenizer, opts ...ReaderOption) *TextReader {
	r := &TextReader{
		FileCatalog: catalog,
		source:      source,
		tokenizer:   tok,
		stopWords:   cleaner.DefaultStopWords(),
		language:    DefaultLanguage,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTxtReader creates a reader for plain-text corpora with one paragraph
// per line.
func NewTxtReader(root string, opts ...ReaderOption) *TextReader {
	catalog := NewFileCatalog(root, WithTableWriter(table.New()))
	return NewTextReader(catalog, plaintext.New(), tokenizer.New(), opts...)
}

// NewHTMLReader creates a reader for HTML corpora whose paragraphs are
// heading, paragraph, list and definition elements.
func NewHTMLReader(root string, opts ...ReaderOption) *TextReader {
	catalog := NewFileCatalog(root, WithTableWriter(table.New()))
	return NewTextReader(catalog, html.New(markup.New()), tokenizer.New(), opts...)
}

// NewMarkdownReader creates a reader for Markdown corpora, such as the
// output of the html2md step.
func NewMarkdownReader(root string, opts ...ReaderOption) *TextReader {
	catalog := NewFileCatalog(root, WithTableWriter(table.New()))
	return NewTextReader(catalog, markdown.New(), tokenizer.New(), opts...)
}

// Format returns the name of the paragraph source.
func (r *TextReader) Format() string {
	return r.source.Name()
}

// Docs yields the content of each resolved document.
func (r *TextReader) Docs(sel domain.Selection) (iter.Seq[string], error) {
	ids, err := r.Resolve(sel)
	if err != nil {
		return nil, err
	}
	return r.docs(ids), nil
}

// Paras yields the paragraphs of each resolved document.
func (r *TextReader) Paras(sel domain.Selection) (iter.Seq[string], error) {
	ids, err := r.Resolve(sel)
	if err != nil {
		return nil, err
	}
	return r.paras(ids), nil
}

// Sents yields sentences and clauses of each resolved document.
func (r *TextReader) Sents(sel domain.Selection) (iter.Seq[string], error) {
	ids, err := r.Resolve(sel)
	if err != nil {
		return nil, err
	}
	return r.sents(ids), nil
}

// Words yields the word tokens of each resolved document.
func (r *TextReader) Words(sel domain.Selection) (iter.Seq[string], error) {
	ids, err := r.Resolve(sel)
	if err != nil {
		return nil, err
	}
	return r.words(ids), nil
}

// TextStat extends the catalog summary with paragraph and sentence counts,
// and with word counts when countWords is set.
func (r *TextReader) TextStat(sel domain.Selection, countWords bool) (domain.StatSummary, error) {
	ids, err := r.Resolve(sel)
	if err != nil {
		return domain.StatSummary{}, err
	}
	s, err := r.summarise(sel, ids)
	if err != nil {
		return s, err
	}

	for range r.paras(ids) {
		s.Paragraphs++
	}
	for range r.sents(ids) {
		s.Sentences++
	}
	if countWords {
		for range r.words(ids) {
			s.Words++
		}
	}
	return s, nil
}

// ParasToTable writes one row per paragraph of each id to path, or to
// <root>/paras.csv when path is empty. A nil ids exports the whole corpus.
func (r *TextReader) ParasToTable(path string, ids []domain.DocID) (string, error) {
	return r.unitsToTable(path, DefaultParasTable, "paragraph", ids, r.paras)
}

// SentsToTable writes one row per sentence of each id to path, or to
// <root>/sents.csv when path is empty. A nil ids exports the whole corpus.
func (r *TextReader) SentsToTable(path string, ids []domain.DocID) (string, error) {
	return r.unitsToTable(path, DefaultSentsTable, "sentence", ids, r.sents)
}

// unitsToTable numbers units from zero within each document.
func (r *TextReader) unitsToTable(path, fallback, unit string, ids []domain.DocID, units func([]domain.DocID) iter.Seq[string]) (string, error) {
	if path == "" {
		path = filepath.Join(r.Root(), fallback)
	}
	if ids == nil {
		ids = r.IDs(0, nil)
	}

	header := []string{"index", unit, "doc_id", "category"}
	rows := func(yield func([]string) bool) {
		for _, id := range ids {
			i := 0
			for text := range units([]domain.DocID{id}) {
				if !yield([]string{strconv.Itoa(i), text, id.String(), id.Category}) {
					return
				}
				i++
			}
		}
	}
	if err := r.writeTable(path, header, rows); err != nil {
		return "", err
	}
	return path, nil
}

func (r *TextReader) docs(ids []domain.DocID) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range r.AbsPaths(ids) {
			content, err := readDocument(path)
			if err != nil {
				logger.Warn("skipping %s: %v", path, err)
				continue
			}
			if !yield(content) {
				return
			}
		}
	}
}

func (r *TextReader) paras(ids []domain.DocID) iter.Seq[string] {
	return func(yield func(string) bool) {
		for content := range r.docs(ids) {
			for para := range r.source.Paragraphs(content) {
				if r.cleanText {
					para = cleaner.CleanParagraph(para)
				}
				if para == "" {
					continue
				}
				if !yield(para) {
					return
				}
			}
		}
	}
}

func (r *TextReader) sents(ids []domain.DocID) iter.Seq[string] {
	return func(yield func(string) bool) {
		for para := range r.paras(ids) {
			for _, sent := range r.tokenizer.Sentences(para, r.language) {
				for _, clause := range strings.Split(sent, clauseSeparator) {
					if r.cleanText {
						clause = cleaner.CleanSentence(clause)
					}
					if clause == "" {
						continue
					}
					if !yield(clause) {
						return
					}
				}
			}
		}
	}
}

func (r *TextReader) words(ids []domain.DocID) iter.Seq[string] {
	return func(yield func(string) bool) {
		for sent := range r.sents(ids) {
			for _, word := range r.tokenizer.Words(sent, r.language) {
				if r.cleanText {
					word = cleaner.CleanWord(word, r.stopWords)
					if word != "" && r.stemmer != nil {
						word = r.stemmer.Stem(word)
					}
				}
				if word == "" {
					continue
				}
				if !yield(word) {
					return
				}
			}
		}
	}
}

// readDocument reads a whole file in Unicode normalisation form C. The file
// is closed before the content is handed to a consumer.
func readDocument(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(norm.NFC.Reader(f))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
