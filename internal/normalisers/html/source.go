package html

import (
	"iter"

	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ParagraphSource = (*Source)(nil)

// Tags are the elements extracted as paragraphs.
var Tags = []string{
	"h1", "h2", "h3", "h4", "h5", "h6", "h7", "p", "li", "dd", "dt",
}

// Source extracts paragraph elements from markup.
type Source struct {
	parser driven.MarkupParser
	tags   []string
}

// New creates an HTML paragraph source using parser.
func New(parser driven.MarkupParser) *Source {
	return &Source{parser: parser, tags: Tags}
}

// Name returns the source format.
func (s *Source) Name() string {
	return "html"
}

// Paragraphs yields the text of each matching element.
// Content that fails to parse yields nothing.
func (s *Source) Paragraphs(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		doc, err := s.parser.Parse(content)
		if err != nil {
			logger.Warn("skipping unparseable document: %v", err)
			return
		}
		for _, el := range doc.FindAll(s.tags) {
			if !yield(el.Text()) {
				return
			}
		}
	}
}
