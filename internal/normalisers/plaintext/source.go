// Package plaintext provides a ParagraphSource for plain text documents,
// where every line is a candidate paragraph.
package plaintext

import (
	"iter"
	"strings"

	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ParagraphSource = (*Source)(nil)

// Source splits plain text on line boundaries.
type Source struct{}

// New creates a plain text paragraph source.
func New() *Source {
	return &Source{}
}

// Name returns the source format.
func (s *Source) Name() string {
	return "txt"
}

// Paragraphs yields each line of content without its line terminator.
// Blank lines are yielded too; readers drop empty paragraphs.
func (s *Source) Paragraphs(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(content) {
			if !yield(strings.TrimRight(line, "\r\n")) {
				return
			}
		}
	}
}
