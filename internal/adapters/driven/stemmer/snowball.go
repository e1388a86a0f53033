// Package stemmer implements the driven.Stemmer port with Snowball stemmers.
package stemmer

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
)

// Ensure Snowball implements the interface.
var _ driven.Stemmer = (*Snowball)(nil)

// Snowball stems words for one language.
type Snowball struct {
	language string
}

// New creates a stemmer for language (e.g. "english", "russian").
// Returns an error if Snowball has no stemmer for it.
func New(language string) (*Snowball, error) {
	lang := strings.ToLower(strings.TrimSpace(language))
	if _, err := snowball.Stem("probe", lang, true); err != nil {
		return nil, fmt.Errorf("unsupported stemmer language %q: %w", language, err)
	}
	return &Snowball{language: lang}, nil
}

// Language returns the stemmer language.
func (s *Snowball) Language() string {
	return s.language
}

// Stem returns the stem of word, or word itself if it cannot be stemmed.
func (s *Snowball) Stem(word string) string {
	if word == "" {
		return ""
	}
	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil {
		return word
	}
	return stemmed
}
