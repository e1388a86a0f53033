package cleaner

import "strings"

// StopWords is a set of lowercased tokens dropped by CleanWord.
// A nil set contains nothing.
type StopWords map[string]struct{}

// defaultStopWords are punctuation tokens produced by word tokenization.
var defaultStopWords = []string{
	".", ",", "”", "„", "-", "(", ")", ":", "«", "»", ";", "–", "{", "}", "™",
}

// NewStopWords builds a set from words, lowercasing each.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// DefaultStopWords returns the punctuation stop list.
func DefaultStopWords() StopWords {
	return NewStopWords(defaultStopWords...)
}

// Add inserts a word into the set.
func (s StopWords) Add(word string) {
	s[strings.ToLower(word)] = struct{}{}
}

// Contains reports whether word is in the set.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of stop words.
func (s StopWords) Len() int {
	return len(s)
}
