package driven

// Tokenizer splits text into sentences and word tokens.
// Language is a lowercase name such as "english" or "ukrainian";
// implementations fall back to language-neutral rules for unknown names.
type Tokenizer interface {
	// Sentences returns the sentences of text in order.
	Sentences(text, language string) []string

	// Words returns the word and punctuation tokens of text in order.
	Words(text, language string) []string
}

// Stemmer reduces a word to its stem.
type Stemmer interface {
	Stem(word string) string
}
