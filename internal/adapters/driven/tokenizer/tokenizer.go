// Package tokenizer provides a rule-based implementation of the
// driven.Tokenizer port. Sentences end at terminal punctuation followed by
// whitespace and a capitalised or numeric start, unless the preceding word
// is a known abbreviation for the language. Words are runs of letters and
// digits; every other visible rune becomes its own token.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
)

// Ensure Tokenizer implements the interface.
var _ driven.Tokenizer = (*Tokenizer)(nil)

// Tokenizer splits text by punctuation and whitespace rules.
type Tokenizer struct {
	abbreviations map[string]map[string]struct{}
}

// New creates a tokenizer with the built-in abbreviation lists.
func New() *Tokenizer {
	t := &Tokenizer{abbreviations: make(map[string]map[string]struct{}, len(defaultAbbreviations))}
	for key, words := range defaultAbbreviations {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[strings.ToLower(w)] = struct{}{}
		}
		t.abbreviations[key] = set
	}
	return t
}

// AddAbbreviations registers words that never end a sentence in language.
// Words are given without their trailing period.
func (t *Tokenizer) AddAbbreviations(language string, words ...string) {
	lang := languageKey(language)
	set, ok := t.abbreviations[lang]
	if !ok {
		set = make(map[string]struct{}, len(words))
		t.abbreviations[lang] = set
	}
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
}

// Sentences returns the sentences of text in order, each trimmed.
func (t *Tokenizer) Sentences(text, language string) []string {
	abbrevs := t.abbreviations[languageKey(language)]
	runes := []rune(text)

	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}

		end := i + 1
		for end < len(runes) && (isTerminator(runes[end]) || isCloser(runes[end])) {
			end++
		}
		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next == end || next == len(runes) {
			i = end - 1
			continue
		}
		if !opensSentence(runes[next]) {
			i = end - 1
			continue
		}
		if end-i == 1 && runes[i] == '.' && isAbbreviation(runes[start:i], abbrevs) {
			i = end - 1
			continue
		}

		if s := strings.TrimSpace(string(runes[start:end])); s != "" {
			sentences = append(sentences, s)
		}
		start = next
		i = next - 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Words returns the word and punctuation tokens of text in order.
// Periods, commas, hyphens and apostrophes between two word runes stay
// inside the token ("3.5", "т.ч", "well-known"); runs of the same
// punctuation rune form one token ("...").
func (t *Tokenizer) Words(text, _ string) []string {
	runes := []rune(text)

	var tokens []string
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			j := i + 1
			for j < len(runes) {
				if isWordRune(runes[j]) {
					j++
					continue
				}
				if isJoiner(runes[j]) && j+1 < len(runes) && isWordRune(runes[j+1]) {
					j += 2
					continue
				}
				break
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
		default:
			j := i + 1
			for j < len(runes) && runes[j] == r {
				j++
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
		}
	}
	return tokens
}

// isAbbreviation reports whether the word ending the prefix is a known
// abbreviation or a single capital initial.
func isAbbreviation(prefix []rune, abbrevs map[string]struct{}) bool {
	j := len(prefix)
	for j > 0 && (isWordRune(prefix[j-1]) || prefix[j-1] == '.') {
		j--
	}
	word := prefix[j:]
	if len(word) == 0 {
		return false
	}
	if len(word) == 1 && unicode.IsUpper(word[0]) {
		return true
	}
	_, ok := abbrevs[strings.ToLower(string(word))]
	return ok
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '»', '”', '’':
		return true
	}
	return false
}

func opensSentence(r rune) bool {
	if unicode.IsUpper(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '"', '\'', '(', '[', '«', '„', '“', '—', '–', '-':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isJoiner(r rune) bool {
	switch r {
	case '.', ',', '-', '\'', '’':
		return true
	}
	return false
}

// languageKey maps a language name to its abbreviation list key.
func languageKey(language string) string {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "ukrainian", "uk", "russian", "ru", "slavic":
		return "slavic"
	default:
		return "english"
	}
}

var defaultAbbreviations = map[string][]string{
	"english": {
		"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "vs", "etc", "e.g", "i.e",
		"inc", "ltd", "co", "no", "fig", "art", "sec", "jan", "feb", "mar", "apr",
		"jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
	},
	"slavic": {
		"ст", "п", "пп", "п.п", "ч", "буд", "вул", "м", "р", "рр", "грн", "коп", "т.ч",
		"тис", "млн", "млрд", "див", "ін", "др", "ім", "проф", "обл", "с", "кв",
	},
}
