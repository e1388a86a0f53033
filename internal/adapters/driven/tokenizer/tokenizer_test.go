package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		language string
		expected []string
	}{
		{
			name:     "two sentences",
			text:     "Hello world. This is it.",
			language: "english",
			expected: []string{"Hello world.", "This is it."},
		},
		{
			name:     "english abbreviation",
			text:     "Mr. Smith went home. He slept.",
			language: "english",
			expected: []string{"Mr. Smith went home.", "He slept."},
		},
		{
			name:     "decimal and exclamation",
			text:     "Version 3.5 is out! Really?",
			language: "english",
			expected: []string{"Version 3.5 is out!", "Really?"},
		},
		{
			name:     "closing quote before period",
			text:     "He said «Так». Потім пішов.",
			language: "english",
			expected: []string{"He said «Так».", "Потім пішов."},
		},
		{
			name:     "ukrainian abbreviation",
			text:     "Згідно ст. 41 Закону. Далі текст.",
			language: "ukrainian",
			expected: []string{"Згідно ст. 41 Закону.", "Далі текст."},
		},
		{
			name:     "ukrainian abbreviation unknown in english",
			text:     "Згідно ст. 41 Закону. Далі текст.",
			language: "english",
			expected: []string{"Згідно ст.", "41 Закону.", "Далі текст."},
		},
		{
			name:     "lowercase continuation",
			text:     "lowercase. continues here",
			language: "english",
			expected: []string{"lowercase. continues here"},
		},
		{
			name:     "ellipsis",
			text:     "Wait... What?",
			language: "english",
			expected: []string{"Wait...", "What?"},
		},
		{
			name:     "initial",
			text:     "J. Smith wrote it.",
			language: "english",
			expected: []string{"J. Smith wrote it."},
		},
		{
			name:     "empty",
			text:     "   ",
			language: "english",
			expected: nil,
		},
	}

	tok := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tok.Sentences(tt.text, tt.language))
		})
	}
}

func TestNew_AbbreviationsPerLanguage(t *testing.T) {
	tok := New()

	for _, lang := range []string{"english", "ukrainian", "uk", "russian", "ru", "slavic"} {
		t.Run(lang, func(t *testing.T) {
			assert.NotEmpty(t, tok.abbreviations[languageKey(lang)])
		})
	}

	assert.Contains(t, tok.abbreviations["slavic"], "ст")
	assert.NotContains(t, tok.abbreviations["english"], "ст")
	assert.Contains(t, tok.abbreviations["english"], "mr")
	assert.NotContains(t, tok.abbreviations["slavic"], "mr")
}

func TestSentences_LanguageLists(t *testing.T) {
	tok := New()
	text := "Згідно ст. 41 Закону."

	assert.Equal(t, []string{"Згідно ст. 41 Закону."}, tok.Sentences(text, "ukrainian"))
	assert.Equal(t, []string{"Згідно ст. 41 Закону."}, tok.Sentences(text, "uk"))
	assert.Equal(t, []string{"Згідно ст.", "41 Закону."}, tok.Sentences(text, "english"))
}

func TestAddAbbreviations(t *testing.T) {
	tok := New()
	text := "See Abs. Two here."

	assert.Equal(t, []string{"See Abs.", "Two here."}, tok.Sentences(text, "english"))

	tok.AddAbbreviations("english", "Abs")
	assert.Equal(t, []string{"See Abs. Two here."}, tok.Sentences(text, "english"))
	assert.Equal(t, []string{"See Abs.", "Two here."}, tok.Sentences(text, "ukrainian"))
}

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "numbers and trailing period",
			text:     "Article 2 2020 год.",
			expected: []string{"Article", "2", "2020", "год", "."},
		},
		{
			name:     "abbreviation periods split",
			text:     "Ст. 41. Закону",
			expected: []string{"Ст", ".", "41", ".", "Закону"},
		},
		{
			name:     "quotes and joined abbreviation",
			text:     "«Закон», т.ч. ПДВ...",
			expected: []string{"«", "Закон", "»", ",", "т.ч", ".", "ПДВ", "..."},
		},
		{
			name:     "internal joiners",
			text:     "3.5 well-known it's",
			expected: []string{"3.5", "well-known", "it's"},
		},
		{
			name:     "standalone dash",
			text:     "a - b",
			expected: []string{"a", "-", "b"},
		},
		{
			name:     "empty",
			text:     "",
			expected: nil,
		},
	}

	tok := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tok.Words(tt.text, "english"))
		})
	}
}
