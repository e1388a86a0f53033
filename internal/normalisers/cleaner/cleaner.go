// Package cleaner normalises paragraph, sentence and word text extracted
// from corpus documents. Every function is total: it never fails, and an
// empty result means the unit should be discarded.
package cleaner

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// rule is one ordered rewrite of the paragraph cascade.
type rule struct {
	name string
	re   *regexp.Regexp
	repl string
}

// letters covers Latin letters and the basic Cyrillic block.
const letters = `\x{0400}-\x{04FF}A-Za-z`

// paragraphRules run in order; later rules see the output of earlier ones.
var paragraphRules = []rule{
	{"marks", regexp.MustCompile("['’\"`\uFFFD]"), ""},
	{"digit-letter", regexp.MustCompile(`([0-9])([` + letters + `])`), "$1 $2"},
	{"letter-digit", regexp.MustCompile(`([` + letters + `])([0-9])`), "$1 $2"},

	// п.п.1 п.5 ч.2 ст.41 Закону України
	{"item", regexp.MustCompile(`\s+п\.\s+`), " п."},
	{"part", regexp.MustCompile(`\s+ч\.\s+`), " ч."},
	{"article", regexp.MustCompile(`(^|[^\p{L}])ст\.\s+`), "${1}ст."},
	{"subitem", regexp.MustCompile(`\s+п\.\s*п\.\s*`), " п.п."},
	{"number-sign", regexp.MustCompile(`\s+№\s+`), " №"},

	// т.ч.ПДВ
	{"including", regexp.MustCompile(`\s+т\.ч\.\s*`), " т.ч. "},

	{"links", regexp.MustCompile(`https?://\S+|www\.\S+`), ""},
	{"ellipsis", regexp.MustCompile(`…+`), "…"},
	{"underscores", regexp.MustCompile(`_+`), ""},
	{"periods", regexp.MustCompile(`\.+`), "."},
	{"slashes", regexp.MustCompile(`[/\\]`), " "},

	// id=3303
	{"equals", regexp.MustCompile(`\s*=\s*`), " = "},

	// буд.12, spaced on both sides so the preceding word stays separate
	{"building", regexp.MustCompile(`\s*буд\.\s*`), " буд. "},
}

// nonAlpha matches strings made only of digits, spaces and list punctuation.
var nonAlpha = regexp.MustCompile(`^[0-9 \x{00A0}.,\-/:+*_;]+$`)

// minParagraphRunes is the shortest text still treated as a paragraph.
const minParagraphRunes = 4

// maxPasses bounds the fixed-point iteration of the paragraph cascade.
const maxPasses = 8

// CleanParagraph applies the paragraph cascade to text and returns the
// result, or "" when what remains is not a paragraph: only digits and
// punctuation, or three characters or fewer.
//
// The cascade is repeated until the text stops changing, so cleaning an
// already cleaned paragraph returns it unchanged.
func CleanParagraph(text string) string {
	clean := text
	for range maxPasses {
		next := cleanParagraphOnce(clean)
		if next == clean {
			break
		}
		clean = next
	}
	return clean
}

func cleanParagraphOnce(text string) string {
	clean := strings.TrimSpace(text)

	for _, r := range paragraphRules {
		clean = r.re.ReplaceAllString(clean, r.repl)
	}
	clean = strings.TrimSpace(clean)

	if nonAlpha.MatchString(clean) {
		return ""
	}
	if utf8.RuneCountInString(clean) < minParagraphRunes {
		return ""
	}
	return clean
}

// CleanSentence trims text and returns "" when it holds only digits and
// punctuation.
func CleanSentence(text string) string {
	clean := strings.TrimSpace(text)
	if nonAlpha.MatchString(clean) {
		return ""
	}
	return clean
}

// CleanWord trims and lowercases text, returning "" for stop words.
func CleanWord(text string, stopWords StopWords) string {
	clean := strings.ToLower(strings.TrimSpace(text))
	if stopWords.Contains(clean) {
		return ""
	}
	return clean
}
