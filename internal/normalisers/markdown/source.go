// Package markdown provides a ParagraphSource for Markdown documents.
// Formatting is stripped and every remaining line is a candidate paragraph.
package markdown

import (
	"iter"
	"regexp"
	"strings"

	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ParagraphSource = (*Source)(nil)

var (
	codeBlock     = regexp.MustCompile("(?s)```.*?```")
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	images        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	links         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	rules         = regexp.MustCompile(`(?m)^[ \t]*[-*_]{3,}[ \t]*$`)
	headings      = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+`)
	blockquote    = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)
	listMarkers   = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	numberedList  = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]+`)
	strongStars   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	emStars       = regexp.MustCompile(`\*([^*\s][^*]*)\*`)
	strongUnders  = regexp.MustCompile(`__([^_]+)__`)
	emUnders      = regexp.MustCompile(`(^|\s)_([^_\s][^_]*)_`)
	trailingBreak = regexp.MustCompile(`(?m)(\\| {2,})$`)
)

// Source strips Markdown formatting and splits on line boundaries.
type Source struct{}

// New creates a Markdown paragraph source.
func New() *Source {
	return &Source{}
}

// Name returns the source format.
func (s *Source) Name() string {
	return "md"
}

// Paragraphs yields each line of content once formatting is stripped.
// Fenced code blocks are dropped; inline code keeps its text.
func (s *Source) Paragraphs(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(Strip(content)) {
			if !yield(strings.TrimRight(line, "\r\n")) {
				return
			}
		}
	}
}

// Strip removes common Markdown syntax and keeps the readable text.
func Strip(content string) string {
	content = codeBlock.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "$1")
	content = images.ReplaceAllString(content, "")
	content = links.ReplaceAllString(content, "$1")
	content = rules.ReplaceAllString(content, "")
	content = headings.ReplaceAllString(content, "")
	content = blockquote.ReplaceAllString(content, "")
	content = listMarkers.ReplaceAllString(content, "")
	content = numberedList.ReplaceAllString(content, "")
	content = strongStars.ReplaceAllString(content, "$1")
	content = emStars.ReplaceAllString(content, "$1")
	content = strongUnders.ReplaceAllString(content, "$1")
	content = emUnders.ReplaceAllString(content, "$1$2")
	return trailingBreak.ReplaceAllString(content, "")
}
