package driven

import "iter"

// ParagraphSource decomposes the raw content of one document into
// candidate paragraphs. Readers apply cleaning and drop empty results.
type ParagraphSource interface {
	// Name identifies the source format, e.g. "txt" or "html".
	Name() string

	// Paragraphs yields the raw paragraphs of content in document order.
	Paragraphs(content string) iter.Seq[string]
}
