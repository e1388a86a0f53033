package driven

// MarkupParser parses HTML-like markup.
type MarkupParser interface {
	Parse(markup string) (MarkupDocument, error)
}

// MarkupDocument is a parsed markup tree.
type MarkupDocument interface {
	// FindAll returns every element whose tag is in tags, in document order.
	// Nested matches are all returned.
	FindAll(tags []string) []MarkupElement
}

// MarkupElement is a single element of a MarkupDocument.
type MarkupElement interface {
	// Text returns the concatenated text content of the element.
	Text() string
}
