// Package markup implements the driven.MarkupParser port with goquery.
package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.MarkupParser = (*Parser)(nil)

// Parser parses HTML documents with goquery.
type Parser struct{}

// New creates a goquery-backed parser.
func New() *Parser {
	return &Parser{}
}

// Parse builds a document tree from markup.
func (p *Parser) Parse(markup string) (driven.MarkupDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &document{doc: doc}, nil
}

type document struct {
	doc *goquery.Document
}

// FindAll selects elements by tag name. goquery returns a union selector's
// matches in document order.
func (d *document) FindAll(tags []string) []driven.MarkupElement {
	if len(tags) == 0 {
		return nil
	}
	sel := d.doc.Find(strings.Join(tags, ", "))
	elements := make([]driven.MarkupElement, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, element{sel: s})
	})
	return elements
}

type element struct {
	sel *goquery.Selection
}

func (e element) Text() string {
	return e.sel.Text()
}
