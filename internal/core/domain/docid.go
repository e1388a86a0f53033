package domain

import (
	"fmt"
	"path"
	"strings"
)

// HiddenMarker prefixes category and file names excluded from a corpus.
const HiddenMarker = "."

// DocID identifies a document by its category folder and file name.
// The canonical string form is "<category>/<name>".
type DocID struct {
	// Category is the name of the folder holding the document.
	Category string

	// Name is the file name inside the category folder.
	Name string
}

// NewDocID builds a DocID from its two segments.
func NewDocID(category, name string) DocID {
	return DocID{Category: category, Name: name}
}

// ParseDocID parses the canonical "<category>/<name>" form.
// Both segments must be non-empty and the name may not contain a separator.
func ParseDocID(s string) (DocID, error) {
	category, name, ok := strings.Cut(s, "/")
	if !ok || category == "" || name == "" || strings.Contains(name, "/") {
		return DocID{}, fmt.Errorf("%w: document id %q is not <category>/<name>", ErrInvalidArgument, s)
	}
	return DocID{Category: category, Name: name}, nil
}

// MustParseDocID is like ParseDocID but panics on malformed input.
func MustParseDocID(s string) DocID {
	id, err := ParseDocID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical form.
func (d DocID) String() string {
	return d.Category + "/" + d.Name
}

// IsZero reports whether the id is unset.
func (d DocID) IsZero() bool {
	return d.Category == "" && d.Name == ""
}

// Ext returns the lowercased file extension without its leading dot.
func (d DocID) Ext() string {
	return NormaliseExt(d.Name)
}

// Stem returns the file name without its extension.
func (d DocID) Stem() string {
	return strings.TrimSuffix(d.Name, path.Ext(d.Name))
}

// WithExt returns a sibling id in the same category with ext replacing
// the current extension. ext is given without a dot.
func (d DocID) WithExt(ext string) DocID {
	return DocID{Category: d.Category, Name: d.Stem() + "." + ext}
}

// NormaliseExt returns the lowercased extension of name without the dot.
func NormaliseExt(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

// IsHidden reports whether a category or file name is excluded from corpora.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenMarker)
}
