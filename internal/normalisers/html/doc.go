// Package html provides a ParagraphSource for HTML documents.
// Headings, paragraphs, list items and definition terms are extracted in
// document order; each element's text is one candidate paragraph.
package html
