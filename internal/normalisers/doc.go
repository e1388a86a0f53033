// Package normalisers holds the text-handling building blocks used by the
// corpus readers. Each subpackage covers one concern:
//
//   - cleaner: Paragraph, sentence and word normalisation
//   - plaintext: Line-based paragraph source for .txt documents
//   - html: Markup-based paragraph source for HTML documents
//   - markdown: Formatting-stripping paragraph source for Markdown documents
package normalisers
