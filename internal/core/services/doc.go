// Package services implements the driving port interfaces.
// FileCatalog enumerates a folder-per-category corpus, TextReader layers
// paragraph, sentence and word extraction on top of it, and Transformer
// runs named steps over its documents.
package services
