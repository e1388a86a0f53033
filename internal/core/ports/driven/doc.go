// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Tokenizer: Splits text into sentences and words for a language
//   - ParagraphSource: Decomposes raw document content into paragraphs
//   - MarkupParser: Parses HTML and selects elements by tag name
//   - TableWriter: Exports rows to a tabular file
//   - ConfigStore: Application configuration
//   - StopWordStore: Named stop-word lists
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Stemmer: Reduces words to their stems. Without it, words pass through.
//   - CorpusWatcher: Pushes document changes. Only used by watch mode.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
