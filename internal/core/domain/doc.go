// Package domain defines the core entities for textpipe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocID: A "<category>/<name>" document identifier
//   - Selection: The ids-or-categories selector of catalog calls
//   - StatSummary: Aggregate counts and sizes over a document set
//   - DocChange: A created, updated or deleted document seen by a watcher
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
