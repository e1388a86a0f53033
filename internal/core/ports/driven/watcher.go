package driven

import (
	"context"

	"github.com/custodia-labs/textpipe/internal/core/domain"
)

// CorpusWatcher reports changes to the documents of a corpus as they happen.
type CorpusWatcher interface {
	// Watch starts watching and returns a channel of changes.
	// The channel is closed when ctx is cancelled or the watcher is closed.
	Watch(ctx context.Context) (<-chan domain.DocChange, error)

	// Close releases resources.
	Close() error
}
