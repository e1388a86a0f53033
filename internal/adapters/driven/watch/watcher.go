// Package watch reports changes to a folder-per-category corpus using
// filesystem notifications.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.CorpusWatcher = (*Watcher)(nil)

// Watcher watches the corpus root and every visible category folder.
// Categories created while watching are picked up automatically.
type Watcher struct {
	root string

	mu  sync.Mutex
	fsw *fsnotify.Watcher
}

// New creates a watcher for the corpus at root.
func New(root string) *Watcher {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Watcher{root: root}
}

// Watch starts watching and returns a channel of document changes.
func (w *Watcher) Watch(ctx context.Context) (<-chan domain.DocChange, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", w.root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(w.root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", w.root, err)
	}

	entries, err := os.ReadDir(w.root)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("reading %s: %w", w.root, err)
	}
	for _, entry := range entries {
		if entry.IsDir() && !domain.IsHidden(entry.Name()) {
			w.addCategory(fsw, filepath.Join(w.root, entry.Name()))
		}
	}

	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	changes := make(chan domain.DocChange)
	go w.run(ctx, fsw, changes)
	return changes, nil
}

// Close stops the watcher. The change channel is closed shortly after.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, changes chan<- domain.DocChange) {
	defer close(changes)
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			change, ok := w.handleEvent(fsw, event)
			if !ok {
				continue
			}
			select {
			case changes <- change:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", w.root, err)
		}
	}
}

// handleEvent maps a filesystem event to a document change. Events on
// hidden names, nested folders and permission changes are ignored. A new
// category folder is added to fsw when it is non-nil.
func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) (domain.DocChange, bool) {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return domain.DocChange{}, false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, part := range parts {
		if part == ".." || domain.IsHidden(part) {
			return domain.DocChange{}, false
		}
	}

	switch len(parts) {
	case 1:
		if fsw != nil && event.Has(fsnotify.Create) && isDir(event.Name) {
			w.addCategory(fsw, event.Name)
		}
		return domain.DocChange{}, false
	case 2:
	default:
		return domain.DocChange{}, false
	}

	id := domain.NewDocID(parts[0], parts[1])
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return domain.DocChange{Type: domain.ChangeDeleted, ID: id}, true
	case event.Has(fsnotify.Create) && isRegular(event.Name):
		return domain.DocChange{Type: domain.ChangeCreated, ID: id}, true
	case event.Has(fsnotify.Write) && isRegular(event.Name):
		return domain.DocChange{Type: domain.ChangeUpdated, ID: id}, true
	}
	return domain.DocChange{}, false
}

func (w *Watcher) addCategory(fsw *fsnotify.Watcher, dir string) {
	if err := fsw.Add(dir); err != nil {
		logger.Warn("watch %s: %v", dir, err)
		return
	}
	logger.Debug("watching %s", dir)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
