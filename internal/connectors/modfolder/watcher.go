package modfolder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
	"github.com/craftdex/craftdex/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FolderWatcher = (*Watcher)(nil)

// Watcher reports archive changes in a mods folder using fsnotify.
type Watcher struct {
	scanner *Scanner
}

// NewWatcher creates a watcher that reports files the scanner accepts.
func NewWatcher(scanner *Scanner) *Watcher {
	if scanner == nil {
		scanner = NewScanner()
	}
	return &Watcher{scanner: scanner}
}

// Watch streams archive changes in dir until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan domain.ArchiveChange, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDirectoryUnreadable, dir, err)
	}
	if info, err := os.Stat(absDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryUnreadable, dir)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(absDir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("%w: watch %s: %v", domain.ErrDirectoryUnreadable, dir, err)
	}

	changes := make(chan domain.ArchiveChange, 64)

	go func() {
		defer close(changes)
		defer fw.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				change, ok := w.toChange(event)
				if !ok {
					continue
				}
				logger.Debug("Archive %s: %s", change.Type, change.Path)
				select {
				case changes <- change:
				case <-ctx.Done():
					return
				}

			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error on %s: %v", absDir, err)
			}
		}
	}()

	return changes, nil
}

// toChange maps an fsnotify event to an archive change.
// Events for non-archives and permission changes are ignored.
func (w *Watcher) toChange(event fsnotify.Event) (domain.ArchiveChange, bool) {
	if !w.scanner.Accepts(event.Name) {
		return domain.ArchiveChange{}, false
	}

	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
			return domain.ArchiveChange{}, false
		}
		if event.Has(fsnotify.Create) {
			return domain.ArchiveChange{Type: domain.ChangeCreated, Path: event.Name}, true
		}
		return domain.ArchiveChange{Type: domain.ChangeUpdated, Path: event.Name}, true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return domain.ArchiveChange{Type: domain.ChangeDeleted, Path: event.Name}, true
	default:
		return domain.ArchiveChange{}, false
	}
}
