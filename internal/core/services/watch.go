package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
	"github.com/craftdex/craftdex/internal/logger"
)

// DefaultDebounce is used when Watch is given a non-positive interval.
const DefaultDebounce = 750 * time.Millisecond

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService re-extracts archives of a mods folder as they change.
type WatchService struct {
	watcher    driven.FolderWatcher
	extraction driving.ExtractionService
	store      driven.RecipeStore
}

// NewWatchService creates a new watch service.
func NewWatchService(
	watcher driven.FolderWatcher,
	extraction driving.ExtractionService,
	store driven.RecipeStore,
) *WatchService {
	return &WatchService{
		watcher:    watcher,
		extraction: extraction,
		store:      store,
	}
}

// Watch blocks until ctx is cancelled or the watcher stops.
func (s *WatchService) Watch(
	ctx context.Context,
	dir string,
	debounce time.Duration,
	onResult func(*domain.ExtractionResult),
) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	changes, err := s.watcher.Watch(ctx, dir)
	if err != nil {
		return err
	}
	logger.Info("watch: watching %s", dir)

	pending := make(map[string]domain.ChangeType)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case change, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("watch: %s %s", change.Type, change.Path)
			pending[change.Path] = change.Type
			timer.Reset(debounce)

		case <-timer.C:
			if s.apply(ctx, pending, onResult) {
				pending = make(map[string]domain.ChangeType)
			} else {
				timer.Reset(debounce)
			}
		}
	}
}

// apply handles one debounced set of changes. It returns false when the
// changes should be retried later.
func (s *WatchService) apply(
	ctx context.Context,
	pending map[string]domain.ChangeType,
	onResult func(*domain.ExtractionResult),
) bool {
	paths := make([]string, 0, len(pending))
	for path := range pending {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	changed := make([]string, 0, len(paths))
	for _, path := range paths {
		if pending[path] != domain.ChangeDeleted {
			changed = append(changed, path)
			continue
		}
		removed, err := s.store.DeleteArchive(ctx, path)
		if err != nil {
			logger.Error("watch: remove recipes of %s: %v", path, err)
			continue
		}
		logger.Info("watch: removed %d recipes of %s", removed, domain.ArchiveDisplayName(path))
	}

	if len(changed) == 0 {
		return true
	}

	result, err := s.extraction.ExtractAll(ctx, changed, domain.ExtractionOptions{ReplaceArchives: true}, nil)
	if errors.Is(err, domain.ErrExtractionInProgress) {
		logger.Warn("watch: extraction busy, retrying %d archives", len(changed))
		for _, path := range paths {
			if pending[path] == domain.ChangeDeleted {
				delete(pending, path)
			}
		}
		return false
	}
	if err != nil && !IsCancelled(err) {
		logger.Error("watch: extract: %v", err)
	}
	if result != nil && onResult != nil {
		onResult(result)
	}
	return true
}
