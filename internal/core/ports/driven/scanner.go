package driven

import (
	"context"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// FolderScanner finds candidate archives in a directory.
type FolderScanner interface {
	// Scan lists the archives directly inside dir. Subdirectories are not
	// descended into. Returns domain.ErrDirectoryUnreadable if dir does
	// not exist or is not a directory.
	Scan(ctx context.Context, dir string) ([]domain.ArchiveFile, error)
}

// FolderWatcher reports archive changes in a directory.
type FolderWatcher interface {
	// Watch streams archive changes until ctx is cancelled.
	// The channel is closed when watching stops.
	Watch(ctx context.Context, dir string) (<-chan domain.ArchiveChange, error)
}
