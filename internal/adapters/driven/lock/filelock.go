package lock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

// FileName is the lock file created inside the data directory.
const FileName = "extract.lock"

// Ensure FileLock implements the interface.
var _ driven.ExtractionLock = (*FileLock)(nil)

// FileLock is an ExtractionLock backed by an advisory file lock.
type FileLock struct {
	path string
}

// NewFileLock creates a lock at dataDir/extract.lock.
func NewFileLock(dataDir string) (*FileLock, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	return &FileLock{path: filepath.Join(dataDir, FileName)}, nil
}

// Path returns the lock file path.
func (l *FileLock) Path() string {
	return l.path
}

// TryAcquire takes the lock without blocking.
func (l *FileLock) TryAcquire() (func() error, error) {
	fl := flock.New(l.path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: lock held at %s", domain.ErrExtractionInProgress, l.path)
	}
	return fl.Unlock, nil
}
