package driven

import (
	"context"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// ArchiveReader opens mod archives and yields their entries.
// Listing only reads the archive's central directory; an entry is
// decompressed only when it is read.
type ArchiveReader interface {
	// ListEntries returns the entries of the archive accepted by filter,
	// in central directory order.
	// Returns domain.ErrArchiveUnreadable if the file is not a valid archive.
	ListEntries(ctx context.Context, archivePath string, filter domain.EntryFilter) ([]domain.ArchiveEntry, error)

	// ReadEntry decompresses and returns one entry.
	// Returns domain.ErrEntryNotFound if the entry is absent.
	ReadEntry(ctx context.Context, archivePath, entryPath string) ([]byte, error)

	// Open keeps an archive open for repeated reads.
	// The caller must Close the returned archive.
	Open(archivePath string) (Archive, error)
}

// Archive is an open archive handle.
type Archive interface {
	// Entries returns the entries accepted by filter.
	Entries(filter domain.EntryFilter) []domain.ArchiveEntry

	// Read decompresses and returns one entry.
	Read(entryPath string) ([]byte, error)

	// Close releases the underlying file.
	Close() error
}
