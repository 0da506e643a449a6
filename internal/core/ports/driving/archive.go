package driving

import (
	"context"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// ArchiveService inspects mods folders and archives.
type ArchiveService interface {
	// ScanFolder lists candidate archives directly inside dir.
	ScanFolder(ctx context.Context, dir string) ([]domain.ArchiveFile, error)

	// Contents lists the recipe entries of one archive.
	Contents(ctx context.Context, archivePath string) ([]domain.ArchiveEntry, error)

	// ReadEntry returns the raw bytes of one archive entry.
	ReadEntry(ctx context.Context, archivePath, entryPath string) ([]byte, error)
}
