package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// Ensure ArchiveService implements the interface.
var _ driving.ArchiveService = (*ArchiveService)(nil)

// ArchiveService exposes folder scanning and archive inspection.
type ArchiveService struct {
	scanner driven.FolderScanner
	reader  driven.ArchiveReader
}

// NewArchiveService creates a new archive service.
func NewArchiveService(scanner driven.FolderScanner, reader driven.ArchiveReader) *ArchiveService {
	return &ArchiveService{
		scanner: scanner,
		reader:  reader,
	}
}

// ScanFolder lists candidate archives directly inside dir.
func (s *ArchiveService) ScanFolder(ctx context.Context, dir string) ([]domain.ArchiveFile, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: folder path is required", domain.ErrInvalidInput)
	}
	return s.scanner.Scan(ctx, dir)
}

// Contents lists the recipe entries of one archive.
func (s *ArchiveService) Contents(ctx context.Context, archivePath string) ([]domain.ArchiveEntry, error) {
	if strings.TrimSpace(archivePath) == "" {
		return nil, fmt.Errorf("%w: archive path is required", domain.ErrInvalidInput)
	}
	return s.reader.ListEntries(ctx, archivePath, domain.IsRecipeEntry)
}

// ReadEntry returns the raw bytes of one archive entry.
func (s *ArchiveService) ReadEntry(ctx context.Context, archivePath, entryPath string) ([]byte, error) {
	if archivePath == "" || entryPath == "" {
		return nil, fmt.Errorf("%w: archive and entry paths are required", domain.ErrInvalidInput)
	}
	return s.reader.ReadEntry(ctx, archivePath, entryPath)
}
