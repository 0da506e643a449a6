// Package jar reads mod archives. Jar files are zip archives; only the
// central directory is read when listing, and an entry is decompressed
// only when it is requested.
package jar

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.ArchiveReader = (*Reader)(nil)

// Reader opens jar and zip archives from the local filesystem.
type Reader struct {
	maxEntryBytes int64
}

// New creates a reader. Entries larger than maxEntryBytes are refused;
// zero or less means domain.DefaultMaxEntryBytes.
func New(maxEntryBytes int64) *Reader {
	if maxEntryBytes <= 0 {
		maxEntryBytes = domain.DefaultMaxEntryBytes
	}
	return &Reader{maxEntryBytes: maxEntryBytes}
}

// Open opens an archive for repeated reads.
func (r *Reader) Open(archivePath string) (driven.Archive, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrArchiveUnreadable, archivePath, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		// First occurrence wins for duplicated names.
		if _, ok := files[f.Name]; !ok {
			files[f.Name] = f
		}
	}

	return &archive{
		path:          archivePath,
		zr:            zr,
		files:         files,
		maxEntryBytes: r.maxEntryBytes,
	}, nil
}

// ListEntries returns the entries accepted by filter.
func (r *Reader) ListEntries(
	ctx context.Context,
	archivePath string,
	filter domain.EntryFilter,
) ([]domain.ArchiveEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a, err := r.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	return a.Entries(filter), nil
}

// ReadEntry decompresses one entry.
func (r *Reader) ReadEntry(ctx context.Context, archivePath, entryPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a, err := r.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	return a.Read(entryPath)
}

// archive is an open zip file.
type archive struct {
	path          string
	zr            *zip.ReadCloser
	files         map[string]*zip.File
	maxEntryBytes int64
}

// Entries returns the entries accepted by filter in directory order.
func (a *archive) Entries(filter domain.EntryFilter) []domain.ArchiveEntry {
	if filter == nil {
		filter = domain.AllEntries
	}

	entries := make([]domain.ArchiveEntry, 0)
	for _, f := range a.zr.File {
		if !filter(f.Name) {
			continue
		}
		entries = append(entries, domain.ArchiveEntry{
			Name:  f.Name,
			IsDir: isDir(f),
		})
	}
	return entries
}

// Read decompresses one entry, refusing entries above the size limit.
func (a *archive) Read(entryPath string) ([]byte, error) {
	f, ok := a.files[entryPath]
	if !ok || isDir(f) {
		return nil, fmt.Errorf("%w: %s in %s", domain.ErrEntryNotFound, entryPath, a.path)
	}

	// The header size can lie, so the read is limited as well.
	if f.UncompressedSize64 > uint64(a.maxEntryBytes) {
		return nil, fmt.Errorf("%w: %s is %d bytes", domain.ErrEntryTooLarge, entryPath, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: open %s: %v", domain.ErrArchiveUnreadable, a.path, entryPath, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, a.maxEntryBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read %s: %v", domain.ErrArchiveUnreadable, a.path, entryPath, err)
	}
	if int64(len(data)) > a.maxEntryBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrEntryTooLarge, entryPath, a.maxEntryBytes)
	}
	return data, nil
}

// Close releases the archive file.
func (a *archive) Close() error {
	return a.zr.Close()
}

func isDir(f *zip.File) bool {
	return strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir()
}
