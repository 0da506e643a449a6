// Package modfolder finds mod archives in a mods folder and watches the
// folder for changes. Mods folders are flat, so neither the scan nor the
// watch descends into subdirectories.
package modfolder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
	"github.com/craftdex/craftdex/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driven.FolderScanner = (*Scanner)(nil)

// Scanner lists archive files in a directory.
type Scanner struct {
	extensions []string
}

// NewScanner creates a scanner accepting the given extensions, e.g. ".jar".
// With no extensions, ".jar" is used.
func NewScanner(extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = domain.DefaultAppSettings().Mods.Extensions
	}
	return &Scanner{extensions: extensions}
}

// Scan lists archives directly inside dir, sorted case-insensitively by name.
// Hidden files and files that cannot be stat'ed are skipped.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]domain.ArchiveFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDirectoryUnreadable, dir, err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDirectoryUnreadable, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrDirectoryUnreadable, dir)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDirectoryUnreadable, dir, err)
	}

	archives := make([]domain.ArchiveFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || isHidden(name) || !s.accepts(name) {
			continue
		}

		path := filepath.Join(absDir, name)
		// Stat follows symlinks so linked archives are included.
		fi, err := os.Stat(path)
		if err != nil {
			logger.Debug("Skipping %s: %v", path, err)
			continue
		}
		if !fi.Mode().IsRegular() {
			continue
		}

		archives = append(archives, domain.ArchiveFile{
			Name: name,
			Path: path,
			Size: fi.Size(),
		})
	}

	fold := cases.Fold()
	sort.SliceStable(archives, func(i, j int) bool {
		a, b := fold.String(archives[i].Name), fold.String(archives[j].Name)
		if a != b {
			return a < b
		}
		return archives[i].Name < archives[j].Name
	})

	logger.Debug("Found %d archives in %s", len(archives), absDir)
	return archives, nil
}

// Accepts reports whether a file name has an archive extension.
func (s *Scanner) Accepts(name string) bool {
	return !isHidden(filepath.Base(name)) && s.accepts(name)
}

func (s *Scanner) accepts(name string) bool {
	ext := filepath.Ext(name)
	for _, want := range s.extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
