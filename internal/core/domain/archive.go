package domain

import (
	"path/filepath"
	"strings"
)

// ArchiveFile is a candidate mod archive found by a folder scan.
type ArchiveFile struct {
	// Name is the file name, used as the mod's display name.
	Name string `json:"name"`

	// Path is the absolute filesystem path.
	Path string `json:"path"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`
}

// ArchiveEntry is one named file or directory inside an archive.
type ArchiveEntry struct {
	// Name is the slash-separated path inside the archive.
	Name string `json:"name"`

	// IsDir reports whether the entry is a directory.
	IsDir bool `json:"is_dir"`
}

// RawRecipeEntry is the undecoded content of one recipe entry.
// It only exists between reading an archive and parsing the recipe.
type RawRecipeEntry struct {
	// Archive is the display name of the owning archive.
	Archive string

	// ArchivePath is the filesystem path of the owning archive.
	ArchivePath string

	// Path is the entry path inside the archive.
	Path string

	// Content is the raw JSON document.
	Content []byte
}

// EntryFilter selects archive entries by their path.
type EntryFilter func(name string) bool

// AllEntries accepts every entry.
func AllEntries(string) bool { return true }

// IsRecipeEntry reports whether an archive path names a recipe definition.
// A path qualifies when it contains a "data" segment, followed by a
// namespace segment, followed by "recipe" or "recipes", and ends in a
// ".json" file below that directory. Matching is case-sensitive.
func IsRecipeEntry(name string) bool {
	if !strings.HasSuffix(name, ".json") {
		return false
	}
	parts := strings.Split(name, "/")
	// The recipes segment needs at least the file segment after it.
	for i := 0; i+3 < len(parts); i++ {
		if parts[i] != "data" || parts[i+1] == "" {
			continue
		}
		if parts[i+2] == "recipe" || parts[i+2] == "recipes" {
			return true
		}
	}
	return false
}

// ArchiveDisplayName derives the mod name shown for an archive path.
func ArchiveDisplayName(archivePath string) string {
	name := filepath.Base(archivePath)
	if name == "." || name == string(filepath.Separator) {
		return archivePath
	}
	return name
}

// ChangeType represents the type of archive change in a watched folder.
type ChangeType int

const (
	// ChangeCreated indicates a new archive.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified archive.
	ChangeUpdated

	// ChangeDeleted indicates a removed or renamed-away archive.
	ChangeDeleted
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// ArchiveChange is a change event emitted by a folder watcher.
type ArchiveChange struct {
	Type ChangeType
	Path string
}
