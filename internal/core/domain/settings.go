package domain

import (
	"fmt"
	"strings"
)

// Default settings values.
const (
	DefaultBatchSize     = 100
	DefaultProgressEvery = 50
	DefaultMaxEntryBytes = 4 << 20
)

// ModsSettings controls where archives are found.
type ModsSettings struct {
	// Dir is the default mods folder used when no path is given.
	Dir string

	// Extensions lists the file extensions treated as archives.
	Extensions []string
}

// ExtractionSettings controls the extraction pipeline.
type ExtractionSettings struct {
	// BatchSize is the number of recipes committed per store transaction.
	BatchSize int

	// ProgressEvery emits a progress event every N parsed recipes.
	ProgressEvery int

	// MaxEntryBytes caps the decompressed size of a single entry.
	MaxEntryBytes int64

	// Replace clears the store before each extraction by default.
	Replace bool
}

// StorageSettings controls where data is persisted.
type StorageSettings struct {
	// DataDir holds the recipe database and lock file.
	DataDir string
}

// LogSettings controls the optional log file.
type LogSettings struct {
	// File receives a copy of log output when set.
	File string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Mods       ModsSettings
	Extraction ExtractionSettings
	Storage    StorageSettings
	Log        LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Storage.DataDir is left empty; the composition root resolves it
// relative to the config directory.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Mods: ModsSettings{
			Extensions: []string{".jar"},
		},
		Extraction: ExtractionSettings{
			BatchSize:     DefaultBatchSize,
			ProgressEvery: DefaultProgressEvery,
			MaxEntryBytes: DefaultMaxEntryBytes,
		},
	}
}

// Validate checks that the settings are usable.
func (s AppSettings) Validate() error {
	if s.Extraction.BatchSize <= 0 {
		return fmt.Errorf("%w: extraction.batch_size must be positive", ErrInvalidInput)
	}
	if s.Extraction.ProgressEvery <= 0 {
		return fmt.Errorf("%w: extraction.progress_every must be positive", ErrInvalidInput)
	}
	if s.Extraction.MaxEntryBytes <= 0 {
		return fmt.Errorf("%w: extraction.max_entry_bytes must be positive", ErrInvalidInput)
	}
	if len(s.Mods.Extensions) == 0 {
		return fmt.Errorf("%w: mods.extensions must not be empty", ErrInvalidInput)
	}
	for _, ext := range s.Mods.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidInput, ext)
		}
	}
	return nil
}
