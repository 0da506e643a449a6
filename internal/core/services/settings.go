package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyModsDir        = "mods.dir"
	keyModsExtensions = "mods.extensions"
	keyBatchSize      = "extraction.batch_size"
	keyProgressEvery  = "extraction.progress_every"
	keyMaxEntryBytes  = "extraction.max_entry_bytes"
	keyReplace        = "extraction.replace"
	keyDataDir        = "storage.data_dir"
	keyLogFile        = "log.file"
)

// settingApplier parses a string value into settings.
type settingApplier func(s *domain.AppSettings, value string) error

var settingAppliers = map[string]settingApplier{
	keyModsDir: func(s *domain.AppSettings, v string) error {
		s.Mods.Dir = v
		return nil
	},
	keyModsExtensions: func(s *domain.AppSettings, v string) error {
		s.Mods.Extensions = splitList(v)
		return nil
	},
	keyBatchSize: func(s *domain.AppSettings, v string) error {
		n, err := strconv.Atoi(v)
		s.Extraction.BatchSize = n
		return err
	},
	keyProgressEvery: func(s *domain.AppSettings, v string) error {
		n, err := strconv.Atoi(v)
		s.Extraction.ProgressEvery = n
		return err
	},
	keyMaxEntryBytes: func(s *domain.AppSettings, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		s.Extraction.MaxEntryBytes = n
		return err
	},
	keyReplace: func(s *domain.AppSettings, v string) error {
		b, err := strconv.ParseBool(v)
		s.Extraction.Replace = b
		return err
	},
	keyDataDir: func(s *domain.AppSettings, v string) error {
		s.Storage.DataDir = v
		return nil
	},
	keyLogFile: func(s *domain.AppSettings, v string) error {
		s.Log.File = v
		return nil
	},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, falling back to defaults
// for anything unset or of the wrong type.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	extensions := s.configStore.GetStringSlice(keyModsExtensions)
	if len(extensions) == 0 {
		extensions = defaults.Mods.Extensions
	}

	maxEntry := s.configStore.GetInt64(keyMaxEntryBytes)
	if maxEntry <= 0 {
		maxEntry = defaults.Extraction.MaxEntryBytes
	}

	return &domain.AppSettings{
		Mods: domain.ModsSettings{
			Dir:        s.configStore.GetString(keyModsDir),
			Extensions: extensions,
		},
		Extraction: domain.ExtractionSettings{
			BatchSize:     s.getInt(keyBatchSize, defaults.Extraction.BatchSize),
			ProgressEvery: s.getInt(keyProgressEvery, defaults.Extraction.ProgressEvery),
			MaxEntryBytes: maxEntry,
			Replace:       s.getBool(keyReplace, defaults.Extraction.Replace),
		},
		Storage: domain.StorageSettings{
			DataDir: s.getString(keyDataDir, defaults.Storage.DataDir),
		},
		Log: domain.LogSettings{
			File: s.configStore.GetString(keyLogFile),
		},
	}, nil
}

// Save persists application settings after validating them.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyModsDir, settings.Mods.Dir},
		{keyModsExtensions, settings.Mods.Extensions},
		{keyBatchSize, settings.Extraction.BatchSize},
		{keyProgressEvery, settings.Extraction.ProgressEvery},
		{keyMaxEntryBytes, settings.Extraction.MaxEntryBytes},
		{keyReplace, settings.Extraction.Replace},
		{keyDataDir, settings.Storage.DataDir},
		{keyLogFile, settings.Log.File},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates one setting from its string form. The resulting settings
// must validate before anything is written.
func (s *SettingsService) Set(key, value string) error {
	apply, ok := settingAppliers[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q (valid: %s)",
			domain.ErrInvalidInput, key, strings.Join(s.Keys(), ", "))
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	if err := apply(settings, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	var stored any = strings.TrimSpace(value)
	switch key {
	case keyModsExtensions:
		stored = settings.Mods.Extensions
	case keyBatchSize:
		stored = settings.Extraction.BatchSize
	case keyProgressEvery:
		stored = settings.Extraction.ProgressEvery
	case keyMaxEntryBytes:
		stored = settings.Extraction.MaxEntryBytes
	case keyReplace:
		stored = settings.Extraction.Replace
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the settable keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingAppliers))
	for k := range settingAppliers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// splitList splits a comma separated value, dropping empty items.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
