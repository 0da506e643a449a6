package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/craftdex/internal/adapters/driven/storage/memory"
	"github.com/craftdex/craftdex/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"mods.dir":                   "/games/mods",
		"mods.extensions":            []any{".jar", ".zip"},
		"extraction.batch_size":      int64(250),
		"extraction.max_entry_bytes": int64(1024),
		"extraction.replace":         true,
		"log.file":                   "/tmp/craftdex.log",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "/games/mods", settings.Mods.Dir)
	assert.Equal(t, []string{".jar", ".zip"}, settings.Mods.Extensions)
	assert.Equal(t, 250, settings.Extraction.BatchSize)
	assert.Equal(t, domain.DefaultProgressEvery, settings.Extraction.ProgressEvery)
	assert.Equal(t, int64(1024), settings.Extraction.MaxEntryBytes)
	assert.True(t, settings.Extraction.Replace)
	assert.Equal(t, "/tmp/craftdex.log", settings.Log.File)
}

func TestSettingsService_Get_WrongTypesFallBack(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"extraction.batch_size": "many",
		"mods.extensions":       42,
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBatchSize, settings.Extraction.BatchSize)
	assert.Equal(t, []string{".jar"}, settings.Mods.Extensions)
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Mods.Dir = "/srv/mods"
	settings.Extraction.BatchSize = 10

	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "/srv/mods", got.Mods.Dir)
	assert.Equal(t, 10, got.Extraction.BatchSize)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	settings := domain.DefaultAppSettings()
	settings.Extraction.BatchSize = 0

	err := service.Save(&settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Save(nil), domain.ErrInvalidInput)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"mods dir", "mods.dir", "/games/mods", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "/games/mods", s.Mods.Dir)
		}},
		{"extensions", "mods.extensions", ".jar, .zip,", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, []string{".jar", ".zip"}, s.Mods.Extensions)
		}},
		{"batch size", "extraction.batch_size", "25", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 25, s.Extraction.BatchSize)
		}},
		{"progress every", "extraction.progress_every", "5", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 5, s.Extraction.ProgressEvery)
		}},
		{"max entry bytes", "extraction.max_entry_bytes", "65536", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, int64(65536), s.Extraction.MaxEntryBytes)
		}},
		{"replace", "extraction.replace", "true", func(t *testing.T, s *domain.AppSettings) {
			assert.True(t, s.Extraction.Replace)
		}},
		{"data dir", "storage.data_dir", "/var/lib/craftdex", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "/var/lib/craftdex", s.Storage.DataDir)
		}},
		{"log file", "log.file", "craftdex.log", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "craftdex.log", s.Log.File)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"not a number", "extraction.batch_size", "lots"},
		{"zero batch", "extraction.batch_size", "0"},
		{"not a bool", "extraction.replace", "sometimes"},
		{"extension without dot", "mods.extensions", "jar"},
		{"empty extensions", "mods.extensions", " , "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			_, stored := store.Get(tt.key)
			assert.False(t, stored)
		})
	}
}

type failingConfigStore struct {
	*memory.ConfigStore
}

func (f failingConfigStore) Set(string, any) error { return errors.New("disk full") }

func TestSettingsService_Set_StoreError(t *testing.T) {
	service := NewSettingsService(failingConfigStore{memory.NewConfigStore()})

	err := service.Set("mods.dir", "/x")

	assert.ErrorContains(t, err, "disk full")
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Len(t, keys, 8)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "extraction.batch_size")
}

func TestSettingsService_Validate(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.NoError(t, service.Validate())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
