package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/craftdex/craftdex/internal/adapters/driven/config/file"
	"github.com/craftdex/craftdex/internal/adapters/driven/lock"
	"github.com/craftdex/craftdex/internal/adapters/driven/storage/memory"
	"github.com/craftdex/craftdex/internal/adapters/driven/storage/sqlite"
	"github.com/craftdex/craftdex/internal/adapters/driving/cli"
	"github.com/craftdex/craftdex/internal/connectors/jar"
	"github.com/craftdex/craftdex/internal/connectors/modfolder"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
	"github.com/craftdex/craftdex/internal/core/services"
	"github.com/craftdex/craftdex/internal/logger"
	"github.com/craftdex/craftdex/internal/normalisers/recipe"
)

// dataSubdir holds the database when storage.data_dir is unset.
const dataSubdir = "data"

// bootstrap wires the adapters and services for one command invocation.
func bootstrap(_ context.Context, opts cli.Options) (cli.Services, func(), error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return cli.Services{}, nil, fmt.Errorf("resolve config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("load settings: %w", err)
	}

	closeLog, err := logger.Configure(logger.Options{Verbose: opts.Verbose, File: settings.Log.File})
	if err != nil {
		logger.Warn("log file unavailable: %v", err)
	}

	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(configDir, dataSubdir)
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		_ = closeLog()
		return cli.Services{}, nil, fmt.Errorf("open recipe database: %w", err)
	}
	extractLock, err := lock.NewFileLock(dataDir)
	if err != nil {
		_ = store.Close()
		_ = closeLog()
		return cli.Services{}, nil, err
	}
	logger.Debug("using database %s", store.Path())

	reader := jar.New(settings.Extraction.MaxEntryBytes)
	scanner := modfolder.NewScanner(settings.Mods.Extensions...)
	parser := recipe.New()

	extraction := services.NewExtractionService(
		scanner, reader, parser,
		store.RecipeStore(), store.RunStore(), extractLock,
		services.ExtractionConfig{
			BatchSize:     settings.Extraction.BatchSize,
			ProgressEvery: settings.Extraction.ProgressEvery,
			DryRunStore:   func() driven.RecipeStore { return memory.NewRecipeStore() },
		},
	)

	svc := cli.Services{
		Archives:   services.NewArchiveService(scanner, reader),
		Extraction: extraction,
		Recipes:    services.NewRecipeService(store.RecipeStore(), parser),
		Settings:   settingsService,
		Watch:      services.NewWatchService(modfolder.NewWatcher(scanner), extraction, store.RecipeStore()),
		ConfigPath: configStore.Path(),
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("close database: %v", err)
		}
		if err := closeLog(); err != nil {
			logger.Warn("close log file: %v", err)
		}
	}
	return svc, cleanup, nil
}
