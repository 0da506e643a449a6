package mcp

import (
	"context"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// mockRecipeService is a mock implementation of driving.RecipeService.
type mockRecipeService struct {
	recipes []domain.Recipe
	recipe  *domain.Recipe
	stats   []domain.TypeCount
	count   int
	err     error

	lastOffset int
	lastLimit  int
	lastItem   string
}

func (m *mockRecipeService) Count(_ context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockRecipeService) List(_ context.Context, offset, limit int) ([]domain.Recipe, error) {
	m.lastOffset, m.lastLimit = offset, limit
	return m.recipes, m.err
}

func (m *mockRecipeService) SearchByOutput(_ context.Context, item string) ([]domain.Recipe, error) {
	m.lastItem = item
	return m.recipes, m.err
}

func (m *mockRecipeService) SearchByIngredient(_ context.Context, item string) ([]domain.Recipe, error) {
	m.lastItem = item
	return m.recipes, m.err
}

func (m *mockRecipeService) Get(_ context.Context, _ int64) (*domain.Recipe, error) {
	return m.recipe, m.err
}

func (m *mockRecipeService) Stats(_ context.Context) ([]domain.TypeCount, error) {
	return m.stats, m.err
}

func (m *mockRecipeService) Clear(_ context.Context) error {
	return m.err
}

// mockArchiveService is a mock implementation of driving.ArchiveService.
type mockArchiveService struct {
	archives []domain.ArchiveFile
	entries  []domain.ArchiveEntry
	content  []byte
	err      error
}

func (m *mockArchiveService) ScanFolder(_ context.Context, _ string) ([]domain.ArchiveFile, error) {
	return m.archives, m.err
}

func (m *mockArchiveService) Contents(_ context.Context, _ string) ([]domain.ArchiveEntry, error) {
	return m.entries, m.err
}

func (m *mockArchiveService) ReadEntry(_ context.Context, _, _ string) ([]byte, error) {
	return m.content, m.err
}

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	result *domain.ExtractionResult
	status driving.ExtractionStatus
	runs   []domain.ExtractionRun
	err    error

	lastPaths  []string
	lastFolder string
	lastOpts   domain.ExtractionOptions
}

func (m *mockExtractionService) ExtractAll(
	_ context.Context,
	paths []string,
	opts domain.ExtractionOptions,
	_ chan<- domain.ExtractionProgress,
) (*domain.ExtractionResult, error) {
	m.lastPaths, m.lastOpts = paths, opts
	return m.result, m.err
}

func (m *mockExtractionService) ExtractFolder(
	_ context.Context,
	dir string,
	opts domain.ExtractionOptions,
	_ chan<- domain.ExtractionProgress,
) (*domain.ExtractionResult, error) {
	m.lastFolder, m.lastOpts = dir, opts
	return m.result, m.err
}

func (m *mockExtractionService) Status() driving.ExtractionStatus {
	return m.status
}

func (m *mockExtractionService) History(_ context.Context, _ int) ([]domain.ExtractionRun, error) {
	return m.runs, m.err
}

func strPtr(s string) *string { return &s }
