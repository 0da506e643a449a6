package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/craftdex/craftdex/internal/adapters/driven/storage/memory"
	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
	"github.com/craftdex/craftdex/internal/core/services"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// testRecipes is the fixture served by mockRecipeService.
func testRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:          1,
			ModName:     "tools.jar",
			SourcePath:  "data/tools/recipes/pickaxe.json",
			RecipeType:  "minecraft:crafting_shaped",
			Kind:        domain.KindShaped,
			ResultItem:  strPtr("tools:iron_pickaxe"),
			ResultCount: intPtr(1),
			Ingredients: []string{"minecraft:iron_ingot", "minecraft:iron_ingot", "minecraft:iron_ingot", "minecraft:stick", "minecraft:stick"},
			Grid: &domain.ShapedGrid{
				Rows: []string{"AAA", " B ", " B "},
				Legend: []domain.GridSymbol{
					{Symbol: "A", Ingredient: "minecraft:iron_ingot"},
					{Symbol: "B", Ingredient: "minecraft:stick"},
				},
			},
		},
		{
			ID:          2,
			ModName:     "food.jar",
			SourcePath:  "data/food/recipes/bread.json",
			RecipeType:  "minecraft:smelting",
			Kind:        domain.KindCooking,
			ResultItem:  strPtr("food:toast"),
			ResultCount: intPtr(2),
			Ingredients: []string{"#forge:bread"},
		},
	}
}

// mockRecipeService implements driving.RecipeService for testing.
type mockRecipeService struct {
	recipes  []domain.Recipe
	err      error
	cleared  bool
	lastItem string
}

func (m *mockRecipeService) Count(context.Context) (int, error) {
	return len(m.recipes), m.err
}

func (m *mockRecipeService) List(_ context.Context, offset, limit int) ([]domain.Recipe, error) {
	if m.err != nil {
		return nil, m.err
	}
	if offset >= len(m.recipes) {
		return []domain.Recipe{}, nil
	}
	end := min(len(m.recipes), offset+limit)
	return m.recipes[offset:end], nil
}

func (m *mockRecipeService) SearchByOutput(_ context.Context, item string) ([]domain.Recipe, error) {
	m.lastItem = item
	var out []domain.Recipe
	for _, r := range m.recipes {
		if strings.Contains(strings.ToLower(r.Result()), strings.ToLower(item)) {
			out = append(out, r)
		}
	}
	return out, m.err
}

func (m *mockRecipeService) SearchByIngredient(_ context.Context, item string) ([]domain.Recipe, error) {
	m.lastItem = item
	var out []domain.Recipe
	for _, r := range m.recipes {
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), strings.ToLower(item)) {
				out = append(out, r)
				break
			}
		}
	}
	return out, m.err
}

func (m *mockRecipeService) Get(_ context.Context, id int64) (*domain.Recipe, error) {
	for i := range m.recipes {
		if m.recipes[i].ID == id {
			return &m.recipes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRecipeService) Stats(context.Context) ([]domain.TypeCount, error) {
	counts := map[string]int64{}
	var order []string
	for _, r := range m.recipes {
		if counts[r.RecipeType] == 0 {
			order = append(order, r.RecipeType)
		}
		counts[r.RecipeType]++
	}
	stats := make([]domain.TypeCount, 0, len(order))
	for _, t := range order {
		stats = append(stats, domain.TypeCount{RecipeType: t, Count: counts[t]})
	}
	return stats, m.err
}

func (m *mockRecipeService) Clear(context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = true
	m.recipes = nil
	return nil
}

// mockArchiveService implements driving.ArchiveService for testing.
type mockArchiveService struct {
	lastDir string
}

func (m *mockArchiveService) ScanFolder(_ context.Context, dir string) ([]domain.ArchiveFile, error) {
	m.lastDir = dir
	if dir == "/empty" {
		return []domain.ArchiveFile{}, nil
	}
	return []domain.ArchiveFile{
		{Name: "food.jar", Path: dir + "/food.jar", Size: 2048},
		{Name: "tools.jar", Path: dir + "/tools.jar", Size: 1536000},
	}, nil
}

func (m *mockArchiveService) Contents(_ context.Context, archivePath string) ([]domain.ArchiveEntry, error) {
	if archivePath == "/missing.jar" {
		return nil, errors.New("open /missing.jar: no such file or directory")
	}
	return []domain.ArchiveEntry{
		{Name: "data/tools/recipes/pickaxe.json"},
		{Name: "data/tools/recipes/shovel.json"},
	}, nil
}

func (m *mockArchiveService) ReadEntry(_ context.Context, _, entryPath string) ([]byte, error) {
	if entryPath != "data/tools/recipes/pickaxe.json" {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, entryPath)
	}
	return []byte(`{"type":"minecraft:crafting_shaped"}`), nil
}

// mockExtractionService implements driving.ExtractionService for testing.
type mockExtractionService struct {
	result     *domain.ExtractionResult
	err        error
	events     []domain.ExtractionProgress
	runs       []domain.ExtractionRun
	lastFolder string
	lastPaths  []string
	lastOpts   domain.ExtractionOptions
	lastLimit  int
}

func (m *mockExtractionService) ExtractAll(
	ctx context.Context, paths []string, opts domain.ExtractionOptions, progress chan<- domain.ExtractionProgress,
) (*domain.ExtractionResult, error) {
	m.lastPaths = paths
	return m.run(ctx, opts, progress)
}

func (m *mockExtractionService) ExtractFolder(
	ctx context.Context, dir string, opts domain.ExtractionOptions, progress chan<- domain.ExtractionProgress,
) (*domain.ExtractionResult, error) {
	m.lastFolder = dir
	return m.run(ctx, opts, progress)
}

func (m *mockExtractionService) run(
	_ context.Context, opts domain.ExtractionOptions, progress chan<- domain.ExtractionProgress,
) (*domain.ExtractionResult, error) {
	m.lastOpts = opts
	for _, e := range m.events {
		if progress != nil {
			progress <- e
		}
	}
	result := m.result
	if result == nil {
		result = &domain.ExtractionResult{RunID: "run-1", ArchivesProcessed: 2, RecipesExtracted: 7}
	}
	return result, m.err
}

func (m *mockExtractionService) Status() driving.ExtractionStatus {
	return driving.ExtractionStatus{}
}

func (m *mockExtractionService) History(_ context.Context, limit int) ([]domain.ExtractionRun, error) {
	m.lastLimit = limit
	return m.runs, nil
}

// mockWatchService implements driving.WatchService for testing.
type mockWatchService struct {
	results  []*domain.ExtractionResult
	lastDir  string
	debounce time.Duration
}

func (m *mockWatchService) Watch(
	_ context.Context, dir string, debounce time.Duration, onResult func(*domain.ExtractionResult),
) error {
	m.lastDir = dir
	m.debounce = debounce
	for _, r := range m.results {
		onResult(r)
	}
	return nil
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	recipes    *mockRecipeService
	archives   *mockArchiveService
	extraction *mockExtractionService
	watch      *mockWatchService
	settings   *services.SettingsService
}

// setupTestServices installs mock services and returns them with a cleanup func.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		recipes:    &mockRecipeService{recipes: testRecipes()},
		archives:   &mockArchiveService{},
		extraction: &mockExtractionService{},
		watch:      &mockWatchService{},
		settings:   services.NewSettingsService(memory.NewConfigStore()),
	}
	SetServices(Services{
		Archives:   ts.archives,
		Extraction: ts.extraction,
		Recipes:    ts.recipes,
		Settings:   ts.settings,
		Watch:      ts.watch,
		ConfigPath: "/home/user/.craftdex/config.toml",
	})
	return ts, func() {
		SetServices(Services{})
	}
}

// resetFlags restores every flag in the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}
