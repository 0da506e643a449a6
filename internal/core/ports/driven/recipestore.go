package driven

import (
	"context"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// RecipeStore persists extracted recipes.
// Backed by SQLite; an in-memory implementation serves dry runs and tests.
type RecipeStore interface {
	// InsertBatch stores recipes atomically and writes the assigned IDs
	// back into the slice. Either every recipe is stored or none is.
	InsertBatch(ctx context.Context, recipes []domain.Recipe) error

	// Count returns the number of stored recipes.
	Count(ctx context.Context) (int, error)

	// List returns a page of recipes ordered by ascending ID.
	List(ctx context.Context, offset, limit int) ([]domain.Recipe, error)

	// SearchByOutput returns recipes whose result item contains query,
	// case-insensitively, ordered by ID.
	SearchByOutput(ctx context.Context, query string) ([]domain.Recipe, error)

	// SearchByIngredient returns recipes with at least one ingredient
	// containing query, case-insensitively, ordered by ID.
	SearchByIngredient(ctx context.Context, query string) ([]domain.Recipe, error)

	// Get retrieves a recipe by ID.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id int64) (*domain.Recipe, error)

	// CountByType returns the number of recipes per recipe type.
	CountByType(ctx context.Context) ([]domain.TypeCount, error)

	// DeleteArchive removes every recipe extracted from archivePath
	// and returns the number removed.
	DeleteArchive(ctx context.Context, archivePath string) (int, error)

	// Clear removes all recipes.
	Clear(ctx context.Context) error
}

// RunStore records extraction runs.
type RunStore interface {
	// SaveRun stores or updates a run.
	SaveRun(ctx context.Context, run *domain.ExtractionRun) error

	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]domain.ExtractionRun, error)
}
