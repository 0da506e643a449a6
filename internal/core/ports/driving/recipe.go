package driving

import (
	"context"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// RecipeService answers read-only queries over stored recipes.
type RecipeService interface {
	// Count returns the number of stored recipes.
	Count(ctx context.Context) (int, error)

	// List returns a page of recipes ordered by ascending ID.
	List(ctx context.Context, offset, limit int) ([]domain.Recipe, error)

	// SearchByOutput finds recipes whose result contains item.
	SearchByOutput(ctx context.Context, item string) ([]domain.Recipe, error)

	// SearchByIngredient finds recipes using an ingredient containing item.
	SearchByIngredient(ctx context.Context, item string) ([]domain.Recipe, error)

	// Get retrieves one recipe, with its shaped grid when it has one.
	Get(ctx context.Context, id int64) (*domain.Recipe, error)

	// Stats returns recipe counts per recipe type.
	Stats(ctx context.Context) ([]domain.TypeCount, error)

	// Clear removes every stored recipe.
	Clear(ctx context.Context) error
}
