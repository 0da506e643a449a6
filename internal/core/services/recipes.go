package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// MaxPageSize caps a single List call.
const MaxPageSize = 1000

// Ensure RecipeService implements the interface.
var _ driving.RecipeService = (*RecipeService)(nil)

// RecipeService answers queries against the recipe store.
type RecipeService struct {
	store  driven.RecipeStore
	parser driven.RecipeParser
}

// NewRecipeService creates a new recipe service. The parser re-derives
// shaped grids for Get and may be nil, in which case no grid is returned.
func NewRecipeService(store driven.RecipeStore, parser driven.RecipeParser) *RecipeService {
	return &RecipeService{
		store:  store,
		parser: parser,
	}
}

// Count returns the number of stored recipes.
func (s *RecipeService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// List returns a page of recipes ordered by ascending ID.
func (s *RecipeService) List(ctx context.Context, offset, limit int) ([]domain.Recipe, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", domain.ErrInvalidInput)
	}
	if limit <= 0 || limit > MaxPageSize {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, MaxPageSize)
	}
	return s.store.List(ctx, offset, limit)
}

// SearchByOutput finds recipes whose result contains item.
func (s *RecipeService) SearchByOutput(ctx context.Context, item string) ([]domain.Recipe, error) {
	query, err := searchTerm(item)
	if err != nil {
		return nil, err
	}
	return s.store.SearchByOutput(ctx, query)
}

// SearchByIngredient finds recipes using an ingredient containing item.
func (s *RecipeService) SearchByIngredient(ctx context.Context, item string) ([]domain.Recipe, error) {
	query, err := searchTerm(item)
	if err != nil {
		return nil, err
	}
	return s.store.SearchByIngredient(ctx, query)
}

// Get retrieves one recipe. Shaped recipes get their grid re-derived from
// the stored JSON.
func (s *RecipeService) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.parser != nil && recipe.Kind == domain.KindShaped {
		reparsed := s.parser.Parse(recipe.ModName, recipe.SourcePath, []byte(recipe.RawJSON))
		recipe.Grid = reparsed.Grid
	}
	return recipe, nil
}

// Stats returns recipe counts per recipe type.
func (s *RecipeService) Stats(ctx context.Context) ([]domain.TypeCount, error) {
	return s.store.CountByType(ctx)
}

// Clear removes every stored recipe.
func (s *RecipeService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func searchTerm(item string) (string, error) {
	query := strings.TrimSpace(item)
	if query == "" {
		return "", fmt.Errorf("%w: search term is required", domain.ErrInvalidInput)
	}
	return query, nil
}
