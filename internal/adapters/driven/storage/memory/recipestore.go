package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

// Ensure RecipeStore implements the interface.
var _ driven.RecipeStore = (*RecipeStore)(nil)

// RecipeStore is an in-memory implementation of driven.RecipeStore.
// It backs dry-run extractions and tests. Recipes are kept in ID order.
type RecipeStore struct {
	mu      sync.RWMutex
	recipes []domain.Recipe
	nextID  int64
	fold    cases.Caser
}

// NewRecipeStore creates a new in-memory recipe store.
func NewRecipeStore() *RecipeStore {
	return &RecipeStore{
		nextID: 1,
		fold:   cases.Fold(),
	}
}

// InsertBatch appends recipes and assigns IDs.
func (s *RecipeStore) InsertBatch(ctx context.Context, recipes []domain.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for i := range recipes {
		recipes[i].ID = s.nextID
		recipes[i].CreatedAt = now
		if recipes[i].RecipeType == "" {
			recipes[i].RecipeType = domain.TypeUnknown
		}
		s.nextID++
		s.recipes = append(s.recipes, cloneRecipe(recipes[i]))
	}
	return nil
}

// Count returns the number of stored recipes.
func (s *RecipeStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes), nil
}

// List returns a page of recipes ordered by ID.
func (s *RecipeStore) List(_ context.Context, offset, limit int) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Recipe, 0)
	if offset < 0 || offset >= len(s.recipes) || limit <= 0 {
		return result, nil
	}
	end := min(offset+limit, len(s.recipes))
	for _, r := range s.recipes[offset:end] {
		result = append(result, cloneRecipe(r))
	}
	return result, nil
}

// SearchByOutput matches the result item case-insensitively.
func (s *RecipeStore) SearchByOutput(_ context.Context, query string) ([]domain.Recipe, error) {
	needle := s.fold.String(query)
	return s.filter(func(r *domain.Recipe) bool {
		return r.ResultItem != nil && strings.Contains(s.fold.String(*r.ResultItem), needle)
	}), nil
}

// SearchByIngredient matches any ingredient case-insensitively.
func (s *RecipeStore) SearchByIngredient(_ context.Context, query string) ([]domain.Recipe, error) {
	needle := s.fold.String(query)
	return s.filter(func(r *domain.Recipe) bool {
		for _, ing := range r.Ingredients {
			if strings.Contains(s.fold.String(ing), needle) {
				return true
			}
		}
		return false
	}), nil
}

// Get retrieves a recipe by ID.
func (s *RecipeStore) Get(_ context.Context, id int64) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := sort.Search(len(s.recipes), func(i int) bool { return s.recipes[i].ID >= id })
	if i == len(s.recipes) || s.recipes[i].ID != id {
		return nil, domain.ErrNotFound
	}
	r := cloneRecipe(s.recipes[i])
	return &r, nil
}

// CountByType returns recipe counts per type, largest first.
func (s *RecipeStore) CountByType(_ context.Context) ([]domain.TypeCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byType := make(map[string]int64)
	for _, r := range s.recipes {
		byType[r.RecipeType]++
	}

	counts := make([]domain.TypeCount, 0, len(byType))
	for t, n := range byType {
		counts = append(counts, domain.TypeCount{RecipeType: t, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].RecipeType < counts[j].RecipeType
	})
	return counts, nil
}

// DeleteArchive removes the recipes of one archive.
func (s *RecipeStore) DeleteArchive(_ context.Context, archivePath string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.recipes[:0]
	removed := 0
	for _, r := range s.recipes {
		if r.ArchivePath == archivePath {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.recipes = kept
	return removed, nil
}

// Clear removes all recipes. IDs are not reused.
func (s *RecipeStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = nil
	return nil
}

func (s *RecipeStore) filter(match func(*domain.Recipe) bool) []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Recipe, 0)
	for i := range s.recipes {
		if match(&s.recipes[i]) {
			result = append(result, cloneRecipe(s.recipes[i]))
		}
	}
	return result
}

// cloneRecipe copies the slices so callers cannot mutate stored state.
func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Ingredients = append(make([]string, 0, len(r.Ingredients)), r.Ingredients...)
	r.Grid = nil
	return r
}
