package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// MockRecipeService implements driving.RecipeService for testing.
type MockRecipeService struct {
	CountFunc  func(ctx context.Context) (int, error)
	ListFunc   func(ctx context.Context, offset, limit int) ([]domain.Recipe, error)
	OutputFunc func(ctx context.Context, item string) ([]domain.Recipe, error)
	GetFunc    func(ctx context.Context, id int64) (*domain.Recipe, error)
}

func (m *MockRecipeService) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockRecipeService) List(ctx context.Context, offset, limit int) ([]domain.Recipe, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *MockRecipeService) SearchByOutput(ctx context.Context, item string) ([]domain.Recipe, error) {
	if m.OutputFunc != nil {
		return m.OutputFunc(ctx, item)
	}
	return nil, nil
}

func (m *MockRecipeService) SearchByIngredient(context.Context, string) ([]domain.Recipe, error) {
	return nil, nil
}

func (m *MockRecipeService) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockRecipeService) Stats(context.Context) ([]domain.TypeCount, error) {
	return nil, nil
}

func (m *MockRecipeService) Clear(context.Context) error {
	return nil
}

// MockExtractionService implements driving.ExtractionService for testing.
type MockExtractionService struct{}

func (m *MockExtractionService) ExtractAll(
	context.Context, []string, domain.ExtractionOptions, chan<- domain.ExtractionProgress,
) (*domain.ExtractionResult, error) {
	return &domain.ExtractionResult{}, nil
}

func (m *MockExtractionService) ExtractFolder(
	context.Context, string, domain.ExtractionOptions, chan<- domain.ExtractionProgress,
) (*domain.ExtractionResult, error) {
	return &domain.ExtractionResult{}, nil
}

func (m *MockExtractionService) Status() driving.ExtractionStatus {
	return driving.ExtractionStatus{}
}

func (m *MockExtractionService) History(context.Context, int) ([]domain.ExtractionRun, error) {
	return nil, nil
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{"nil ports", nil, ErrMissingRecipeService},
		{"missing recipes", &Ports{Extraction: &MockExtractionService{}}, ErrMissingRecipeService},
		{"recipes only", &Ports{Recipes: &MockRecipeService{}}, nil},
		{"all ports", &Ports{Recipes: &MockRecipeService{}, Extraction: &MockExtractionService{}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
