package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]domain.ExtractionRun
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]domain.ExtractionRun),
	}
}

// SaveRun creates or updates a run record.
func (s *RunStore) SaveRun(_ context.Context, run *domain.ExtractionRun) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return nil
}

// ListRuns returns runs newest first. A limit <= 0 returns all runs.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.ExtractionRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.ExtractionRun, 0, len(s.runs))
	for _, run := range s.runs {
		result = append(result, run)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
