package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/craftdex/internal/core/domain"
)

func TestRunStore_SaveAndList(t *testing.T) {
	store := NewRunStore()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, id := range []string{"run-a", "run-b", "run-c"} {
		run := &domain.ExtractionRun{ID: id, StartedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, store.SaveRun(context.Background(), run))
	}

	runs, err := store.ListRuns(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-c", runs[0].ID)
	assert.Equal(t, "run-b", runs[1].ID)

	all, err := store.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRunStore_SaveRun_Updates(t *testing.T) {
	store := NewRunStore()
	run := &domain.ExtractionRun{ID: "run-a", StartedAt: time.Now()}
	require.NoError(t, store.SaveRun(context.Background(), run))

	run.Status = domain.RunStatusCompleted
	run.RecipesExtracted = 12
	require.NoError(t, store.SaveRun(context.Background(), run))

	runs, err := store.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.RunStatusCompleted, runs[0].Status)
	assert.Equal(t, 12, runs[0].RecipesExtracted)
}

func TestRunStore_SaveRun_RequiresID(t *testing.T) {
	store := NewRunStore()

	assert.ErrorIs(t, store.SaveRun(context.Background(), &domain.ExtractionRun{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.SaveRun(context.Background(), nil), domain.ErrInvalidInput)
}
