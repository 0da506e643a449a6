package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/craftdex/internal/core/domain"
)

func TestHistoryCmd_Empty(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, nil, "history")

	require.NoError(t, err)
	assert.Equal(t, 10, ts.extraction.lastLimit)
	assert.Contains(t, out, "No extraction runs yet.")
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.extraction.runs = []domain.ExtractionRun{{
		ID:                "run-9",
		StartedAt:         time.Now().Add(-2 * time.Hour),
		ArchivesTotal:     4,
		ArchivesProcessed: 3,
		RecipesExtracted:  120,
		ErrorCount:        1,
		Status:            domain.RunStatusCompleted,
	}}

	out, _, err := execute(t, nil, "history", "-n", "5")

	require.NoError(t, err)
	assert.Equal(t, 5, ts.extraction.lastLimit)
	assert.Contains(t, out, "run-9")
	assert.Contains(t, out, "3/4")
	assert.Contains(t, out, "2 hours ago")
}
