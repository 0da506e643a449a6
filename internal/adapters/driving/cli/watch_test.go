package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/craftdex/internal/core/domain"
)

func TestWatchCmd_ReportsResults(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.watch.results = []*domain.ExtractionResult{{ArchivesProcessed: 1, RecipesExtracted: 12}}

	out, _, err := execute(t, nil, "watch", "/games/mods", "--debounce", "2s")

	require.NoError(t, err)
	assert.Equal(t, "/games/mods", ts.watch.lastDir)
	assert.Equal(t, 2*time.Second, ts.watch.debounce)
	assert.Contains(t, out, "Watching /games/mods")
	assert.Contains(t, out, "1 mods, 12 recipes, 0 errors")
}

func TestWatchCmd_DefaultDebounce(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, nil, "watch", "/games/mods")

	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, ts.watch.debounce)
}

func TestWatchCmd_NotConfigured(t *testing.T) {
	SetServices(Services{})

	_, _, err := execute(t, nil, "watch", "/games/mods")

	assert.EqualError(t, err, "watch service not configured")
}
