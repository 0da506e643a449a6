package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"help", km.Help, []string{"?"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"next page", km.NextPage, []string{"right", "l", "pgdown"}},
		{"prev page", km.PrevPage, []string{"left", "h", "pgup"}},
		{"select", km.Select, []string{"enter"}},
		{"toggle mode", km.ToggleMode, []string{"tab"}},
		{"new search", km.NewSearch, []string{"n"}},
		{"start", km.Start, []string{"enter", "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.Len(t, km.BrowseHelp(), 4)
	assert.Len(t, km.ResultsHelp(), 4)
	assert.Len(t, km.FullHelp(), 4)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("l", km.NextPage))
	assert.True(t, Matches("pgup", km.PrevPage))
	assert.False(t, Matches("x", km.NextPage))
	assert.False(t, Matches("", km.Quit))
}
