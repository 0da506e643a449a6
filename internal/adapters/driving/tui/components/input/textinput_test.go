package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemInput(t *testing.T) {
	i := NewItemInput(nil)

	require.NotNil(t, i)
	assert.True(t, i.Focused())
	assert.Empty(t, i.Value())
	assert.NotNil(t, i.Init())
}

func TestItemInput_Typing(t *testing.T) {
	i := NewItemInput(nil)

	i, _ = i.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("stick")})

	assert.Equal(t, "stick", i.Value())
}

func TestItemInput_BlurIgnoresTyping(t *testing.T) {
	i := NewItemInput(nil)
	i.Blur()

	i, _ = i.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.False(t, i.Focused())
	assert.Empty(t, i.Value())
}

func TestItemInput_LabelAndWidth(t *testing.T) {
	i := NewItemInput(nil)
	i.SetLabel("Ingredient: ")
	i.SetWidth(100)
	i.SetValue("minecraft:stick")

	assert.Equal(t, 100, i.Width())
	assert.Contains(t, i.View(), "Ingredient:")
	assert.Contains(t, i.View(), "minecraft:stick")
}
