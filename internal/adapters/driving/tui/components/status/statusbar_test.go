package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.Equal(t, StateReady, bar.State())
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name     string
		set      func(b *Bar)
		state    State
		contains []string
	}{
		{"ready", func(*Bar) {}, StateReady, []string{"Ready", "esc: back"}},
		{"loading", (*Bar).Loading, StateLoading, []string{"Loading..."}},
		{"error", func(b *Bar) { b.Failed(errors.New("db locked")) }, StateError, []string{"Error: db locked"}},
		{"nil error", func(b *Bar) { b.Failed(nil) }, StateError, []string{"Error"}},
		{"browsing", func(b *Bar) { b.Browsing(2, 5, 1234) }, StateBrowsing,
			[]string{"Page 2 of 5", "1,234 recipes stored", "next page"}},
		{"results", func(b *Bar) { b.Results(7) }, StateResults, []string{"7 recipes", "new search"}},
		{"single result", func(b *Bar) { b.Results(1) }, StateResults, []string{"1 recipe"}},
		{"no results", func(b *Bar) { b.Results(0) }, StateResults, []string{"0 recipes", "esc: back"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			tt.set(bar)

			assert.Equal(t, tt.state, bar.State())
			view := bar.View()
			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestBar_NarrowWidthStillRenders(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(5)

	assert.NotEmpty(t, bar.View())
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(100)
	bar.Failed(errors.New("boom"))

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 100, bar.width)
	assert.NotContains(t, bar.View(), "boom")
}
