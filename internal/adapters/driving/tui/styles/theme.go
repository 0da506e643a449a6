// Package styles provides the colour palette and lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette, named after blocks so the grid reads like
// a crafting table.
type Theme struct {
	Primary    lipgloss.Color // grass
	Secondary  lipgloss.Color // oak plank
	Slot       lipgloss.Color // soil, the background of a grid cell
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color
}

// DefaultTheme returns the default palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#5D9C3B"),
		Secondary:  lipgloss.Color("#C9A35A"),
		Slot:       lipgloss.Color("#1F1B16"),
		Foreground: lipgloss.Color("#E8E2D0"),
		Muted:      lipgloss.Color("#7A7267"),
		Success:    lipgloss.Color("#8BD16B"),
		Warning:    lipgloss.Color("#E6B84C"),
		Error:      lipgloss.Color("#D9534F"),
		Border:     lipgloss.Color("#4E463C"),
		Bar:        lipgloss.Color("#15120E"),
	}
}

// Styles holds the styles the views render with.
type Styles struct {
	// Text.
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style

	// Outcomes.
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Containers.
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style

	// Recipes.
	Cell lipgloss.Style // one fixed-width slot of a crafting grid
	Tag  lipgloss.Style // a #tag ingredient
}

// NewStyles builds styles from a theme, using the default when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	rounded := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Foreground).Background(theme.Primary).Bold(true),
		Help:     fg(theme.Muted),

		Error:   fg(theme.Error),
		Success: fg(theme.Success),
		Warning: fg(theme.Warning),

		InputField: rounded.Padding(0, 1),
		StatusBar:  fg(theme.Muted).Background(theme.Bar).Padding(0, 1),
		Border:     rounded,

		Cell: fg(theme.Secondary).Background(theme.Slot).Bold(true).
			Width(3).Align(lipgloss.Center),
		Tag: fg(theme.Warning).Italic(true),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}
