// Package status provides the status bar shown under recipe lists.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/craftdex/craftdex/internal/adapters/driving/tui/keymap"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/styles"
)

// State is what the owning view is doing.
type State string

const (
	StateReady    State = "ready"
	StateLoading  State = "loading"
	StateError    State = "error"
	StateBrowsing State = "browsing"
	StateResults  State = "results"
)

// Bar shows the view state on the left and key hints on the right.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	state  State
	errMsg string
	width  int

	// Browsing: page of pages over total stored recipes.
	page, pages int
	total       int

	// Results: number of recipes matched.
	matches int
}

// NewBar creates a status bar.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: 80}
}

// Loading marks a query in flight.
func (b *Bar) Loading() {
	b.state = StateLoading
}

// Failed shows err.
func (b *Bar) Failed(err error) {
	b.state = StateError
	b.errMsg = ""
	if err != nil {
		b.errMsg = err.Error()
	}
}

// Browsing shows the page position within the stored recipes.
func (b *Bar) Browsing(page, pages, total int) {
	b.state = StateBrowsing
	b.page, b.pages, b.total = page, pages, total
}

// Results shows how many recipes a search matched.
func (b *Bar) Results(matches int) {
	b.state = StateResults
	b.matches = matches
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderHints()

	gap := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateLoading:
		return b.styles.Muted.Render("Loading...")
	case StateError:
		if b.errMsg == "" {
			return b.styles.Error.Render("Error")
		}
		return b.styles.Error.Render("Error: " + b.errMsg)
	case StateBrowsing:
		return b.styles.Normal.Render(fmt.Sprintf("Page %d of %d", b.page, b.pages)) +
			b.styles.Muted.Render(" • "+recipes(b.total)+" stored")
	case StateResults:
		return b.styles.Normal.Render(recipes(b.matches))
	}
	return b.styles.Muted.Render("Ready")
}

func (b *Bar) renderHints() string {
	var bindings []key.Binding
	switch {
	case b.state == StateBrowsing:
		bindings = b.keymap.BrowseHelp()
	case b.state == StateResults && b.matches > 0:
		bindings = b.keymap.ResultsHelp()
	default:
		bindings = b.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

func recipes(n int) string {
	if n == 1 {
		return "1 recipe"
	}
	return humanize.Comma(int64(n)) + " recipes"
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetWidth sets the rendered width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets the bar to ready.
func (b *Bar) Clear() {
	*b = Bar{styles: b.styles, keymap: b.keymap, state: StateReady, width: b.width}
}
