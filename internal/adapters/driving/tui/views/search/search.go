// Package search provides the recipe search view for the TUI.
package search

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/craftdex/craftdex/internal/adapters/driving/tui/components/input"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/components/list"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/components/status"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/keymap"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/messages"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/styles"
	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// View represents the search view with input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.ItemInput
	list      *list.RecipeList
	statusbar *status.Bar

	recipes driving.RecipeService
	ctx     context.Context

	mode       messages.SearchMode
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing, false = navigating results
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, recipes driving.RecipeService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewItemInput(s),
		list:       list.NewRecipeList(s),
		statusbar:  status.NewBar(s, km),
		recipes:    recipes,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
	v.applyMode()
	return v
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the input cursor.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.Failed(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if keymap.Matches(keyStr, v.keymap.ToggleMode) {
		if v.mode == messages.SearchByOutput {
			v.mode = messages.SearchByIngredient
		} else {
			v.mode = messages.SearchByOutput
		}
		v.applyMode()
		return v, nil
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			query := strings.TrimSpace(v.input.Value())
			if query == "" {
				return v, nil
			}
			v.statusbar.Loading()
			return v, v.performSearch(v.mode, query)
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Select):
		if r := v.list.SelectedRecipe(); r != nil {
			id := r.ID
			return v, func() tea.Msg {
				return messages.RecipeSelected{ID: id, From: messages.ViewSearch}
			}
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.NewSearch):
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

func (v *View) applyMode() {
	label := "Output: "
	if v.mode == messages.SearchByIngredient {
		label = "Ingredient: "
	}
	v.input.SetLabel(label)
	v.input.SetWidth(v.width)
}

func (v *View) performSearch(mode messages.SearchMode, query string) tea.Cmd {
	return func() tea.Msg {
		if v.recipes == nil {
			return messages.ErrorOccurred{Err: ErrNoRecipeService}
		}

		var (
			recipes []domain.Recipe
			err     error
		)
		if mode == messages.SearchByIngredient {
			recipes, err = v.recipes.SearchByIngredient(v.ctx, query)
		} else {
			recipes, err = v.recipes.SearchByOutput(v.ctx, query)
		}
		return messages.SearchCompleted{Mode: mode, Query: query, Recipes: recipes, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.Failed(msg.Err)
		return
	}

	v.err = nil
	v.list.SetRecipes(msg.Recipes)
	v.list.SetTitle(fmt.Sprintf("%d recipes with %s matching %q", len(msg.Recipes), msg.Mode, msg.Query))
	v.statusbar.Results(len(msg.Recipes))

	if len(msg.Recipes) > 0 {
		v.focusInput = false
		v.input.Blur()
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections,
		v.styles.Title.Render("Search recipes"),
		v.styles.Muted.Render("tab switches between output and ingredient"),
		"",
		v.input.View(),
		"",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // header, input and status
	v.statusbar.SetWidth(width)
}

// Reset clears the query and results and focuses the input.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetRecipes(nil)
	v.err = nil
	v.statusbar.Clear()
}

// Mode returns the active search mode.
func (v *View) Mode() messages.SearchMode {
	return v.mode
}

// Query returns the current input value.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the current results.
func (v *View) Results() []domain.Recipe {
	return v.list.Recipes()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
