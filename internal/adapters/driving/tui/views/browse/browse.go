// Package browse provides the paged recipe list view for the TUI.
package browse

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/craftdex/craftdex/internal/adapters/driving/tui/components/list"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/components/status"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/keymap"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/messages"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/styles"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// PageSize is the number of recipes fetched per page.
const PageSize = 25

// View pages through every stored recipe in id order.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.RecipeList
	statusbar *status.Bar

	recipes driving.RecipeService
	ctx     context.Context

	offset int
	total  int
	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new browse view.
func NewView(s *styles.Styles, km *keymap.KeyMap, recipes driving.RecipeService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		list:      list.NewRecipeList(s),
		statusbar: status.NewBar(s, km),
		recipes:   recipes,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init reloads the current page.
func (v *View) Init() tea.Cmd {
	return v.load(v.offset)
}

func (v *View) load(offset int) tea.Cmd {
	v.statusbar.Loading()
	return func() tea.Msg {
		total, err := v.recipes.Count(v.ctx)
		if err != nil {
			return messages.RecipesLoaded{Offset: offset, Err: err}
		}
		recipes, err := v.recipes.List(v.ctx, offset, PageSize)
		return messages.RecipesLoaded{Offset: offset, Total: total, Recipes: recipes, Err: err}
	}
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.RecipesLoaded:
		v.handleLoaded(msg)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleLoaded(msg messages.RecipesLoaded) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.Failed(msg.Err)
		return
	}

	v.err = nil
	v.offset = msg.Offset
	v.total = msg.Total
	v.list.SetRecipes(msg.Recipes)
	if len(msg.Recipes) > 0 {
		v.list.SetTitle(fmt.Sprintf("Recipes %d-%d of %d", v.offset+1, v.offset+len(msg.Recipes), v.total))
	}
	v.statusbar.Browsing(v.Page(), v.Pages(), v.total)
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }

	case keymap.Matches(keyStr, v.keymap.NextPage):
		if v.offset+PageSize < v.total {
			return v, v.load(v.offset + PageSize)
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.PrevPage):
		if v.offset > 0 {
			return v, v.load(max(0, v.offset-PageSize))
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Select):
		if r := v.list.SelectedRecipe(); r != nil {
			id := r.ID
			return v, func() tea.Msg {
				return messages.RecipeSelected{ID: id, From: messages.ViewBrowse}
			}
		}
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// View renders the browse view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.styles.Title.Render("Browse recipes"), ""}
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
	v.list.SetDimensions(width, height-6)
	v.statusbar.SetWidth(width)
}

// Page returns the 1-based current page.
func (v *View) Page() int {
	return v.offset/PageSize + 1
}

// Pages returns the number of pages, at least 1.
func (v *View) Pages() int {
	if v.total <= 0 {
		return 1
	}
	return (v.total + PageSize - 1) / PageSize
}

// Offset returns the offset of the current page.
func (v *View) Offset() int {
	return v.offset
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
