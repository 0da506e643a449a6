// Package detail provides the single recipe view for the TUI.
package detail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/craftdex/craftdex/internal/adapters/driving/tui/keymap"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/messages"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/styles"
	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// ErrNoRecipeService indicates that no recipe service was provided.
var ErrNoRecipeService = errors.New("recipe service is required")

// View shows one recipe: its result, grid or ingredients, and raw JSON on demand.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	recipes driving.RecipeService
	ctx     context.Context

	recipe  *domain.Recipe
	from    messages.ViewType
	showRaw bool
	loading bool
	err     error
	width   int
	height  int
	ready   bool
}

// NewView creates a new detail view.
func NewView(s *styles.Styles, km *keymap.KeyMap, recipes driving.RecipeService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keymap:  km,
		recipes: recipes,
		ctx:     context.Background(),
		from:    messages.ViewBrowse,
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init does nothing; recipes are loaded through Load.
func (v *View) Init() tea.Cmd {
	return nil
}

// Load fetches the recipe with the given id. Esc returns to from.
func (v *View) Load(id int64, from messages.ViewType) tea.Cmd {
	v.from = from
	v.recipe = nil
	v.err = nil
	v.showRaw = false
	v.loading = true

	return func() tea.Msg {
		if v.recipes == nil {
			return messages.RecipeLoaded{Err: ErrNoRecipeService}
		}
		recipe, err := v.recipes.Get(v.ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("recipe %d not found", id)
		}
		return messages.RecipeLoaded{Recipe: recipe, Err: err}
	}
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.RecipeLoaded:
		v.loading = false
		v.recipe = msg.Recipe
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Back):
			from := v.from
			return v, func() tea.Msg { return messages.ViewChanged{View: from} }
		case keyStr == "r":
			v.showRaw = !v.showRaw
		}
	}
	return v, nil
}

// View renders the detail view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var sections []string
	switch {
	case v.loading:
		sections = append(sections, v.styles.Muted.Render("Loading recipe..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case v.recipe != nil:
		sections = v.renderRecipe(v.recipe)
	}

	hint := "esc back • r raw json"
	if v.showRaw {
		hint = "esc back • r summary"
	}
	sections = append(sections, "", v.styles.Help.Render(hint))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderRecipe(r *domain.Recipe) []string {
	result := r.Result()
	if result == "" {
		result = "(no result)"
	} else if r.Count() > 1 {
		result = fmt.Sprintf("%s x%d", result, r.Count())
	}

	sections := []string{
		v.styles.Title.Render(fmt.Sprintf("#%d %s", r.ID, result)),
		v.styles.Muted.Render(fmt.Sprintf("%s • %s (%s)", r.ModName, r.RecipeType, r.Kind)),
		v.styles.Muted.Render(r.SourcePath),
		"",
	}

	if v.showRaw {
		return append(sections, v.styles.Normal.Render(r.RawJSON))
	}
	if r.Grid != nil && len(r.Grid.Rows) > 0 {
		return append(sections, v.renderGrid(r.Grid)...)
	}
	return append(sections, v.renderIngredients(r.Ingredients)...)
}

func (v *View) renderGrid(grid *domain.ShapedGrid) []string {
	rows := make([]string, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		cells := make([]string, 0, len(row))
		for _, symbol := range row {
			cells = append(cells, v.styles.Cell.Render(string(symbol)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	lines := []string{v.styles.Subtitle.Render("Grid"), v.styles.Border.Render(strings.Join(rows, "\n")), ""}
	for _, entry := range grid.Legend {
		lines = append(lines, fmt.Sprintf("  %s  %s", entry.Symbol, v.renderIngredient(entry.Ingredient)))
	}
	return lines
}

func (v *View) renderIngredients(ingredients []string) []string {
	if len(ingredients) == 0 {
		return []string{v.styles.Muted.Render("No ingredients.")}
	}
	lines := []string{v.styles.Subtitle.Render("Ingredients")}
	for _, ing := range ingredients {
		lines = append(lines, "  • "+v.renderIngredient(ing))
	}
	return lines
}

func (v *View) renderIngredient(ingredient string) string {
	alternatives := strings.Split(ingredient, domain.AlternativeSeparator)
	for i, alt := range alternatives {
		if strings.HasPrefix(alt, domain.TagPrefix) {
			alternatives[i] = v.styles.Tag.Render(alt)
		} else {
			alternatives[i] = v.styles.Normal.Render(alt)
		}
	}
	return strings.Join(alternatives, " | ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Recipe returns the loaded recipe.
func (v *View) Recipe() *domain.Recipe {
	return v.recipe
}

// From returns the view esc returns to.
func (v *View) From() messages.ViewType {
	return v.from
}

// ShowingRaw returns whether the raw JSON is shown.
func (v *View) ShowingRaw() bool {
	return v.showRaw
}

// Err returns the load error, if any.
func (v *View) Err() error {
	return v.err
}
