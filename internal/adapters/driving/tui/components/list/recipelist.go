// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/craftdex/craftdex/internal/adapters/driving/tui/styles"
	"github.com/craftdex/craftdex/internal/core/domain"
)

// RecipeList displays recipes in a navigable list.
type RecipeList struct {
	recipes  []domain.Recipe
	selected int
	title    string
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecipeList creates a new recipe list component.
func NewRecipeList(s *styles.Styles) *RecipeList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecipeList{
		styles: s,
		title:  "Recipes",
		width:  80,
		height: 10,
	}
}

// Init initialises the recipe list.
func (r *RecipeList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecipeList) Update(msg tea.Msg) (*RecipeList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the visible window of the list around the selection.
func (r *RecipeList) View() string {
	if len(r.recipes) == 0 {
		return r.styles.Muted.Render("No recipes")
	}

	lines := make([]string, 0, len(r.recipes)+2)
	lines = append(lines, r.styles.Subtitle.Render(r.title), "")

	// Each recipe takes two lines.
	visibleCount := (r.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.recipes) {
		end = len(r.recipes)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecipe(i, &r.recipes[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *RecipeList) renderRecipe(index int, recipe *domain.Recipe) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	result := recipe.Result()
	if result == "" {
		result = "(no result)"
	} else if recipe.Count() > 1 {
		result = fmt.Sprintf("%s x%d", result, recipe.Count())
	}
	result = truncate(result, r.width-24)

	id := fmt.Sprintf("#%d", recipe.ID)
	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-8s %s", indicator, id, result))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-8s %s", indicator, id, result))
	}

	detail := fmt.Sprintf("%s  %s", recipe.ModName, recipe.RecipeType)
	detailLine := r.styles.Muted.Render("    " + truncate(detail, r.width-6))

	return titleLine + "\n" + detailLine
}

func truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

// SetRecipes replaces the list contents and resets the selection.
func (r *RecipeList) SetRecipes(recipes []domain.Recipe) {
	r.recipes = recipes
	r.selected = 0
}

// SetTitle sets the header shown above the list.
func (r *RecipeList) SetTitle(title string) {
	r.title = title
}

// Recipes returns the current recipes.
func (r *RecipeList) Recipes() []domain.Recipe {
	return r.recipes
}

// Selected returns the index of the selected recipe.
func (r *RecipeList) Selected() int {
	return r.selected
}

// SelectedRecipe returns the currently selected recipe, or nil if none.
func (r *RecipeList) SelectedRecipe() *domain.Recipe {
	if r.selected < 0 || r.selected >= len(r.recipes) {
		return nil
	}
	return &r.recipes[r.selected]
}

// MoveUp moves selection up.
func (r *RecipeList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecipeList) MoveDown() {
	if r.selected < len(r.recipes)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecipeList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of recipes.
func (r *RecipeList) Count() int {
	return len(r.recipes)
}
