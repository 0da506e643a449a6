// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/craftdex/craftdex/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewBrowse pages through all stored recipes.
	ViewBrowse
	// ViewSearch searches recipes by output or ingredient.
	ViewSearch
	// ViewDetail shows one recipe.
	ViewDetail
	// ViewExtract runs an extraction with a progress bar.
	ViewExtract
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewBrowse:
		return "browse"
	case ViewSearch:
		return "search"
	case ViewDetail:
		return "detail"
	case ViewExtract:
		return "extract"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// SearchMode selects which side of a recipe a search matches.
type SearchMode int

const (
	// SearchByOutput matches the result item.
	SearchByOutput SearchMode = iota
	// SearchByIngredient matches any ingredient.
	SearchByIngredient
)

// String returns the label shown for the mode.
func (m SearchMode) String() string {
	if m == SearchByIngredient {
		return "ingredient"
	}
	return "output"
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// RecipesLoaded carries one page of recipes.
type RecipesLoaded struct {
	Offset  int
	Total   int
	Recipes []domain.Recipe
	Err     error
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Mode    SearchMode
	Query   string
	Recipes []domain.Recipe
	Err     error
}

// RecipeSelected asks the app to open a recipe in the detail view.
type RecipeSelected struct {
	ID   int64
	From ViewType
}

// RecipeLoaded carries a recipe for the detail view.
type RecipeLoaded struct {
	Recipe *domain.Recipe
	Err    error
}

// ExtractionProgressed carries one progress event from a running extraction.
type ExtractionProgressed struct {
	Progress domain.ExtractionProgress
}

// ExtractionFinished is sent when an extraction returns.
type ExtractionFinished struct {
	Result *domain.ExtractionResult
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
