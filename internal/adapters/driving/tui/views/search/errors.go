package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoRecipeService indicates that no recipe service was provided.
	ErrNoRecipeService = errors.New("recipe service is required")
)
