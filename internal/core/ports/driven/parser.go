package driven

import "github.com/craftdex/craftdex/internal/core/domain"

// RecipeParser normalises one recipe document.
type RecipeParser interface {
	// Parse never fails. Undecodable input yields a recipe of type
	// "invalid" that still carries the raw document.
	Parse(modName, entryPath string, raw []byte) domain.Recipe

	// Validate reports why raw is not a recipe document, or nil if it is one.
	Validate(raw []byte) error
}
