// Package tui provides an interactive terminal recipe browser for craftdex.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Recipes answers recipe queries. Required.
	Recipes driving.RecipeService

	// Extraction runs extractions from the extract view. Optional.
	Extraction driving.ExtractionService

	// Settings supplies the default mods folder. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Recipes == nil {
		return ErrMissingRecipeService
	}
	return nil
}
