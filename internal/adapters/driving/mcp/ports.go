package mcp

import (
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Recipes answers recipe queries.
	Recipes driving.RecipeService

	// Archives scans folders and lists archive contents.
	Archives driving.ArchiveService

	// Extraction runs recipe extraction.
	Extraction driving.ExtractionService
}

// Validate ensures all required ports are set.
// Archives and Extraction are optional; their tools report an error when missing.
func (p *Ports) Validate() error {
	if p.Recipes == nil {
		return ErrMissingRecipeService
	}
	return nil
}
