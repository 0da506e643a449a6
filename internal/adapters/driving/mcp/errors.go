// Package mcp provides an MCP (Model Context Protocol) server adapter for craftdex.
// It lets AI assistants scan mod folders, extract recipes and query them.
package mcp

import "errors"

var (
	// ErrMissingRecipeService is returned when the recipe service is not provided.
	ErrMissingRecipeService = errors.New("mcp: recipe service is required")

	// ErrArchivesUnavailable is returned by archive tools when no archive service is configured.
	ErrArchivesUnavailable = errors.New("mcp: archive service is not configured")

	// ErrExtractionUnavailable is returned by extraction tools when no extraction service is configured.
	ErrExtractionUnavailable = errors.New("mcp: extraction service is not configured")
)
