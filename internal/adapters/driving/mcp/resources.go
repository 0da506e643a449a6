package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/craftdex/craftdex/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for craftdex resources.
	uriScheme = "craftdex://"

	// historyLimit bounds the runs resource.
	historyLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Recipe counts per recipe type",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recent extraction runs",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "recipes/{recipeId}",
		Name:        "recipe",
		Description: "Original JSON of a stored recipe",
		MIMEType:    "application/json",
	}, s.handleRecipeResource)
}

// handleStatsResource returns recipe counts per type.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats, err := s.ports.Recipes.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting recipes: %w", err)
	}
	return jsonResource(req.Params.URI, stats)
}

// handleRunsResource returns the most recent extraction runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Extraction == nil {
		return jsonResource(req.Params.URI, []domain.ExtractionRun{})
	}
	runs, err := s.ports.Extraction.History(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return jsonResource(req.Params.URI, runs)
}

// handleRecipeResource returns the stored JSON of one recipe verbatim.
func (s *Server) handleRecipeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractRecipeID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	recipe, err := s.ports.Recipes.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     recipe.RawJSON,
		}},
	}, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRecipeID extracts the recipe ID from a URI like craftdex://recipes/{recipeId}.
func extractRecipeID(uri string) (int64, bool) {
	const prefix = uriScheme + "recipes/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(uri, prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
