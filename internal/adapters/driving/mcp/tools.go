package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// DefaultListLimit is the page size used when list_recipes gets no limit.
const DefaultListLimit = 50

// FolderInput is the input schema for scan_folder.
type FolderInput struct {
	Path string `json:"path" jsonschema:"absolute path of the mods folder"`
}

// ScanOutput is the output schema for scan_folder.
type ScanOutput struct {
	Archives []domain.ArchiveFile `json:"archives"`
	Count    int                  `json:"count"`
}

// ArchiveInput is the input schema for get_jar_contents.
type ArchiveInput struct {
	Path string `json:"path" jsonschema:"path of the mod archive"`
}

// ContentsOutput is the output schema for get_jar_contents.
type ContentsOutput struct {
	Entries []domain.ArchiveEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// EntryInput is the input schema for get_jar_entry.
type EntryInput struct {
	Path  string `json:"path" jsonschema:"path of the mod archive"`
	Entry string `json:"entry" jsonschema:"entry path inside the archive, as listed by get_jar_contents"`
}

// EntryOutput is the output schema for get_jar_entry.
type EntryOutput struct {
	Entry   string `json:"entry"`
	Content string `json:"content"`
}

// ExtractInput is the input schema for extract_all_recipes.
type ExtractInput struct {
	Paths         []string `json:"paths,omitempty" jsonschema:"archive paths to extract, in order"`
	Folder        string   `json:"folder,omitempty" jsonschema:"mods folder to scan instead of explicit paths"`
	ClearExisting bool     `json:"clear_existing,omitempty" jsonschema:"remove all stored recipes before extracting"`
	DryRun        bool     `json:"dry_run,omitempty" jsonschema:"parse without storing anything"`
}

// StatusOutput is the output schema for get_extraction_status.
type StatusOutput struct {
	Running  bool                      `json:"running"`
	Progress domain.ExtractionProgress `json:"progress"`
}

// CountInput is the (empty) input schema for get_recipe_count.
type CountInput struct{}

// CountOutput is the output schema for get_recipe_count.
type CountOutput struct {
	Count int `json:"count"`
}

// ListInput is the input schema for list_recipes.
type ListInput struct {
	Offset int `json:"offset,omitempty" jsonschema:"number of recipes to skip"`
	Limit  int `json:"limit,omitempty" jsonschema:"maximum number of recipes to return (default 50)"`
}

// ItemInput is the input schema for the search tools.
type ItemInput struct {
	Item string `json:"item" jsonschema:"case-insensitive substring of an item id, e.g. iron_ingot"`
}

// RecipesOutput is the output schema for tools returning recipes.
type RecipesOutput struct {
	Recipes []domain.Recipe `json:"recipes"`
	Count   int             `json:"count"`
}

// RecipeInput is the input schema for get_recipe.
type RecipeInput struct {
	ID int64 `json:"id" jsonschema:"recipe id"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scan_folder",
		Description: "List mod archives directly inside a folder",
	}, s.handleScanFolder)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_jar_contents",
		Description: "List the recipe entries of one mod archive",
	}, s.handleJarContents)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_jar_entry",
		Description: "Read the raw content of one entry of a mod archive",
	}, s.handleJarEntry)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_all_recipes",
		Description: "Extract recipes from mod archives into the recipe store",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_extraction_status",
		Description: "Report the progress of a running extraction",
	}, s.handleExtractionStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recipe_count",
		Description: "Count stored recipes",
	}, s.handleCount)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_recipes",
		Description: "List stored recipes by ascending id",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_recipes_by_output",
		Description: "Find recipes whose result item contains a substring",
	}, s.handleSearchByOutput)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_recipes_by_ingredient",
		Description: "Find recipes with an ingredient containing a substring",
	}, s.handleSearchByIngredient)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recipe",
		Description: "Get one recipe with its crafting grid",
	}, s.handleGetRecipe)
}

func (s *Server) handleScanFolder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FolderInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	if s.ports.Archives == nil {
		return nil, ScanOutput{}, ErrArchivesUnavailable
	}
	archives, err := s.ports.Archives.ScanFolder(ctx, input.Path)
	if err != nil {
		return nil, ScanOutput{}, err
	}
	return nil, ScanOutput{Archives: archives, Count: len(archives)}, nil
}

func (s *Server) handleJarContents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ArchiveInput,
) (*mcp.CallToolResult, ContentsOutput, error) {
	if s.ports.Archives == nil {
		return nil, ContentsOutput{}, ErrArchivesUnavailable
	}
	entries, err := s.ports.Archives.Contents(ctx, input.Path)
	if err != nil {
		return nil, ContentsOutput{}, err
	}
	return nil, ContentsOutput{Entries: entries, Count: len(entries)}, nil
}

func (s *Server) handleJarEntry(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EntryInput,
) (*mcp.CallToolResult, EntryOutput, error) {
	if s.ports.Archives == nil {
		return nil, EntryOutput{}, ErrArchivesUnavailable
	}
	data, err := s.ports.Archives.ReadEntry(ctx, input.Path, input.Entry)
	if err != nil {
		return nil, EntryOutput{}, err
	}
	return nil, EntryOutput{Entry: input.Entry, Content: string(data)}, nil
}

func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, domain.ExtractionResult, error) {
	if s.ports.Extraction == nil {
		return nil, domain.ExtractionResult{}, ErrExtractionUnavailable
	}
	if len(input.Paths) > 0 && input.Folder != "" {
		return nil, domain.ExtractionResult{}, fmt.Errorf("%w: give either paths or folder", domain.ErrInvalidInput)
	}

	opts := domain.ExtractionOptions{Replace: input.ClearExisting, DryRun: input.DryRun}

	var (
		result *domain.ExtractionResult
		err    error
	)
	if input.Folder != "" {
		result, err = s.ports.Extraction.ExtractFolder(ctx, input.Folder, opts, nil)
	} else {
		if len(input.Paths) == 0 {
			return nil, domain.ExtractionResult{}, fmt.Errorf("%w: no archives given", domain.ErrInvalidInput)
		}
		result, err = s.ports.Extraction.ExtractAll(ctx, input.Paths, opts, nil)
	}
	if err != nil {
		return nil, domain.ExtractionResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleExtractionStatus(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ CountInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if s.ports.Extraction == nil {
		return nil, StatusOutput{}, ErrExtractionUnavailable
	}
	status := s.ports.Extraction.Status()
	return nil, StatusOutput{Running: status.Running, Progress: status.Progress}, nil
}

func (s *Server) handleCount(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CountInput,
) (*mcp.CallToolResult, CountOutput, error) {
	count, err := s.ports.Recipes.Count(ctx)
	if err != nil {
		return nil, CountOutput{}, err
	}
	return nil, CountOutput{Count: count}, nil
}

func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, RecipesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	recipes, err := s.ports.Recipes.List(ctx, input.Offset, limit)
	if err != nil {
		return nil, RecipesOutput{}, err
	}
	return nil, recipesOutput(recipes), nil
}

func (s *Server) handleSearchByOutput(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ItemInput,
) (*mcp.CallToolResult, RecipesOutput, error) {
	recipes, err := s.ports.Recipes.SearchByOutput(ctx, input.Item)
	if err != nil {
		return nil, RecipesOutput{}, err
	}
	return nil, recipesOutput(recipes), nil
}

func (s *Server) handleSearchByIngredient(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ItemInput,
) (*mcp.CallToolResult, RecipesOutput, error) {
	recipes, err := s.ports.Recipes.SearchByIngredient(ctx, input.Item)
	if err != nil {
		return nil, RecipesOutput{}, err
	}
	return nil, recipesOutput(recipes), nil
}

func (s *Server) handleGetRecipe(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecipeInput,
) (*mcp.CallToolResult, domain.Recipe, error) {
	recipe, err := s.ports.Recipes.Get(ctx, input.ID)
	if err != nil {
		return nil, domain.Recipe{}, err
	}
	return nil, *recipe, nil
}

func recipesOutput(recipes []domain.Recipe) RecipesOutput {
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return RecipesOutput{Recipes: recipes, Count: len(recipes)}
}
