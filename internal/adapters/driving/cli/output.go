package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// printJSON writes v as indented JSON to the command output.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func newTable(w io.Writer, header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	// Footers carry counts and file names; keep their case.
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row(header))
	return t
}

// printRecipes writes recipes as JSON (never null) or as a table.
func printRecipes(cmd *cobra.Command, recipes []domain.Recipe) error {
	if jsonFlag {
		if recipes == nil {
			recipes = []domain.Recipe{}
		}
		return printJSON(cmd, recipes)
	}
	renderRecipes(cmd, recipes)
	return nil
}

// renderRecipes prints recipes as a table.
func renderRecipes(cmd *cobra.Command, recipes []domain.Recipe) {
	if len(recipes) == 0 {
		cmd.Println("No recipes found.")
		return
	}

	t := newTable(cmd.OutOrStdout(), "ID", "Mod", "Type", "Result", "Ingredients")
	for i := range recipes {
		r := &recipes[i]
		t.AppendRow(table.Row{r.ID, r.ModName, r.RecipeType, formatResult(r), summariseIngredients(r.Ingredients, 3)})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", humanize.Comma(int64(len(recipes)))})
	t.Render()
}

// formatResult renders "item xN", or "-" when the recipe has no result.
func formatResult(r *domain.Recipe) string {
	if r.ResultItem == nil {
		return "-"
	}
	if r.Count() == 1 {
		return *r.ResultItem
	}
	return fmt.Sprintf("%s x%d", *r.ResultItem, r.Count())
}

// summariseIngredients lists distinct ingredients, truncated after limit.
func summariseIngredients(ingredients []string, limit int) string {
	seen := make(map[string]bool, len(ingredients))
	distinct := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if !seen[ing] {
			seen[ing] = true
			distinct = append(distinct, ing)
		}
	}
	if len(distinct) <= limit {
		return strings.Join(distinct, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(distinct[:limit], ", "), len(distinct)-limit)
}
