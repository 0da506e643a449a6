package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/craftdex/craftdex/internal/core/domain"
)

var (
	countByType bool
	listOffset  int
	listLimit   int
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count stored recipes",
	Args:  cobra.NoArgs,
	RunE:  runCount,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored recipes",
	Long:  `Lists stored recipes by ascending id, one page at a time.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recipe with its crafting grid",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	countCmd.Flags().BoolVar(&countByType, "by-type", false, "break the count down by recipe type")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "number of recipes to skip")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "maximum number of recipes")
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

func runCount(cmd *cobra.Command, _ []string) error {
	if err := requireRecipes(); err != nil {
		return err
	}

	if countByType {
		stats, err := recipeService.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("count failed: %w", err)
		}
		if jsonFlag {
			return printJSON(cmd, stats)
		}
		t := newTable(cmd.OutOrStdout(), "Type", "Recipes")
		var total int64
		for _, s := range stats {
			t.AppendRow(table.Row{s.RecipeType, humanize.Comma(s.Count)})
			total += s.Count
		}
		t.AppendFooter(table.Row{"Total", humanize.Comma(total)})
		t.Render()
		return nil
	}

	count, err := recipeService.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("count failed: %w", err)
	}
	if jsonFlag {
		return printJSON(cmd, map[string]int{"count": count})
	}
	cmd.Println(count)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := requireRecipes(); err != nil {
		return err
	}

	recipes, err := recipeService.List(cmd.Context(), listOffset, listLimit)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}
	return printRecipes(cmd, recipes)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := requireRecipes(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recipe id %q", args[0])
	}

	recipe, err := recipeService.Get(cmd.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("recipe %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to get recipe: %w", err)
	}
	if jsonFlag {
		return printJSON(cmd, recipe)
	}

	cmd.Printf("Recipe #%d\n", recipe.ID)
	cmd.Printf("  Mod:    %s\n", recipe.ModName)
	cmd.Printf("  Path:   %s\n", recipe.SourcePath)
	cmd.Printf("  Type:   %s (%s)\n", recipe.RecipeType, recipe.Kind)
	cmd.Printf("  Result: %s\n", formatResult(recipe))

	if recipe.Grid != nil {
		cmd.Println()
		for _, row := range recipe.Grid.Rows {
			cmd.Printf("  [%s]\n", row)
		}
		cmd.Println()
		for _, sym := range recipe.Grid.Legend {
			cmd.Printf("  %s = %s\n", sym.Symbol, sym.Ingredient)
		}
		return nil
	}

	if len(recipe.Ingredients) > 0 {
		cmd.Println()
		cmd.Println("  Ingredients:")
		for _, ing := range recipe.Ingredients {
			cmd.Printf("    - %s\n", ing)
		}
	}
	return nil
}
