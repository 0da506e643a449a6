package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search stored recipes",
	Long: `Finds recipes by a case-insensitive substring of an item id.
"output" matches the produced item, "ingredient" matches any ingredient
(tags are stored as #namespace:path).`,
}

var searchOutputCmd = &cobra.Command{
	Use:   "output <item>",
	Short: "Find recipes producing an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchOutput,
}

var searchIngredientCmd = &cobra.Command{
	Use:   "ingredient <item>",
	Short: "Find recipes using an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchIngredient,
}

func init() {
	searchCmd.AddCommand(searchOutputCmd)
	searchCmd.AddCommand(searchIngredientCmd)
	rootCmd.AddCommand(searchCmd)
}

func runSearchOutput(cmd *cobra.Command, args []string) error {
	if err := requireRecipes(); err != nil {
		return err
	}

	recipes, err := recipeService.SearchByOutput(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return printRecipes(cmd, recipes)
}

func runSearchIngredient(cmd *cobra.Command, args []string) error {
	if err := requireRecipes(); err != nil {
		return err
	}

	recipes, err := recipeService.SearchByIngredient(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return printRecipes(cmd, recipes)
}
