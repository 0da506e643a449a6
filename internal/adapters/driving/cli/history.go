package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past extraction runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if err := requireExtraction(); err != nil {
		return err
	}

	runs, err := extractionService.History(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if jsonFlag {
		return printJSON(cmd, runs)
	}
	if len(runs) == 0 {
		cmd.Println("No extraction runs yet.")
		return nil
	}

	t := newTable(cmd.OutOrStdout(), "Run", "Started", "Status", "Mods", "Recipes", "Errors", "Replaced")
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.ID,
			humanize.Time(r.StartedAt),
			r.Status,
			fmt.Sprintf("%d/%d", r.ArchivesProcessed, r.ArchivesTotal),
			r.RecipesExtracted,
			r.ErrorCount,
			r.Replaced,
		})
	}
	t.Render()
	return nil
}
