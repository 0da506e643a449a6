package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/logger"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-extract archives as they change",
	Long: `Watches a mods folder and keeps the recipe database in sync with it.
Added or updated archives are re-extracted and removed archives have
their recipes deleted. Runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 750*time.Millisecond, "quiet period before re-extracting")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	dir, err := resolveModsDir(args)
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (ctrl+c to stop)\n", dir)
	err = watchService.Watch(cmd.Context(), dir, watchDebounce, func(result *domain.ExtractionResult) {
		cmd.Printf("%s  %d mods, %d recipes, %d errors\n",
			time.Now().Format(time.TimeOnly), result.ArchivesProcessed, result.RecipesExtracted, len(result.Errors))
		for _, e := range result.Errors {
			logger.Warn("%s", e)
		}
	})
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
