package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/craftdex/craftdex/internal/core/domain"
)

// maxErrorsShown caps the errors listed after an extraction unless --verbose is set.
const maxErrorsShown = 20

var (
	extractReplace    bool
	extractDryRun     bool
	extractNoProgress bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [dir | archive...]",
	Short: "Extract recipes from mod archives",
	Long: `Extracts every recipe from the given mod archives, or from all archives in a
folder, and stores them in the recipe database.

Without arguments the configured mods.dir is used. Recipes are added to
what is already stored unless --replace is given (or extraction.replace is
set). Unreadable archives and entries are reported and skipped.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractReplace, "replace", false, "clear stored recipes before extracting")
	extractCmd.Flags().BoolVar(&extractDryRun, "dry-run", false, "parse everything without storing it")
	extractCmd.Flags().BoolVar(&extractNoProgress, "no-progress", false, "do not report progress")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := requireExtraction(); err != nil {
		return err
	}

	opts := domain.ExtractionOptions{Replace: extractReplace, DryRun: extractDryRun}
	if !cmd.Flags().Changed("replace") && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			opts.Replace = settings.Extraction.Replace
		}
	}

	folder, archives, err := extractTargets(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var (
		progress chan domain.ExtractionProgress
		reported chan struct{}
	)
	if !extractNoProgress {
		progress = make(chan domain.ExtractionProgress, 64)
		reported = make(chan struct{})
		reporter := newProgressReporter(cmd, cancel)
		go func() {
			reporter.consume(progress)
			close(reported)
		}()
	}

	var result *domain.ExtractionResult
	if folder != "" {
		result, err = extractionService.ExtractFolder(ctx, folder, opts, progress)
	} else {
		result, err = extractionService.ExtractAll(ctx, archives, opts, progress)
	}

	if progress != nil {
		close(progress)
		<-reported
	}

	cancelled := errors.Is(err, context.Canceled)
	if err != nil && !cancelled {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if jsonFlag {
		if jerr := printJSON(cmd, result); jerr != nil {
			return jerr
		}
	} else {
		renderExtraction(cmd, result, opts)
	}

	if cancelled {
		return errors.New("extraction cancelled; partial results were kept")
	}
	return nil
}

// extractTargets resolves the arguments to either a folder or a list of archives.
func extractTargets(args []string) (folder string, archives []string, err error) {
	if len(args) == 0 {
		folder, err = resolveModsDir(nil)
		return folder, nil, err
	}
	if len(args) == 1 {
		if info, statErr := os.Stat(args[0]); statErr == nil && info.IsDir() {
			return args[0], nil, nil
		}
	}
	return "", args, nil
}

func renderExtraction(cmd *cobra.Command, result *domain.ExtractionResult, opts domain.ExtractionOptions) {
	if result == nil {
		return
	}

	t := newTable(cmd.OutOrStdout(), "Run", "Mods", "Recipes", "Errors")
	t.AppendRow(table.Row{result.RunID, result.ArchivesProcessed, result.RecipesExtracted, len(result.Errors)})
	t.Render()

	if opts.DryRun {
		cmd.Println("Dry run: nothing was stored.")
	}

	if len(result.Errors) == 0 {
		return
	}
	cmd.Println()
	cmd.Println("Errors:")
	shown := result.Errors
	if !verboseFlag && len(shown) > maxErrorsShown {
		shown = shown[:maxErrorsShown]
	}
	for _, e := range shown {
		cmd.Printf("  %s\n", e)
	}
	if hidden := len(result.Errors) - len(shown); hidden > 0 {
		cmd.Printf("  ... and %d more (use --verbose to list all)\n", hidden)
	}
}
