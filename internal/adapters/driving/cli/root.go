// Package cli provides the craftdex command line interface.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/craftdex/craftdex/internal/core/ports/driving"
	"github.com/craftdex/craftdex/internal/logger"
)

// skipBootstrap marks commands that run without services.
const skipBootstrap = "craftdex/skip-bootstrap"

var (
	version = "dev"

	archiveService    driving.ArchiveService
	extractionService driving.ExtractionService
	recipeService     driving.RecipeService
	settingsService   driving.SettingsService
	watchService      driving.WatchService
	configPath        string

	bootstrap Bootstrap
	cleanup   func()

	verboseFlag   bool
	jsonFlag      bool
	configDirFlag string
)

// Services holds the driving ports the commands call.
type Services struct {
	Archives   driving.ArchiveService
	Extraction driving.ExtractionService
	Recipes    driving.RecipeService
	Settings   driving.SettingsService
	Watch      driving.WatchService

	// ConfigPath is the settings file shown by "config path".
	ConfigPath string
}

// Options are the global flags passed to the bootstrap function.
type Options struct {
	ConfigDir string
	Verbose   bool
}

// Bootstrap wires services for the given options. The returned cleanup
// runs after the command finishes.
type Bootstrap func(ctx context.Context, opts Options) (Services, func(), error)

var rootCmd = &cobra.Command{
	Use:   "craftdex",
	Short: "Extract and query crafting recipes from game mod archives",
	Long: `craftdex scans a folder of mod archives, extracts every crafting recipe
they declare and stores them in a local database for querying.

Run "craftdex extract" to build the database, then query it with
"craftdex search", "craftdex list" or the interactive "craftdex tui".`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default $CRAFTDEX_HOME or ~/.craftdex)")
}

// SetServices installs the services used by commands.
func SetServices(s Services) {
	archiveService = s.Archives
	extractionService = s.Extraction
	recipeService = s.Recipes
	settingsService = s.Settings
	watchService = s.Watch
	configPath = s.ConfigPath
}

// SetBootstrap registers the function that wires services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command and the MCP server.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx. Command output goes to stdout.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if cmd.Annotations[skipBootstrap] == "true" || bootstrap == nil {
		return nil
	}

	services, done, err := bootstrap(cmd.Context(), Options{
		ConfigDir: configDirFlag,
		Verbose:   verboseFlag,
	})
	if err != nil {
		return err
	}
	SetServices(services)
	cleanup = done
	return nil
}

func requireRecipes() error {
	if recipeService == nil {
		return errors.New("recipe service not configured")
	}
	return nil
}

func requireArchives() error {
	if archiveService == nil {
		return errors.New("archive service not configured")
	}
	return nil
}

func requireExtraction() error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}
	return nil
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}
