package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/craftdex/craftdex/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change craftdex settings stored in config.toml.

Keys:
  mods.dir                    default mods folder
  mods.extensions             archive extensions, comma separated
  extraction.batch_size       recipes per store transaction
  extraction.progress_every   progress cadence in recipes
  extraction.max_entry_bytes  largest entry read from an archive
  extraction.replace          clear stored recipes before extracting
  storage.data_dir            database and lock directory
  log.file                    JSON log file`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Println(configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// settingValues renders settings as key/value strings.
func settingValues(s *domain.AppSettings) map[string]string {
	return map[string]string{
		"mods.dir":                   s.Mods.Dir,
		"mods.extensions":            strings.Join(s.Mods.Extensions, ","),
		"extraction.batch_size":      strconv.Itoa(s.Extraction.BatchSize),
		"extraction.progress_every":  strconv.Itoa(s.Extraction.ProgressEvery),
		"extraction.max_entry_bytes": strconv.FormatInt(s.Extraction.MaxEntryBytes, 10),
		"extraction.replace":         strconv.FormatBool(s.Extraction.Replace),
		"storage.data_dir":           s.Storage.DataDir,
		"log.file":                   s.Log.File,
	}
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	values := settingValues(settings)
	if jsonFlag {
		return printJSON(cmd, values)
	}

	t := newTable(cmd.OutOrStdout(), "Key", "Value")
	for _, key := range settingsService.Keys() {
		value := values[key]
		if value == "" {
			value = "(not set)"
		}
		t.AppendRow(table.Row{key, value})
	}
	t.Render()
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	value, ok := settingValues(settings)[args[0]]
	if !ok {
		return fmt.Errorf("unknown setting %q (valid: %s)", args[0], strings.Join(settingsService.Keys(), ", "))
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s set to %s\n", args[0], args[1])
	return nil
}
