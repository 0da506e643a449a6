package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "List mod archives in a folder",
	Long: `Lists the mod archives directly inside a folder, sorted by name.
Without an argument the configured mods.dir is scanned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

var contentsCmd = &cobra.Command{
	Use:   "contents <archive> [entry]",
	Short: "List recipe entries inside a mod archive",
	Long: `Lists the recipe entries of a mod archive. Given an entry path as well,
prints that entry's raw content instead.`,
	Args: cobra.RangeArgs(1, 2),
	RunE:  runContents,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(contentsCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := requireArchives(); err != nil {
		return err
	}

	dir, err := resolveModsDir(args)
	if err != nil {
		return err
	}

	archives, err := archiveService.ScanFolder(cmd.Context(), dir)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if jsonFlag {
		return printJSON(cmd, archives)
	}
	if len(archives) == 0 {
		cmd.Printf("No mod archives found in %s.\n", dir)
		return nil
	}

	t := newTable(cmd.OutOrStdout(), "Archive", "Size", "Path")
	var total int64
	for _, a := range archives {
		t.AppendRow(table.Row{a.Name, humanize.Bytes(uint64(a.Size)), a.Path})
		total += a.Size
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d archives", len(archives)), humanize.Bytes(uint64(total)), ""})
	t.Render()
	return nil
}

func runContents(cmd *cobra.Command, args []string) error {
	if err := requireArchives(); err != nil {
		return err
	}

	if len(args) == 2 {
		data, err := archiveService.ReadEntry(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to read entry: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	entries, err := archiveService.Contents(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	if jsonFlag {
		return printJSON(cmd, entries)
	}
	if len(entries) == 0 {
		cmd.Println("No recipe entries found.")
		return nil
	}
	for _, e := range entries {
		cmd.Println(e.Name)
	}
	cmd.Printf("\n%d recipe entries\n", len(entries))
	return nil
}

// resolveModsDir returns the folder argument or the configured mods.dir.
func resolveModsDir(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return "", fmt.Errorf("failed to get settings: %w", err)
		}
		if settings.Mods.Dir != "" {
			return settings.Mods.Dir, nil
		}
	}
	return "", errors.New("no mods folder given and mods.dir is not set (craftdex config set mods.dir <path>)")
}
