package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version number",
	Annotations: map[string]string{skipBootstrap: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		if jsonFlag {
			_ = printJSON(cmd, map[string]string{"version": version})
			return
		}
		cmd.Printf("craftdex version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
