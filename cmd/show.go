package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [key-path]",
	Short: "Show the current configuration",
	Long: `Prints the current configuration as YAML.

With a key path, prints only the addressed section or value.

Examples:
  # Show everything
  perch-config show

  # Show the auth section
  perch-config show auth

  # Show a single value
  perch-config show auth.type`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath := ""
		if len(args) == 1 {
			keyPath = args[0]
		}
		Logger.Infof("Showing config from %s", configPath)

		// show is a pure read: no locking, no validation.
		return newStore().Show(cmd.OutOrStdout(), keyPath)
	},
}
