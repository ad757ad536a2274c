package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(unsetCmd)
}

var unsetCmd = &cobra.Command{
	Use:   "unset <key-path>",
	Short: "Unset a configuration property",
	Long: `Removes the property at a dot-separated key path.

The key path must exist. Sections left empty by the removal are pruned
all the way up, so unsetting the last property of a section removes the
section too.

Examples:
  perch-config unset limits.memory
  perch-config unset https.letsencrypt.email`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath := args[0]
		Logger.Debugf("Unsetting %s", keyPath)

		if err := newStore().Unset(keyPath, validate); err != nil {
			return writeError(err)
		}
		Logger.Infof("Unset %s", keyPath)
		return nil
	},
}
