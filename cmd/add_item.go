package cmd

import (
	"github.com/spf13/cobra"

	"github.com/perchhub/perch-config/internal/document"
)

func init() {
	RootCmd.AddCommand(addItemCmd)
}

var addItemCmd = &cobra.Command{
	Use:   "add-item <key-path> <value>",
	Short: "Add a value to a list property",
	Long: `Appends a value to the list at a dot-separated key path.

The list is created when absent; a non-list value at the key path is
replaced by a fresh list. Values are typed the same way as for set.

Examples:
  perch-config add-item users.admin ada
  perch-config add-item https.letsencrypt.domains hub.example.org`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, value := args[0], document.ParseValue(args[1])
		Logger.Debugf("Adding %v to %s", value.Value, keyPath)

		if err := newStore().AddItem(keyPath, value, validate); err != nil {
			return writeError(err)
		}
		Logger.Infof("Added %v to %s", value.Value, keyPath)
		return nil
	},
}
