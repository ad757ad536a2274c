package cmd

import (
	"github.com/spf13/cobra"

	"github.com/perchhub/perch-config/internal/document"
)

func init() {
	RootCmd.AddCommand(removeItemCmd)
}

var removeItemCmd = &cobra.Command{
	Use:   "remove-item <key-path> <value>",
	Short: "Remove a value from a list property",
	Long: `Removes the first occurrence of a value from the list at a
dot-separated key path.

The key path must address an existing list containing the value.

Examples:
  perch-config remove-item users.admin ada
  perch-config remove-item https.letsencrypt.domains hub.example.org`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, value := args[0], document.ParseValue(args[1])
		Logger.Debugf("Removing %v from %s", value.Value, keyPath)

		if err := newStore().RemoveItem(keyPath, value, validate); err != nil {
			return writeError(err)
		}
		Logger.Infof("Removed %v from %s", value.Value, keyPath)
		return nil
	},
}
