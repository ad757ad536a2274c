package cmd

import (
	"github.com/spf13/cobra"

	"github.com/perchhub/perch-config/internal/document"
)

func init() {
	RootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <key-path> <value>",
	Short: "Set a configuration property",
	Long: `Sets the property at a dot-separated key path.

Intermediate sections are created as needed; whatever was previously
stored below a non-section intermediate is replaced. Values are typed by
shape: digits become integers, digits with a decimal point become floats,
"true"/"false" become booleans, and everything else stays a string.

Examples:
  perch-config set auth.type oauth
  perch-config set http.port 8000
  perch-config set https.enabled true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, value := args[0], document.ParseValue(args[1])
		Logger.Debugf("Setting %s to %v (%T)", keyPath, value.Value, value.Value)

		if err := newStore().Set(keyPath, value, validate); err != nil {
			return writeError(err)
		}
		Logger.Infof("Set %s", keyPath)
		return nil
	},
}
