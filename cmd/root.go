package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/perchhub/perch-config/internal/configs"
	logger "github.com/perchhub/perch-config/internal/logging"
)

var (
	configPath string
	validate   bool
	noValidate bool
	verbose    bool
	debug      bool

	// Logger is shared by all subcommands; configured in PersistentPreRunE.
	Logger logger.Logger

	settings *configs.Settings

	// RootCmd is the perch-config command.
	RootCmd = &cobra.Command{
		Use:   "perch-config",
		Short: "Manage the Perch hub configuration",
		Long: `perch-config reads and edits the Perch configuration file.

The config is a YAML document addressed with dot-separated key paths.
Writes take an exclusive lock on the config file and validate the result
against the Perch config schema before anything touches the disk.

Examples:
  # Show the whole configuration
  perch-config show

  # Show one section
  perch-config show auth

  # Set a property
  perch-config set auth.type oauth

  # Remove a property
  perch-config unset limits.memory

  # Manage list properties
  perch-config add-item users.admin ada
  perch-config remove-item users.admin ada

  # Apply the configuration to a running component
  perch-config reload hub

  # Provision the system account for a hub user
  perch-config user add ada`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{Verbose: verbose, Debug: debug}
			Logger.Debugf("Initializing perch-config with verbose=%t, debug=%t", verbose, debug)

			s, err := configs.LoadSettings()
			if err != nil {
				return err
			}
			settings = s

			if configPath == "" {
				configPath = settings.ConfigFile
			}
			if noValidate {
				validate = false
			}
			Logger.Debugf("Using config file %s (validate=%t)", configPath, validate)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation prints help and exits zero.
			return cmd.Help()
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "path to the Perch config.yaml file (default <install-prefix>/config/config.yaml)")
	RootCmd.PersistentFlags().BoolVar(&validate, "validate", true, "validate the config against the schema before writing")
	RootCmd.PersistentFlags().BoolVar(&noValidate, "no-validate", false, "do not validate the config before writing")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

// newStore builds the Store for this invocation.
func newStore() *configs.Store {
	store := configs.NewStore(configPath)
	store.LockTimeout = settings.LockTimeout
	return store
}

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetRootState resets all command global variables to their default
// values for testing.
func ResetRootState() {
	configPath = ""
	validate = true
	noValidate = false
	verbose = false
	debug = false
	settings = nil
	resetFlagState(RootCmd)
}

// resetFlagState clears the Changed marker on all flags to prevent test
// pollution between command invocations.
func resetFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlagState(sub)
	}
}
