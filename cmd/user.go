package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/perchhub/perch-config/internal/document"
	"github.com/perchhub/perch-config/internal/normalize"
	"github.com/perchhub/perch-config/internal/user"
)

// Swapped in tests.
var (
	ensureUser      = user.EnsureUser
	removeUser      = user.RemoveUser
	ensureGroup     = user.EnsureGroup
	ensureUserGroup = user.EnsureUserGroup
)

func init() {
	RootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userRemoveCmd)
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Provision system accounts for hub users",
	Long: `Manages the system accounts backing hub users.

A hub username is mapped to its system username by prepending the
configured username prefix; when hashing is enabled, over-long names are
squeezed under the useradd length limit. The prefix and the hash toggle
come from settings.toml or the PERCH_USERNAME_PREFIX and
PERCH_HASH_USERNAME environment variables.

Examples:
  perch-config user add ada
  perch-config user remove ada`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create the system account for a hub user",
	Long: `Creates the system account backing a hub user.

The account is created with a home directory closed to other users. Group
memberships listed for the user under users.extra_user_groups in the
config are applied, creating the groups when absent.

Examples:
  perch-config user add ada`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		systemName := normalize.SystemUsername(settings.UsernamePrefix, username, settings.HashUsername)
		Logger.Debugf("System username for %s is %s", username, systemName)

		if err := ensureUser(systemName); err != nil {
			return err
		}

		doc, err := newStore().Load()
		if err != nil {
			return err
		}
		for _, group := range extraGroupsFor(doc, username) {
			Logger.Infof("Adding %s to group %s", systemName, group)
			if err := ensureGroup(group); err != nil {
				return err
			}
			if err := ensureUserGroup(systemName, group); err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" Created system user "+systemName)
		return nil
	},
}

var userRemoveCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Remove the system account of a hub user",
	Long: `Removes the system account backing a hub user, if it exists.

Examples:
  perch-config user remove ada`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		systemName := normalize.SystemUsername(settings.UsernamePrefix, username, settings.HashUsername)
		Logger.Debugf("System username for %s is %s", username, systemName)

		if err := removeUser(systemName); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" Removed system user "+systemName)
		return nil
	},
}

// extraGroupsFor returns the groups under users.extra_user_groups whose
// member list names the hub username, sorted for deterministic application.
func extraGroupsFor(doc document.Mapping, username string) []string {
	users, ok := doc["users"].(document.Mapping)
	if !ok {
		return nil
	}
	extra, ok := users["extra_user_groups"].(document.Mapping)
	if !ok {
		return nil
	}

	var groups []string
	for group, members := range extra {
		list, ok := members.(document.List)
		if !ok {
			continue
		}
		for _, member := range list {
			if s, ok := member.(document.Scalar); ok && s.Value == username {
				groups = append(groups, group)
				break
			}
		}
	}
	sort.Strings(groups)
	return groups
}
