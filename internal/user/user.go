// Package user wraps the shell utilities that provision system users and
// groups for the hub. It performs minimal user and group management:
// existence checks through the OS account database, mutations through
// useradd, deluser, groupadd, delgroup, and gpasswd.
//
// Everything here requires root.
package user

import (
	"fmt"
	"os/exec"
	osuser "os/user"
	"slices"
	"strings"
)

// execCommand is swapped out in tests.
var execCommand = exec.Command

func run(name string, args ...string) error {
	out, err := execCommand(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// EnsureUser makes sure a system user exists, creating it with a home
// directory when absent. The home directory is closed to other users.
func EnsureUser(username string) error {
	if _, err := osuser.Lookup(username); err == nil {
		return nil
	}

	if err := run("useradd", "--create-home", username); err != nil {
		return err
	}

	created, err := osuser.Lookup(username)
	if err != nil {
		return fmt.Errorf("looking up created user %s: %w", username, err)
	}
	return run("chmod", "o-rwx", created.HomeDir)
}

// RemoveUser removes a system user if it exists.
func RemoveUser(username string) error {
	if _, err := osuser.Lookup(username); err != nil {
		return nil
	}
	return run("deluser", "--quiet", username)
}

// EnsureGroup makes sure a system group exists.
func EnsureGroup(groupname string) error {
	return run("groupadd", "--force", groupname)
}

// RemoveGroup removes a system group if it exists.
func RemoveGroup(groupname string) error {
	if _, err := osuser.LookupGroup(groupname); err != nil {
		return nil
	}
	return run("delgroup", "--quiet", groupname)
}

// groupsOf returns the names of the groups username belongs to.
func groupsOf(username string) ([]string, error) {
	out, err := execCommand("id", "-nG", username).Output()
	if err != nil {
		return nil, fmt.Errorf("id -nG %s: %w", username, err)
	}
	return strings.Fields(string(out)), nil
}

// EnsureUserGroup makes sure username is a member of groupname. Both must
// already exist.
func EnsureUserGroup(username, groupname string) error {
	groups, err := groupsOf(username)
	if err != nil {
		return err
	}
	if slices.Contains(groups, groupname) {
		return nil
	}
	return run("gpasswd", "--add", username, groupname)
}

// RemoveUserGroup makes sure username is not a member of groupname.
func RemoveUserGroup(username, groupname string) error {
	groups, err := groupsOf(username)
	if err != nil {
		return err
	}
	if !slices.Contains(groups, groupname) {
		return nil
	}
	return run("gpasswd", "--delete", username, groupname)
}
