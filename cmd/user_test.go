package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perchhub/perch-config/internal/normalize"
	"github.com/perchhub/perch-config/internal/user"
)

// fakeProvisioning replaces the user-provisioning hooks with recorders so
// the CLI tests never touch system accounts.
func fakeProvisioning(t *testing.T) *[][]string {
	t.Helper()
	var calls [][]string
	ensureUser = func(name string) error {
		calls = append(calls, []string{"ensure-user", name})
		return nil
	}
	removeUser = func(name string) error {
		calls = append(calls, []string{"remove-user", name})
		return nil
	}
	ensureGroup = func(group string) error {
		calls = append(calls, []string{"ensure-group", group})
		return nil
	}
	ensureUserGroup = func(name, group string) error {
		calls = append(calls, []string{"ensure-user-group", name, group})
		return nil
	}
	t.Cleanup(func() {
		ensureUser = user.EnsureUser
		removeUser = user.RemoveUser
		ensureGroup = user.EnsureGroup
		ensureUserGroup = user.EnsureUserGroup
	})
	return &calls
}

func TestUserAddPrefixesUsername(t *testing.T) {
	testConfigPath(t)
	calls := fakeProvisioning(t)

	out, err := runCommand(t, "user", "add", "ada")
	require.NoError(t, err)
	assert.Contains(t, out, "perch-ada")

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"ensure-user", "perch-ada"}, (*calls)[0])
}

func TestUserAddAppliesExtraUserGroups(t *testing.T) {
	cfg := testConfigPath(t)
	calls := fakeProvisioning(t)

	config := "users:\n  extra_user_groups:\n    researchers:\n      - ada\n    ops:\n      - grace\n"
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg), 0o755))
	require.NoError(t, os.WriteFile(cfg, []byte(config), 0o644))

	_, err := runCommand(t, "user", "add", "ada")
	require.NoError(t, err)

	// Only the group that lists ada, and the membership after the group.
	require.Len(t, *calls, 3)
	assert.Equal(t, []string{"ensure-user", "perch-ada"}, (*calls)[0])
	assert.Equal(t, []string{"ensure-group", "researchers"}, (*calls)[1])
	assert.Equal(t, []string{"ensure-user-group", "perch-ada", "researchers"}, (*calls)[2])
}

func TestUserAddHashesLongUsernames(t *testing.T) {
	testConfigPath(t)
	calls := fakeProvisioning(t)

	long := strings.Repeat("a", 40)
	_, err := runCommand(t, "user", "add", long)
	require.NoError(t, err)

	want := normalize.SystemUsername("perch-", long, true)
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"ensure-user", want}, (*calls)[0])
	assert.Less(t, len(want), 33)
}

func TestUserAddHonorsSettingsOverrides(t *testing.T) {
	testConfigPath(t)
	calls := fakeProvisioning(t)
	t.Setenv("PERCH_USERNAME_PREFIX", "hub-")
	t.Setenv("PERCH_HASH_USERNAME", "false")

	long := strings.Repeat("b", 36)
	_, err := runCommand(t, "user", "add", long)
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"ensure-user", normalize.SystemUsername("hub-", long, false)}, (*calls)[0])
	assert.True(t, strings.HasPrefix((*calls)[0][1], "hub-"))
}

func TestUserRemove(t *testing.T) {
	testConfigPath(t)
	calls := fakeProvisioning(t)

	out, err := runCommand(t, "user", "remove", "ada")
	require.NoError(t, err)
	assert.Contains(t, out, "perch-ada")

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"remove-user", "perch-ada"}, (*calls)[0])
}

func TestUserBareShowsHelp(t *testing.T) {
	testConfigPath(t)

	out, err := runCommand(t, "user")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestUserAddRequiresAUsername(t *testing.T) {
	testConfigPath(t)
	calls := fakeProvisioning(t)

	_, err := runCommand(t, "user", "add")
	require.Error(t, err)
	assert.Empty(t, *calls)
}
