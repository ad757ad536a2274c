package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("PERCH_INSTALL_PREFIX", "")
	t.Setenv("PERCH_USERNAME_PREFIX", "")
	t.Setenv("PERCH_HASH_USERNAME", "")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, DefaultInstallPrefix, s.InstallPrefix)
	assert.Equal(t, filepath.Join(DefaultInstallPrefix, "config", "config.yaml"), s.ConfigFile)
	assert.Equal(t, filepath.Join(DefaultInstallPrefix, "state"), s.StateDir)
	assert.Equal(t, DefaultUsernamePrefix, s.UsernamePrefix)
	assert.True(t, s.HashUsername)
	assert.Equal(t, DefaultLockTimeout, s.LockTimeout)
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	prefix := t.TempDir()
	t.Setenv("PERCH_INSTALL_PREFIX", prefix)
	t.Setenv("PERCH_USERNAME_PREFIX", "hub-")
	t.Setenv("PERCH_HASH_USERNAME", "False")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, prefix, s.InstallPrefix)
	assert.Equal(t, filepath.Join(prefix, "hub"), s.HubPrefix)
	assert.Equal(t, filepath.Join(prefix, "user"), s.UserPrefix)
	assert.Equal(t, filepath.Join(prefix, "config", "config.yaml"), s.ConfigFile)
	assert.Equal(t, "hub-", s.UsernamePrefix)
	assert.False(t, s.HashUsername)
}

func TestLoadSettingsTOMLOverride(t *testing.T) {
	prefix := t.TempDir()
	t.Setenv("PERCH_INSTALL_PREFIX", prefix)
	t.Setenv("PERCH_USERNAME_PREFIX", "")
	t.Setenv("PERCH_HASH_USERNAME", "")

	configDir := filepath.Join(prefix, "config")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	settings := `
username_prefix = "lab-"
hash_username = false
lock_timeout = "250ms"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.toml"), []byte(settings), 0o644))

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "lab-", s.UsernamePrefix)
	assert.False(t, s.HashUsername)
	assert.Equal(t, 250*time.Millisecond, s.LockTimeout)
}

func TestLoadSettingsEnvironmentBeatsTOML(t *testing.T) {
	prefix := t.TempDir()
	t.Setenv("PERCH_INSTALL_PREFIX", prefix)
	t.Setenv("PERCH_USERNAME_PREFIX", "env-")
	t.Setenv("PERCH_HASH_USERNAME", "")

	configDir := filepath.Join(prefix, "config")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.toml"),
		[]byte(`username_prefix = "toml-"`), 0o644))

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "env-", s.UsernamePrefix)
}

func TestLoadSettingsBadTOML(t *testing.T) {
	prefix := t.TempDir()
	t.Setenv("PERCH_INSTALL_PREFIX", prefix)

	configDir := filepath.Join(prefix, "config")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.toml"),
		[]byte(`lock_timeout = "not-a-duration"`), 0o644))

	_, err := LoadSettings()
	assert.Error(t, err)
}
