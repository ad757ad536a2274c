package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults for a standard Perch install.
const (
	DefaultInstallPrefix  = "/opt/perch"
	DefaultUsernamePrefix = "perch-"
	DefaultLockTimeout    = 1 * time.Second
)

// Settings holds the process-wide configuration of perch-config itself,
// resolved once at startup and passed explicitly into constructors.
type Settings struct {
	// InstallPrefix is the root of the Perch install tree.
	InstallPrefix string

	// HubPrefix is the hub environment directory.
	HubPrefix string

	// UserPrefix is the user environment directory.
	UserPrefix string

	// StateDir holds runtime state for the hub and proxy.
	StateDir string

	// ConfigDir holds the config file, its lock marker, and settings.toml.
	ConfigDir string

	// ConfigFile is the path of the YAML config document.
	ConfigFile string

	// UsernamePrefix is prepended to hub usernames before system user creation.
	UsernamePrefix string

	// HashUsername enables hashing of over-long system usernames.
	HashUsername bool

	// LockTimeout bounds the wait for the config write lock.
	LockTimeout time.Duration
}

// settingsFile is the optional settings.toml override, read from ConfigDir.
// Absent fields keep their defaults.
type settingsFile struct {
	UsernamePrefix *string `toml:"username_prefix"`
	HashUsername   *bool   `toml:"hash_username"`
	LockTimeout    *string `toml:"lock_timeout"`
}

// LoadSettings resolves the process settings: built-in defaults, then the
// optional settings.toml next to the config file, then PERCH_* environment
// variables, highest precedence last.
func LoadSettings() (*Settings, error) {
	prefix := os.Getenv("PERCH_INSTALL_PREFIX")
	if prefix == "" {
		prefix = DefaultInstallPrefix
	}

	s := &Settings{
		InstallPrefix:  prefix,
		HubPrefix:      filepath.Join(prefix, "hub"),
		UserPrefix:     filepath.Join(prefix, "user"),
		StateDir:       filepath.Join(prefix, "state"),
		ConfigDir:      filepath.Join(prefix, "config"),
		ConfigFile:     filepath.Join(prefix, "config", "config.yaml"),
		UsernamePrefix: DefaultUsernamePrefix,
		HashUsername:   true,
		LockTimeout:    DefaultLockTimeout,
	}

	if err := s.applySettingsFile(filepath.Join(s.ConfigDir, "settings.toml")); err != nil {
		return nil, err
	}

	if v := os.Getenv("PERCH_USERNAME_PREFIX"); v != "" {
		s.UsernamePrefix = v
	}
	if v := os.Getenv("PERCH_HASH_USERNAME"); v != "" {
		s.HashUsername = strings.EqualFold(v, "true")
	}

	return s, nil
}

func (s *Settings) applySettingsFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var file settingsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if file.UsernamePrefix != nil {
		s.UsernamePrefix = *file.UsernamePrefix
	}
	if file.HashUsername != nil {
		s.HashUsername = *file.HashUsername
	}
	if file.LockTimeout != nil {
		d, err := time.ParseDuration(*file.LockTimeout)
		if err != nil {
			return fmt.Errorf("reading %s: invalid lock_timeout: %w", path, err)
		}
		s.LockTimeout = d
	}

	return nil
}
