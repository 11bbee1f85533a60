// Package config loads the TOML configuration for both streamchatd and
// streamchatc and resolves platform config/data directories. CLI flag
// values are overlaid on the loaded config by the cmd binaries, not here.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "streamchat"

// ConfigDir returns the XDG config directory for this application,
// honoring $XDG_CONFIG_HOME and falling back to ~/.config.
func ConfigDir() (string, error) {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDir), nil
}

// DataDir returns the XDG data directory for this application, honoring
// $XDG_DATA_HOME and falling back to ~/.local/share.
func DataDir() (string, error) {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, appDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appDir), nil
}
