// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// ConfigEnv names the environment variable that overrides the config path.
const ConfigEnv = "TUICOUNT_CONFIG"

// DefaultConfigPath returns the TOML config path, honouring ConfigEnv.
func DefaultConfigPath() string {
	if v := os.Getenv(ConfigEnv); v != "" {
		return v
	}
	return filepath.Join(XDGConfigHome(), "tuicount", "config.toml")
}
