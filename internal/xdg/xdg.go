// Package xdg resolves XDG Base Directory paths for grocer.
//
// Directories are created on first use with private permissions. When the
// XDG environment variables are unset the usual ~/.config and ~/.local/state
// fallbacks apply.
package xdg

import (
	"os"
	"path/filepath"
)

// appDir is the per-application subdirectory under each XDG base.
const appDir = "grocer"

// ConfigDir returns the XDG config directory for grocer.
// It falls back to ~/.config/grocer when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return resolve("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for grocer.
// It falls back to ~/.local/state/grocer when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return resolve("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func resolve(envKey, homeRel string) (string, error) {
	base := os.Getenv(envKey)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
