// Package config loads and stores CLI configuration.
//
// Settings come from three layers, highest priority first: GROCER_* environment
// variables, the JSON file in the XDG config dir, and built-in defaults.
// Secrets never live here; the session cookie goes to the OS keychain.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"grocer/cli/internal/xdg"

	"github.com/sethvargo/go-envconfig"
)

// DefaultAPIURL is used when neither the environment nor the config file
// names an API base URL.
const DefaultAPIURL = "http://localhost:8080"

// DefaultLogLevel keeps the terminal quiet unless asked otherwise.
const DefaultLogLevel = "warn"

// Config holds non-sensitive CLI settings.
type Config struct {
	APIURL    string `json:"api_url"    env:"GROCER_API_URL, overwrite"`
	LogLevel  string `json:"log_level"  env:"GROCER_LOG_LEVEL, overwrite"`
	LogPretty bool   `json:"log_pretty" env:"GROCER_LOG_PRETTY, overwrite"`
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file (missing file is fine), applies environment
// overrides and fills defaults.
func Load(ctx context.Context) (Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	c, err := readFile()
	if err != nil {
		return c, err
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &c,
		Lookuper: lookuper,
	}); err != nil {
		return c, fmt.Errorf("config: read env: %w", err)
	}

	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// readFile returns only what the config file holds. A missing file is empty.
func readFile() (Config, error) {
	var c Config
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("config: parse %s: %w", p, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return c, fmt.Errorf("config: read %s: %w", p, err)
	}
	return c, nil
}

// Update applies fn to the file layer only and saves it, so environment
// overrides are never persisted.
func Update(fn func(*Config)) error {
	c, err := readFile()
	if err != nil {
		return err
	}
	fn(&c)
	return Save(c)
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
