// ABOUTME: Fittrack configuration with mode selection.
// ABOUTME: JSON config file overlaid by environment variables.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config stores fittrack configuration. File values come from
// config.json under the XDG config directory; environment variables
// override the file.
type Config struct {
	// DatabaseURL is the Postgres connection string for authenticated
	// mode. Empty means guest mode with the in-memory demo data.
	DatabaseURL string `json:"database_url,omitempty" env:"DATABASE_URL"`

	// RedisURL is the Redis connection string used for cross-session
	// change notifications. Optional even in authenticated mode: with
	// no Redis the app still works, it just never hears remote writes.
	RedisURL string `json:"redis_url,omitempty" env:"REDIS_URL"`

	// DebounceMS overrides the change-event batching window in
	// milliseconds. Zero keeps the built-in default.
	DebounceMS int `json:"debounce_ms,omitempty" env:"FITTRACK_DEBOUNCE_MS"`
}

// Remote reports whether a database is configured. Without one the
// app runs in guest mode against seeded in-memory data.
func (c *Config) Remote() bool {
	return c.DatabaseURL != ""
}

// Debounce returns the configured batching window, or zero to accept
// the controller default.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// Dir returns the fittrack config directory.
func Dir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittrack")
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads config from disk, then applies environment overrides. A
// missing file is not an error; the environment alone can configure
// everything.
func Load() (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(GetConfigPath())
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
