// Package config holds runtime settings for the Payego CLI.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the Payego CLI.
//
// Fields:
//   - APIBaseURL: base URL of the Payego HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - DataDir: directory holding the token file and the snapshot cache.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DataDir        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.DataDir = defaultDataDir()
}

// defaultDataDir resolves $XDG_CONFIG_HOME/payego, falling back to
// ~/.config/payego, and to the working directory as a last resort.
func defaultDataDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "payego")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "payego-data"
	}
	return filepath.Join(home, ".config", "payego")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
