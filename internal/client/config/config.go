// Package config holds runtime settings for the boletera CLI, loaded in
// layers: defaults, then a JSON file, then environment variables (with .env
// support), then command-line flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - BaseURL: origin of the ticketing backend, no trailing slash.
//   - DatabasePath: path of the local SQLite file mirroring the session.
//   - RequestTimeout: fixed ceiling applied to every backend request.
type Config struct {
	BaseURL        string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.DatabasePath = "boletera.db"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
