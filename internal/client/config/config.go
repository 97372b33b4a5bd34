package config

import "time"

// Config holds runtime settings for the LifeOS CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the archive endpoint. Empty means
//     archiving is not configured; the archive command reports that instead
//     of attempting a request.
//   - DatabasePath: path to the local SQLite file.
//   - RequestTimeout: per-request timeout for archive submissions.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = ""
	c.DatabasePath = "lifeos.db"
	c.RequestTimeout = 15 * time.Second
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
