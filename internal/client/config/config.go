package config

import "time"

// Config holds runtime settings for the vbank CLI.
//
// Fields:
//   - APIBaseURL: base URL of the vbank HTTP API, no trailing slash.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabaseDSN: sqlite file backing the local session mirror.
//   - NoticeDuration: how long inline notices stay on screen.
//   - RegisterRedirectDelay: pause on the registration success notice before
//     returning to the login screen.
type Config struct {
	APIBaseURL            string
	RequestTimeout        time.Duration
	DatabaseDSN           string
	NoticeDuration        time.Duration
	RegisterRedirectDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "vbank.db"
	c.NoticeDuration = 5 * time.Second
	c.RegisterRedirectDelay = 2 * time.Second
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
