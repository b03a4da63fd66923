package config

import "time"

// Config holds runtime settings for the account client.
//
// Fields:
//   - ServerEndpointURL: base URL of the account API.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabaseDSN: path of the local sqlite store.
//   - TokenTTL: fallback lifetime for persisted tokens without an exp claim.
type Config struct {
	ServerEndpointURL string
	RequestTimeout    time.Duration
	DatabaseDSN       string
	TokenTTL          time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "account.db"
	c.TokenTTL = 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
