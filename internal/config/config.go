package config

import "time"

// Config holds runtime settings for the Vitality session shell.
//
// Fields:
//   - LocalStorePath: SQLite DSN/path of the local session record store.
//   - DirectoryDSN: optional Postgres DSN of the credential directory;
//     empty means the seeded in-memory demo directory.
//   - SigningKey: optional key; when set, the durable session record is
//     signed and verified on restore.
//   - SignInLatency / SignOutLatency: simulated round-trip delays.
type Config struct {
	LocalStorePath string
	DirectoryDSN   string
	SigningKey     string
	SignInLatency  time.Duration
	SignOutLatency time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LocalStorePath = "vitality.db"
	c.DirectoryDSN = ""
	c.SigningKey = ""
	c.SignInLatency = time.Second
	c.SignOutLatency = 500 * time.Millisecond
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
