// Package config loads runtime configuration for the Vitality session shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path/DSN of the local session record store
//	-pg string  Postgres DSN of the credential directory
//	-k string   signing key for the durable session record
//	-l int      simulated sign-in latency (milliseconds)
//	-o int      simulated sign-out latency (milliseconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for latencies, so values can be either
// strings like "750ms" or integer nanoseconds:
//
//	{
//	  "local_store_path": "vitality.db",
//	  "directory_dsn": "",
//	  "signing_key": "",
//	  "sign_in_latency": "1s",
//	  "sign_out_latency": "500ms"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the shell
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
