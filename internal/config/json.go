package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vitality-app/vitality/internal/flagx"
	"github.com/vitality-app/vitality/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify latencies either as strings like "750ms"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	LocalStorePath string         `json:"local_store_path"`
	DirectoryDSN   string         `json:"directory_dsn"`
	SigningKey     string         `json:"signing_key"`
	SignInLatency  timex.Duration `json:"sign_in_latency"`
	SignOutLatency timex.Duration `json:"sign_out_latency"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.LocalStorePath = jc.LocalStorePath
	cfg.DirectoryDSN = jc.DirectoryDSN
	cfg.SigningKey = jc.SigningKey
	cfg.SignInLatency = time.Duration(jc.SignInLatency.Duration)
	cfg.SignOutLatency = time.Duration(jc.SignOutLatency.Duration)
}
