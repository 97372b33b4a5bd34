package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lifeos/internal/flagx"
	"github.com/dmitrijs2005/lifeos/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify timeouts either as
// strings like "15s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	DatabasePath       string         `json:"database_path"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies known non-empty fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	fileName := flagx.JsonConfigFlags()

	if fileName == "" {
		return
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		panic(err)
	}

	parsed := &JsonConfig{}
	if err := json.Unmarshal(data, parsed); err != nil {
		panic(err)
	}

	if parsed.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = parsed.ServerEndpointAddr
	}
	if parsed.DatabasePath != "" {
		cfg.DatabasePath = parsed.DatabasePath
	}
	if parsed.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = parsed.RequestTimeout.Duration
	}
}
