package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lifeos/internal/flagx"
	"github.com/dmitrijs2005/lifeos/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify timeouts either as
// strings like "30s" or as integer nanoseconds.
type JsonConfig struct {
	EndpointAddr     string         `json:"endpoint_addr"`
	NotionKey        string         `json:"notion_key"`
	NotionDatabaseID string         `json:"notion_db_id"`
	NotionBaseURL    string         `json:"notion_base_url"`
	OpenAIKey        string         `json:"openai_api_key"`
	OpenAIBaseURL    string         `json:"openai_base_url"`
	OpenAIModel      string         `json:"openai_model"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. When no file is given the function returns without
// touching cfg. Panics on read or unmarshal errors.
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

	if parsed.EndpointAddr != "" {
		cfg.EndpointAddr = parsed.EndpointAddr
	}
	if parsed.NotionKey != "" {
		cfg.NotionKey = parsed.NotionKey
	}
	if parsed.NotionDatabaseID != "" {
		cfg.NotionDatabaseID = parsed.NotionDatabaseID
	}
	if parsed.NotionBaseURL != "" {
		cfg.NotionBaseURL = parsed.NotionBaseURL
	}
	if parsed.OpenAIKey != "" {
		cfg.OpenAIKey = parsed.OpenAIKey
	}
	if parsed.OpenAIBaseURL != "" {
		cfg.OpenAIBaseURL = parsed.OpenAIBaseURL
	}
	if parsed.OpenAIModel != "" {
		cfg.OpenAIModel = parsed.OpenAIModel
	}
	if parsed.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = parsed.RequestTimeout.Duration
	}
}
