// Package config handles configuration for the agent server component,
// including defaults, JSON overlay, environment variables, and command-line
// flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/common"
)

// Config holds runtime settings for the LifeOS agent server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - NotionKey: integration token for the document database.
//   - NotionDatabaseID: target database for created pages.
//   - NotionBaseURL: document database API base URL.
//   - OpenAIKey: API key for the classification model.
//   - OpenAIBaseURL: model API base URL (override for proxies and tests).
//   - OpenAIModel: chat model used for classification.
//   - RequestTimeout: per-request timeout for upstream calls.
type Config struct {
	EndpointAddr     string
	NotionKey        string
	NotionDatabaseID string
	NotionBaseURL    string
	OpenAIKey        string
	OpenAIBaseURL    string
	OpenAIModel      string
	RequestTimeout   time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// Secrets have no defaults; they must come from the environment, JSON, or flags.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.NotionBaseURL = "https://api.notion.com"
	c.OpenAIBaseURL = "https://api.openai.com"
	c.OpenAIModel = "gpt-4o"
	c.RequestTimeout = 30 * time.Second
}

// Validate reports missing required settings. The server refuses to start
// rather than failing on the first request.
func (c *Config) Validate() error {
	if c.NotionKey == "" {
		return fmt.Errorf("%w: notion key is not set", common.ErrConfiguration)
	}
	if c.NotionDatabaseID == "" {
		return fmt.Errorf("%w: notion database id is not set", common.ErrConfiguration)
	}
	if c.OpenAIKey == "" {
		return fmt.Errorf("%w: openai key is not set", common.ErrConfiguration)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
