package config

import "os"

// parseEnv overlays Config with values from environment variables. Only
// variables that are set and non-empty override earlier sources.
//
// Recognized variables:
//
//	NOTION_KEY        — document database integration token
//	NOTION_DB_ID      — target database id
//	OPENAI_API_KEY    — model API key
//	OPENAI_BASE_URL   — model API base URL
func parseEnv(cfg *Config) {
	if v := os.Getenv("NOTION_KEY"); v != "" {
		cfg.NotionKey = v
	}
	if v := os.Getenv("NOTION_DB_ID"); v != "" {
		cfg.NotionDatabaseID = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
}
