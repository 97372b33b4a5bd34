package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", ":9090", "-n", "notion-token", "-b", "db-id",
			"-o", "sk-test", "-m", "gpt-4o-mini", "-t", "10",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddr:     ":9090",
				NotionKey:        "notion-token",
				NotionDatabaseID: "db-id",
				OpenAIKey:        "sk-test",
				OpenAIModel:      "gpt-4o-mini",
				RequestTimeout:   10 * time.Second,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
