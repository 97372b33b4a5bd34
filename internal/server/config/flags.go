package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-n string   notion integration token
//	-b string   notion database id
//	-o string   openai API key
//	-m string   classification model name
//	-t int      upstream request timeout, seconds
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in seconds and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-b", "-o", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.NotionKey, "n", config.NotionKey, "notion integration token")
	fs.StringVar(&config.NotionDatabaseID, "b", config.NotionDatabaseID, "notion database id")
	fs.StringVar(&config.OpenAIKey, "o", config.OpenAIKey, "openai API key")
	fs.StringVar(&config.OpenAIModel, "m", config.OpenAIModel, "classification model name")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "upstream request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
