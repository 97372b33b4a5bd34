package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/lifeos/internal/buildinfo"
	"github.com/dmitrijs2005/lifeos/internal/client/cli"
	"github.com/dmitrijs2005/lifeos/internal/client/config"
	"github.com/dmitrijs2005/lifeos/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logFile, err := os.OpenFile("lifeos.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	var w io.Writer = os.Stderr
	if err == nil {
		defer logFile.Close()
		w = logFile
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(w, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
