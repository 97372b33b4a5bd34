// Package server initializes and runs the agent application server.
// It validates configuration up front, wires the classification and document
// database clients, handles graceful shutdown, and starts the HTTP server
// for archive requests.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/logging"
	"github.com/dmitrijs2005/lifeos/internal/server/config"
	"github.com/dmitrijs2005/lifeos/internal/server/llm"
	"github.com/dmitrijs2005/lifeos/internal/server/notion"
	"github.com/dmitrijs2005/lifeos/internal/server/services"
	"github.com/dmitrijs2005/lifeos/internal/server/web"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	archiver *services.Archiver
}

// NewApp wires the server. A missing key or database id fails here, before
// any request is accepted.
func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}

	classifier := llm.NewClient(c.OpenAIBaseURL, c.OpenAIKey, c.OpenAIModel, httpClient, logger)
	pages := notion.NewClient(c.NotionBaseURL, c.NotionKey, c.NotionDatabaseID, httpClient, logger)
	archiver := services.NewArchiver(classifier, pages, logger)

	return &App{config: c, logger: logger, archiver: archiver}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	router := web.NewRouter(app.archiver, app.logger)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "server shutdown error", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "listening", "addr", app.config.EndpointAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
