package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrijs2005/lifeos/internal/client/archive"
	"github.com/dmitrijs2005/lifeos/internal/client/audio"
	"github.com/dmitrijs2005/lifeos/internal/client/config"
	"github.com/dmitrijs2005/lifeos/internal/client/services"
	"github.com/dmitrijs2005/lifeos/internal/client/snapshot"
	"github.com/dmitrijs2005/lifeos/internal/client/store"
	"github.com/dmitrijs2005/lifeos/internal/logging"

	_ "modernc.org/sqlite"
)

// captureSource adapts a path chosen at record-start time to the audio.Source
// interface, so a single Recorder (and its disable-on-failure state) survives
// the whole session.
type captureSource struct {
	mu   sync.Mutex
	path string
}

func (s *captureSource) SetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}

func (s *captureSource) Open(ctx context.Context) (io.ReadCloser, error) {
	s.mu.Lock()
	path := s.path
	s.mu.Unlock()
	return audio.FileSource{Path: path}.Open(ctx)
}

type App struct {
	config   *config.Config
	store    *store.Store
	codec    *snapshot.Codec
	game     services.GameService
	body     services.BodyService
	mind     services.MindService
	music    services.MusicService
	habits   services.HabitsService
	research services.ResearchService
	archiver *archive.Client

	capture  *captureSource
	recorder *audio.Recorder

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	st, err := store.Open(ctx, c.DatabasePath, logger)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	game := services.NewGameService(st, logger)
	capture := &captureSource{}

	return &App{
		config:   c,
		store:    st,
		codec:    snapshot.NewCodec(st),
		game:     game,
		body:     services.NewBodyService(st, game, logger),
		mind:     services.NewMindService(st, game, logger),
		music:    services.NewMusicService(st, game, logger),
		habits:   services.NewHabitsService(st, game, logger),
		research: services.NewStubResearchService(0),
		archiver: archive.NewClient(c.ServerEndpointAddr, &http.Client{Timeout: c.RequestTimeout}, logger),
		capture:  capture,
		recorder: audio.NewRecorder(capture),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) getStatus() string {
	view, err := a.game.View(context.Background())
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(lvl %d)", view.Level)
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			log.Printf("error closing database: %s", err.Error())
		}
	}()
	a.Root(ctx)
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to LifeOS CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
