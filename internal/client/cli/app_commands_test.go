package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lifeos/internal/client/archive"
	"github.com/dmitrijs2005/lifeos/internal/client/audio"
	"github.com/dmitrijs2005/lifeos/internal/client/config"
	"github.com/dmitrijs2005/lifeos/internal/client/services"
	"github.com/dmitrijs2005/lifeos/internal/client/snapshot"
	"github.com/dmitrijs2005/lifeos/internal/client/store"
	"github.com/dmitrijs2005/lifeos/internal/logging"

	_ "modernc.org/sqlite"
)

func newTestApp(t *testing.T, endpoint string) (*App, *bytes.Buffer) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	st := store.New(db, logger)
	game := services.NewGameService(st, logger)
	capture := &captureSource{}

	out := &bytes.Buffer{}
	app := &App{
		config:   &config.Config{ServerEndpointAddr: endpoint},
		store:    st,
		codec:    snapshot.NewCodec(st),
		game:     game,
		body:     services.NewBodyService(st, game, logger),
		mind:     services.NewMindService(st, game, logger),
		music:    services.NewMusicService(st, game, logger),
		habits:   services.NewHabitsService(st, game, logger),
		research: services.NewStubResearchService(0),
		archiver: archive.NewClient(endpoint, http.DefaultClient, logger),
		capture:  capture,
		recorder: audio.NewRecorder(capture),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      out,
	}
	return app, out
}

func TestApp_BodyWeightAndSave(t *testing.T) {
	app, out := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Body(ctx, []string{"weight", "61.2"}))
	assert.Contains(t, out.String(), "61.2")

	require.NoError(t, app.Body(ctx, []string{"save"}))
	assert.Contains(t, out.String(), "Saved")

	out.Reset()
	require.NoError(t, app.Body(ctx, []string{"history"}))
	assert.Contains(t, out.String(), "61.2")
}

func TestApp_BodyAddFoodInteractive(t *testing.T) {
	app, out := newTestApp(t, "")
	app.reader = bufio.NewReader(strings.NewReader("1\n"))
	ctx := context.Background()

	require.NoError(t, app.Body(ctx, []string{"add", "lunch"}))
	assert.Contains(t, out.String(), "Added")

	out.Reset()
	require.NoError(t, app.Body(ctx, nil))
	assert.Contains(t, out.String(), "lunch")
}

func TestApp_MindDraftSaveAndList(t *testing.T) {
	app, out := newTestApp(t, "")
	app.reader = bufio.NewReader(strings.NewReader("Deep Work\n"))
	ctx := context.Background()

	require.NoError(t, app.Mind(ctx, []string{"draft", "title"}))
	assert.Contains(t, out.String(), "Draft updated")

	out.Reset()
	require.NoError(t, app.Mind(ctx, []string{"save", "reading"}))
	assert.Contains(t, out.String(), "Saved entry")

	out.Reset()
	require.NoError(t, app.Mind(ctx, []string{"list"}))
	assert.Contains(t, out.String(), "Reading")
}

func TestApp_HabitsCheck(t *testing.T) {
	app, out := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Habits(ctx, []string{"check", "water"}))
	assert.Contains(t, out.String(), "Checked water")

	out.Reset()
	require.NoError(t, app.Habits(ctx, nil))
	assert.Contains(t, out.String(), "[x]")
}

func TestApp_ExportImportRoundTrip(t *testing.T) {
	app, out := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Body(ctx, []string{"weight", "58.0"}))

	fileName := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, app.Export(ctx, []string{fileName}))
	assert.Contains(t, out.String(), "Exported")

	_, err := os.Stat(fileName)
	require.NoError(t, err)

	// wipe, then restore from the snapshot
	app.reader = bufio.NewReader(strings.NewReader("y\ny\n"))
	require.NoError(t, app.Reset(ctx))
	require.NoError(t, app.Import(ctx, []string{fileName}))

	out.Reset()
	require.NoError(t, app.Body(ctx, []string{"plan"}))
	assert.Contains(t, out.String(), "58.0")
}

func TestApp_ArchiveEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/agent", r.URL.Path)
		var body struct {
			Input string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body.Input, "Deep Work")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "url": "https://notion.so/x"})
	}))
	defer srv.Close()

	app, out := newTestApp(t, srv.URL)
	app.reader = bufio.NewReader(strings.NewReader("Deep Work\n"))
	ctx := context.Background()

	require.NoError(t, app.Mind(ctx, []string{"draft", "title"}))
	require.NoError(t, app.Mind(ctx, []string{"save", "reading"}))

	entries, err := app.mind.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	out.Reset()
	require.NoError(t, app.Archive(ctx, []string{strconv.FormatInt(entries[0].ID, 10)}))
	assert.Contains(t, out.String(), "https://notion.so/x")
}

func TestApp_RecordIntoDraft(t *testing.T) {
	app, out := newTestApp(t, "")
	ctx := context.Background()

	fileName := filepath.Join(t.TempDir(), "memo.raw")
	require.NoError(t, os.WriteFile(fileName, []byte("audio-bytes"), 0o600))

	require.NoError(t, app.Record(ctx, []string{"start", fileName}))
	require.NoError(t, app.Record(ctx, []string{"stop"}))
	assert.Contains(t, out.String(), "Captured")

	draft, err := app.mind.Draft(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, draft.Audio)
}
