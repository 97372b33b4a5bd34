// Package archive pushes a single entry to the agent endpoint, which
// classifies it and republishes it into the external document database.
// Best-effort: one outstanding request per entry, no retry, no timeout.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/lifeos/internal/common"
	"github.com/dmitrijs2005/lifeos/internal/logging"
	"github.com/dmitrijs2005/lifeos/internal/netx"
)

// TaskState is the observable lifecycle of one archive request.
type TaskState int

const (
	TaskIdle TaskState = iota
	TaskInFlight
	TaskDone
	TaskFailed
)

func (s TaskState) String() string {
	switch s {
	case TaskInFlight:
		return "in-flight"
	case TaskDone:
		return "done"
	case TaskFailed:
		return "failed"
	default:
		return "idle"
	}
}

type archiveRequest struct {
	Input string `json:"input"`
}

type archiveResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Error   string `json:"error"`
}

// Client talks to the agent endpoint. It tracks one task state per entry id
// so a slow request only disables its own entry's control.
type Client struct {
	endpoint string
	http     *http.Client
	logger   logging.Logger

	mu    sync.Mutex
	tasks map[int64]TaskState
}

// NewClient returns a client for the given endpoint base URL (e.g.
// "https://lifeos.example.com"). An empty endpoint is allowed; Archive then
// fails fast with a configuration error.
func NewClient(endpoint string, httpClient *http.Client, logger logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		logger:   logger,
		tasks:    make(map[int64]TaskState),
	}
}

// State reports the task state for an entry id.
func (c *Client) State(entryID int64) TaskState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks[entryID]
}

// Archive sends the entry's free text to the agent endpoint and returns the
// URL of the created page.
//
// Fails fast with ErrConfiguration when no endpoint is configured, before
// any network I/O. A second call for the same entry while one is in flight
// returns ErrAlreadyInFlight. No retry is performed; the caller shows a
// single terminal success or failure.
func (c *Client) Archive(ctx context.Context, entryID int64, rawText string) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("%w: archive endpoint not configured", common.ErrConfiguration)
	}

	if err := c.begin(entryID); err != nil {
		return "", err
	}

	url, err := c.post(ctx, rawText)
	c.finish(entryID, err == nil)
	if err != nil {
		c.logger.Error(ctx, "archive failed", "entry_id", entryID, "error", err.Error())
		return "", err
	}

	c.logger.Info(ctx, "entry archived", "entry_id", entryID, "url", url)
	return url, nil
}

func (c *Client) begin(entryID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tasks[entryID] == TaskInFlight {
		return common.ErrAlreadyInFlight
	}
	c.tasks[entryID] = TaskInFlight
	return nil
}

func (c *Client) finish(entryID int64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.tasks[entryID] = TaskDone
	} else {
		c.tasks[entryID] = TaskFailed
	}
}

func (c *Client) post(ctx context.Context, rawText string) (string, error) {
	status, body, err := netx.PostJSON(ctx, c.http, c.endpoint+"/api/agent", nil, archiveRequest{Input: rawText})
	if err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrExternalService, err.Error())
	}

	var resp archiveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: undecodable response: %s", common.ErrExternalService, err.Error())
	}

	if status != http.StatusOK || !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", status)
		}
		return "", fmt.Errorf("%w: %s", common.ErrExternalService, msg)
	}

	if resp.URL == "" {
		return "", fmt.Errorf("%w: response carried no url", common.ErrExternalService)
	}
	return resp.URL, nil
}
