// Package notion creates pages in the external document database. One page
// per archived entry: classification fields become page properties, the
// cleaned-up text becomes child blocks.
package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/common"
	"github.com/dmitrijs2005/lifeos/internal/logging"
	"github.com/dmitrijs2005/lifeos/internal/netx"
	"github.com/dmitrijs2005/lifeos/internal/server/markdown"
)

const apiVersion = "2022-06-28"

// Page is the input for page creation.
type Page struct {
	Title    string
	Category string
	Tags     []string
	Summary  string
	Created  time.Time
	Blocks   []markdown.Block
}

// Client talks to the document database HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	databaseID string
	http       *http.Client
	logger     logging.Logger
}

func NewClient(baseURL, apiKey, databaseID string, httpClient *http.Client, logger logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, databaseID: databaseID, http: httpClient, logger: logger}
}

func richText(content string) []map[string]any {
	return []map[string]any{
		{"text": map[string]any{"content": content}},
	}
}

func blockObject(b markdown.Block) map[string]any {
	return map[string]any{
		"object":       "block",
		"type":         string(b.Type),
		string(b.Type): map[string]any{"rich_text": richText(b.Text)},
	}
}

func (c *Client) pagePayload(page Page) map[string]any {
	tags := make([]map[string]any, 0, len(page.Tags))
	for _, tag := range page.Tags {
		tags = append(tags, map[string]any{"name": tag})
	}

	children := make([]map[string]any, 0, len(page.Blocks))
	for _, b := range page.Blocks {
		children = append(children, blockObject(b))
	}

	return map[string]any{
		"parent": map[string]any{"database_id": c.databaseID},
		"properties": map[string]any{
			"Name":    map[string]any{"title": richText(page.Title)},
			"Type":    map[string]any{"select": map[string]any{"name": page.Category}},
			"Tags":    map[string]any{"multi_select": tags},
			"Summary": map[string]any{"rich_text": richText(page.Summary)},
			"Created": map[string]any{"date": map[string]any{"start": page.Created.Format(time.RFC3339)}},
		},
		"children": children,
	}
}

// CreatePage creates one page and returns its URL. Upstream failures carry
// the provider's message verbatim; there is no retry.
func (c *Client) CreatePage(ctx context.Context, page Page) (string, error) {
	headers := map[string]string{
		"Authorization":  "Bearer " + c.apiKey,
		"Notion-Version": apiVersion,
	}

	status, body, err := netx.PostJSON(ctx, c.http, c.baseURL+"/v1/pages", headers, c.pagePayload(page))
	if err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrExternalService, err.Error())
	}

	var parsed struct {
		URL     string `json:"url"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrExternalService, err.Error())
	}

	if status != http.StatusOK {
		msg := parsed.Message
		if msg == "" {
			msg = string(body)
		}
		return "", fmt.Errorf("%w: %s", common.ErrExternalService, msg)
	}

	c.logger.Info(ctx, "page created", "url", parsed.URL)
	return parsed.URL, nil
}
