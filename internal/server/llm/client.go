// Package llm classifies raw journal text with a chat completion model.
// A single request in JSON mode returns the title, category, tags and
// summary used to file the entry; there is no retry.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/lifeos/internal/common"
	"github.com/dmitrijs2005/lifeos/internal/logging"
	"github.com/dmitrijs2005/lifeos/internal/netx"
)

// Classification is the structured result extracted from free text.
type Classification struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
}

const systemPrompt = `You are a knowledge archivist. Analyze the user's raw text and return a JSON object with:
- "title": a concise document title
- "category": exactly one of "Reading", "Reflection", "Logic", "Music", "Generic"
- "tags": an array of 1 to 3 short topic tags
- "summary": a one-sentence summary
- "content": the cleaned-up text in markdown, using "# ", "## " and "- " markers where appropriate`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	logger  logging.Logger
}

func NewClient(baseURL, apiKey, model string, httpClient *http.Client, logger logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, model: model, http: httpClient, logger: logger}
}

// Classify sends the raw text to the model and decodes the structured
// result. A model reply that is not valid JSON is a malformed-input error;
// upstream failures carry the provider's message verbatim.
func (c *Client) Classify(ctx context.Context, input string) (*Classification, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: input},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	status, body, err := netx.PostJSON(ctx, c.http, c.baseURL+"/v1/chat/completions", headers, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrExternalService, err.Error())
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrExternalService, err.Error())
	}

	if status != http.StatusOK {
		msg := string(body)
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return nil, fmt.Errorf("%w: %s", common.ErrExternalService, msg)
	}

	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: model returned no choices", common.ErrExternalService)
	}

	var result Classification
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("%w: model reply is not valid JSON: %s", common.ErrMalformedInput, err.Error())
	}

	c.logger.Debug(ctx, "text classified", "category", result.Category, "tags", result.Tags)
	return &result, nil
}
