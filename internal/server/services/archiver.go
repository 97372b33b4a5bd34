// Package services contains the agent server's orchestration layer.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/common"
	"github.com/dmitrijs2005/lifeos/internal/logging"
	"github.com/dmitrijs2005/lifeos/internal/server/llm"
	"github.com/dmitrijs2005/lifeos/internal/server/markdown"
	"github.com/dmitrijs2005/lifeos/internal/server/notion"
)

// AgentRequest is the inbound archive request. Either Input (free text to be
// classified by the model) or the pre-classified Title/Content pair must be
// present.
type AgentRequest struct {
	Input string `json:"input"`

	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
}

// Classifier extracts structured fields from free text.
type Classifier interface {
	Classify(ctx context.Context, input string) (*llm.Classification, error)
}

// PageCreator publishes one page into the document database.
type PageCreator interface {
	CreatePage(ctx context.Context, page notion.Page) (string, error)
}

// Archiver turns an agent request into a document database page: classify
// when needed, convert the content to blocks, create the page.
type Archiver struct {
	classifier Classifier
	pages      PageCreator
	logger     logging.Logger
	now        func() time.Time
}

func NewArchiver(classifier Classifier, pages PageCreator, logger logging.Logger) *Archiver {
	return &Archiver{classifier: classifier, pages: pages, logger: logger, now: time.Now}
}

// Process handles one request end to end and returns the created page URL.
func (a *Archiver) Process(ctx context.Context, req AgentRequest) (string, error) {
	page, err := a.buildPage(ctx, req)
	if err != nil {
		return "", err
	}

	url, err := a.pages.CreatePage(ctx, *page)
	if err != nil {
		return "", err
	}

	a.logger.Info(ctx, "entry archived", "category", page.Category, "url", url)
	return url, nil
}

func (a *Archiver) buildPage(ctx context.Context, req AgentRequest) (*notion.Page, error) {
	if req.Input != "" {
		result, err := a.classifier.Classify(ctx, req.Input)
		if err != nil {
			return nil, err
		}
		return &notion.Page{
			Title:    result.Title,
			Category: result.Category,
			Tags:     result.Tags,
			Summary:  result.Summary,
			Created:  a.now(),
			Blocks:   markdown.Parse(result.Content),
		}, nil
	}

	// pre-classified path: the client already named the document
	if req.Title == "" || req.Content == "" {
		return nil, fmt.Errorf("%w: request needs input or title and content", common.ErrMalformedInput)
	}

	category := req.Category
	if category == "" {
		category = "Generic"
	}

	return &notion.Page{
		Title:    req.Title,
		Category: category,
		Summary:  req.Summary,
		Created:  a.now(),
		Blocks:   markdown.Parse(req.Content),
	}, nil
}
