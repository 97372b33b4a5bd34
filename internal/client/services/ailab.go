package services

import (
	"context"
	"time"
)

// ResearchResult is one answer from the research module.
type ResearchResult struct {
	Title   string
	Summary string
}

// ResearchService is the AI research module. The current implementation is
// a stub that fabricates a single canned result; a real backend can replace
// it behind the same interface.
type ResearchService interface {
	Search(ctx context.Context, query string) ([]ResearchResult, error)
}

type stubResearchService struct {
	delay time.Duration
}

// NewStubResearchService returns the placeholder implementation. delay
// simulates backend latency before answering.
func NewStubResearchService(delay time.Duration) ResearchService {
	return &stubResearchService{delay: delay}
}

func (s *stubResearchService) Search(ctx context.Context, query string) ([]ResearchResult, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return []ResearchResult{
		{Title: query + " Summary", Summary: "AI Generated content..."},
	}, nil
}
