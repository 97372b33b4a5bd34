package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/client/models"
	"github.com/dmitrijs2005/lifeos/internal/client/store"
	"github.com/dmitrijs2005/lifeos/internal/common"
	"github.com/dmitrijs2005/lifeos/internal/logging"
)

// MindService covers the journal module: a persisted draft, tagged-union
// entries and the user-extensible category table.
type MindService interface {
	Draft(ctx context.Context) (*models.MindDraft, error)
	SaveDraft(ctx context.Context, draft *models.MindDraft) error

	// SaveEntry turns the current draft into an entry of the given
	// category, clears the draft and awards xp.
	SaveEntry(ctx context.Context, category models.Category) (*models.Entry, error)

	Entries(ctx context.Context) ([]models.Entry, error)
	Delete(ctx context.Context, id int64) error

	Categories(ctx context.Context) ([]models.CategoryDefinition, error)
	AddCategory(ctx context.Context, def models.CategoryDefinition) error
	DeleteCategory(ctx context.Context, id string) error
}

type mindService struct {
	store  *store.Store
	game   GameService
	logger logging.Logger
	now    func() time.Time
}

func NewMindService(s *store.Store, game GameService, logger logging.Logger) MindService {
	return &mindService{store: s, game: game, logger: logger, now: time.Now}
}

func (s *mindService) Draft(ctx context.Context) (*models.MindDraft, error) {
	draft, err := store.Load(ctx, s.store, store.KeyMindDraft, models.MindDraft{})
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *mindService) SaveDraft(ctx context.Context, draft *models.MindDraft) error {
	return s.store.Set(ctx, store.KeyMindDraft, draft)
}

// detailsFromDraft picks the fields relevant to the category; everything
// else in the draft is ignored.
func detailsFromDraft(draft *models.MindDraft, category models.Category) models.TypedDetails {
	switch category {
	case models.CategoryReading:
		return models.Reading{Title: draft.Title, Excerpt: draft.Excerpt, Thoughts: draft.Thoughts}
	case models.CategoryReflection:
		return models.Reflection{Trigger: draft.Trigger, Correction: draft.Correction}
	case models.CategoryLogic:
		return models.Logic{Premise: draft.Premise, Conclusion: draft.Conclusion}
	case models.CategoryMusic:
		return models.MusicFlow{Audio: draft.Audio, Note: draft.Note}
	default:
		return models.Generic{Note: draft.Note}
	}
}

func (s *mindService) SaveEntry(ctx context.Context, category models.Category) (*models.Entry, error) {
	draft, err := s.Draft(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry, err := models.Wrap(models.NewID(now), models.DisplayDate(now), detailsFromDraft(draft, category))
	if err != nil {
		return nil, fmt.Errorf("error building entry: %w", err)
	}
	entry.Category = category

	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	// newest first
	entries = append([]models.Entry{entry}, entries...)

	if err := s.store.Set(ctx, store.KeyMindEntries, entries); err != nil {
		return nil, fmt.Errorf("error saving entry: %w", err)
	}

	if err := s.store.Set(ctx, store.KeyMindDraft, models.MindDraft{}); err != nil {
		return nil, fmt.Errorf("error clearing draft: %w", err)
	}

	if _, err := s.game.AddXP(ctx, XPMindEntry); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "mind entry logged", "category", string(category), "id", entry.ID)
	return &entry, nil
}

func (s *mindService) Entries(ctx context.Context) ([]models.Entry, error) {
	return store.Load(ctx, s.store, store.KeyMindEntries, []models.Entry{})
}

func (s *mindService) Delete(ctx context.Context, id int64) error {
	entries, err := s.Entries(ctx)
	if err != nil {
		return err
	}

	filtered := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == len(entries) {
		return fmt.Errorf("entry %d: %w", id, common.ErrNotFound)
	}

	return s.store.Set(ctx, store.KeyMindEntries, filtered)
}

func (s *mindService) Categories(ctx context.Context) ([]models.CategoryDefinition, error) {
	return store.Load(ctx, s.store, store.KeyCategories, models.DefaultCategories())
}

func (s *mindService) AddCategory(ctx context.Context, def models.CategoryDefinition) error {
	defs, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	for _, d := range defs {
		if d.ID == def.ID {
			return fmt.Errorf("category %q already exists", def.ID)
		}
	}
	return s.store.Set(ctx, store.KeyCategories, append(defs, def))
}

// DeleteCategory removes a definition. Entries referencing it are left in
// place and render with the generic fallback.
func (s *mindService) DeleteCategory(ctx context.Context, id string) error {
	defs, err := s.Categories(ctx)
	if err != nil {
		return err
	}

	filtered := make([]models.CategoryDefinition, 0, len(defs))
	for _, d := range defs {
		if d.ID != id {
			filtered = append(filtered, d)
		}
	}
	if len(filtered) == len(defs) {
		return fmt.Errorf("category %q: %w", id, common.ErrNotFound)
	}

	return s.store.Set(ctx, store.KeyCategories, filtered)
}
