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

// MusicService records practice sessions.
type MusicService interface {
	Logs(ctx context.Context) ([]models.MusicLog, error)
	AddLog(ctx context.Context, instrument string, minutes int, note string) (*models.MusicLog, error)
	Delete(ctx context.Context, id int64) error
}

type musicService struct {
	store  *store.Store
	game   GameService
	logger logging.Logger
	now    func() time.Time
}

func NewMusicService(s *store.Store, game GameService, logger logging.Logger) MusicService {
	return &musicService{store: s, game: game, logger: logger, now: time.Now}
}

func (s *musicService) Logs(ctx context.Context) ([]models.MusicLog, error) {
	return store.Load(ctx, s.store, store.KeyMusicLogs, []models.MusicLog{})
}

func (s *musicService) AddLog(ctx context.Context, instrument string, minutes int, note string) (*models.MusicLog, error) {
	now := s.now()
	log := models.MusicLog{
		ID:         models.NewID(now),
		Date:       models.DisplayDate(now),
		Instrument: instrument,
		Minutes:    minutes,
		Note:       note,
	}

	logs, err := s.Logs(ctx)
	if err != nil {
		return nil, err
	}
	// newest first
	logs = append([]models.MusicLog{log}, logs...)

	if err := s.store.Set(ctx, store.KeyMusicLogs, logs); err != nil {
		return nil, fmt.Errorf("error saving practice log: %w", err)
	}

	if _, err := s.game.AddXP(ctx, XPMusicLog); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "practice logged", "instrument", instrument, "minutes", minutes)
	return &log, nil
}

func (s *musicService) Delete(ctx context.Context, id int64) error {
	logs, err := s.Logs(ctx)
	if err != nil {
		return err
	}

	filtered := make([]models.MusicLog, 0, len(logs))
	for _, l := range logs {
		if l.ID != id {
			filtered = append(filtered, l)
		}
	}
	if len(filtered) == len(logs) {
		return fmt.Errorf("practice log %d: %w", id, common.ErrNotFound)
	}

	return s.store.Set(ctx, store.KeyMusicLogs, filtered)
}
