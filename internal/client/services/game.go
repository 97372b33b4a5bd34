// Package services implements the application logic of the life-domain
// modules on top of the key-value store.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lifeos/internal/client/aggregate"
	"github.com/dmitrijs2005/lifeos/internal/client/store"
	"github.com/dmitrijs2005/lifeos/internal/logging"
)

// XP awards per action.
const (
	XPDailyLog   = 20
	XPMindEntry  = 30
	XPMusicLog   = 15
	XPHabitCheck = 10
)

// GameService owns the single persisted xp counter. Level and progress are
// always derived, never stored.
type GameService interface {
	XP(ctx context.Context) (int, error)
	AddXP(ctx context.Context, amount int) (int, error)
	View(ctx context.Context) (aggregate.GamificationView, error)
}

type gameService struct {
	store  *store.Store
	logger logging.Logger
}

func NewGameService(s *store.Store, logger logging.Logger) GameService {
	return &gameService{store: s, logger: logger}
}

func (s *gameService) XP(ctx context.Context) (int, error) {
	return store.Load(ctx, s.store, store.KeyXP, 0)
}

func (s *gameService) AddXP(ctx context.Context, amount int) (int, error) {
	xp, err := s.XP(ctx)
	if err != nil {
		return 0, fmt.Errorf("error reading xp: %w", err)
	}
	xp += amount
	if err := s.store.Set(ctx, store.KeyXP, xp); err != nil {
		return 0, fmt.Errorf("error saving xp: %w", err)
	}
	s.logger.Debug(ctx, "xp added", "amount", amount, "total", xp)
	return xp, nil
}

func (s *gameService) View(ctx context.Context) (aggregate.GamificationView, error) {
	xp, err := s.XP(ctx)
	if err != nil {
		return aggregate.GamificationView{}, err
	}
	return aggregate.Gamification(xp), nil
}
