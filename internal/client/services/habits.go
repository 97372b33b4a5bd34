package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/client/models"
	"github.com/dmitrijs2005/lifeos/internal/client/store"
	"github.com/dmitrijs2005/lifeos/internal/logging"
)

// HabitsService owns the daily checklist: a single today-record that rolls
// over into an append-only archive when the date changes.
type HabitsService interface {
	Habits() []models.Habit
	Today(ctx context.Context) (*models.HabitDailyState, error)
	Toggle(ctx context.Context, habitID string) (checked bool, err error)
	Archive(ctx context.Context) ([]models.HabitArchiveRecord, error)
}

type habitsService struct {
	store  *store.Store
	game   GameService
	logger logging.Logger
	now    func() time.Time
}

func NewHabitsService(s *store.Store, game GameService, logger logging.Logger) HabitsService {
	return &habitsService{store: s, game: game, logger: logger, now: time.Now}
}

func (s *habitsService) Habits() []models.Habit {
	return models.DefaultHabits()
}

// Today returns the current day's state. When the stored record belongs to
// an earlier day it is first closed out into the archive, then replaced by
// a fresh empty record for today.
func (s *habitsService) Today(ctx context.Context) (*models.HabitDailyState, error) {
	today := models.DisplayDate(s.now())

	state, err := store.Load(ctx, s.store, store.KeyHabitsToday, models.HabitDailyState{Date: today})
	if err != nil {
		return nil, err
	}

	if state.Date == today {
		return &state, nil
	}

	if len(state.CompletedIDs) > 0 {
		archive, err := s.Archive(ctx)
		if err != nil {
			return nil, err
		}
		archive = append(archive, models.HabitArchiveRecord{
			Date:         state.Date,
			CompletedIDs: state.CompletedIDs,
			Count:        len(state.CompletedIDs),
		})
		if err := s.store.Set(ctx, store.KeyHabitsArchive, archive); err != nil {
			return nil, fmt.Errorf("error archiving habit day: %w", err)
		}
	}

	state = models.HabitDailyState{Date: today}
	if err := s.store.Set(ctx, store.KeyHabitsToday, state); err != nil {
		return nil, fmt.Errorf("error resetting habit day: %w", err)
	}

	s.logger.Info(ctx, "habit day rolled over", "date", today)
	return &state, nil
}

// Toggle checks or unchecks a habit for today. Checking awards xp;
// unchecking does not claw it back.
func (s *habitsService) Toggle(ctx context.Context, habitID string) (bool, error) {
	state, err := s.Today(ctx)
	if err != nil {
		return false, err
	}

	if state.Completed(habitID) {
		filtered := make([]string, 0, len(state.CompletedIDs))
		for _, id := range state.CompletedIDs {
			if id != habitID {
				filtered = append(filtered, id)
			}
		}
		state.CompletedIDs = filtered
		if err := s.store.Set(ctx, store.KeyHabitsToday, state); err != nil {
			return false, err
		}
		return false, nil
	}

	state.CompletedIDs = append(state.CompletedIDs, habitID)
	if err := s.store.Set(ctx, store.KeyHabitsToday, state); err != nil {
		return false, err
	}

	if _, err := s.game.AddXP(ctx, XPHabitCheck); err != nil {
		return false, err
	}
	return true, nil
}

func (s *habitsService) Archive(ctx context.Context) ([]models.HabitArchiveRecord, error) {
	return store.Load(ctx, s.store, store.KeyHabitsArchive, []models.HabitArchiveRecord{})
}
