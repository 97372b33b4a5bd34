package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/client/aggregate"
	"github.com/dmitrijs2005/lifeos/internal/client/models"
	"github.com/dmitrijs2005/lifeos/internal/client/store"
	"github.com/dmitrijs2005/lifeos/internal/common"
	"github.com/dmitrijs2005/lifeos/internal/logging"
)

const (
	defaultWeight     = 60.0
	defaultBurnTarget = 2000
)

// BodyService covers the body module: weight draft, meal building, workout
// selections, burn target and the immutable daily history.
type BodyService interface {
	Weight(ctx context.Context) (float64, error)
	SetWeight(ctx context.Context, kg float64) error

	BurnTarget(ctx context.Context) (int, error)
	SetBurnTarget(ctx context.Context, kcal int) error

	MealPlan(ctx context.Context) (*models.MealPlan, error)
	AddFood(ctx context.Context, slot models.Slot, item models.FoodItem) error
	UpdateFood(ctx context.Context, slot models.Slot, id int64, quantity, calories int) error
	RemoveFood(ctx context.Context, slot models.Slot, id int64) error

	Workouts(ctx context.Context) ([]string, error)
	ToggleWorkout(ctx context.Context, name string) error

	FoodLibrary(ctx context.Context) ([]models.FoodItem, error)
	SaveFoodLibrary(ctx context.Context, items []models.FoodItem) error
	WorkoutLibrary(ctx context.Context) ([]string, error)
	SaveWorkoutLibrary(ctx context.Context, moves []string) error

	SaveDay(ctx context.Context) (*models.DailyBodyLog, error)
	History(ctx context.Context) ([]models.DailyBodyLog, error)
	DeleteHistory(ctx context.Context, id int64) error
}

type bodyService struct {
	store  *store.Store
	game   GameService
	logger logging.Logger
	now    func() time.Time
}

func NewBodyService(s *store.Store, game GameService, logger logging.Logger) BodyService {
	return &bodyService{store: s, game: game, logger: logger, now: time.Now}
}

func (s *bodyService) Weight(ctx context.Context) (float64, error) {
	return store.Load(ctx, s.store, store.KeyWeightDraft, defaultWeight)
}

func (s *bodyService) SetWeight(ctx context.Context, kg float64) error {
	return s.store.Set(ctx, store.KeyWeightDraft, kg)
}

func (s *bodyService) BurnTarget(ctx context.Context) (int, error) {
	return store.Load(ctx, s.store, store.KeyBurnTarget, defaultBurnTarget)
}

func (s *bodyService) SetBurnTarget(ctx context.Context, kcal int) error {
	return s.store.Set(ctx, store.KeyBurnTarget, kcal)
}

func (s *bodyService) MealPlan(ctx context.Context) (*models.MealPlan, error) {
	plan, err := store.Load(ctx, s.store, store.KeyMealsDraft, models.MealPlan{})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// AddFood copies name, calories and category from the library item into a
// new meal line. Later library edits never touch lines already added.
func (s *bodyService) AddFood(ctx context.Context, slot models.Slot, item models.FoodItem) error {
	plan, err := s.MealPlan(ctx)
	if err != nil {
		return err
	}

	line := models.MealItem{
		ID:       models.NewID(s.now()),
		Name:     item.Name,
		Calories: item.Calories,
		Category: item.Category,
		Quantity: 1,
	}
	plan.SetItems(slot, append(plan.Items(slot), line))

	return s.store.Set(ctx, store.KeyMealsDraft, plan)
}

func (s *bodyService) UpdateFood(ctx context.Context, slot models.Slot, id int64, quantity, calories int) error {
	plan, err := s.MealPlan(ctx)
	if err != nil {
		return err
	}

	items := plan.Items(slot)
	found := false
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			items[i].Calories = calories
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("meal item %d in %s: %w", id, slot, common.ErrNotFound)
	}

	plan.SetItems(slot, items)
	return s.store.Set(ctx, store.KeyMealsDraft, plan)
}

func (s *bodyService) RemoveFood(ctx context.Context, slot models.Slot, id int64) error {
	plan, err := s.MealPlan(ctx)
	if err != nil {
		return err
	}

	items := plan.Items(slot)
	filtered := make([]models.MealItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	plan.SetItems(slot, filtered)

	return s.store.Set(ctx, store.KeyMealsDraft, plan)
}

func (s *bodyService) Workouts(ctx context.Context) ([]string, error) {
	return store.Load(ctx, s.store, store.KeyWorkoutsDraft, []string{})
}

func (s *bodyService) ToggleWorkout(ctx context.Context, name string) error {
	selected, err := s.Workouts(ctx)
	if err != nil {
		return err
	}

	filtered := make([]string, 0, len(selected))
	removed := false
	for _, w := range selected {
		if w == name {
			removed = true
			continue
		}
		filtered = append(filtered, w)
	}
	if !removed {
		filtered = append(filtered, name)
	}

	return s.store.Set(ctx, store.KeyWorkoutsDraft, filtered)
}

func (s *bodyService) FoodLibrary(ctx context.Context) ([]models.FoodItem, error) {
	return store.Load(ctx, s.store, store.KeyFoodLibrary, models.DefaultFoodLibrary())
}

func (s *bodyService) SaveFoodLibrary(ctx context.Context, items []models.FoodItem) error {
	return s.store.Set(ctx, store.KeyFoodLibrary, items)
}

func (s *bodyService) WorkoutLibrary(ctx context.Context) ([]string, error) {
	return store.Load(ctx, s.store, store.KeyWorkoutLibrary, models.DefaultWorkoutLibrary())
}

func (s *bodyService) SaveWorkoutLibrary(ctx context.Context, moves []string) error {
	return s.store.Set(ctx, store.KeyWorkoutLibrary, moves)
}

// SaveDay snapshots the current build state into an immutable history
// record with computed totals and awards xp. The draft is kept so the day
// can keep being built incrementally after a save.
func (s *bodyService) SaveDay(ctx context.Context) (*models.DailyBodyLog, error) {
	plan, err := s.MealPlan(ctx)
	if err != nil {
		return nil, err
	}
	weight, err := s.Weight(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.Workouts(ctx)
	if err != nil {
		return nil, err
	}
	burnTarget, err := s.BurnTarget(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := models.DailyBodyLog{
		ID:          models.NewID(now),
		Date:        models.DisplayDate(now),
		Weight:      weight,
		Meals:       *plan,
		Workouts:    workouts,
		TotalIntake: aggregate.TotalIntake(plan),
		Deficit:     aggregate.DailyDeficit(burnTarget, plan),
	}

	history, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	history = append(history, record)

	if err := s.store.Set(ctx, store.KeyBodyHistory, history); err != nil {
		return nil, fmt.Errorf("error saving daily log: %w", err)
	}

	if _, err := s.game.AddXP(ctx, XPDailyLog); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "daily log saved", "intake", record.TotalIntake, "deficit", record.Deficit)
	return &record, nil
}

func (s *bodyService) History(ctx context.Context) ([]models.DailyBodyLog, error) {
	return store.Load(ctx, s.store, store.KeyBodyHistory, []models.DailyBodyLog{})
}

func (s *bodyService) DeleteHistory(ctx context.Context, id int64) error {
	history, err := s.History(ctx)
	if err != nil {
		return err
	}

	filtered := make([]models.DailyBodyLog, 0, len(history))
	for _, record := range history {
		if record.ID != id {
			filtered = append(filtered, record)
		}
	}
	if len(filtered) == len(history) {
		return fmt.Errorf("history record %d: %w", id, common.ErrNotFound)
	}

	return s.store.Set(ctx, store.KeyBodyHistory, filtered)
}
