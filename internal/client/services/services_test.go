package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lifeos/internal/client/models"
	"github.com/dmitrijs2005/lifeos/internal/client/store"
	"github.com/dmitrijs2005/lifeos/internal/common"
	"github.com/dmitrijs2005/lifeos/internal/logging"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)

	return store.New(db, testLogger())
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ---------- game ----------

func TestGameService_AddXP(t *testing.T) {
	s := setupStore(t)
	game := NewGameService(s, testLogger())
	ctx := context.Background()

	xp, err := game.AddXP(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, xp)

	xp, err = game.AddXP(ctx, 230)
	require.NoError(t, err)
	assert.Equal(t, 250, xp)

	view, err := game.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Level)
	assert.Equal(t, 50, view.Progress)
}

// ---------- body ----------

func TestBodyService_MealBuilding(t *testing.T) {
	s := setupStore(t)
	game := NewGameService(s, testLogger())
	body := &bodyService{store: s, game: game, logger: testLogger(),
		now: fixedClock(time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC))}
	ctx := context.Background()

	egg := models.FoodItem{Name: "Egg", Calories: 70, Category: models.MacroProtein}
	require.NoError(t, body.AddFood(ctx, models.SlotBreakfast, egg))

	plan, err := body.MealPlan(ctx)
	require.NoError(t, err)
	require.Len(t, plan.Breakfast, 1)
	line := plan.Breakfast[0]
	assert.Equal(t, "Egg", line.Name)
	assert.Equal(t, 1, line.Quantity)

	require.NoError(t, body.UpdateFood(ctx, models.SlotBreakfast, line.ID, 2, 75))
	plan, err = body.MealPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Breakfast[0].Quantity)
	assert.Equal(t, 75, plan.Breakfast[0].Calories)

	require.NoError(t, body.RemoveFood(ctx, models.SlotBreakfast, line.ID))
	plan, err = body.MealPlan(ctx)
	require.NoError(t, err)
	assert.Empty(t, plan.Breakfast)
}

func TestBodyService_UpdateFood_NotFound(t *testing.T) {
	s := setupStore(t)
	body := NewBodyService(s, NewGameService(s, testLogger()), testLogger())

	err := body.UpdateFood(context.Background(), models.SlotLunch, 999, 1, 100)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestBodyService_LibrarySnapshotSemantics(t *testing.T) {
	s := setupStore(t)
	game := NewGameService(s, testLogger())
	body := &bodyService{store: s, game: game, logger: testLogger(), now: time.Now}
	ctx := context.Background()

	lib, err := body.FoodLibrary(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, lib)

	require.NoError(t, body.AddFood(ctx, models.SlotLunch, lib[0]))

	// editing the library afterwards does not rewrite the meal line
	lib[0].Calories = 9999
	require.NoError(t, body.SaveFoodLibrary(ctx, lib))

	plan, err := body.MealPlan(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, 9999, plan.Lunch[0].Calories)
}

func TestBodyService_ToggleWorkout(t *testing.T) {
	s := setupStore(t)
	body := NewBodyService(s, NewGameService(s, testLogger()), testLogger())
	ctx := context.Background()

	require.NoError(t, body.ToggleWorkout(ctx, "Jogging"))
	selected, err := body.Workouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jogging"}, selected)

	require.NoError(t, body.ToggleWorkout(ctx, "Jogging"))
	selected, err = body.Workouts(ctx)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestBodyService_SaveDay(t *testing.T) {
	s := setupStore(t)
	game := NewGameService(s, testLogger())
	now := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)
	body := &bodyService{store: s, game: game, logger: testLogger(), now: fixedClock(now)}
	ctx := context.Background()

	require.NoError(t, body.SetWeight(ctx, 59.5))
	require.NoError(t, body.AddFood(ctx, models.SlotDinner,
		models.FoodItem{Name: "Beef", Calories: 250, Category: models.MacroProtein}))
	require.NoError(t, body.ToggleWorkout(ctx, "Pilates"))

	record, err := body.SaveDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DisplayDate(now), record.Date)
	assert.Equal(t, 59.5, record.Weight)
	assert.Equal(t, 250, record.TotalIntake)
	assert.Equal(t, 2000-250, record.Deficit)
	assert.Equal(t, []string{"Pilates"}, record.Workouts)

	history, err := body.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)

	xp, err := game.XP(ctx)
	require.NoError(t, err)
	assert.Equal(t, XPDailyLog, xp)

	// history records are deletable but never edited
	require.NoError(t, body.DeleteHistory(ctx, record.ID))
	history, err = body.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	require.ErrorIs(t, body.DeleteHistory(ctx, record.ID), common.ErrNotFound)
}

// ---------- mind ----------

func TestMindService_SaveEntryFromDraft(t *testing.T) {
	s := setupStore(t)
	game := NewGameService(s, testLogger())
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	mind := &mindService{store: s, game: game, logger: testLogger(), now: fixedClock(now)}
	ctx := context.Background()

	draft := &models.MindDraft{
		Title:    "Atomic Habits",
		Excerpt:  "You do not rise to the level of your goals.",
		Thoughts: "Identity over outcome.",
	}
	require.NoError(t, mind.SaveDraft(ctx, draft))

	entry, err := mind.SaveEntry(ctx, models.CategoryReading)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryReading, entry.Category)

	v, err := entry.Unwrap()
	require.NoError(t, err)
	reading := v.(models.Reading)
	assert.Equal(t, "Atomic Habits", reading.Title)

	// draft cleared after save
	got, err := mind.Draft(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MindDraft{}, *got)

	xp, err := game.XP(ctx)
	require.NoError(t, err)
	assert.Equal(t, XPMindEntry, xp)
}

func TestMindService_EntriesNewestFirst(t *testing.T) {
	s := setupStore(t)
	game := NewGameService(s, testLogger())
	mind := &mindService{store: s, game: game, logger: testLogger(), now: time.Now}
	ctx := context.Background()

	require.NoError(t, mind.SaveDraft(ctx, &models.MindDraft{Note: "first"}))
	first, err := mind.SaveEntry(ctx, models.CategoryGeneric)
	require.NoError(t, err)

	require.NoError(t, mind.SaveDraft(ctx, &models.MindDraft{Note: "second"}))
	second, err := mind.SaveEntry(ctx, models.CategoryGeneric)
	require.NoError(t, err)

	entries, err := mind.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)

	require.NoError(t, mind.Delete(ctx, first.ID))
	entries, err = mind.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.ErrorIs(t, mind.Delete(ctx, first.ID), common.ErrNotFound)
}

func TestMindService_Categories(t *testing.T) {
	s := setupStore(t)
	mind := NewMindService(s, NewGameService(s, testLogger()), testLogger())
	ctx := context.Background()

	defs, err := mind.Categories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, defs)

	custom := models.CategoryDefinition{ID: "gratitude", Label: "Gratitude", IconRef: "heart", ColorTheme: "pink"}
	require.NoError(t, mind.AddCategory(ctx, custom))
	require.Error(t, mind.AddCategory(ctx, custom)) // duplicate id

	require.NoError(t, mind.DeleteCategory(ctx, "gratitude"))
	require.ErrorIs(t, mind.DeleteCategory(ctx, "gratitude"), common.ErrNotFound)

	// entries referencing a deleted category resolve to the generic fallback
	defs, err = mind.Categories(ctx)
	require.NoError(t, err)
	resolved := models.ResolveCategory(defs, models.Category("gratitude"))
	assert.Equal(t, string(models.CategoryGeneric), resolved.ID)
}

// ---------- music ----------

func TestMusicService_AddLog(t *testing.T) {
	s := setupStore(t)
	game := NewGameService(s, testLogger())
	music := &musicService{store: s, game: game, logger: testLogger(),
		now: fixedClock(time.Date(2026, 2, 3, 19, 0, 0, 0, time.UTC))}
	ctx := context.Background()

	log, err := music.AddLog(ctx, "Drums", 30, "paradiddles")
	require.NoError(t, err)
	assert.Equal(t, "2/3/2026", log.Date)

	logs, err := music.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Drums", logs[0].Instrument)

	xp, err := game.XP(ctx)
	require.NoError(t, err)
	assert.Equal(t, XPMusicLog, xp)

	require.NoError(t, music.Delete(ctx, log.ID))
	require.ErrorIs(t, music.Delete(ctx, log.ID), common.ErrNotFound)
}

// ---------- habits ----------

func TestHabitsService_ToggleAndXP(t *testing.T) {
	s := setupStore(t)
	game := NewGameService(s, testLogger())
	habits := &habitsService{store: s, game: game, logger: testLogger(),
		now: fixedClock(time.Date(2026, 2, 4, 7, 0, 0, 0, time.UTC))}
	ctx := context.Background()

	checked, err := habits.Toggle(ctx, "water")
	require.NoError(t, err)
	assert.True(t, checked)

	state, err := habits.Today(ctx)
	require.NoError(t, err)
	assert.True(t, state.Completed("water"))

	xp, err := game.XP(ctx)
	require.NoError(t, err)
	assert.Equal(t, XPHabitCheck, xp)

	// unchecking does not claw back xp
	checked, err = habits.Toggle(ctx, "water")
	require.NoError(t, err)
	assert.False(t, checked)

	xp, err = game.XP(ctx)
	require.NoError(t, err)
	assert.Equal(t, XPHabitCheck, xp)
}

func TestHabitsService_DayRollover(t *testing.T) {
	s := setupStore(t)
	game := NewGameService(s, testLogger())
	day1 := time.Date(2026, 2, 4, 7, 0, 0, 0, time.UTC)
	habits := &habitsService{store: s, game: game, logger: testLogger(), now: fixedClock(day1)}
	ctx := context.Background()

	_, err := habits.Toggle(ctx, "water")
	require.NoError(t, err)
	_, err = habits.Toggle(ctx, "read")
	require.NoError(t, err)

	// next day: yesterday closes out into the archive
	habits.now = fixedClock(day1.AddDate(0, 0, 1))

	state, err := habits.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2/5/2026", state.Date)
	assert.Empty(t, state.CompletedIDs)

	archive, err := habits.Archive(ctx)
	require.NoError(t, err)
	require.Len(t, archive, 1)
	assert.Equal(t, "2/4/2026", archive[0].Date)
	assert.Equal(t, 2, archive[0].Count)
	assert.ElementsMatch(t, []string{"water", "read"}, archive[0].CompletedIDs)
}

// ---------- research stub ----------

func TestStubResearchService(t *testing.T) {
	research := NewStubResearchService(0)

	results, err := research.Search(context.Background(), "spaced repetition")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "spaced repetition Summary", results[0].Title)
}
