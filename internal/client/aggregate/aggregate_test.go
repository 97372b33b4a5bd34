package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/lifeos/internal/client/models"
)

func TestMealTotal(t *testing.T) {
	items := []models.MealItem{
		{Name: "Oats", Calories: 370, Quantity: 1},
		{Name: "Egg", Calories: 70, Quantity: 2},
		{Name: "Banana", Calories: 90, Quantity: 1},
	}
	assert.Equal(t, 370+140+90, MealTotal(items))
	assert.Equal(t, 0, MealTotal(nil))
}

func TestMealTotal_OrderIndependent(t *testing.T) {
	items := []models.MealItem{
		{Calories: 100, Quantity: 1},
		{Calories: 250, Quantity: 2},
		{Calories: 16, Quantity: 3},
	}
	permuted := []models.MealItem{items[2], items[0], items[1]}
	assert.Equal(t, MealTotal(items), MealTotal(permuted))
}

func TestDailyDeficit_SignConvention(t *testing.T) {
	tests := []struct {
		name       string
		burnTarget int
		intake     int
		want       string
	}{
		{"under target", 2000, 1500, "-500"},
		{"over target", 2000, 2500, "+500"},
		{"exactly on target", 2000, 2000, "+0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &models.MealPlan{
				Dinner: []models.MealItem{{Calories: tt.intake, Quantity: 1}},
			}
			assert.Equal(t, tt.want, FormatDeficit(DailyDeficit(tt.burnTarget, plan)))
		})
	}
}

func TestNutritionAggregate(t *testing.T) {
	plan := &models.MealPlan{
		Breakfast: []models.MealItem{
			{Name: "Oats", Category: models.MacroCarb},
			{Name: "Egg", Category: models.MacroProtein},
		},
		Lunch: []models.MealItem{
			{Name: "Chicken breast", Category: models.MacroProtein},
			{Name: "Broccoli", Category: models.MacroVeggie},
		},
		Dinner: []models.MealItem{
			{Name: "Apple", Category: models.MacroFruit},
		},
	}

	got := NutritionAggregate(plan)
	assert.Equal(t, []string{"Oats"}, got[models.MacroCarb])
	assert.Equal(t, []string{"Egg", "Chicken breast"}, got[models.MacroProtein])
	assert.Equal(t, []string{"Broccoli"}, got[models.MacroVeggie])
	assert.Equal(t, []string{"Apple"}, got[models.MacroFruit])
}

func TestNutritionAggregate_EmptyPlanHasAllCategories(t *testing.T) {
	got := NutritionAggregate(&models.MealPlan{})
	for _, cat := range models.MacroCategories {
		assert.Empty(t, got[cat])
	}
}

func TestActivityHeatmap(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	history := []models.DailyBodyLog{
		{ID: 1, Date: models.DisplayDate(now)},
		{ID: 2, Date: models.DisplayDate(now)},
		{ID: 3, Date: models.DisplayDate(now.AddDate(0, 0, -5))},
		{ID: 4, Date: "some ancient record"},
	}

	cells := ActivityHeatmap(history, 30, now)
	assert.Len(t, cells, 30)

	// oldest first, today last
	assert.Equal(t, models.DisplayDate(now.AddDate(0, 0, -29)), cells[0].Date)
	assert.Equal(t, models.DisplayDate(now), cells[29].Date)

	assert.Equal(t, 2, cells[29].Count)
	assert.Equal(t, 1, cells[24].Count)
	assert.Equal(t, 0, cells[0].Count)
}

func TestActivityHeatmap_AlwaysNDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Len(t, ActivityHeatmap(nil, 30, now), 30)
	assert.Len(t, ActivityHeatmap(nil, 7, now), 7)
}

func TestGamification(t *testing.T) {
	tests := []struct {
		xp       int
		level    int
		progress int
	}{
		{0, 1, 0},
		{99, 1, 99},
		{100, 2, 0},
		{250, 3, 50},
	}

	for _, tt := range tests {
		got := Gamification(tt.xp)
		assert.Equal(t, tt.level, got.Level, "xp=%d", tt.xp)
		assert.Equal(t, tt.progress, got.Progress, "xp=%d", tt.xp)
	}
}
