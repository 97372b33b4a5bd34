// Package aggregate computes summary views from raw stored collections.
// Everything here is pure: no side effects, recomputed on demand from
// current store contents, never itself persisted.
package aggregate

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/client/models"
)

// MealTotal sums calories x quantity over the items of one slot.
// Additive and order-independent.
func MealTotal(items []models.MealItem) int {
	total := 0
	for _, item := range items {
		total += item.Calories * item.Quantity
	}
	return total
}

// TotalIntake sums the three slot totals.
func TotalIntake(plan *models.MealPlan) int {
	total := 0
	for _, slot := range models.Slots {
		total += MealTotal(plan.Items(slot))
	}
	return total
}

// DailyDeficit is burn target minus total intake. Positive means under
// target.
func DailyDeficit(burnTarget int, plan *models.MealPlan) int {
	return burnTarget - TotalIntake(plan)
}

// FormatDeficit renders the deficit with an inverted sign: under target
// displays with a leading "-", over target with "+". Zero displays as "+0".
func FormatDeficit(deficit int) string {
	sign := "+"
	if deficit > 0 {
		sign = "-"
	}
	abs := deficit
	if abs < 0 {
		abs = -abs
	}
	return fmt.Sprintf("%s%d", sign, abs)
}

// NutritionAggregate groups all logged meal items across all slots by macro
// category into item-name lists, for display. Iterate models.MacroCategories
// for a stable order.
func NutritionAggregate(plan *models.MealPlan) map[models.MacroCategory][]string {
	out := make(map[models.MacroCategory][]string, len(models.MacroCategories))
	for _, cat := range models.MacroCategories {
		out[cat] = []string{}
	}
	for _, item := range plan.All() {
		out[item.Category] = append(out[item.Category], item.Name)
	}
	return out
}

// HeatmapCell is one day of the activity heatmap.
type HeatmapCell struct {
	Date  string
	Count int
}

// ActivityHeatmap returns exactly days cells, oldest calendar day first and
// today last. Count is the number of history records whose stored display
// date equals that day's display date; matching is by formatted string, not
// calendar date.
func ActivityHeatmap(history []models.DailyBodyLog, days int, now time.Time) []HeatmapCell {
	counts := make(map[string]int, len(history))
	for _, log := range history {
		counts[log.Date]++
	}

	cells := make([]HeatmapCell, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := models.DisplayDate(now.AddDate(0, 0, -i))
		cells = append(cells, HeatmapCell{Date: date, Count: counts[date]})
	}
	return cells
}

// GamificationView is the derived leveling state. Never stored; xp is the
// only persisted value.
type GamificationView struct {
	Level    int
	Progress int
}

// Gamification derives level and progress from cumulative xp:
// level = xp/100 + 1, progress = xp mod 100.
func Gamification(xp int) GamificationView {
	return GamificationView{Level: xp/100 + 1, Progress: xp % 100}
}
