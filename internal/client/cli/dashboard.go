package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/client/aggregate"
)

const heatmapDays = 30

func heatmapSymbol(count int) string {
	switch {
	case count == 0:
		return "."
	case count == 1:
		return "+"
	default:
		return "#"
	}
}

// Dashboard prints the summary view: level and xp progress, today's meal
// total and deficit, and the 30-day activity heatmap.
func (a *App) Dashboard(ctx context.Context) error {
	view, err := a.game.View(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	target, err := a.body.BurnTarget(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	plan, err := a.body.MealPlan(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	history, err := a.body.History(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	intake := aggregate.TotalIntake(plan)
	deficit := aggregate.DailyDeficit(target, plan)

	fmt.Fprintf(a.out, "Level %d  [%s%s] %d/100 xp\n",
		view.Level,
		strings.Repeat("=", view.Progress/10),
		strings.Repeat(" ", 10-view.Progress/10),
		view.Progress)
	fmt.Fprintf(a.out, "Today: %d kcal in, target %d, deficit %s\n",
		intake, target, aggregate.FormatDeficit(deficit))

	cells := aggregate.ActivityHeatmap(history, heatmapDays, time.Now())
	var row strings.Builder
	for _, c := range cells {
		row.WriteString(heatmapSymbol(c.Count))
	}
	fmt.Fprintf(a.out, "Last %d days: %s (today rightmost)\n", heatmapDays, row.String())

	return nil
}
