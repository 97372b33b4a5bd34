package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lifeos/internal/client/aggregate"
	"github.com/dmitrijs2005/lifeos/internal/client/models"
)

func (a *App) bodyUsage() {
	fmt.Fprintln(a.out, "Usage: body [plan|weight <kg>|target <kcal>|add <slot>|qty <slot> <id> <n>|rm <slot> <id>|workout <name>|save|history|rmday <id>]")
}

// Body dispatches the body module subcommands.
func (a *App) Body(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.bodyPlan(ctx)
	}

	switch args[0] {
	case "plan":
		return a.bodyPlan(ctx)
	case "weight":
		return a.bodyWeight(ctx, args[1:])
	case "target":
		return a.bodyTarget(ctx, args[1:])
	case "add":
		return a.bodyAdd(ctx, args[1:])
	case "qty":
		return a.bodyQty(ctx, args[1:])
	case "rm":
		return a.bodyRemove(ctx, args[1:])
	case "workout":
		return a.bodyWorkout(ctx, args[1:])
	case "save":
		return a.bodySave(ctx)
	case "history":
		return a.bodyHistory(ctx)
	case "rmday":
		return a.bodyRemoveDay(ctx, args[1:])
	default:
		a.bodyUsage()
		return nil
	}
}

func (a *App) bodyPlan(ctx context.Context) error {
	weight, err := a.body.Weight(ctx)
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
	workouts, err := a.body.Workouts(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Weight: %.1f kg, burn target: %d kcal\n", weight, target)

	for _, slot := range models.Slots {
		items := plan.Items(slot)
		fmt.Fprintf(a.out, "%s (%d kcal):\n", slot, aggregate.MealTotal(items))
		for _, item := range items {
			fmt.Fprintf(a.out, "  [%d] %s x%d = %d kcal (%s)\n",
				item.ID, item.Name, item.Quantity, item.Calories, item.Category)
		}
	}

	fmt.Fprintf(a.out, "Total intake: %d kcal, deficit: %s\n",
		aggregate.TotalIntake(plan),
		aggregate.FormatDeficit(aggregate.DailyDeficit(target, plan)))

	nutrition := aggregate.NutritionAggregate(plan)
	for _, cat := range models.MacroCategories {
		fmt.Fprintf(a.out, "%s: %v\n", cat, nutrition[cat])
	}

	fmt.Fprintf(a.out, "Workouts: %v\n", workouts)
	return nil
}

func (a *App) bodyWeight(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: body weight <kg>")
		return nil
	}
	kg, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintln(a.out, "invalid weight:", args[0])
		return err
	}
	if err := a.body.SetWeight(ctx, kg); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Weight set to %.1f kg\n", kg)
	return nil
}

func (a *App) bodyTarget(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: body target <kcal>")
		return nil
	}
	kcal, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "invalid target:", args[0])
		return err
	}
	if err := a.body.SetBurnTarget(ctx, kcal); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Burn target set to %d kcal\n", kcal)
	return nil
}

func parseSlot(s string) (models.Slot, bool) {
	for _, slot := range models.Slots {
		if string(slot) == s {
			return slot, true
		}
	}
	return "", false
}

// bodyAdd lists the food library and adds the picked item to a slot.
func (a *App) bodyAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: body add <breakfast|lunch|dinner>")
		return nil
	}
	slot, ok := parseSlot(args[0])
	if !ok {
		fmt.Fprintln(a.out, "unknown slot:", args[0])
		return nil
	}

	library, err := a.body.FoodLibrary(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	for i, item := range library {
		fmt.Fprintf(a.out, "%d) %s (%d kcal, %s)\n", i+1, item.Name, item.Calories, item.Category)
	}

	n, err := GetInt(a.reader, "Pick a food by number:", a.out)
	if err != nil || n < 1 || n > len(library) {
		fmt.Fprintln(a.out, "invalid choice")
		return nil
	}

	if err := a.body.AddFood(ctx, slot, library[n-1]); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Added %s to %s\n", library[n-1].Name, slot)
	return nil
}

func (a *App) bodyQty(ctx context.Context, args []string) error {
	if len(args) < 3 {
		fmt.Fprintln(a.out, "Usage: body qty <slot> <id> <n>")
		return nil
	}
	slot, ok := parseSlot(args[0])
	if !ok {
		fmt.Fprintln(a.out, "unknown slot:", args[0])
		return nil
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "invalid id:", args[1])
		return err
	}
	qty, err := strconv.Atoi(args[2])
	if err != nil || qty < 1 {
		fmt.Fprintln(a.out, "invalid quantity:", args[2])
		return err
	}

	plan, err := a.body.MealPlan(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	// calories scale with quantity from the per-unit base
	for _, item := range plan.Items(slot) {
		if item.ID == id {
			base := item.Calories / item.Quantity
			if err := a.body.UpdateFood(ctx, slot, id, qty, base*qty); err != nil {
				fmt.Fprintln(a.out, err.Error())
				return err
			}
			fmt.Fprintf(a.out, "%s x%d = %d kcal\n", item.Name, qty, base*qty)
			return nil
		}
	}

	fmt.Fprintf(a.out, "no meal item %d in %s\n", id, slot)
	return nil
}

func (a *App) bodyRemove(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: body rm <slot> <id>")
		return nil
	}
	slot, ok := parseSlot(args[0])
	if !ok {
		fmt.Fprintln(a.out, "unknown slot:", args[0])
		return nil
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "invalid id:", args[1])
		return err
	}
	if err := a.body.RemoveFood(ctx, slot, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Removed")
	return nil
}

func (a *App) bodyWorkout(ctx context.Context, args []string) error {
	if len(args) == 0 {
		moves, err := a.body.WorkoutLibrary(ctx)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		fmt.Fprintf(a.out, "Workouts: %v\n", moves)
		return nil
	}
	if err := a.body.ToggleWorkout(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Toggled %s\n", args[0])
	return nil
}

func (a *App) bodySave(ctx context.Context) error {
	record, err := a.body.SaveDay(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Saved %s: %.1f kg, %d kcal in, deficit %s\n",
		record.Date, record.Weight, record.TotalIntake, aggregate.FormatDeficit(record.Deficit))
	return nil
}

func (a *App) bodyHistory(ctx context.Context) error {
	history, err := a.body.History(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	for _, record := range history {
		fmt.Fprintf(a.out, "[%d] %s: %.1f kg, %d kcal, deficit %s, workouts %v\n",
			record.ID, record.Date, record.Weight, record.TotalIntake,
			aggregate.FormatDeficit(record.Deficit), record.Workouts)
	}
	return nil
}

func (a *App) bodyRemoveDay(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: body rmday <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "invalid id:", args[0])
		return err
	}
	if err := a.body.DeleteHistory(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
