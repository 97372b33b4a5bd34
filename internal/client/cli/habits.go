package cli

import (
	"context"
	"fmt"
)

// Habits dispatches the daily checklist subcommands.
func (a *App) Habits(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.habitsToday(ctx)
	}

	switch args[0] {
	case "check":
		return a.habitsCheck(ctx, args[1:])
	case "log":
		return a.habitsLog(ctx)
	default:
		fmt.Fprintln(a.out, "Usage: habits [check <id>|log]")
		return nil
	}
}

func (a *App) habitsToday(ctx context.Context) error {
	state, err := a.habits.Today(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Habits for %s:\n", state.Date)
	for _, habit := range a.habits.Habits() {
		mark := "[ ]"
		if state.Completed(habit.ID) {
			mark = "[x]"
		}
		fmt.Fprintf(a.out, "%s %s (%s)\n", mark, habit.Label, habit.ID)
	}
	return nil
}

func (a *App) habitsCheck(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: habits check <id>")
		return nil
	}

	checked, err := a.habits.Toggle(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if checked {
		fmt.Fprintf(a.out, "Checked %s\n", args[0])
	} else {
		fmt.Fprintf(a.out, "Unchecked %s\n", args[0])
	}
	return nil
}

func (a *App) habitsLog(ctx context.Context) error {
	records, err := a.habits.Archive(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	for _, record := range records {
		fmt.Fprintf(a.out, "%s: %d done %v\n", record.Date, record.Count, record.CompletedIDs)
	}
	return nil
}
