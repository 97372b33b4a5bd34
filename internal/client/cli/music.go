package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Music dispatches the practice log subcommands.
func (a *App) Music(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.musicList(ctx)
	}

	switch args[0] {
	case "list":
		return a.musicList(ctx)
	case "add":
		return a.musicAdd(ctx)
	case "rm":
		return a.musicRemove(ctx, args[1:])
	default:
		fmt.Fprintln(a.out, "Usage: music [list|add|rm <id>]")
		return nil
	}
}

func (a *App) musicList(ctx context.Context) error {
	logs, err := a.music.Logs(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	for _, log := range logs {
		fmt.Fprintf(a.out, "[%d] %s %s %d min", log.ID, log.Date, log.Instrument, log.Minutes)
		if log.Note != "" {
			fmt.Fprintf(a.out, " — %s", log.Note)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) musicAdd(ctx context.Context) error {
	instrument, err := GetSimpleText(a.reader, "Instrument:", a.out)
	if err != nil {
		return err
	}
	minutesText, err := GetSimpleText(a.reader, "Minutes:", a.out)
	if err != nil {
		return err
	}
	minutes, err := strconv.Atoi(minutesText)
	if err != nil || minutes < 0 {
		fmt.Fprintln(a.out, "invalid minutes:", minutesText)
		return nil
	}
	note, err := GetSimpleText(a.reader, "Note (optional):", a.out)
	if err != nil {
		return err
	}

	log, err := a.music.AddLog(ctx, instrument, minutes, note)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Logged %s, %d min (%s)\n", log.Instrument, log.Minutes, log.Date)
	return nil
}

func (a *App) musicRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: music rm <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "invalid id:", args[0])
		return err
	}
	if err := a.music.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
