package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Dashboard(ctx context.Context) error
	Body(ctx context.Context, args []string) error
	Mind(ctx context.Context, args []string) error
	Music(ctx context.Context, args []string) error
	Habits(ctx context.Context, args []string) error
	Record(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
	Archive(ctx context.Context, args []string) error
	Research(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the LifeOS CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	help            — show available commands
//	dash            — level, xp, deficit and activity heatmap
//	body ...        — weight, meals, workouts, save-day history
//	mind ...        — journal draft, entries, categories
//	music ...       — practice logs
//	habits ...      — daily checklist
//	record ...      — voice memo capture for the journal draft
//	export <file>   — write a snapshot of the whole store
//	import <file>   — replace the whole store from a snapshot
//	reset           — wipe the store
//	archive <id>    — send a journal entry to the remote agent
//	research <q>    — ask the research assistant
//	exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lifeos %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: dash, body, mind, music, habits, record, export, import, reset, archive, research, exit")
			printlnFn("Type '<command> help' for module subcommands.")

		case "dash", "dashboard":
			_ = a.Dashboard(ctx)

		case "body":
			_ = a.Body(ctx, args)

		case "mind":
			_ = a.Mind(ctx, args)

		case "music":
			_ = a.Music(ctx, args)

		case "habits":
			_ = a.Habits(ctx, args)

		case "record":
			_ = a.Record(ctx, args)

		case "export":
			_ = a.Export(ctx, args)

		case "import":
			_ = a.Import(ctx, args)

		case "reset":
			_ = a.Reset(ctx)

		case "archive":
			_ = a.Archive(ctx, args)

		case "research":
			_ = a.Research(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
