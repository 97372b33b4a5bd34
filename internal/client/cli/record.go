package cli

import (
	"context"
	"fmt"
)

// Record controls voice memo capture. On stop, the captured audio is stored
// base64-encoded on the journal draft.
func (a *App) Record(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: record [start <file>|stop]")
		return nil
	}

	switch args[0] {
	case "start":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: record start <file>")
			return nil
		}
		a.capture.SetPath(args[1])
		if err := a.recorder.Start(ctx); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		fmt.Fprintln(a.out, "Recording...")
		return nil

	case "stop":
		encoded, err := a.recorder.Stop()
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}

		draft, err := a.mind.Draft(ctx)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		draft.Audio = encoded
		if err := a.mind.SaveDraft(ctx, draft); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}

		fmt.Fprintf(a.out, "Captured %d bytes into the draft\n", len(encoded))
		return nil

	default:
		fmt.Fprintln(a.out, "Usage: record [start <file>|stop]")
		return nil
	}
}
