package cli

import (
	"context"
	"fmt"
	"strings"
)

// Research asks the research assistant. The current backend is a local stub.
func (a *App) Research(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: research <query>")
		return nil
	}

	results, err := a.research.Search(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	for _, r := range results {
		fmt.Fprintf(a.out, "%s\n  %s\n", r.Title, r.Summary)
	}
	return nil
}
