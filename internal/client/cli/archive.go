package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/lifeos/internal/client/models"
)

// entryText flattens an entry into the free text the agent endpoint
// classifies. Field labels keep the prose meaningful for the model.
func entryText(entry models.Entry) (string, error) {
	v, err := entry.Unwrap()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch d := v.(type) {
	case models.Reading:
		fmt.Fprintf(&b, "# %s\n\n%s\n\n%s\n", d.Title, d.Excerpt, d.Thoughts)
	case models.Reflection:
		fmt.Fprintf(&b, "Trigger: %s\n\nCorrection: %s\n", d.Trigger, d.Correction)
	case models.Logic:
		fmt.Fprintf(&b, "Premise: %s\n\nConclusion: %s\n", d.Premise, d.Conclusion)
	case models.MusicFlow:
		fmt.Fprintf(&b, "%s\n", d.Note)
	case models.Generic:
		fmt.Fprintf(&b, "%s\n", d.Note)
	default:
		return "", fmt.Errorf("unsupported entry category %q", entry.Category)
	}
	return strings.TrimSpace(b.String()), nil
}

// Archive submits a journal entry to the remote agent, which classifies it
// and creates a page in the external document database. Blocks until the
// single request succeeds or fails; there is no retry.
func (a *App) Archive(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: archive <entry-id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "invalid id:", args[0])
		return err
	}

	entries, err := a.mind.Entries(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	var entry *models.Entry
	for i := range entries {
		if entries[i].ID == id {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		fmt.Fprintf(a.out, "no entry %d\n", id)
		return nil
	}

	text, err := entryText(*entry)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Archiving...")
	url, err := a.archiver.Archive(ctx, id, text)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Archived: %s\n", url)
	return nil
}
