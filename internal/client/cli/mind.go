package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lifeos/internal/client/archive"
	"github.com/dmitrijs2005/lifeos/internal/client/models"
)

func (a *App) mindUsage() {
	fmt.Fprintln(a.out, "Usage: mind [list|draft [<field>]|save <category>|rm <id>|cats|addcat|rmcat <id>]")
}

// Mind dispatches the journal module subcommands.
func (a *App) Mind(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.mindList(ctx)
	}

	switch args[0] {
	case "list":
		return a.mindList(ctx)
	case "draft":
		return a.mindDraft(ctx, args[1:])
	case "save":
		return a.mindSave(ctx, args[1:])
	case "rm":
		return a.mindRemove(ctx, args[1:])
	case "cats":
		return a.mindCategories(ctx)
	case "addcat":
		return a.mindAddCategory(ctx)
	case "rmcat":
		return a.mindRemoveCategory(ctx, args[1:])
	default:
		a.mindUsage()
		return nil
	}
}

func (a *App) mindList(ctx context.Context) error {
	entries, err := a.mind.Entries(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	defs, err := a.mind.Categories(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	for _, entry := range entries {
		def := models.ResolveCategory(defs, entry.Category)
		fmt.Fprintf(a.out, "[%d] %s %s", entry.ID, entry.CreatedAt, def.Label)
		if state := a.archiver.State(entry.ID); state != archive.TaskIdle {
			fmt.Fprintf(a.out, " (%s)", state)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// mindDraft shows the draft, or prompts for one field. The audio field is
// set through the record command, not here.
func (a *App) mindDraft(ctx context.Context, args []string) error {
	draft, err := a.mind.Draft(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if len(args) == 0 {
		fmt.Fprintf(a.out, "title: %s\nexcerpt: %s\nthoughts: %s\ntrigger: %s\ncorrection: %s\npremise: %s\nconclusion: %s\nnote: %s\naudio: %d bytes\n",
			draft.Title, draft.Excerpt, draft.Thoughts, draft.Trigger, draft.Correction,
			draft.Premise, draft.Conclusion, draft.Note, len(draft.Audio))
		return nil
	}

	field := args[0]

	var target *string
	multiline := false
	switch field {
	case "title":
		target = &draft.Title
	case "excerpt":
		target, multiline = &draft.Excerpt, true
	case "thoughts":
		target, multiline = &draft.Thoughts, true
	case "trigger":
		target = &draft.Trigger
	case "correction":
		target, multiline = &draft.Correction, true
	case "premise":
		target = &draft.Premise
	case "conclusion":
		target = &draft.Conclusion
	case "note":
		target, multiline = &draft.Note, true
	default:
		fmt.Fprintln(a.out, "unknown field:", field)
		return nil
	}

	var text string
	if multiline {
		text, err = GetMultiline(a.reader, "Enter "+field+":", a.out)
	} else {
		text, err = GetSimpleText(a.reader, "Enter "+field+":", a.out)
	}
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	*target = text

	if err := a.mind.SaveDraft(ctx, draft); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Draft updated")
	return nil
}

func (a *App) mindSave(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: mind save <category>")
		return nil
	}

	entry, err := a.mind.SaveEntry(ctx, models.Category(args[0]))
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Saved entry %d (%s)\n", entry.ID, entry.Category)
	return nil
}

func (a *App) mindRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: mind rm <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "invalid id:", args[0])
		return err
	}
	if err := a.mind.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) mindCategories(ctx context.Context) error {
	defs, err := a.mind.Categories(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	for _, def := range defs {
		fmt.Fprintf(a.out, "%s: %s (%s, %s)\n", def.ID, def.Label, def.IconRef, def.ColorTheme)
	}
	return nil
}

func (a *App) mindAddCategory(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Category id:", a.out)
	if err != nil {
		return err
	}
	label, err := GetSimpleText(a.reader, "Label:", a.out)
	if err != nil {
		return err
	}
	icon, err := GetSimpleText(a.reader, "Icon:", a.out)
	if err != nil {
		return err
	}
	color, err := GetSimpleText(a.reader, "Color theme:", a.out)
	if err != nil {
		return err
	}

	def := models.CategoryDefinition{ID: id, Label: label, IconRef: icon, ColorTheme: color}
	if err := a.mind.AddCategory(ctx, def); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Category added")
	return nil
}

func (a *App) mindRemoveCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: mind rmcat <id>")
		return nil
	}
	if err := a.mind.DeleteCategory(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Category deleted; its entries fall back to generic")
	return nil
}
