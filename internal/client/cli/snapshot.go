package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/client/snapshot"
	"github.com/dmitrijs2005/lifeos/internal/filex"
)

const backupDirName = "backups"

// Export writes a snapshot of the whole store to a file. Without an argument
// a timestamped file under the backups directory is used.
func (a *App) Export(ctx context.Context, args []string) error {
	var fileName string
	if len(args) > 0 {
		fileName = args[0]
	} else {
		dir, err := filex.EnsureSubDir(backupDirName)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		fileName = filepath.Join(dir, fmt.Sprintf("lifeos-%s.json", time.Now().Format("2006-01-02-150405")))
	}

	doc, err := a.codec.Export(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	f, err := os.Create(fileName)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	defer f.Close()

	if err := doc.WriteTo(f); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Exported to %s\n", fileName)
	return nil
}

// Import replaces the whole store from a snapshot file. The current state is
// discarded only after the document validates; a malformed file leaves the
// store untouched.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: import <file>")
		return nil
	}

	ok, err := Confirm(a.reader, "Importing replaces ALL current data. Continue?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	defer f.Close()

	doc, err := snapshot.Decode(f)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.codec.Import(ctx, doc); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Imported snapshot from %s\n", doc.Timestamp.Format(time.RFC3339))
	return nil
}

// Reset wipes the store after confirmation.
func (a *App) Reset(ctx context.Context) error {
	ok, err := Confirm(a.reader, "This wipes ALL data. Continue?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.codec.Reset(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Store reset")
	return nil
}
