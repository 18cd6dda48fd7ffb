package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/yournal/internal/editor"
	"github.com/gorewood/yournal/internal/journal"
	"github.com/gorewood/yournal/internal/output"
)

// openFlags holds the flags only the root (open) command has.
type openFlags struct {
	editor string
	ignore bool
}

// runOpen resolves the day's note, creating it if needed, and opens it.
func runOpen(cmd *cobra.Command, args []string, flags *openFlags, d deps) error {
	printer := newPrinter(cmd)

	settings, err := resolveSettings(cmd, d)
	if err != nil {
		printer.Error(err)
		return err
	}

	selection := d.selection(flags.editor, flags.ignore, settings)
	launcher := editor.NewLauncher(selection, nil).
		WithIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()).
		WithWarn(printer.Warn)

	req := noteRequest(settings, dayArg(args))
	printer.Status("notes directory: %s", displayDir(settings.Directory))
	if req.Template != "" {
		printer.Status("template: %s", req.Template)
	}
	printer.Status("editor from %s", selection.Source())

	resolver := journal.NewResolver(&announcingOpener{next: launcher, printer: printer}, d.now)
	if path, day, err := resolver.Path(req); err == nil && !fileExists(path) && !printer.IsJSON() {
		printer.Print("Creating %q daily note.\n", day.Format(journal.DateLayout))
	}

	result, err := resolver.ResolveAndOpen(cmd.Context(), req)
	if result != nil && result.Created {
		printer.Status("created %s", result.Path)
	}
	if err != nil {
		printer.Error(err)
		return err
	}

	printer.Status("opened %s with %s", result.Path, strings.Join(result.Editor, " "))
	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	return nil
}

// announcingOpener prints which note is being opened before the editor
// takes over the terminal.
type announcingOpener struct {
	next    journal.Opener
	printer *output.Printer
}

func (o *announcingOpener) Open(ctx context.Context, path string) ([]string, error) {
	if !o.printer.IsJSON() {
		o.printer.Print("Opening %q daily note.\n", strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	return o.next.Open(ctx, path)
}

// displayDir shows the notes directory as an absolute path when possible.
func displayDir(dir string) string {
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
