package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/yournal/internal/journal"
)

// newPathCmd creates the path command.
func newPathCmd(d deps) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "path [yesterday|today|tomorrow|YYYY-MM-DD]",
		Short: "Print the path of a day's note without opening it",
		Long: `Print the path of a day's note without opening an editor.

With --create the note is created first (from the template, if one is
configured), exactly as the main command would, but no editor is started.

Examples:
  yournal path                 # path of today's note
  cat "$(yournal path yesterday)"
  yournal path --create --json # create today's note, report as JSON`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{journal.Yesterday, journal.Today, journal.Tomorrow},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, args, create, d)
		},
	}
	cmd.Flags().BoolVar(&create, "create", false, "Create the note if it does not exist")
	return cmd
}

func runPath(cmd *cobra.Command, args []string, create bool, d deps) error {
	printer := newPrinter(cmd)

	settings, err := resolveSettings(cmd, d)
	if err != nil {
		printer.Error(err)
		return err
	}

	req := noteRequest(settings, dayArg(args))
	resolver := journal.NewResolver(nil, d.now)

	var result *journal.Result
	if create {
		result, err = resolver.Ensure(req)
	} else {
		result, err = lookupNote(resolver, req)
	}
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"path":    result.Path,
			"date":    result.Date,
			"exists":  create || fileExists(result.Path),
			"created": result.Created,
		})
	}
	if result.Created {
		printer.Status("created %s", result.Path)
	}
	printer.Println(result.Path)
	return nil
}

// lookupNote resolves the note path without touching the filesystem.
func lookupNote(resolver *journal.Resolver, req journal.Request) (*journal.Result, error) {
	path, day, err := resolver.Path(req)
	if err != nil {
		return nil, err
	}
	return &journal.Result{Path: path, Date: day.Format(journal.DateLayout)}, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

