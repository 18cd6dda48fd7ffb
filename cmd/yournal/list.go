package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/yournal/internal/journal"
	"github.com/gorewood/yournal/internal/output"
)

// newListCmd creates the list command.
func newListCmd(d deps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List existing daily notes, newest first",
		Long: `List the daily notes in the notes directory, newest first.

Only files named YYYY-MM-DD.<extension> are listed.

Examples:
  yournal list              # all notes
  yournal list --limit 7    # the last seven notes
  yournal list --json       # as JSON for scripting`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, limit, d)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most N notes (0 = all)")
	return cmd
}

func runList(cmd *cobra.Command, limit int, d deps) error {
	printer := newPrinter(cmd)

	if limit < 0 {
		err := output.NewUserError("--limit must not be negative")
		printer.Error(err)
		return err
	}

	settings, err := resolveSettings(cmd, d)
	if err != nil {
		printer.Error(err)
		return err
	}

	notes, err := journal.List(settings.Directory, settings.Extension)
	if err != nil {
		printer.Error(err)
		return err
	}
	if limit > 0 && len(notes) > limit {
		notes = notes[:limit]
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"directory": displayDir(settings.Directory),
			"count":     len(notes),
			"notes":     notes,
		})
	}

	if len(notes) == 0 {
		printer.Println("No notes in " + displayDir(settings.Directory))
		return nil
	}

	rows := make([][]string, 0, len(notes))
	for _, note := range notes {
		rows = append(rows, []string{note.Date, note.Day.Weekday().String()[:3], note.Path})
	}
	printer.Table([]string{"DATE", "DAY", "PATH"}, rows)
	return nil
}
