// Package main provides the entry point for the yournal CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/yournal/internal/config"
	"github.com/gorewood/yournal/internal/editor"
	"github.com/gorewood/yournal/internal/envfile"
	"github.com/gorewood/yournal/internal/journal"
	"github.com/gorewood/yournal/internal/output"
	"github.com/gorewood/yournal/internal/platform"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// deps are the pieces of the environment commands read, injectable for tests.
type deps struct {
	now      journal.Clock
	platform platform.Platform
	getenv   func(string) string
}

// selection builds the editor selection from --editor, --ignore, $EDITOR
// and the config file's editor.
func (d deps) selection(override string, ignore bool, settings config.Settings) editor.Selection {
	return editor.Selection{
		Override:     override,
		IgnoreEnv:    ignore,
		EnvEditor:    d.getenv(editor.EnvEditor),
		ConfigEditor: settings.Editor,
		Platform:     d.platform,
	}
}

func defaultDeps() deps {
	return deps{
		now:      nil,
		platform: platform.Host(),
		getenv:   os.Getenv,
	}
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor folds --color and TTY detection of the command's output.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Flags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// isVerbose reads the --verbose persistent flag.
func isVerbose(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("verbose")
	return flag != nil && flag.Value.String() == "true"
}

// newPrinter creates the printer every command writes through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr()).
		WithVerbose(isVerbose(cmd))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	err := fang.Execute(ctx, cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError prints errors cobra produced itself (unknown flags, bad args).
// Errors from our commands are ExitErrors and were already printed.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the yournal CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdWithDeps(defaultDeps())
}

func newRootCmdWithDeps(d deps) *cobra.Command {
	flags := &openFlags{}

	cmd := &cobra.Command{
		Use:   "yournal [yesterday|today|tomorrow|YYYY-MM-DD]",
		Short: "Fast (y)ournal: open today's daily note in your editor",
		Long: `Yournal - fast daily notes from your terminal.

Opens the note for a day ({directory}/{YYYY-MM-DD}.{extension}) in your
editor, creating it first if it does not exist. New notes can be seeded
from a template; {{title}}, {{date}}, {{date:FORMAT}}, {{time}} and
{{time:FORMAT}} are filled in when the note is created. Existing notes
are never rewritten.

Defaults come from, lowest first:
  ~/.config/yournal/config.yaml
  YOURNAL_DIRECTORY, YOURNAL_EXTENSION, YOURNAL_TEMPLATE
  (also read from .env.local, .env and ~/.config/yournal/env)
  command-line flags

The editor is --editor, then $EDITOR, then the config file's editor
(--ignore skips both), then the system opener: xdg-open on Linux, open
on macOS, cmd /c start on Windows.`,
		Example: `  yournal                      # open today's note
  yournal tomorrow -t ~/notes/template.md
  yournal 2024-01-15 -d ~/journal -x org
  yournal -e "code --wait"`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     []string{journal.Yesterday, journal.Today, journal.Tomorrow},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, args, flags, d)
		},
	}

	// Load .env.local (then .env, then the global env file) before any
	// command reads YOURNAL_* variables. Set variables always win.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles(newPrinter(cmd))
		return nil
	}

	addNoteFlags(cmd)
	cmd.Flags().StringVarP(&flags.editor, "editor", "e", "", "Editor command to open the note with (overrides $EDITOR)")
	cmd.Flags().BoolVarP(&flags.ignore, "ignore", "i", false, "Ignore $EDITOR and the config file editor; use the system default opener")

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print what yournal is doing to stderr")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newPathCmd(d))
	cmd.AddCommand(newListCmd(d))
	cmd.AddCommand(newDoctorCmd(d))
	cmd.AddCommand(newServeCmd(d))

	return cmd
}

// addNoteFlags adds the flags that locate notes, shared by every subcommand.
func addNoteFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("directory", "d", "", "Directory where daily notes are saved (default: $YOURNAL_DIRECTORY or current directory)")
	flags.StringP("extension", "x", "", "Note file extension (default: $YOURNAL_EXTENSION or md)")
	flags.StringP("template", "t", "", "Template used for new notes (default: $YOURNAL_TEMPLATE)")
	flags.BoolP("skip", "s", false, "Copy the template without filling in placeholders")
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. ~/.config/yournal/env
func loadEnvFiles(printer *output.Printer) {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	for _, err := range envfile.LoadAll(paths...) {
		printer.Warn("%v", err)
	}
}
