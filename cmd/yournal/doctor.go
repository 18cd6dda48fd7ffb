package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/yournal/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results.
type doctorResult struct {
	Version  string          `json:"version"`
	Settings *doctorSettings `json:"settings"`
	Checks   []checkResult   `json:"checks"`
	Summary  *doctorSummary  `json:"summary"`
}

// doctorSettings is the effective configuration the checks ran against.
type doctorSettings struct {
	Directory string `json:"directory"`
	Extension string `json:"extension"`
	Template  string `json:"template,omitempty"`
	Editor    string `json:"editor,omitempty"`
	Source    string `json:"editor_source"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd(d deps) *cobra.Command {
	var quiet bool
	flags := &openFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, template and editor",
		Long: `Check that yournal can create and open notes with the current settings.

Checks:
  Config file  - config.yaml parses (or is absent)
  Directory    - notes directory exists or can be created
  Template     - configured template is a readable file
  Editor       - the editor that would be used can be found

Examples:
  yournal doctor                 # run all checks
  yournal doctor -e nano         # check with a different editor
  yournal doctor --json          # output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags, quiet, d)
		},
	}

	cmd.Flags().StringVarP(&flags.editor, "editor", "e", "", "Editor command to check instead of the configured one")
	cmd.Flags().BoolVarP(&flags.ignore, "ignore", "i", false, "Check the system default opener, ignoring $EDITOR and the config file editor")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Only show failures and warnings")
	return cmd
}

func runDoctor(cmd *cobra.Command, flags *openFlags, quiet bool, d deps) error {
	printer := newPrinter(cmd)

	checks, settings := gatherDoctorChecks(cmd, flags, d)
	result := &doctorResult{
		Version:  version,
		Settings: settings,
		Checks:   checks,
		Summary:  &doctorSummary{},
	}
	for _, check := range result.Checks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	outputDoctorHuman(printer, result, quiet)
	return nil
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Println()
	printer.Print("yournal doctor %s\n", result.Version)

	if !quiet {
		printer.Section("Settings")
		printer.KeyValue("Directory", result.Settings.Directory)
		printer.KeyValue("Extension", result.Settings.Extension)
		printer.KeyValue("Template", valueOr(result.Settings.Template, "(none)"))
		printer.KeyValue("Editor", valueOr(result.Settings.Editor, "(none)")+" from "+result.Settings.Source)
	}

	printer.Section("Checks")
	for _, check := range result.Checks {
		if quiet && check.Status == checkPass {
			continue
		}
		printer.Print("  %s  %s: %s\n", statusIcon(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("      -> %s\n", check.Hint)
		}
	}

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), result.Summary.Passed,
		statusIcon(checkWarn), result.Summary.Warnings,
		statusIcon(checkFail), result.Summary.Failed,
	)
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
