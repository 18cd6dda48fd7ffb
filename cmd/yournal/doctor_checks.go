package main

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/yournal/internal/config"
	"github.com/gorewood/yournal/internal/editor"
	"github.com/gorewood/yournal/internal/placeholder"
)

// gatherDoctorChecks runs every check in display order and reports the
// settings they ran against.
func gatherDoctorChecks(cmd *cobra.Command, flags *openFlags, d deps) ([]checkResult, *doctorSettings) {
	checks := []checkResult{checkConfigFile()}

	settings, err := resolveSettings(cmd, d)
	if err != nil {
		// checkConfigFile already reported the failure; fall back to env only.
		settings = config.Resolve(nil, d.getenv)
	}

	selection := d.selection(flags.editor, flags.ignore, settings)

	checks = append(checks, checkDirectory(settings.Directory))
	checks = append(checks, checkTemplate(settings.Template))
	checks = append(checks, checkEditor(selection, exec.LookPath))

	effective := &doctorSettings{
		Directory: displayDir(settings.Directory),
		Extension: settings.Extension,
		Template:  settings.Template,
		Source:    selection.Source(),
	}
	if argv, err := selection.Command(); err == nil {
		effective.Editor = strings.Join(argv, " ")
	}
	return checks, effective
}

// checkConfigFile checks that config.yaml, if present, parses.
func checkConfigFile() checkResult {
	path := config.FilePath()
	if path == "" {
		return checkResult{Name: "Config file", Status: checkWarn, Message: "no configuration directory could be determined"}
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return checkResult{Name: "Config file", Status: checkPass, Message: "none at " + path + " (using defaults)"}
	}
	if _, err := config.LoadFile(path); err != nil {
		return checkResult{
			Name:    "Config file",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Fix or remove " + path,
		}
	}
	return checkResult{Name: "Config file", Status: checkPass, Message: path}
}

// checkDirectory checks that the notes directory exists or can be created.
func checkDirectory(dir string) checkResult {
	shown := displayDir(dir)

	info, err := os.Stat(shown)
	switch {
	case err == nil && info.IsDir():
		return checkResult{Name: "Directory", Status: checkPass, Message: shown}
	case err == nil:
		return checkResult{
			Name:    "Directory",
			Status:  checkFail,
			Message: shown + " is not a directory",
			Hint:    "Point --directory or $" + config.EnvDirectory + " at a directory",
		}
	case errors.Is(err, fs.ErrNotExist):
		return checkResult{Name: "Directory", Status: checkWarn, Message: shown + " does not exist yet (created on first note)"}
	default:
		return checkResult{Name: "Directory", Status: checkFail, Message: err.Error()}
	}
}

// checkTemplate checks that a configured template is readable.
func checkTemplate(path string) checkResult {
	if path == "" {
		return checkResult{Name: "Template", Status: checkPass, Message: "none (new notes start empty)"}
	}
	if _, err := placeholder.Load(path); err != nil {
		return checkResult{
			Name:    "Template",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Create the file or unset --template / $" + config.EnvTemplate,
		}
	}
	return checkResult{Name: "Template", Status: checkPass, Message: path}
}

// checkEditor checks that the editor command resolves to an executable.
func checkEditor(selection editor.Selection, lookPath editor.LookPathFunc) checkResult {
	argv, err := selection.Command()
	if err != nil {
		return checkResult{
			Name:    "Editor",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Set $" + editor.EnvEditor + " or pass --editor",
		}
	}

	command := strings.Join(argv, " ")
	if _, err := lookPath(argv[0]); err != nil {
		return checkResult{
			Name:    "Editor",
			Status:  checkFail,
			Message: command + " (from " + selection.Source() + ") not found in PATH",
			Hint:    "Install it, or choose another with --editor or $" + editor.EnvEditor,
		}
	}
	return checkResult{Name: "Editor", Status: checkPass, Message: command + " (from " + selection.Source() + ")"}
}
