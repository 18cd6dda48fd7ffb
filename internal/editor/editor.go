// Package editor chooses the command used to open a note and runs it.
//
// The choice is an explicit Selection value built once at startup from flags,
// $EDITOR, the config file and the detected platform, then handed to a
// Launcher. Nothing here reads process-wide state after construction.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/gorewood/yournal/internal/output"
	"github.com/gorewood/yournal/internal/platform"
)

// EnvEditor is the environment variable consulted for the user's editor.
const EnvEditor = "EDITOR"

var (
	// ErrEditorNotFound means the selected editor command could not be executed.
	ErrEditorNotFound = errors.New("editor not found")

	// ErrUnsupportedPlatform means no editor was configured and the host has
	// no known default opener.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Selection holds everything that decides which editor command runs.
type Selection struct {
	// Override is an explicit command (--editor). Wins over everything.
	Override string
	// IgnoreEnv skips EnvEditor and ConfigEditor and goes straight to the
	// platform opener.
	IgnoreEnv bool
	// EnvEditor is the value of $EDITOR.
	EnvEditor string
	// ConfigEditor is the editor key of config.yaml, below $EDITOR.
	ConfigEditor string
	// Platform picks the default opener when nothing else is set.
	Platform platform.Platform
}

// Command returns the editor argv, without the note path.
//
// Priority: Override, then EnvEditor and ConfigEditor unless IgnoreEnv, then
// the platform default opener. A value naming an existing file is used as
// is, so a path containing spaces works unquoted; anything else is split
// with shell quoting rules, so "code --wait" and
// "'/Applications/My Editor/code' --wait" both work.
func (s Selection) Command() ([]string, error) {
	candidates := []string{s.Override}
	if !s.IgnoreEnv {
		candidates = append(candidates, s.EnvEditor, s.ConfigEditor)
	}

	for _, value := range candidates {
		argv, err := commandWords(value)
		if err != nil {
			return nil, err
		}
		if len(argv) > 0 {
			return argv, nil
		}
	}

	if opener, ok := platform.DefaultOpener(s.Platform); ok {
		return opener, nil
	}

	return nil, output.NewUserErrorWithCause(
		fmt.Sprintf("cannot open editor on platform %q: supported platforms are windows, linux and darwin; set $%s or use --editor",
			s.Platform, EnvEditor),
		ErrUnsupportedPlatform,
	)
}

// Source names where Command's result came from, for status output.
func (s Selection) Source() string {
	switch {
	case strings.TrimSpace(s.Override) != "":
		return "--editor"
	case !s.IgnoreEnv && strings.TrimSpace(s.EnvEditor) != "":
		return "$" + EnvEditor
	case !s.IgnoreEnv && strings.TrimSpace(s.ConfigEditor) != "":
		return "config file"
	default:
		return s.Platform.String() + " default"
	}
}

// commandWords splits an editor setting into argv. Empty input yields nil.
func commandWords(value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if info, err := os.Stat(value); err == nil && !info.IsDir() {
		return []string{value}, nil
	}

	words, err := shellwords.Parse(value)
	if err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("invalid editor command %q: %v", value, err), err)
	}
	return words, nil
}

// LookPathFunc resolves a command name to an executable path.
type LookPathFunc func(file string) (string, error)

// WarnFunc reports a non-fatal problem, like output.Printer.Warn.
type WarnFunc func(format string, args ...any)

// Launcher runs the selected editor on a file, attached to the terminal.
type Launcher struct {
	selection Selection
	lookPath  LookPathFunc
	warn      WarnFunc
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

// NewLauncher creates a Launcher that inherits the process's stdio.
// If lookPath is nil, exec.LookPath is used.
func NewLauncher(sel Selection, lookPath LookPathFunc) *Launcher {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &Launcher{
		selection: sel,
		lookPath:  lookPath,
		warn:      func(string, ...any) {},
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// WithIO replaces the streams handed to the editor process.
func (l *Launcher) WithIO(stdin io.Reader, stdout, stderr io.Writer) *Launcher {
	l.stdin, l.stdout, l.stderr = stdin, stdout, stderr
	return l
}

// WithWarn sets where a non-zero editor exit is reported.
func (l *Launcher) WithWarn(warn WarnFunc) *Launcher {
	if warn != nil {
		l.warn = warn
	}
	return l
}

// Open runs the editor with path as its last argument and waits for it.
// Returns the argv that was run.
//
// A command that cannot be found or started is a user error wrapping
// ErrEditorNotFound. Once the editor has started, its exit status is only
// warned about, and the wait is not cut short by ctx: the editor shares the
// terminal and handles Ctrl-C itself.
func (l *Launcher) Open(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	argv, err := l.selection.Command()
	if err != nil {
		return nil, err
	}

	bin, err := l.lookPath(argv[0])
	if err != nil {
		return nil, notFound(argv[0], err)
	}

	args := append(argv[1:len(argv):len(argv)], path)
	cmd := exec.Command(bin, args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	full := append(argv[:len(argv):len(argv)], path)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, notFound(argv[0], err)
		}
		l.warn("editor %q exited with %v", strings.Join(argv, " "), exitErr)
	}

	return full, nil
}

func notFound(command string, cause error) error {
	return output.NewUserErrorWithCause(
		fmt.Sprintf("editor %q not found: %v", command, cause),
		fmt.Errorf("%w: %w", ErrEditorNotFound, cause),
	)
}
