package journal

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/gorewood/yournal/internal/output"
	"github.com/gorewood/yournal/internal/placeholder"
)

// Clock returns the current time.
type Clock func() time.Time

// Opener opens a note for the user and reports the command it ran.
type Opener interface {
	Open(ctx context.Context, path string) ([]string, error)
}

// Request describes the note to resolve.
type Request struct {
	// Day is yesterday, today, tomorrow or YYYY-MM-DD. Empty means today.
	Day string
	// Directory holds the notes. Empty means the working directory.
	Directory string
	// Template seeds a newly created note. Empty means an empty note.
	Template string
	// Extension without the dot. Empty means DefaultExtension.
	Extension string
	// SkipPlaceholders copies the template verbatim.
	SkipPlaceholders bool
}

// Result describes a resolved note.
type Result struct {
	Path    string   `json:"path"`
	Date    string   `json:"date"`
	Created bool     `json:"created"`
	Editor  []string `json:"editor,omitempty"`
}

// Resolver creates notes on first use and hands them to an Opener.
type Resolver struct {
	opener Opener
	now    Clock
}

// NewResolver creates a Resolver. If now is nil, time.Now is used.
// opener may be nil when only Ensure is called.
func NewResolver(opener Opener, now Clock) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{opener: opener, now: now}
}

// Path resolves the note path for req without touching the filesystem.
func (r *Resolver) Path(req Request) (string, time.Time, error) {
	day, err := ResolveDay(req.Day, r.now())
	if err != nil {
		return "", time.Time{}, err
	}
	return NotePath(directoryOrCwd(req.Directory), day, req.Extension), day, nil
}

// Ensure makes sure the note for req exists and returns its path.
//
// The directory is created if needed. An existing note is left exactly as
// it is. A missing note is created empty, or from req.Template with
// placeholders filled in; if the template cannot be read nothing is created.
func (r *Resolver) Ensure(req Request) (*Result, error) {
	now := r.now()

	day, err := ResolveDay(req.Day, now)
	if err != nil {
		return nil, err
	}

	dir := directoryOrCwd(req.Directory)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create notes directory: "+dir, err)
	}

	result := &Result{
		Path: NotePath(dir, day, req.Extension),
		Date: day.Format(DateLayout),
	}

	if info, statErr := os.Stat(result.Path); statErr == nil {
		if info.IsDir() {
			return nil, output.NewUserError("note path is a directory: " + result.Path)
		}
		return result, nil
	}

	content, err := r.content(req, now)
	if err != nil {
		return nil, err
	}

	created, err := createExclusive(result.Path, content)
	if err != nil {
		return nil, err
	}
	result.Created = created
	return result, nil
}

// ResolveAndOpen ensures the note exists, then opens it with the Opener.
//
// When opening fails the result is still returned: a note created by this
// call stays on disk.
func (r *Resolver) ResolveAndOpen(ctx context.Context, req Request) (*Result, error) {
	result, err := r.Ensure(req)
	if err != nil {
		return nil, err
	}
	if r.opener == nil {
		return result, output.NewSystemError("no editor configured")
	}

	argv, err := r.opener.Open(ctx, result.Path)
	result.Editor = argv
	if err != nil {
		return result, err
	}
	return result, nil
}

// content builds the text of a new note.
func (r *Resolver) content(req Request, now time.Time) (string, error) {
	if req.Template == "" {
		return "", nil
	}

	text, err := placeholder.Load(req.Template)
	if err != nil {
		return "", err
	}
	if req.SkipPlaceholders {
		return text, nil
	}
	return placeholder.Render(text, now), nil
}

// createExclusive writes content to a new file at path. It reports false,
// without error, when the file already exists.
func createExclusive(path, content string) (bool, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, output.NewSystemErrorWithCause("failed to create note: "+path, err)
	}

	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return false, output.NewSystemErrorWithCause("failed to write note: "+path, err)
	}
	if err := file.Close(); err != nil {
		return false, output.NewSystemErrorWithCause("failed to write note: "+path, err)
	}
	return true, nil
}

func directoryOrCwd(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
