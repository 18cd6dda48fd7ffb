package journal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorewood/yournal/internal/output"
)

// Note is an existing daily note found on disk.
type Note struct {
	Date string    `json:"date"`
	Path string    `json:"path"`
	Day  time.Time `json:"-"`
}

// List returns the notes in dir with extension ext, newest first.
// Files whose base name is not a YYYY-MM-DD date are ignored.
// A missing directory yields an empty list.
func List(dir, ext string) ([]Note, error) {
	dir = directoryOrCwd(dir)
	suffix := "." + NormalizeExtension(ext)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Note{}, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read notes directory: "+dir, err)
	}

	notes := make([]Note, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}

		day, err := time.Parse(DateLayout, strings.TrimSuffix(name, suffix))
		if err != nil {
			continue
		}

		notes = append(notes, Note{
			Date: day.Format(DateLayout),
			Path: filepath.Join(dir, name),
			Day:  day,
		})
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Day.After(notes[j].Day)
	})
	return notes, nil
}
