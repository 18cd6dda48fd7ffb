package journal

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorewood/yournal/internal/output"
)

// DateLayout is the layout of a note's base name.
const DateLayout = "2006-01-02"

// DefaultExtension is used when no extension is configured.
const DefaultExtension = "md"

// Day keywords accepted in addition to YYYY-MM-DD.
const (
	Yesterday = "yesterday"
	Today     = "today"
	Tomorrow  = "tomorrow"
)

// ErrUnknownDay means a day argument is neither a keyword nor a YYYY-MM-DD date.
var ErrUnknownDay = errors.New("unknown day")

// dayOffsets maps each keyword to its distance from today.
var dayOffsets = map[string]int{
	Yesterday: -1,
	Today:     0,
	Tomorrow:  1,
}

// ResolveDay turns a day argument into midnight of that calendar day in
// now's location. An empty day means today.
func ResolveDay(day string, now time.Time) (time.Time, error) {
	key := strings.ToLower(strings.TrimSpace(day))
	if key == "" {
		key = Today
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if offset, ok := dayOffsets[key]; ok {
		return midnight.AddDate(0, 0, offset), nil
	}

	parsed, err := time.ParseInLocation(DateLayout, key, now.Location())
	if err != nil {
		return time.Time{}, output.NewUserErrorWithCause(
			fmt.Sprintf("invalid day %q: use yesterday, today, tomorrow or YYYY-MM-DD", day),
			ErrUnknownDay,
		)
	}
	return parsed, nil
}

// NormalizeExtension strips surrounding space and a leading dot, falling
// back to DefaultExtension.
func NormalizeExtension(ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return DefaultExtension
	}
	return ext
}

// NotePath returns {dir}/{YYYY-MM-DD}.{ext} for day.
func NotePath(dir string, day time.Time, ext string) string {
	return filepath.Join(dir, day.Format(DateLayout)+"."+NormalizeExtension(ext))
}
