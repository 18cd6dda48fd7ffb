package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/yournal/internal/journal"
	"github.com/gorewood/yournal/internal/placeholder"
)

// --- Test helpers ---

func fixedClock() time.Time {
	return time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)
}

func makeTestNotes(t *testing.T, template string) (Notes, string) {
	t.Helper()
	dir := t.TempDir()
	return Notes{
		Resolver: journal.NewResolver(nil, fixedClock),
		Defaults: journal.Request{
			Directory: dir,
			Extension: "md",
			Template:  template,
			Day:       "yesterday",
		},
	}, dir
}

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.md")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	return path
}

// --- note_path ---

func TestHandleNotePath(t *testing.T) {
	notes, dir := makeTestNotes(t, "")
	handler := handleNotePath(notes)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, NotePathInput{Day: "tomorrow"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Path != filepath.Join(dir, "2024-01-16.md") {
		t.Errorf("Path = %q", out.Path)
	}
	if out.Date != "2024-01-16" {
		t.Errorf("Date = %q", out.Date)
	}
	if out.Exists {
		t.Error("Exists = true, want false")
	}
}

func TestHandleNotePath_DefaultsToToday(t *testing.T) {
	notes, dir := makeTestNotes(t, "")
	if err := os.WriteFile(filepath.Join(dir, "2024-01-15.md"), nil, 0o600); err != nil {
		t.Fatal(err)
	}

	_, out, err := handleNotePath(notes)(context.Background(), &mcp.CallToolRequest{}, NotePathInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Date != "2024-01-15" {
		t.Errorf("Date = %q, want today (the defaults' Day is ignored)", out.Date)
	}
	if !out.Exists {
		t.Error("Exists = false, want true")
	}
}

func TestHandleNotePath_InvalidDay(t *testing.T) {
	notes, _ := makeTestNotes(t, "")

	_, _, err := handleNotePath(notes)(context.Background(), &mcp.CallToolRequest{}, NotePathInput{Day: "soon"})
	if !errors.Is(err, journal.ErrUnknownDay) {
		t.Errorf("error = %v, want ErrUnknownDay", err)
	}
}

// --- daily_note ---

func TestHandleDailyNote_CreatesFromTemplate(t *testing.T) {
	notes, dir := makeTestNotes(t, writeTemplate(t, "# {{title}}\n"))
	handler := handleDailyNote(notes)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, DailyNoteInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Created {
		t.Error("Created = false, want true")
	}
	if out.Path != filepath.Join(dir, "2024-01-15.md") {
		t.Errorf("Path = %q", out.Path)
	}
	if out.Content != "# 2024-01-15\n" {
		t.Errorf("Content = %q", out.Content)
	}

	_, again, err := handler(context.Background(), &mcp.CallToolRequest{}, DailyNoteInput{})
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if again.Created {
		t.Error("second call should not create the note")
	}
	if again.Content != out.Content {
		t.Errorf("content changed: %q then %q", out.Content, again.Content)
	}
}

func TestHandleDailyNote_ExistingNoteUntouched(t *testing.T) {
	notes, dir := makeTestNotes(t, writeTemplate(t, "template text"))
	path := filepath.Join(dir, "2024-01-14.md")
	if err := os.WriteFile(path, []byte("written yesterday"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, out, err := handleDailyNote(notes)(context.Background(), &mcp.CallToolRequest{}, DailyNoteInput{Day: "yesterday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Created || out.Content != "written yesterday" {
		t.Errorf("out = %+v, want existing content untouched", out)
	}
}

func TestHandleDailyNote_TemplateNotFound(t *testing.T) {
	notes, dir := makeTestNotes(t, filepath.Join(t.TempDir(), "missing.md"))

	_, _, err := handleDailyNote(notes)(context.Background(), &mcp.CallToolRequest{}, DailyNoteInput{})
	if !errors.Is(err, placeholder.ErrTemplateNotFound) {
		t.Fatalf("error = %v, want ErrTemplateNotFound", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "2024-01-15.md")); !os.IsNotExist(statErr) {
		t.Error("note must not be created when the template is missing")
	}
}

// --- list_notes ---

func TestHandleListNotes(t *testing.T) {
	notes, dir := makeTestNotes(t, "")
	for _, name := range []string{"2024-01-13.md", "2024-01-15.md", "2024-01-14.md", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	handler := handleListNotes(notes)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ListNotesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 3 || out.Notes[0].Date != "2024-01-15" {
		t.Errorf("out = %+v", out)
	}

	_, limited, err := handler(context.Background(), &mcp.CallToolRequest{}, ListNotesInput{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limited.Count != 2 || limited.Notes[1].Date != "2024-01-14" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestHandleListNotes_NegativeLimit(t *testing.T) {
	notes, _ := makeTestNotes(t, "")

	if _, _, err := handleListNotes(notes)(context.Background(), &mcp.CallToolRequest{}, ListNotesInput{Limit: -1}); err == nil {
		t.Error("expected error for negative limit")
	}
}

func TestNewServer(t *testing.T) {
	notes, _ := makeTestNotes(t, "")
	if server := NewServer("1.0.0", notes); server == nil {
		t.Fatal("NewServer() returned nil")
	}
}
