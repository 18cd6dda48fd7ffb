package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/yournal/internal/output"
	"github.com/gorewood/yournal/internal/platform"
)

func seedNotes(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		writeFile(t, filepath.Join(dir, name), "")
	}
}

func TestListCommand_JSON(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	seedNotes(t, dir, "2024-01-13.md", "2024-01-15.md", "2024-01-14.md", "notes.md", "2024-01-16.txt")

	stdout, _, err := executeCmd(t, testDeps(nil, platform.Linux), "list", "-d", dir, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Count int `json:"count"`
		Notes []struct {
			Date string `json:"date"`
			Path string `json:"path"`
		} `json:"notes"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if result.Count != 3 {
		t.Fatalf("count = %d, want 3", result.Count)
	}
	want := []string{"2024-01-15", "2024-01-14", "2024-01-13"}
	for i, note := range result.Notes {
		if note.Date != want[i] {
			t.Errorf("notes[%d].date = %q, want %q", i, note.Date, want[i])
		}
	}
}

func TestListCommand_Limit(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	seedNotes(t, dir, "2024-01-13.md", "2024-01-14.md", "2024-01-15.md")

	stdout, _, err := executeCmd(t, testDeps(nil, platform.Linux), "list", "-d", dir, "-n", "2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"DATE", "DAY", "PATH", "2024-01-15", "Mon", "2024-01-14", "Sun"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output should contain %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "2024-01-13") {
		t.Errorf("--limit 2 should drop the oldest note:\n%s", stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	isolateConfig(t)
	dir := filepath.Join(t.TempDir(), "missing")

	stdout, _, err := executeCmd(t, testDeps(nil, platform.Linux), "list", "-d", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "No notes in") {
		t.Errorf("output = %q", stdout)
	}
}

func TestListCommand_NegativeLimit(t *testing.T) {
	isolateConfig(t)

	_, stderr, err := executeCmd(t, testDeps(nil, platform.Linux), "list", "--limit=-1")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d (err = %v)", code, output.ExitUserError, err)
	}
	if !strings.Contains(stderr, "--limit") {
		t.Errorf("stderr = %q", stderr)
	}
}
