package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/yournal/internal/platform"
)

func TestPathCommand(t *testing.T) {
	isolateConfig(t)
	dir := filepath.Join(t.TempDir(), "notes")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default today", args: []string{"path", "-d", dir}, want: filepath.Join(dir, "2024-01-15.md")},
		{name: "yesterday", args: []string{"path", "yesterday", "-d", dir}, want: filepath.Join(dir, "2024-01-14.md")},
		{name: "explicit date and extension", args: []string{"path", "2023-12-31", "-d", dir, "-x", ".txt"}, want: filepath.Join(dir, "2023-12-31.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCmd(t, testDeps(nil, platform.Linux), tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := strings.TrimSpace(stdout); got != tt.want {
				t.Errorf("path = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("path without --create must not touch the filesystem")
	}
}

func TestPathCommand_Create(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	tmpl := filepath.Join(t.TempDir(), "template.md")
	writeFile(t, tmpl, "# {{title}} {{mood}}\n")

	stdout, _, err := executeCmd(t, testDeps(nil, platform.Unsupported),
		"path", "tomorrow", "--create", "-d", dir, "-t", tmpl, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if result["date"] != "2024-01-16" {
		t.Errorf("date = %v, want 2024-01-16", result["date"])
	}
	if result["exists"] != true || result["created"] != true {
		t.Errorf("exists/created = %v/%v, want true/true", result["exists"], result["created"])
	}

	data, err := os.ReadFile(filepath.Join(dir, "2024-01-16.md"))
	if err != nil {
		t.Fatalf("reading note: %v", err)
	}
	if string(data) != "# 2024-01-15 {{mood}}\n" {
		t.Errorf("content = %q", data)
	}
}

func TestPathCommand_SkipPlaceholders(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	tmpl := filepath.Join(t.TempDir(), "template.md")
	writeFile(t, tmpl, "# {{title}}\n")

	if _, _, err := executeCmd(t, testDeps(nil, platform.Linux), "path", "--create", "-s", "-d", dir, "-t", tmpl); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "2024-01-15.md"))
	if err != nil {
		t.Fatalf("reading note: %v", err)
	}
	if string(data) != "# {{title}}\n" {
		t.Errorf("--skip should copy the template verbatim, got %q", data)
	}
}

func TestPathCommand_JSONExists(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "2024-01-15.md"), "hello\n")

	stdout, _, err := executeCmd(t, testDeps(nil, platform.Linux), "path", "-d", dir, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if result["exists"] != true {
		t.Errorf("exists = %v, want true", result["exists"])
	}
	if result["created"] != false {
		t.Errorf("created = %v, want false", result["created"])
	}
}
