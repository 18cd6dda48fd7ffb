package mcp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/yournal/internal/journal"
)

// --- note_path ---

// NotePathInput is the input for the note_path tool.
type NotePathInput struct {
	Day string `json:"day,omitempty" jsonschema:"yesterday, today, tomorrow or YYYY-MM-DD (default today)"`
}

// NotePathOutput is the output for the note_path tool.
type NotePathOutput struct {
	Path   string `json:"path"   jsonschema:"note file path"`
	Date   string `json:"date"   jsonschema:"resolved date (YYYY-MM-DD)"`
	Exists bool   `json:"exists" jsonschema:"whether the note file exists"`
}

func handleNotePath(notes Notes) mcp.ToolHandlerFor[NotePathInput, NotePathOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input NotePathInput) (*mcp.CallToolResult, NotePathOutput, error) {
		path, day, err := notes.Resolver.Path(notes.request(input.Day))
		if err != nil {
			return nil, NotePathOutput{}, err
		}

		_, statErr := os.Stat(path)
		if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
			return nil, NotePathOutput{}, fmt.Errorf("checking note: %w", statErr)
		}

		return nil, NotePathOutput{
			Path:   path,
			Date:   day.Format(journal.DateLayout),
			Exists: statErr == nil,
		}, nil
	}
}

// --- daily_note ---

// DailyNoteInput is the input for the daily_note tool.
type DailyNoteInput struct {
	Day string `json:"day,omitempty" jsonschema:"yesterday, today, tomorrow or YYYY-MM-DD (default today)"`
}

// DailyNoteOutput is the output for the daily_note tool.
type DailyNoteOutput struct {
	Path    string `json:"path"    jsonschema:"note file path"`
	Date    string `json:"date"    jsonschema:"resolved date (YYYY-MM-DD)"`
	Created bool   `json:"created" jsonschema:"true if this call created the note"`
	Content string `json:"content" jsonschema:"current note content"`
}

func handleDailyNote(notes Notes) mcp.ToolHandlerFor[DailyNoteInput, DailyNoteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DailyNoteInput) (*mcp.CallToolResult, DailyNoteOutput, error) {
		result, err := notes.Resolver.Ensure(notes.request(input.Day))
		if err != nil {
			return nil, DailyNoteOutput{}, err
		}

		content, err := os.ReadFile(result.Path)
		if err != nil {
			return nil, DailyNoteOutput{}, fmt.Errorf("reading note: %w", err)
		}

		return nil, DailyNoteOutput{
			Path:    result.Path,
			Date:    result.Date,
			Created: result.Created,
			Content: string(content),
		}, nil
	}
}

// --- list_notes ---

// ListNotesInput is the input for the list_notes tool.
type ListNotesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of notes to return (0 = all)"`
}

// ListNotesOutput is the output for the list_notes tool.
type ListNotesOutput struct {
	Count int            `json:"count" jsonschema:"number of notes returned"`
	Notes []journal.Note `json:"notes" jsonschema:"notes, newest first"`
}

func handleListNotes(notes Notes) mcp.ToolHandlerFor[ListNotesInput, ListNotesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListNotesInput) (*mcp.CallToolResult, ListNotesOutput, error) {
		if input.Limit < 0 {
			return nil, ListNotesOutput{}, errors.New("limit must not be negative")
		}

		found, err := journal.List(notes.Defaults.Directory, notes.Defaults.Extension)
		if err != nil {
			return nil, ListNotesOutput{}, err
		}
		if input.Limit > 0 && len(found) > input.Limit {
			found = found[:input.Limit]
		}

		return nil, ListNotesOutput{Count: len(found), Notes: found}, nil
	}
}
