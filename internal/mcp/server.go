// Package mcp provides a Model Context Protocol server for yournal.
// It lets an agent find, create and read daily notes; it never launches an editor.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/yournal/internal/journal"
)

// Notes is the note configuration the tools operate on.
type Notes struct {
	Resolver *journal.Resolver
	// Defaults supplies Directory, Extension, Template and SkipPlaceholders.
	// Its Day is ignored; each call names its own.
	Defaults journal.Request
}

// request builds a journal request for day from the defaults.
func (n Notes) request(day string) journal.Request {
	req := n.Defaults
	req.Day = day
	return req
}

// NewServer creates an MCP server with all yournal tools registered.
func NewServer(version string, notes Notes) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "yournal",
		Version: version,
	}, nil)
	registerTools(server, notes)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// createAnnotations returns annotations for daily_note: it may create a
// file but never changes an existing one.
func createAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, notes Notes) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "note_path",
		Description: "Resolve the file path of a daily note (yesterday, today, tomorrow or YYYY-MM-DD) and report whether it exists. Does not create anything.",
		Annotations: readOnlyAnnotations(),
	}, handleNotePath(notes))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_note",
		Description: "Return the daily note for a day, creating it from the configured template if it does not exist yet. Existing notes are never modified.",
		Annotations: createAnnotations(),
	}, handleDailyNote(notes))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List existing daily notes, newest first.",
		Annotations: readOnlyAnnotations(),
	}, handleListNotes(notes))
}
