// Package journal resolves, creates and opens date-stamped notes.
//
// A note lives at {directory}/{YYYY-MM-DD}.{extension}; nothing else feeds
// into the path. The first request for a date creates the file, empty or
// seeded from a template, and every later request opens it untouched:
//
//	resolver := journal.NewResolver(editor.NewLauncher(sel, nil), nil)
//	result, err := resolver.ResolveAndOpen(ctx, journal.Request{
//		Day:       "tomorrow",
//		Directory: "~/notes",
//		Template:  "~/notes/.template.md",
//		Extension: "md",
//	})
//
// Creation uses O_EXCL, so an existing note is never truncated even when two
// invocations race.
package journal
