package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/yournal/internal/config"
	"github.com/gorewood/yournal/internal/journal"
)

// resolveSettings layers config file, environment and the note flags set
// on cmd.
func resolveSettings(cmd *cobra.Command, d deps) (config.Settings, error) {
	file, err := config.LoadFile(config.FilePath())
	if err != nil {
		return config.Settings{}, err
	}
	settings := config.Resolve(file, d.getenv)

	flags := cmd.Flags()
	if flags.Changed("directory") {
		value, _ := flags.GetString("directory")
		settings.Directory = config.ExpandHome(value)
	}
	if flags.Changed("extension") {
		value, _ := flags.GetString("extension")
		settings.Extension = value
	}
	if flags.Changed("template") {
		value, _ := flags.GetString("template")
		settings.Template = config.ExpandHome(value)
	}
	if flags.Changed("skip") {
		settings.SkipPlaceholders, _ = flags.GetBool("skip")
	}
	settings.Extension = journal.NormalizeExtension(settings.Extension)

	return settings, nil
}

// noteRequest converts settings and a day argument into a journal request.
func noteRequest(settings config.Settings, day string) journal.Request {
	return journal.Request{
		Day:              day,
		Directory:        settings.Directory,
		Template:         settings.Template,
		Extension:        settings.Extension,
		SkipPlaceholders: settings.SkipPlaceholders,
	}
}

// dayArg returns the optional positional day, defaulting to today.
func dayArg(args []string) string {
	if len(args) == 0 {
		return journal.Today
	}
	return args[0]
}
