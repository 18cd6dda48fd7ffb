package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/yournal/internal/output"
)

// Environment variables that provide defaults for the CLI flags.
const (
	EnvExtension = "YOURNAL_EXTENSION"
	EnvDirectory = "YOURNAL_DIRECTORY"
	EnvTemplate  = "YOURNAL_TEMPLATE"

	// EnvDirectoryLegacy is the older spelling of EnvDirectory.
	EnvDirectoryLegacy = "YOURNAL_DIR"
)

// File is the on-disk config.yaml.
type File struct {
	Directory        string `yaml:"directory"`
	Extension        string `yaml:"extension"`
	Template         string `yaml:"template"`
	Editor           string `yaml:"editor"`
	SkipPlaceholders bool   `yaml:"skip_placeholders"`
}

// Settings are the effective values before CLI flags are applied.
type Settings struct {
	Directory        string `json:"directory"`
	Extension        string `json:"extension"`
	Template         string `json:"template,omitempty"`
	Editor           string `json:"editor,omitempty"`
	SkipPlaceholders bool   `json:"skip_placeholders"`
}

// LoadFile reads the config file at path. A missing file, or an empty path,
// yields an empty File. A malformed file is a user error.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read config file: "+path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("invalid config file %s: %v", path, err), err)
	}
	return &file, nil
}

// Resolve layers built-in defaults, file and environment, in that order.
// getenv is usually os.Getenv. Paths have a leading ~ expanded.
func Resolve(file *File, getenv func(string) string) Settings {
	settings := Settings{Extension: "md"}

	if file != nil {
		settings.Directory = pick(file.Directory, settings.Directory)
		settings.Extension = pick(file.Extension, settings.Extension)
		settings.Template = pick(file.Template, settings.Template)
		settings.Editor = file.Editor
		settings.SkipPlaceholders = file.SkipPlaceholders
	}

	settings.Directory = pick(getenv(EnvDirectoryLegacy), settings.Directory)
	settings.Directory = pick(getenv(EnvDirectory), settings.Directory)
	settings.Extension = pick(getenv(EnvExtension), settings.Extension)
	settings.Template = pick(getenv(EnvTemplate), settings.Template)

	settings.Directory = ExpandHome(settings.Directory)
	settings.Template = ExpandHome(settings.Template)
	return settings
}

// pick returns value unless it is empty.
func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
