// Package config resolves yournal's settings from built-in defaults, the
// YAML config file and YOURNAL_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvConfigHome overrides the configuration directory.
const EnvConfigHome = "YOURNAL_CONFIG_HOME"

// Dir returns the yournal configuration directory.
//
// Resolution:
//   - $YOURNAL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/yournal if set (respects XDG on any platform)
//   - %AppData%/yournal on Windows
//   - ~/.config/yournal on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "yournal")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "yournal")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "yournal")
}

// FilePath returns the path of config.yaml inside Dir, or "" when no
// configuration directory can be determined.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// ExpandHome replaces a leading "~" path segment with the user's home directory.
// Paths without it, or when the home directory is unknown, are returned as is.
func ExpandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
