// Package envfile loads YOURNAL_* defaults from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist.
func Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return nil
}

// LoadAll loads each path in order; the first file to set a variable wins.
// Every path is attempted; the returned errors are the ones that failed.
func LoadAll(paths ...string) []error {
	var errs []error
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := Load(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
