package placeholder

import (
	"errors"
	"fmt"
	"os"

	"github.com/gorewood/yournal/internal/output"
)

// ErrTemplateNotFound means a template path was given but cannot be read as a file.
var ErrTemplateNotFound = errors.New("template not found")

// Load reads the full text of the template at path.
// A missing, unreadable or directory path is a user error wrapping
// ErrTemplateNotFound.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", notFound(path, err)
	}
	if info.IsDir() {
		return "", notFound(path, errors.New("is a directory"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", notFound(path, err)
	}
	return string(data), nil
}

func notFound(path string, cause error) error {
	return output.NewUserErrorWithCause(
		fmt.Sprintf("template %q does not exist or is not a file", path),
		fmt.Errorf("%w: %w", ErrTemplateNotFound, cause),
	)
}
