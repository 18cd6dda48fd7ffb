package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
	}{
		{
			name:        "user error",
			err:         NewUserError(`unknown day "someday"`),
			wantCode:    ExitUserError,
			wantMessage: `unknown day "someday"`,
		},
		{
			name:        "system error",
			err:         NewSystemError("creating notes directory failed"),
			wantCode:    ExitSystemError,
			wantMessage: "creating notes directory failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMessage)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	sentinel := errors.New("template not found")

	userErr := NewUserErrorWithCause(`template "x.md" not found`, sentinel)
	if userErr.Code != ExitUserError {
		t.Errorf("Code = %d, want %d", userErr.Code, ExitUserError)
	}
	if !errors.Is(userErr, sentinel) {
		t.Error("errors.Is should find the sentinel through a user error")
	}

	sysErr := NewSystemErrorWithCause("writing note failed", sentinel)
	if !errors.Is(sysErr, sentinel) {
		t.Error("errors.Is should find the cause through a system error")
	}
	if sysErr.Error() != "writing note failed" {
		t.Errorf("Error() = %q, want %q", sysErr.Error(), "writing note failed")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "user error", err: NewUserError("bad input"), expected: ExitUserError},
		{name: "system error", err: NewSystemError("disk full"), expected: ExitSystemError},
		{
			name:     "wrapped system error",
			err:      fmt.Errorf("opening note: %w", NewSystemError("editor exited")),
			expected: ExitSystemError,
		},
		{name: "plain error defaults to user error", err: errors.New("unknown flag"), expected: ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
