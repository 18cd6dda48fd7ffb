// Package platform identifies the host operating system and the command
// each supported system uses to open a file with its default application.
package platform

import "runtime"

// Platform identifies a host operating system family.
type Platform string

// Known platforms. Anything Detect cannot map is Unsupported.
const (
	Windows     Platform = "windows"
	Linux       Platform = "linux"
	Darwin      Platform = "darwin"
	Unsupported Platform = ""
)

// defaultOpeners maps each supported platform to its desktop opener.
// The note path is appended as the final argument. start reads its first
// quoted argument as a window title, so Windows passes an empty one.
var defaultOpeners = map[Platform][]string{
	Windows: {"cmd", "/c", "start", ""},
	Linux:   {"xdg-open"},
	Darwin:  {"open"},
}

// Detect maps a GOOS value to a Platform.
func Detect(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	default:
		return Unsupported
	}
}

// Host returns the platform the binary is running on.
func Host() Platform {
	return Detect(runtime.GOOS)
}

// DefaultOpener returns the opener command for p and whether p is supported.
// The returned slice is a copy and safe to append to.
func DefaultOpener(p Platform) ([]string, bool) {
	opener, ok := defaultOpeners[p]
	if !ok {
		return nil, false
	}
	return append([]string(nil), opener...), true
}

// String returns the GOOS-style name, or "unsupported".
func (p Platform) String() string {
	if p == Unsupported {
		return "unsupported"
	}
	return string(p)
}
