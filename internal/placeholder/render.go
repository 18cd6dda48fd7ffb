package placeholder

import (
	"regexp"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/nleeper/goment"
)

// Default patterns used when a token carries no format.
const (
	DefaultDateFormat = "YYYY-MM-DD"
	DefaultTimeFormat = "HH:mm"
)

// tokenRegex matches {{name}} and {{name:format}}.
var tokenRegex = regexp.MustCompile(`\{\{(\w+)(?::([^}]+))?\}\}`)

// Render substitutes every recognized token in text using now.
func Render(text string, now time.Time) string {
	return tokenRegex.ReplaceAllStringFunc(text, func(token string) string {
		match := tokenRegex.FindStringSubmatch(token)
		name, format := match[1], match[2]

		value, ok := resolve(name, format, now)
		if !ok {
			return token
		}
		return value
	})
}

// resolve returns the replacement for one token and whether it was handled.
func resolve(name, format string, now time.Time) (string, bool) {
	switch name {
	case "title":
		return FormatTime(now, DefaultDateFormat)
	case "date":
		if format == "" {
			format = DefaultDateFormat
		}
		return FormatTime(now, format)
	case "time":
		if format == "" {
			format = DefaultTimeFormat
		}
		return FormatTime(now, format)
	default:
		return "", false
	}
}

// FormatTime formats t with a moment-style pattern, or with strftime when the
// pattern contains '%'. The bool is false when the pattern cannot be used.
func FormatTime(t time.Time, pattern string) (string, bool) {
	if strings.Contains(pattern, "%") {
		out, err := strftime.Format(pattern, t)
		if err != nil {
			return "", false
		}
		return out, true
	}

	g, err := goment.New(t)
	if err != nil {
		return "", false
	}
	return g.Format(pattern), true
}
