// Package dateutil expands date placeholders in page titles.
//
// A placeholder is {date} or {date:FORMAT}. FORMAT uses the tokens YYYY,
// YY, MMMM, MMM, MM, M, DD and D, or one of the presets iso, european, us
// and long. Text inside square brackets is copied literally.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a malformed placeholder or format.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength bounds a single FORMAT.
const MaxFormatLength = 50

// DefaultFormat is used by a bare {date}.
const DefaultFormat = "YYYY-MM-DD"

// tokens are tried longest first.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets maps preset names to formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

const (
	openTag  = "{date"
	closeTag = "}"
)

// Layout converts FORMAT into a time layout.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty format", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format longer than %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, format)
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}

		n := 1
		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(rest, t.token) {
				b.WriteString(t.layout)
				n = len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(rest[0])
		}
		rest = rest[n:]
	}

	return b.String(), nil
}

// Expand replaces every date placeholder in s with t formatted accordingly.
// Strings without placeholders are returned unchanged.
func Expand(s string, t time.Time) (string, error) {
	if !strings.Contains(s, openTag) {
		return s, nil
	}

	var b strings.Builder
	for {
		start := strings.Index(s, openTag)
		if start < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
		b.WriteString(s[:start])
		s = s[start+len(openTag):]

		end := strings.Index(s, closeTag)
		if end < 0 {
			return "", fmt.Errorf("%w: unclosed placeholder", ErrInvalidDateFormat)
		}
		spec := s[:end]
		s = s[end+len(closeTag):]

		format := DefaultFormat
		switch {
		case spec == "":
		case strings.HasPrefix(spec, ":"):
			format = spec[1:]
		default:
			return "", fmt.Errorf("%w: unknown placeholder {date%s}", ErrInvalidDateFormat, spec)
		}

		layout, err := Layout(format)
		if err != nil {
			return "", err
		}
		b.WriteString(t.Format(layout))
	}
}
