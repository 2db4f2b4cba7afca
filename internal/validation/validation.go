// Package validation normalizes and checks entity fields before they reach the store.
//
// Each validator checks fields in declaration order and returns the first
// failure as an *Error. Strings are trimmed and lengths are counted in runes.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error identifies the offending field and a human-readable reason.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// requiredText checks a mandatory string. The required check runs on the raw
// value, so whitespace-only input fails on length instead.
func requiredText(field, label, raw string, minLen, maxLen int) (string, error) {
	if raw == "" {
		return "", fail(field, "%s is required", label)
	}
	v := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(v)
	if n < minLen {
		return "", fail(field, "%s must be at least %d characters long", label, minLen)
	}
	if n > maxLen {
		return "", fail(field, "%s must not exceed %d characters", label, maxLen)
	}
	return v, nil
}

// optionalText trims an optional string. Absent stays nil; a blank value is
// kept as an empty string.
func optionalText(field, label string, raw *string, maxLen int) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*raw)
	if utf8.RuneCountInString(v) > maxLen {
		return nil, fail(field, "%s must not exceed %d characters", label, maxLen)
	}
	return &v, nil
}
