// Package helpers provides small conversions shared by the API and storage layers.
package helpers

import (
	"strconv"
	"strings"
)

// ClampInt restricts v to the range [lowerLimit, upperLimit].
func ClampInt(v, lowerLimit, upperLimit int) int {
	if v < lowerLimit {
		return lowerLimit
	}
	if v > upperLimit {
		return upperLimit
	}
	return v
}

// ParseLimit parses a query-string limit. Blank or malformed input yields def;
// anything else is clamped to [1, upperLimit].
func ParseLimit(raw string, def, upperLimit int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return ClampInt(n, 1, upperLimit)
}

// NilIfBlank returns nil for empty or whitespace-only strings.
func NilIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
