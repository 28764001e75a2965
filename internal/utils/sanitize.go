package utils

import "regexp"

var (
	invalidChars = regexp.MustCompile(`[^A-Za-z0-9_\s-]`)
	separators   = regexp.MustCompile(`[\s-]`)
)

// Sanitize derives a canonical identifier from a display name. It
// first drops every character outside [A-Za-z0-9_ \t-], then strips
// the remaining separators, so "7-Zip" becomes "7Zip". The result is
// stable under repeated application.
func Sanitize(name string) string {
	return separators.ReplaceAllString(invalidChars.ReplaceAllString(name, ""), "")
}
