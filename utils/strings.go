package utils

import (
	"regexp"
	"strings"
)

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// NormalizeName trims surrounding whitespace from a display name
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	cleaned := invalidFileChars.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, "_")

	return cleaned
}
