package utils

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes HTML-style tags from rich-text content, leaving the
// plain text. Question descriptions arrive from a rich-text editor, so
// emptiness checks must look at the stripped form.
func StripMarkup(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
