package utils

import (
	"fmt"
	"strings"
)

// FormatPathList renders a slice of paths as an indented bullet list for
// verbose command output.
func FormatPathList(paths []string) string {
	var b strings.Builder
	for _, p := range paths {
		fmt.Fprintf(&b, "  - %s\n", p)
	}
	return b.String()
}

// Pluralize returns the singular or plural form depending on count.
func Pluralize(count int, singular string, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
