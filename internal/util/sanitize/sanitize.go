// Package sanitize cleans server-provided text before it reaches a terminal.
//
// File names come straight from the indexed storages and may carry:
//   - control characters, including ESC sequences that would drive the terminal
//   - invisible Unicode characters (zero-width spaces, BOM, soft hyphen)
//   - line breaks and tab runs that would break a one-line listing
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`[ \t\r\n]+`)

// invisibleChars have no glyph but still take part in string comparison.
var invisibleChars = []string{
	"\u200B", // Zero-width space
	"\u200C", // Zero-width non-joiner
	"\u200D", // Zero-width joiner
	"\uFEFF", // Zero-width no-break space (BOM)
	"\u00AD", // Soft hyphen
	"\u2060", // Word joiner
	"\u180E", // Mongolian vowel separator
}

// DisplayName makes a file name or path safe to print on one line.
// Whitespace runs collapse to a single space; other control characters
// are dropped. Leading and trailing spaces are kept, they are part of the
// name.
func DisplayName(s string) string {
	if s == "" {
		return s
	}
	s = removeInvisibleChars(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Query cleans text typed or pasted as a search query.
func Query(q string) string {
	return strings.TrimSpace(DisplayName(q))
}

func removeInvisibleChars(s string) string {
	for _, char := range invisibleChars {
		s = strings.ReplaceAll(s, char, "")
	}
	return s
}
