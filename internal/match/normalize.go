package match

import (
	"strings"
	"unicode"
)

// NormalizeKeyName folds a key name for fuzzy comparison: lower case, with
// separators (_, -, space) removed. "Page-Up" and "page_up" both become "pageup".
func NormalizeKeyName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
