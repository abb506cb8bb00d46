package keycode

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ModifierLeftShift is the modifier added for shifted keys and shift variants.
const ModifierLeftShift = "left_shift"

// TransformedKey is a key code plus the modifiers the symbol cannot be typed without.
type TransformedKey struct {
	KeyCode            string
	MandatoryModifiers []string
}

// Transform converts a mapping symbol into a key code.
// It is total: every string has a result.
func Transform(symbol string) TransformedKey {
	if romaji, ok := Romaji(symbol); ok {
		symbol = romaji
	}

	switch symbol {
	case "=":
		return TransformedKey{
			KeyCode:            jisOrLiteral("-"),
			MandatoryModifiers: []string{ModifierLeftShift},
		}
	case "'":
		return TransformedKey{
			KeyCode:            jisOrLiteral("7"),
			MandatoryModifiers: []string{ModifierLeftShift},
		}
	}

	return TransformedKey{KeyCode: Normalize(symbol)}
}

// Normalize applies the JIS table and single-letter lower-casing only.
// Hiragana and the shifted punctuation of Transform are not considered.
func Normalize(symbol string) string {
	if kc, ok := LookupJIS(symbol); ok {
		return kc
	}

	if r, size := utf8.DecodeRuneInString(symbol); size > 0 && size == len(symbol) && unicode.IsLetter(r) {
		return strings.ToLower(symbol)
	}

	return symbol
}
