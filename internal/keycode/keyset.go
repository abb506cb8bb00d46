package keycode

import (
	"fmt"
	"sort"
	"strings"
)

var defaultKeyCodeNames = []string{
	"left_control", "right_control",
	"left_shift", "right_shift",
	"left_option", "right_option",
	"left_command", "right_command",
	"fn", "caps_lock",
	"delete_or_backspace", "delete_forward",
	"escape", "return_or_enter", "spacebar", "tab",
	"page_up", "page_down", "home", "end", "insert", "help",
	"up_arrow", "down_arrow", "left_arrow", "right_arrow",
	"semicolon", "hyphen", "equal_sign",
	"open_bracket", "close_bracket", "backslash",
	"quote", "comma", "period", "slash",
	"international1", "japanese_eisuu", "japanese_kana",
	"pause", "application", "power", "mute",
}

var defaultKeyCodePrefixes = []string{"keypad_", "vk_"}

// KeyCodeSet is the set of multi-character key code names that must never be
// typed letter by letter. A name matches when it is listed or starts with one
// of the prefixes. The zero value is an empty set.
type KeyCodeSet struct {
	names    map[string]struct{}
	prefixes []string
}

// NewKeyCodeSet builds a set from explicit names and prefixes.
func NewKeyCodeSet(names, prefixes []string) KeyCodeSet {
	s := KeyCodeSet{
		names:    make(map[string]struct{}, len(names)),
		prefixes: append([]string(nil), prefixes...),
	}
	for _, n := range names {
		s.names[n] = struct{}{}
	}

	return s
}

// DefaultKeyCodes returns the built-in set: modifiers, navigation and editing
// keys, f1 to f20, named punctuation keys, and the keypad_/vk_ families.
func DefaultKeyCodes() KeyCodeSet {
	names := make([]string, 0, len(defaultKeyCodeNames)+20)
	names = append(names, defaultKeyCodeNames...)

	for i := 1; i <= 20; i++ {
		names = append(names, fmt.Sprintf("f%d", i))
	}

	return NewKeyCodeSet(names, defaultKeyCodePrefixes)
}

// With returns a copy of s extended by names. s is left unchanged.
func (s KeyCodeSet) With(names ...string) KeyCodeSet {
	all := make([]string, 0, len(s.names)+len(names))
	for n := range s.names {
		all = append(all, n)
	}

	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}

		all = append(all, n)
	}

	return NewKeyCodeSet(all, s.prefixes)
}

// Contains reports whether keyCode is a known multi-character key code.
func (s KeyCodeSet) Contains(keyCode string) bool {
	if _, ok := s.names[keyCode]; ok {
		return true
	}

	for _, p := range s.prefixes {
		if strings.HasPrefix(keyCode, p) {
			return true
		}
	}

	return false
}

// Names returns the listed names in sorted order.
func (s KeyCodeSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}

	sort.Strings(out)

	return out
}

// Prefixes returns the matching prefixes.
func (s KeyCodeSet) Prefixes() []string {
	return append([]string(nil), s.prefixes...)
}
