package gen

import (
	"strings"

	"karabiner-layout-generator/internal/karabiner"
	"karabiner-layout-generator/internal/keycode"
)

const (
	simulPrefix = "simul("
	simulSuffix = ")"
)

// ParseFrom parses the from-side token of a mapping pair.
//
// "simul(a, b)" becomes a Simultaneous chord of the normalized parts. A token
// without the wrapper, or a wrapper with no usable part such as "simul()",
// becomes a SingleKey carrying the modifiers its symbol requires.
func ParseFrom(token string) karabiner.FromEvent {
	if keys := simultaneousKeys(token); len(keys) > 0 {
		return karabiner.FromEvent{Key: karabiner.Simultaneous{Keys: keys}}
	}

	tk := keycode.Transform(token)

	return karabiner.FromEvent{
		Key:       karabiner.SingleKey{KeyCode: tk.KeyCode},
		Modifiers: karabiner.NewModifiers(tk.MandatoryModifiers, nil),
	}
}

// HasSimultaneousSyntax reports whether token is wrapped in simul(...),
// whether or not the wrapper holds any key.
func HasSimultaneousSyntax(token string) bool {
	return strings.HasPrefix(token, simulPrefix) &&
		strings.HasSuffix(token, simulSuffix) &&
		len(token) >= len(simulPrefix)+len(simulSuffix)
}

func simultaneousKeys(token string) []string {
	if !HasSimultaneousSyntax(token) {
		return nil
	}

	inner := token[len(simulPrefix) : len(token)-len(simulSuffix)]

	var keys []string

	for part := range strings.SplitSeq(inner, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keys = append(keys, keycode.Normalize(part))
	}

	return keys
}
