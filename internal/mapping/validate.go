package mapping

import (
	"fmt"
	"strings"

	"karabiner-layout-generator/internal/diagnostic"
	"karabiner-layout-generator/internal/gen"
	"karabiner-layout-generator/internal/karabiner"
	"karabiner-layout-generator/internal/keycode"
	"karabiner-layout-generator/internal/match"
)

// Validate checks a mapping file before generation. Generation never fails on
// its own, so this is where suspicious input is reported: errors for input
// that cannot be meant, warnings for input that is probably a mistake, and
// infos for notable interpretations. A to-token typed as romaji that is one or
// two edits away from a known key code is reported as a probable typo.
func Validate(mf *File, known keycode.KeyCodeSet) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "")
		return res
	}

	for i, kc := range mf.KeyCodes {
		if strings.TrimSpace(kc) == "" {
			res.AddWarning("empty_key_code", "blank entry in key_codes is ignored", fmt.Sprintf("key_codes[%d]", i))
		}
	}

	seen := map[string]int{}
	names := known.Names()

	for i, p := range mf.Mappings {
		loc := fmt.Sprintf("mappings[%d]", i)

		if strings.TrimSpace(p.From) == "" {
			res.AddError("empty_from", "from symbol is blank", loc)
		}

		if strings.TrimSpace(p.To) == "" {
			res.AddError("empty_to", "to symbol is blank", loc)
		}

		from := gen.ParseFrom(p.From)
		if _, single := from.Key.(karabiner.SingleKey); single && gen.HasSimultaneousSyntax(p.From) {
			res.AddWarning("simul_fallback",
				fmt.Sprintf("%q has no keys and is used as a single key code", p.From), loc)
		}

		key := fromKey(from)
		if first, ok := seen[key]; ok {
			res.AddWarning("duplicate_from",
				fmt.Sprintf("%q matches the same keys as mappings[%d], which takes precedence", p.From, first), loc)
		} else {
			seen[key] = i
		}

		tk := keycode.Transform(p.To)
		if keycode.Classify(tk.KeyCode, known) == keycode.SequencePhonetic {
			res.AddInfo("phonetic_to",
				fmt.Sprintf("%q is typed as %d keystrokes (%s)", p.To, len(tk.KeyCode), tk.KeyCode), loc)

			if near := match.Suggest(tk.KeyCode, names); len(near) > 0 {
				res.AddWarning("near_key_code",
					fmt.Sprintf("%q is typed as romaji; did you mean key code %q?", p.To, near[0].Name), loc)
			}
		}
	}

	return res
}

// fromKey identifies what a from-event matches, for duplicate detection.
func fromKey(ev karabiner.FromEvent) string {
	var b strings.Builder

	switch k := ev.Key.(type) {
	case karabiner.SingleKey:
		b.WriteString("key:" + k.KeyCode)
	case karabiner.Simultaneous:
		b.WriteString("simul:" + strings.Join(k.Keys, ","))
	}

	if ev.Modifiers != nil {
		b.WriteString("+" + strings.Join(ev.Modifiers.Mandatory, "+"))
	}

	return b.String()
}
