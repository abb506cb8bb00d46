package gen

import (
	"karabiner-layout-generator/internal/common"
	"karabiner-layout-generator/internal/karabiner"
	"karabiner-layout-generator/internal/keycode"
)

// ExpandTo turns a to-side token into the keystrokes that type it.
// Romaji is typed one letter per event; anything else is one event.
// Every event carries the modifiers the symbol requires.
func ExpandTo(token string, known keycode.KeyCodeSet) []karabiner.ToEvent {
	return expandTo(token, known)
}

func expandTo(token string, known keycode.KeyCodeSet, extra ...string) []karabiner.ToEvent {
	tk := keycode.Transform(token)
	mods := common.AppendUnique(tk.MandatoryModifiers, extra...)

	if keycode.Classify(tk.KeyCode, known) != keycode.SequencePhonetic {
		return []karabiner.ToEvent{{KeyCode: tk.KeyCode, Modifiers: common.CloneOrNil(mods)}}
	}

	events := make([]karabiner.ToEvent, 0, len(tk.KeyCode))
	for _, r := range tk.KeyCode {
		events = append(events, karabiner.ToEvent{
			KeyCode:   string(r),
			Modifiers: common.CloneOrNil(mods),
		})
	}

	return events
}
