// Package config loads generation defaults from an INI profile and merges
// them with the other settings sources.
//
// A profile looks like:
//
//	[gen]
//	description = My layout
//	output = ~/.config/karabiner/assets/complex_modifications/layout.json
//	from_optional_any = true
//	input_source_id = com.apple.inputmethod.Kotoeri.RomajiTyping.Japanese
//	key_codes = lang1, lang2
//
// Settings are resolved layer by layer with Merge: the first layer that sets a
// value wins, and key codes from all layers are combined.
package config
