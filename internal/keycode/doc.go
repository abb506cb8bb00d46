// Package keycode turns the short symbols people write in a layout mapping
// into key codes of the Karabiner-Elements vocabulary.
//
// A symbol is one of:
//   - a single character ("a", "Q", "7")
//   - JIS punctuation ("-", "@", ":") that lives on a differently named key
//   - a hiragana syllable ("か", "きゃ", "ふぁ") that is typed as romaji
//   - an already valid key code name ("escape", "f1", "left_arrow")
//
// # Transformation order
//
//  1. Hiragana is replaced by its romaji spelling.
//  2. "=" and "'" need a shifted key on a JIS keyboard and carry left_shift.
//  3. JIS punctuation is looked up in the JIS table.
//  4. A single letter is lower-cased.
//  5. Anything else is used as the key code unchanged.
//
// # Sequences
//
// A transformed key code made only of lowercase letters is either a real
// multi-character key code ("escape") or romaji ("ka") that has to be typed
// one letter at a time. Classify decides between the two using a KeyCodeSet
// of known key code names. The set is data: callers extend it when the
// consumer vocabulary grows.
//
// All tables are read-only after package initialization and safe for
// concurrent use.
package keycode
