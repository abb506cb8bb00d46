// Package gen assembles Karabiner-Elements rules from mapping pairs.
//
// Every pair becomes a basic manipulator. Pairs whose from-token is a single
// lowercase letter or a simul(...) chord also get a shifted variant that
// requires left_shift and adds it to every emitted keystroke.
//
// Building blocks:
//   - ParseFrom: from-token to a single key or a chord
//   - ExpandTo: to-token to one keystroke, or one per romaji letter
//   - DeriveShifted: the left_shift variant of a manipulator
//   - Generator / Assemble: ordered, deterministic rule assembly
package gen
