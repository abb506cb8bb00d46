package keycode

import "karabiner-layout-generator/internal/common"

//go:generate go tool stringer -type=SequenceKind -trimprefix=Sequence -output=sequence_kind_string.go

// SequenceKind tells how a transformed key code is typed.
type SequenceKind int

const (
	_ SequenceKind = iota // zero value is invalid

	// SequenceSingleKey is one keystroke carrying the whole key code.
	SequenceSingleKey
	// SequencePhonetic is romaji typed one letter per keystroke.
	SequencePhonetic
)

// Classify decides whether keyCode is one key or a romaji keystroke sequence.
// Only strings of two or more lowercase ASCII letters that known does not
// contain are phonetic.
func Classify(keyCode string, known KeyCodeSet) SequenceKind {
	if len(keyCode) < 2 || !isLowerASCII(keyCode) || known.Contains(keyCode) {
		return SequenceSingleKey
	}

	return SequencePhonetic
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if !common.IsLowerASCIILetter(s[i]) {
			return false
		}
	}

	return true
}
