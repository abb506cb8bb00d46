package gen

import (
	"karabiner-layout-generator/internal/common"
	"karabiner-layout-generator/internal/karabiner"
	"karabiner-layout-generator/internal/keycode"
)

// ShiftEligible reports whether a pair gets a shifted counterpart.
// Chords always do; a single key only when the raw from-token is one
// lowercase ASCII letter.
func ShiftEligible(fromToken string, from karabiner.FromEvent) bool {
	if _, ok := from.Key.(karabiner.Simultaneous); ok {
		return true
	}

	return len(fromToken) == 1 && common.IsLowerASCIILetter(fromToken[0])
}

// DeriveShifted builds the left_shift variant of base. The to-token is
// expanded again and left_shift is added on both sides without duplicates.
// base is not modified and shares no memory with the result.
func DeriveShifted(base karabiner.Manipulator, toToken string, known keycode.KeyCodeSet) karabiner.Manipulator {
	shifted := base.Clone()
	shifted.From.Modifiers = base.From.Modifiers.WithMandatory(keycode.ModifierLeftShift)
	shifted.To = expandTo(toToken, known, keycode.ModifierLeftShift)

	return shifted
}
