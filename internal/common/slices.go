package common

import "slices"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// AppendUnique returns a new slice holding s followed by every v not already present.
// The input slice is never modified, and the result never aliases it.
func AppendUnique[S ~[]E, E comparable](s S, vs ...E) S {
	out := make(S, len(s), len(s)+len(vs))
	copy(out, s)

	for _, v := range vs {
		if slices.Contains(out, v) {
			continue
		}

		out = append(out, v)
	}

	return out
}

// CloneOrNil copies s, keeping nil for empty input so that omitempty fields stay omitted.
func CloneOrNil[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}

	return slices.Clone(s)
}
