package common

type ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T ordered](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// IsLowerASCIILetter reports whether b is one of 'a' to 'z'.
func IsLowerASCIILetter(b byte) bool {
	return IsInRange('a', b, 'z')
}
