package mapping

import "errors"

var (
	// ErrUnreadable means the mapping source could not be read.
	ErrUnreadable = errors.New("input unreadable")
	// ErrMalformed means the mapping source is not in the expected shape.
	ErrMalformed = errors.New("input malformed")
)
