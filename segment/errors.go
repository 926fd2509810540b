package segment

import "errors"

var (
	// ErrInvalidSize is returned by Create when the requested size is not
	// positive.
	ErrInvalidSize = errors.New("segment: size must be positive")
)
