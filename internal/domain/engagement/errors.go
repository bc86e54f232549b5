package engagement

import "errors"

var (
	// ErrInvalidRange indicates an unknown range token.
	ErrInvalidRange = errors.New("invalid range")
)
