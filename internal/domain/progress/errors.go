package progress

import "errors"

var (
	// ErrInvalidInput indicates invalid progress input.
	ErrInvalidInput = errors.New("invalid progress input")
)
