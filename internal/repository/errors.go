package repository

import "errors"

var (
	// ErrConflict is returned when an entity with the same id already exists
	ErrConflict = errors.New("conflict: entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
