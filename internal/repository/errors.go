package repository

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a conditional write matched no rows,
	// e.g. reserving an item that is already reserved or rented.
	ErrConflict = errors.New("conflicting state")
)
