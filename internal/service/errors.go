package service

import (
	"errors"

	"rently-backend/internal/repository"
)

// Error taxonomy surfaced to callers. Validation, NotFound and Conflict are
// terminal results of the operation and must not be retried; anything else
// is a dependency failure.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// mapRepoErr translates store sentinels into the service taxonomy.
func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return ErrConflict
	default:
		return err
	}
}
