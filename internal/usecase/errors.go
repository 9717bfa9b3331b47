package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound covers both a missing row and a row owned by someone
	// else, so callers cannot discover other providers' ids.
	ErrNotFound              = errors.New("not found")
	ErrValidation            = errors.New("validation failed")
	ErrConflict              = errors.New("conflict")
	ErrProviderNotRegistered = errors.New("provider profile not registered")
	ErrAggregation           = errors.New("aggregation failed")
)

func notFound(kind string) error {
	return fmt.Errorf("%s %w", kind, ErrNotFound)
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func conflictError(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

// parseResourceID treats a malformed id like an unknown one.
func parseResourceID(id, kind string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, notFound(kind)
	}
	return parsed, nil
}
