package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entry or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput wraps every validation failure.
	ErrInvalidInput = errors.New("invalid input")
)

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
