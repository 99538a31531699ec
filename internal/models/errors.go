package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	ErrCatwayNotFound      = fmt.Errorf("catway %w", ErrNotFound)
	ErrReservationNotFound = fmt.Errorf("reservation %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)

	ErrCatwayExists = fmt.Errorf("catway number: %w", ErrDuplicateKey)
	ErrEmailTaken   = fmt.Errorf("email: %w", ErrDuplicateKey)

	// ErrCatwayInUse is returned when deleting a catway that still has
	// reservations ending in the future.
	ErrCatwayInUse = errors.New("catway has active reservations")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
