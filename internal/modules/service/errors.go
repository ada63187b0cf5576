package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Domain failure taxonomy. Services return these (possibly wrapped); the
// route layer is the sole translator to HTTP status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPersistence        = errors.New("persistence error")
)

// translate maps storage-layer errors onto the domain taxonomy. Anything
// unrecognized surfaces as a generic persistence failure.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}
