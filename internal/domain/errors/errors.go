package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")

	// ErrOwnerNotFound reports an owner email that does not belong to a store owner.
	ErrOwnerNotFound = fmt.Errorf("store owner: %w", ErrNotFound)
	ErrStoreNotFound = fmt.Errorf("store: %w", ErrNotFound)
	ErrUserExists    = fmt.Errorf("user: %w", ErrAlreadyExists)
	ErrStoreExists   = fmt.Errorf("store: %w", ErrAlreadyExists)
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds ValidationError for the field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
