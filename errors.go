package main

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an item is not found in the store.
var ErrNotFound = errors.New("item not found")

// ErrInvalidInput is returned when the input payload is invalid.
var ErrInvalidInput = errors.New("invalid input")

// NotFoundError reports a lookup of an id the store does not hold,
// including ids of deleted items.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item with id %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports a caller-supplied field that violates a constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewNotFoundError creates a NotFoundError for the given item id.
func NewNotFoundError(id string) error {
	return &NotFoundError{ID: id}
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
