package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by the entity store when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotOwner is returned when a user tries to delete a review they
	// did not author.
	ErrNotOwner = errors.New("review belongs to another user")

	// ErrBackendUnavailable is returned when no storage backend is
	// configured. It is never conflated with a transient failure so the
	// caller can surface a configuration hint instead of a retry message.
	ErrBackendUnavailable = errors.New("storage backend not configured")
)

// ValidationError reports missing or malformed required fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// MissingFields returns a ValidationError for the named fields, or nil
// when none are missing.
func MissingFields(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
