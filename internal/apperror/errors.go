// Package apperror defines the error taxonomy shared by services and
// handlers. Services wrap underlying failures into one of these kinds so
// handlers can map them to HTTP status codes with errors.Is / errors.As.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - the referenced report, ward or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized - missing, expired or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden - authenticated but lacking the required capability.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict - the operation conflicts with existing state, e.g. a
	// duplicate upvote or an already registered email.
	ErrConflict = errors.New("conflict")
	// ErrRateLimited - the caller exceeded its request budget.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrUnavailable - a transient store failure after retries were
	// exhausted; the caller should render a "data unavailable" state.
	ErrUnavailable = errors.New("data unavailable")
)

// ValidationError is a field-level rejection of malformed input. It is
// raised before any storage mutation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for one field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFound wraps ErrNotFound with the entity name and id.
func NotFound(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}
