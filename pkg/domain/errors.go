// Package domain holds the error model shared by every workflow.
package domain

// ValidationError reports a failed workflow step or a recovered fault from a
// mutating workflow. It carries a human-readable message only; callers map it
// to their own failure disposition.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) ValidationError {
	return ValidationError{Message: message}
}

func (e ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a read workflow that found nothing, or a lookup
// sub-step of a mutating workflow that came up empty.
type NotFoundError struct {
	Message string
}

// NewNotFoundError creates a NotFoundError with the given message.
func NewNotFoundError(message string) NotFoundError {
	return NotFoundError{Message: message}
}

func (e NotFoundError) Error() string {
	return e.Message
}
