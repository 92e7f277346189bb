package domain

import "errors"

// ErrValidation is returned when a domain entity fails validation.
// TaskError always wraps it.
var ErrValidation = errors.New("validation failed")

// TaskError reports a task that could not be constructed from its raw values.
// Message is safe to show to clients.
type TaskError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	return e.Message
}

// Unwrap lets callers match TaskError with errors.Is(err, ErrValidation).
func (e *TaskError) Unwrap() error {
	return ErrValidation
}

func newTaskError(field, message string) *TaskError {
	return &TaskError{Field: field, Message: message}
}
