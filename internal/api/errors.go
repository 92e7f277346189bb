package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Messages shared by several branches of the dispatcher.
const (
	msgTaskNotFound       = "Task not found"
	msgMethodNotAllowed   = "Request method not allowed"
	msgEndpointNotFound   = "Endpoint not found"
	msgConnectionError    = "Database connection error"
	msgUnexpectedError    = "An unexpected error occurred"
	msgInvalidTaskID      = "Task id cannot be blank or must be numeric"
	msgInvalidCompleted   = "Completed filter must be Y or N"
	msgInvalidPage        = "Page number cannot be blank and must be numeric"
	msgPageNotFound       = "Page not found"
	msgTaskDeleted        = "Task deleted"
	msgUpdateNotSupported = "Task update not implemented"
	msgCreateNotSupported = "Task creation not implemented"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes
// without leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	if store.IsNotFoundError(err) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns a client-facing message for err.
// Tasks that fail validation expose their own message; driver failures
// fall back to the branch-specific fallback.
func GetSafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return msgUnexpectedError
	}

	var taskErr *domain.TaskError
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return msgTaskNotFound
	case errors.Is(err, store.ErrConnection):
		return msgConnectionError
	case errors.As(err, &taskErr):
		return taskErr.Message
	case fallback != "":
		return fallback
	default:
		return msgUnexpectedError
	}
}
