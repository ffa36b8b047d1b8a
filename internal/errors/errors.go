package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTaskNotFound is returned when the referenced task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrForbidden is returned when the acting user does not own the task.
	ErrForbidden = errors.New("not allowed to modify this task")
	// ErrTitleTooShort is returned when a task title is under the minimum length.
	ErrTitleTooShort = errors.New("title must be at least 5 characters")
	// ErrInvalidDueDate is returned when a due date is missing or unparseable.
	ErrInvalidDueDate = errors.New("invalid due date")
	// ErrInvalidBucket is returned when an unknown bucket name is requested.
	ErrInvalidBucket = errors.New("invalid bucket")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation, not-found and
// ownership failures all surface as 422 so an unauthorized caller cannot tell
// from the status whether a task exists.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrTaskNotFound:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "TASK_NOT_FOUND")
	case ErrForbidden:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "FORBIDDEN")
	case ErrTitleTooShort:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "TITLE_TOO_SHORT")
	case ErrInvalidDueDate:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_DUE_DATE")
	case ErrInvalidBucket:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_BUCKET")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
