package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Validation errors raised before any network call is made.
var (
	ErrEmptyEmail        = errors.New("email is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyFullName     = errors.New("full name is required")
	ErrEmptyCategoryName = errors.New("category name is required")
	ErrEmptyDescription  = errors.New("description is required")
)

// APIError is a failure reported by the remote service. Message carries the
// server-provided detail when the response body had one, otherwise a fixed
// per-operation fallback.
type APIError struct {
	Op      string // operation that failed, e.g. "login"
	Status  int    // HTTP status code, 0 for transport failures
	Message string

	cause error // underlying transport error, if any
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsUnauthorized reports whether the error is a 401 authorization failure.
// By the time callers observe it the stored credential has already been
// cleared by the transport.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// IsUnauthorized reports whether err carries a 401 from the remote service.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsUnauthorized()
}

// errorBody is the shape of error responses from the service.
type errorBody struct {
	Detail string `json:"detail"`
}

func (e *APIError) String() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
}
