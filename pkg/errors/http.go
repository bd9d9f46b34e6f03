package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and the message shown
// to the client.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError. The envelope error code mirrors the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// AsHTTPError unwraps err into an HTTPError when it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Terjadi kesalahan pada server")
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Permintaan tidak valid")
)
