// Package apperr carries an HTTP status code alongside a user-facing message
// so services can decide the response status without knowing about HTTP writers.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	// Fields holds per-field messages for forms that report every failure.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error   { return New(http.StatusBadRequest, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(http.StatusForbidden, message) }

// Invalid is a 400 carrying per-field messages.
func Invalid(message string, fields map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Fields: fields}
}

// Internal hides err from the client; the responder logs it.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "internal server error", Err: err}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
