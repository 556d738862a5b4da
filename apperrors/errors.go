package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the application error carried from services up to controllers.
// Message is safe to surface; Err holds the underlying cause for logs only.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Validation is a 400 for missing or malformed request fields.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound is a 404 for a missing user, order or cart item.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Conflict is a 400 carrying a specific message, e.g. duplicate phone on signup.
func Conflict(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Unauthorized is a 401 for a missing or unusable credential.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

// Forbidden is a 403 for a valid credential lacking permission.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

// Internal is a 500 with a generic message; the cause is logged, not surfaced.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// As extracts an *Error from err if present.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
