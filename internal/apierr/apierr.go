package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single structured failure carried from the repository and
// service layers up to the transport layer. Details, when set, holds a
// field -> message map produced by request validation.
type Error struct {
	Status  int
	Message string
	Details map[string]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Validation wraps a field -> message map as a 400.
func Validation(details map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "validation failed", Details: details}
}

// From extracts an *Error from err, if there is one in the chain.
func From(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
