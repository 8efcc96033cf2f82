// Package svcerr defines the error type shared by the service layer. Each
// error carries the HTTP status its category maps to, so handlers translate
// uniformly: validation and conflict -> 400, not found -> 404, forbidden -> 403.
package svcerr

import "net/http"

// Error is a service-level failure with an HTTP-mappable status code.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports malformed or out-of-range input.
func Validation(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

// NotFound reports an identity that does not resolve.
func NotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Message: msg}
}

// Forbidden reports an actor that is neither the resource owner nor an admin.
func Forbidden(msg string) *Error {
	return &Error{Code: http.StatusForbidden, Message: msg}
}

// Conflict reports input that collides with existing state, such as a date
// overlap or a duplicate boat name. Callers must choose different input.
func Conflict(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}
