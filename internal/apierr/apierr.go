// Package apierr defines the typed failures the repositories return and the
// boundary maps onto the wire. The JSON form is exactly the API's uniform
// error body: {"code": <status>, "message": "..."} with the code mirroring
// the HTTP status.
package apierr

import (
	"fmt"
	"net/http"
)

// Error is a typed API failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// cause is kept for logs only; it never reaches the wire.
	cause error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Status returns the HTTP status to respond with. The body code mirrors it.
func (e *Error) Status() int { return e.Code }

// New builds an error with an arbitrary code and message.
func New(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validation reports a missing or wrong-typed required field. The field name
// is upper-cased in the message, matching the API's historical wording.
func Validation(field string) *Error {
	return New(http.StatusBadRequest, "Invalid request. Missing or incorrect %s parameter", field)
}

// ValidationGeneric reports a partial update carrying no usable field.
func ValidationGeneric() *Error {
	return New(http.StatusBadRequest, "Invalid request. Missing or incorrect parameter")
}

// NotFoundf reports a missing record; message names the id and resource kind.
func NotFoundf(format string, args ...any) *Error {
	return New(http.StatusNotFound, format, args...)
}

// Conflictf reports a blocked destructive operation. The API responds 400
// here, not 409; the code mirrors the body.
func Conflictf(format string, args ...any) *Error {
	return New(http.StatusBadRequest, format, args...)
}

// Unauthorized reports a missing or wrong bearer token.
func Unauthorized() *Error {
	return New(http.StatusUnauthorized, "Invalid token")
}

// Storage reports a failed read or write of a backing document. Unlike the
// historical behavior of logging and carrying on with an empty collection,
// this surfaces to the client as a 500.
func Storage(err error) *Error {
	e := New(http.StatusInternalServerError, "Unexpected error accessing the data store")
	e.cause = err
	return e
}
