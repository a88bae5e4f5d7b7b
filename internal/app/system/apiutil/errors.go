// internal/app/system/apiutil/errors.go
package apiutil

import (
	"errors"
	"net/http"
)

// Kind classifies an API error. Each kind maps to exactly one HTTP status.
type Kind int

const (
	Validation     Kind = iota // missing/malformed input, client-fixable
	Authentication             // missing, invalid, or expired session
	Authorization              // valid session, insufficient rights
	NotFound                   // referenced entity absent
	Conflict                   // uniqueness or invariant violation
	Dependency                 // durable-store or identity-provider failure
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Authentication:
		return http.StatusUnauthorized
	case Authorization:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed API error carrying a human-readable message. Components
// fail fast with these; there is no local recovery or retry in the core.
type Error struct {
	Kind    Kind
	Message string
	Err     error // optional underlying cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// E constructs a typed error with a message.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs a typed error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// AsError extracts the typed error from err, or wraps it as a generic
// dependency failure when it is untyped.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: Dependency, Message: "something went wrong, please retry", Err: err}
}
