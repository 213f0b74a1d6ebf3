// Package fault classifies gateway failures into the three kinds the HTTP
// surface distinguishes: invalid client input, a failing upstream backend,
// and local artifact storage trouble.
package fault

import (
	"errors"
	"net/http"
)

type Kind string

const (
	// KindValidation marks malformed or missing client input.
	KindValidation Kind = "validation"

	// KindUpstream marks a failure of an external inference backend,
	// including timeouts and unparseable results.
	KindUpstream Kind = "upstream"

	// KindResource marks a failure of the local scoped-artifact storage.
	KindResource Kind = "resource"
)

type Error struct {
	Kind    Kind
	Message string

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func Validation(message string) error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
	}
}

func Upstream(message string, cause error) error {
	return &Error{
		Kind:    KindUpstream,
		Message: message,

		cause: cause,
	}
}

func Resource(message string, cause error) error {
	return &Error{
		Kind:    KindResource,
		Message: message,

		cause: cause,
	}
}

// KindOf returns the kind of err, or "" if err carries none.
func KindOf(err error) Kind {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}

// Status maps an error to the HTTP status the gateway surfaces it with.
// Anything unclassified is a generic server fault.
func Status(err error) int {
	if KindOf(err) == KindValidation {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
