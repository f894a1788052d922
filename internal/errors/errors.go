// Package errors defines typed errors with categories for user-friendly reporting.
// It provides machine-readable error kinds alongside the human-facing message the
// remote API returned, so the CLI can tell "item not found" from "session expired"
// without string matching.
//
// The package supports wrapping underlying errors while maintaining kind
// information.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Transport indicates the request never produced an HTTP response.
	Transport Kind = "transport"
	// Unauthorized indicates a missing or expired session (401).
	Unauthorized Kind = "unauthorized"
	// Forbidden indicates the session lacks access to the resource (403).
	Forbidden Kind = "forbidden"
	// NotFound indicates the resource does not exist (404).
	NotFound Kind = "not_found"
	// Conflict indicates a uniqueness violation such as a taken email (409).
	Conflict Kind = "conflict"
	// Validation indicates a rejected payload, locally or by the API (400/422).
	Validation Kind = "validation"
	// Server indicates a 5xx from the API.
	Server Kind = "server"
	// Unexpected covers any other status or an undecodable body.
	Unexpected Kind = "unexpected"
)

// E wraps an error with kind, HTTP status and a human-friendly message.
type E struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// FromStatus builds an E for a non-2xx API response.
func FromStatus(status int, msg string) *E {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &E{Kind: KindForStatus(status), Status: status, Message: msg}
}

// KindForStatus maps an HTTP status code onto a Kind.
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return Unauthorized
	case status == http.StatusForbidden:
		return Forbidden
	case status == http.StatusNotFound:
		return NotFound
	case status == http.StatusConflict:
		return Conflict
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return Validation
	case status >= 500:
		return Server
	default:
		return Unexpected
	}
}

// KindOf returns the Kind of the first E in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
