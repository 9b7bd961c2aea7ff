// Package apperr defines the error kinds a weather search can end in.
// Services return these typed errors and the HTTP layer maps them to
// status codes and the single user-facing message for each kind.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of a search failure.
type Kind int

const (
	// KindUnknown is the zero value for errors that did not come from this package.
	KindUnknown Kind = iota
	// KindEmptyQuery indicates the city input was empty after trimming.
	KindEmptyQuery
	// KindNoMatch indicates the geocoder returned no results.
	KindNoMatch
	// KindNetwork indicates a transport failure or an unparseable response.
	KindNetwork
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmptyQuery:
		return "empty_query"
	case KindNoMatch:
		return "no_match"
	case KindNetwork:
		return "network_error"
	default:
		return "unknown"
	}
}

// Message returns the user-visible text for the kind.
func (k Kind) Message() string {
	switch k {
	case KindEmptyQuery:
		return "Please enter a city name"
	case KindNoMatch:
		return "City not found. Please try another search."
	default:
		return "Failed to fetch weather data. Please try again."
	}
}

// Error is a search error with a Kind and an optional underlying cause.
type Error struct {
	Kind Kind
	Op   string // Operation that failed (optional)
	Err  error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, apperr.ErrNoMatch) works on wrapped errors.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

// HTTPStatus returns the appropriate HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindEmptyQuery:
		return http.StatusBadRequest
	case KindNoMatch:
		return http.StatusNotFound
	case KindNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrEmptyQuery = &Error{Kind: KindEmptyQuery}
	ErrNoMatch    = &Error{Kind: KindNoMatch}
	ErrNetwork    = &Error{Kind: KindNetwork}
)

// EmptyQuery creates an empty query error.
func EmptyQuery(op string) *Error {
	return &Error{Kind: KindEmptyQuery, Op: op}
}

// NoMatch creates a no match error for the given query.
func NoMatch(op, query string) *Error {
	return &Error{Kind: KindNoMatch, Op: op, Err: fmt.Errorf("no results for %q", query)}
}

// Network wraps a transport or decoding failure.
func Network(op string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

// GetKind extracts the error kind from an error chain.
// Returns KindUnknown if no *Error is found.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the user-visible message for any error. Errors outside
// this package are reported as network errors.
func Message(err error) string {
	return GetKind(err).Message()
}

// HTTPStatus returns the status code for any error.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}
