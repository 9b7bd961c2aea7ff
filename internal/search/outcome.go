package search

import (
	"encoding/json"

	"weather-now/internal/apperr"
	"weather-now/internal/types"
)

// State is the active variant of an Outcome.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// Outcome is the result of one search cycle. Exactly one variant is active:
// Location and Conditions are set only on success, Err only on failure.
type Outcome struct {
	State      State
	Query      string
	Location   *types.ResolvedLocation
	Conditions *types.CurrentConditions
	Err        error
}

func Idle() Outcome {
	return Outcome{State: StateIdle}
}

func Loading(query string) Outcome {
	return Outcome{State: StateLoading, Query: query}
}

func Success(query string, loc *types.ResolvedLocation, conditions *types.CurrentConditions) Outcome {
	return Outcome{State: StateSuccess, Query: query, Location: loc, Conditions: conditions}
}

func Failure(query string, err error) Outcome {
	return Outcome{State: StateFailure, Query: query, Err: err}
}

// ErrorKind returns the failure kind, or KindUnknown when not failed.
func (o Outcome) ErrorKind() apperr.Kind {
	if o.State != StateFailure {
		return apperr.KindUnknown
	}
	return apperr.GetKind(o.Err)
}

// Message returns the user-visible failure message, empty when not failed.
func (o Outcome) Message() string {
	if o.State != StateFailure {
		return ""
	}
	return apperr.Message(o.Err)
}

type outcomeError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type outcomeJSON struct {
	State      State                    `json:"state"`
	Query      string                   `json:"query,omitempty"`
	Location   *types.ResolvedLocation  `json:"location,omitempty"`
	Conditions *types.CurrentConditions `json:"conditions,omitempty"`
	Error      *outcomeError            `json:"error,omitempty"`
}

// MarshalJSON exposes only the error kind and its fixed message, never the cause.
func (o Outcome) MarshalJSON() ([]byte, error) {
	out := outcomeJSON{
		State:      o.State,
		Query:      o.Query,
		Location:   o.Location,
		Conditions: o.Conditions,
	}
	if o.State == StateFailure {
		out.Error = &outcomeError{
			Kind:    o.ErrorKind().String(),
			Message: o.Message(),
		}
	}
	return json.Marshal(out)
}
