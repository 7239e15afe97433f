package perigee

import (
	"errors"
	"fmt"
)

// ErrUnsupportedManeuver is returned for maneuver kinds which have no delta-v formula yet.
var ErrUnsupportedManeuver = errors.New("unsupported maneuver kind")

// ValidationError is returned when a value is constructed from invalid parameters.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PreconditionError is returned when a computation is requested on inputs it does not support,
// e.g. a Hohmann transfer between non circular orbits.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Reason
}

// NumericDomainError is returned when a formula leaves its domain (negative radicand,
// division by zero, non finite result) instead of silently returning NaN or Inf.
type NumericDomainError struct {
	Op    string
	Value float64 // offending intermediate value
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("%s: numeric domain error (value=%g)", e.Op, e.Value)
}
