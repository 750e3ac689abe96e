package qsym

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateWire     = errors.New("two-qubit gate needs two distinct wires")
	ErrSymbolicState     = errors.New("state still contains free parameters")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrTooManyInputs     = errors.New("more input values than designated inputs")
	ErrUnknownGate       = errors.New("unknown gate kind")
	ErrInvalidParameter  = errors.New("invalid gate parameter")
)

/*
WireIndexError is returned when a gate references a wire outside the
circuit. It is raised when the gate is appended, never during evolution.
*/
type WireIndexError struct {
	Wire      int
	NumQubits int
}

func (e *WireIndexError) Error() string {
	return fmt.Sprintf("wire %d out of range for %d-qubit circuit", e.Wire, e.NumQubits)
}

// InvalidBasisError is returned for a measurement basis outside X, Y and Z.
type InvalidBasisError struct {
	Basis string
}

func (e *InvalidBasisError) Error() string {
	return fmt.Sprintf("invalid measurement basis %q, expected X, Y or Z", e.Basis)
}

// CompositionSizeError is returned when a wider circuit is appended to a
// narrower one.
type CompositionSizeError struct {
	Left, Right int
}

func (e *CompositionSizeError) Error() string {
	return fmt.Sprintf(
		"cannot append a %d-qubit circuit to a %d-qubit circuit", e.Right, e.Left,
	)
}
