package qsym

import (
	"fmt"
	"math"
	"math/cmplx"
)

/*
StateVector is the numeric view of a fully bound final state. Wire 0 is the
most significant bit of the basis index.
*/
type StateVector struct {
	NumQubits int
	Vector    []complex128
}

/*
BasisState is one computational basis state with a non-zero amplitude.
*/
type BasisState struct {
	Label       string
	Index       int
	Amplitude   complex128
	Probability float64
}

// NumericState converts a column state to numbers. It fails with
// ErrSymbolicState when an amplitude still has free parameters.
func NumericState(state *Matrix) (*StateVector, error) {
	if state.Cols() != 1 {
		return nil, fmt.Errorf("state is %dx%d: %w", state.Rows(), state.Cols(), ErrDimensionMismatch)
	}

	rows := state.Rows()
	n := 0
	for 1<<n < rows {
		n++
	}
	if 1<<n != rows {
		return nil, fmt.Errorf("state length %d is not a power of two: %w", rows, ErrDimensionMismatch)
	}

	vector := make([]complex128, rows)
	for i := range vector {
		v, ok := state.At(i, 0).Eval()
		if !ok {
			return nil, fmt.Errorf(
				"amplitude %d has %v: %w", i, FreeSymbols(state.At(i, 0)), ErrSymbolicState,
			)
		}
		vector[i] = v
	}
	return &StateVector{NumQubits: n, Vector: vector}, nil
}

// Numeric evolves if needed and returns the numeric final state.
func (c *Circuit) Numeric() (*StateVector, error) {
	return NumericState(c.State())
}

func (sv *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(sv.Vector))
	for i, amplitude := range sv.Vector {
		p := cmplx.Abs(amplitude)
		probs[i] = p * p
	}
	return probs
}

func (sv *StateVector) Norm() float64 {
	total := 0.0
	for _, p := range sv.Probabilities() {
		total += p
	}
	return math.Sqrt(total)
}

// BasisStates lists basis states whose probability exceeds tolerance.
func (sv *StateVector) BasisStates(tolerance float64) []BasisState {
	var out []BasisState
	for i, p := range sv.Probabilities() {
		if p <= tolerance {
			continue
		}
		out = append(out, BasisState{
			Label:       sv.Label(i),
			Index:       i,
			Amplitude:   sv.Vector[i],
			Probability: p,
		})
	}
	return out
}

// Label formats a basis index as a ket, for example |101>.
func (sv *StateVector) Label(index int) string {
	if sv.NumQubits == 0 {
		return "|>"
	}
	return fmt.Sprintf("|%0*b>", sv.NumQubits, index)
}
