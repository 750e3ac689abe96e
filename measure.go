package qsym

import (
	"strings"
)

// Basis is a single-qubit Pauli measurement basis.
type Basis string

const (
	BasisX Basis = "X"
	BasisY Basis = "Y"
	BasisZ Basis = "Z"
)

// ParseBasis accepts x, y and z in either case.
func ParseBasis(s string) (Basis, error) {
	b := Basis(strings.ToUpper(strings.TrimSpace(s)))
	if pauli(b) == nil {
		return "", &InvalidBasisError{Basis: s}
	}
	return b, nil
}

func pauli(b Basis) *Matrix {
	o, l := Int(0), Int(1)
	switch b {
	case BasisX:
		return MatrixOf(row(o, l), row(l, o))
	case BasisY:
		return MatrixOf(row(o, numNeg(ImagUnit())), row(ImagUnit(), o))
	case BasisZ:
		return MatrixOf(row(l, o), row(o, Int(-1)))
	}
	return nil
}

// Observable embeds the Pauli matrix for basis at wire of an n-qubit system.
func Observable(n, wire int, basis Basis) (*Matrix, error) {
	p := pauli(basis)
	if p == nil {
		return nil, &InvalidBasisError{Basis: string(basis)}
	}
	if wire < 0 || wire >= n {
		return nil, &WireIndexError{Wire: wire, NumQubits: n}
	}
	return embedSingle(p, wire, n), nil
}

/*
Measure returns the expectation value of the Pauli observable for basis on
wire. The circuit is evolved first when no final state is cached. The value
is exact, and stays symbolic while the state has free parameters.
*/
func (c *Circuit) Measure(wire int, basis Basis) (Expr, error) {
	obs, err := Observable(c.numQubits, wire, basis)
	if err != nil {
		return nil, err
	}
	return expectation(c.State(), obs), nil
}

func expectation(state, obs *Matrix) Expr {
	return state.Adjoint().Mul(obs.Mul(state)).At(0, 0)
}
