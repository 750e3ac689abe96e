package qsym

import (
	"fmt"
	"strings"
)

// GateKind enumerates the gate catalog.
type GateKind int

const (
	GateH GateKind = iota
	GateX
	GateY
	GateZ
	GateRX
	GateRY
	GateRZ
	GateSWAP
	GateCX
	GateCZ
	GateRXX
	GateRYY
	GateRZZ
)

// Arity is the number of wires a gate acts on.
type Arity int

const (
	Single Arity = 1
	Two    Arity = 2
)

var gateNames = [...]string{
	GateH:    "H",
	GateX:    "X",
	GateY:    "Y",
	GateZ:    "Z",
	GateRX:   "RX",
	GateRY:   "RY",
	GateRZ:   "RZ",
	GateSWAP: "SWAP",
	GateCX:   "CX",
	GateCZ:   "CZ",
	GateRXX:  "RXX",
	GateRYY:  "RYY",
	GateRZZ:  "RZZ",
}

func (k GateKind) valid() bool {
	return k >= GateH && k <= GateRZZ
}

func (k GateKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("GateKind(%d)", int(k))
	}
	return gateNames[k]
}

// Arity returns Single or Two, and 0 for kinds outside the catalog.
func (k GateKind) Arity() Arity {
	switch k {
	case GateH, GateX, GateY, GateZ, GateRX, GateRY, GateRZ:
		return Single
	case GateSWAP, GateCX, GateCZ, GateRXX, GateRYY, GateRZZ:
		return Two
	}
	return 0
}

// Parametrized reports whether the kind takes an angle.
func (k GateKind) Parametrized() bool {
	switch k {
	case GateRX, GateRY, GateRZ, GateRXX, GateRYY, GateRZZ:
		return true
	}
	return false
}

// ParseGateKind maps a gate name such as "cx" or "RZZ" to its kind.
// "CNOT" is accepted as an alias of CX.
func ParseGateKind(name string) (GateKind, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "CNOT" {
		return GateCX, nil
	}
	for k, n := range gateNames {
		if n == upper {
			return GateKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGate, name)
}

/*
Gate is an immutable entry of a circuit's gate record. For two-qubit gates
Wires[0] plays the first (control) role and Wires[1] the second (target)
role of the canonical 4x4 matrix.
*/
type Gate struct {
	Kind  GateKind
	Wires []int
	Theta Expr

	matrix *Matrix
}

func newGate(kind GateKind, theta Expr, wires []int) Gate {
	return Gate{
		Kind:   kind,
		Wires:  wires,
		Theta:  theta,
		matrix: gateMatrix(kind, theta),
	}
}

func (g Gate) Arity() Arity { return g.Kind.Arity() }

// Matrix returns a copy of the canonical 2x2 or 4x4 matrix of the gate.
func (g Gate) Matrix() *Matrix { return g.matrix.apply(func(e Expr) Expr { return e }) }

// clone detaches the wires from the record so callers cannot edit them.
func (g Gate) clone() Gate {
	g.Wires = append([]int(nil), g.Wires...)
	return g
}

func (g Gate) String() string {
	wires := make([]string, len(g.Wires))
	for i, w := range g.Wires {
		wires[i] = fmt.Sprint(w)
	}
	if g.Theta != nil {
		return fmt.Sprintf("%s(%s) %s", g.Kind, g.Theta, strings.Join(wires, ","))
	}
	return fmt.Sprintf("%s %s", g.Kind, strings.Join(wires, ","))
}

func row(entries ...Expr) []Expr { return entries }

func halfAngle(theta Expr) (c, s Expr) {
	half := Mul(Rat(1, 2), theta)
	return Cos(half), Sin(half)
}

func phase(sign int64, theta Expr) Expr {
	return Exp(Mul(Rat(sign, 2), ImagUnit(), theta))
}

func swapMatrix() *Matrix {
	o, l := Int(0), Int(1)
	return MatrixOf(
		row(l, o, o, o),
		row(o, o, l, o),
		row(o, l, o, o),
		row(o, o, o, l),
	)
}

func gateMatrix(kind GateKind, theta Expr) *Matrix {
	o, l := Int(0), Int(1)

	switch kind {
	case GateH:
		h := Mul(Rat(1, 2), Sqrt(Int(2)))
		return MatrixOf(row(h, h), row(h, Neg(h)))
	case GateX:
		return MatrixOf(row(o, l), row(l, o))
	case GateY:
		return MatrixOf(row(o, numNeg(ImagUnit())), row(ImagUnit(), o))
	case GateZ:
		return MatrixOf(row(l, o), row(o, Int(-1)))
	case GateRX:
		c, s := halfAngle(theta)
		mis := Mul(numNeg(ImagUnit()), s)
		return MatrixOf(row(c, mis), row(mis, c))
	case GateRY:
		c, s := halfAngle(theta)
		return MatrixOf(row(c, Neg(s)), row(s, c))
	case GateRZ:
		return MatrixOf(row(phase(-1, theta), o), row(o, phase(1, theta)))
	case GateSWAP:
		return swapMatrix()
	case GateCX:
		return MatrixOf(
			row(l, o, o, o),
			row(o, l, o, o),
			row(o, o, o, l),
			row(o, o, l, o),
		)
	case GateCZ:
		return MatrixOf(
			row(l, o, o, o),
			row(o, l, o, o),
			row(o, o, l, o),
			row(o, o, o, Int(-1)),
		)
	case GateRXX:
		c, s := halfAngle(theta)
		mis := Mul(numNeg(ImagUnit()), s)
		return MatrixOf(
			row(c, o, o, mis),
			row(o, c, mis, o),
			row(o, mis, c, o),
			row(mis, o, o, c),
		)
	case GateRYY:
		c, s := halfAngle(theta)
		is, mis := Mul(ImagUnit(), s), Mul(numNeg(ImagUnit()), s)
		return MatrixOf(
			row(c, o, o, is),
			row(o, c, mis, o),
			row(o, mis, c, o),
			row(is, o, o, c),
		)
	case GateRZZ:
		minus, plus := phase(-1, theta), phase(1, theta)
		return MatrixOf(
			row(minus, o, o, o),
			row(o, plus, o, o),
			row(o, o, plus, o),
			row(o, o, o, minus),
		)
	}
	panic(fmt.Sprintf("qsym: %v: %s", ErrUnknownGate, kind))
}
