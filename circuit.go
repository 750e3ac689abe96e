package qsym

import (
	"fmt"

	"github.com/google/uuid"
)

/*
Circuit is an append-only record of gates over a fixed number of wires,
starting from |0...0>. The final state is computed lazily and cleared
whenever a gate is appended.
*/
type Circuit struct {
	ID string

	numQubits int
	config    *Config
	gates     []Gate
	params    map[string]struct{}
	inputs    []string
	initial   *Matrix
	final     *Matrix
	stats     *Stats
	mode      MeasurementMode
	bases     []Basis
	diagram   *Diagram
}

// NewCircuit returns an empty circuit on numQubits wires. A nil config
// uses NewConfig.
func NewCircuit(numQubits int, config *Config) *Circuit {
	if numQubits < 0 {
		panic(fmt.Sprintf("qsym: negative qubit count %d", numQubits))
	}
	if config == nil {
		config = NewConfig()
	}

	initial := NewMatrix(1<<numQubits, 1)
	initial.Set(0, 0, Int(1))

	return &Circuit{
		ID:        uuid.NewString(),
		numQubits: numQubits,
		config:    config,
		params:    make(map[string]struct{}),
		initial:   initial,
		diagram:   NewDiagram(numQubits),
	}
}

func (c *Circuit) NumQubits() int    { return c.numQubits }
func (c *Circuit) Config() *Config   { return c.config }
func (c *Circuit) Diagram() *Diagram { return c.diagram }

// Gates returns a copy of the gate record.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	for i, g := range c.gates {
		out[i] = g.clone()
	}
	return out
}

// Params returns the sorted names of free parameters in the record.
func (c *Circuit) Params() []string {
	return sortedNames(c.params)
}

// Stats returns the statistics of the last evolution, or nil.
func (c *Circuit) Stats() *Stats {
	return c.stats
}

func (c *Circuit) H(wire int) error { return c.Apply(GateH, nil, wire) }
func (c *Circuit) X(wire int) error { return c.Apply(GateX, nil, wire) }
func (c *Circuit) Y(wire int) error { return c.Apply(GateY, nil, wire) }
func (c *Circuit) Z(wire int) error { return c.Apply(GateZ, nil, wire) }

func (c *Circuit) RX(theta any, wire int) error { return c.applyParam(GateRX, theta, wire) }
func (c *Circuit) RY(theta any, wire int) error { return c.applyParam(GateRY, theta, wire) }
func (c *Circuit) RZ(theta any, wire int) error { return c.applyParam(GateRZ, theta, wire) }

func (c *Circuit) SWAP(wire1, wire2 int) error  { return c.Apply(GateSWAP, nil, wire1, wire2) }
func (c *Circuit) CX(control, target int) error { return c.Apply(GateCX, nil, control, target) }
func (c *Circuit) CZ(control, target int) error { return c.Apply(GateCZ, nil, control, target) }

func (c *Circuit) RXX(theta any, wire1, wire2 int) error {
	return c.applyParam(GateRXX, theta, wire1, wire2)
}

func (c *Circuit) RYY(theta any, wire1, wire2 int) error {
	return c.applyParam(GateRYY, theta, wire1, wire2)
}

func (c *Circuit) RZZ(theta any, wire1, wire2 int) error {
	return c.applyParam(GateRZZ, theta, wire1, wire2)
}

func (c *Circuit) applyParam(kind GateKind, theta any, wires ...int) error {
	expr, err := Param(theta)
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	return c.Apply(kind, expr, wires...)
}

/*
Apply validates and appends one gate. theta must be nil for fixed gates and
non-nil for parametrized ones. Wires are checked against the circuit size
here, so the record never holds an out-of-range wire.
*/
func (c *Circuit) Apply(kind GateKind, theta Expr, wires ...int) error {
	if !kind.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownGate, int(kind))
	}
	if len(wires) != int(kind.Arity()) {
		return fmt.Errorf(
			"%s acts on %d wire(s), got %d: %w", kind, kind.Arity(), len(wires), ErrDimensionMismatch,
		)
	}
	for _, w := range wires {
		if w < 0 || w >= c.numQubits {
			return &WireIndexError{Wire: w, NumQubits: c.numQubits}
		}
	}
	if len(wires) == 2 && wires[0] == wires[1] {
		return fmt.Errorf("%s on wire %d: %w", kind, wires[0], ErrDuplicateWire)
	}
	if kind.Parametrized() != (theta != nil) {
		return fmt.Errorf("%s with parameter %v: %w", kind, theta, ErrInvalidParameter)
	}

	c.gates = append(c.gates, newGate(kind, theta, append([]int(nil), wires...)))
	if theta != nil {
		theta.symbols(c.params)
	}
	c.final = nil
	c.diagram.Append(kind.String(), theta, wires...)
	return nil
}
