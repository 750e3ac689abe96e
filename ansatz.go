package qsym

import (
	"fmt"
)

/*
AngleEncoding returns an n-qubit circuit that loads classical inputs with
one rotation per wire: rot with parameter inputs_i on wire i, followed by a
barrier. The parameter names follow the config's InputPrefix, so Call binds
them positionally.
*/
func AngleEncoding(n int, rot GateKind, config *Config) (*Circuit, error) {
	if rot.Arity() != Single || !rot.Parametrized() {
		return nil, fmt.Errorf("angle encoding needs a single-qubit rotation, got %s: %w", rot, ErrInvalidParameter)
	}

	c := NewCircuit(n, config)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s%d", c.config.InputPrefix, i)
		if err := c.Apply(rot, Symbol(name), i); err != nil {
			return nil, err
		}
	}
	c.Barrier()
	return c, nil
}

// SingleRotOptions configures SingleRot. Zero fields take the defaults of
// NewSingleRotOptions; the zero Entangler (GateH) selects CX.
type SingleRotOptions struct {
	Layers    int
	Prefix    string
	Rotations []GateKind
	Entangler GateKind
}

func NewSingleRotOptions() SingleRotOptions {
	return SingleRotOptions{
		Layers:    1,
		Prefix:    "T",
		Rotations: []GateKind{GateRZ, GateRY, GateRZ},
		Entangler: GateCX,
	}
}

/*
SingleRot returns a layered variational ansatz. Each layer applies every
rotation in order on every wire, with parameters named prefix^l_q,r for
layer l, wire q and rotation r, then entangles neighbouring wires (q, q+1)
and closes with a barrier.
*/
func SingleRot(n int, opts SingleRotOptions, config *Config) (*Circuit, error) {
	defaults := NewSingleRotOptions()
	if opts.Layers == 0 {
		opts.Layers = defaults.Layers
	}
	if opts.Prefix == "" {
		opts.Prefix = defaults.Prefix
	}
	if opts.Rotations == nil {
		opts.Rotations = defaults.Rotations
	}
	switch {
	case opts.Entangler == GateH:
		opts.Entangler = defaults.Entangler
	case opts.Entangler.Arity() != Two:
		return nil, fmt.Errorf("entangler must be a two-qubit gate, got %s: %w", opts.Entangler, ErrInvalidParameter)
	}
	if !validName(opts.Prefix) {
		return nil, fmt.Errorf("%w: parameter prefix %q", ErrInvalidParameter, opts.Prefix)
	}

	c := NewCircuit(n, config)
	for l := 0; l < opts.Layers; l++ {
		for q := 0; q < n; q++ {
			for r, rot := range opts.Rotations {
				name := fmt.Sprintf("%s^%d_%d,%d", opts.Prefix, l, q, r)
				if err := c.Apply(rot, Symbol(name), q); err != nil {
					return nil, err
				}
			}
		}
		for q := 0; q+1 < n; q++ {
			var theta Expr
			if opts.Entangler.Parametrized() {
				theta = Symbol(fmt.Sprintf("%s^%d_%d,e", opts.Prefix, l, q))
			}
			if err := c.Apply(opts.Entangler, theta, q, q+1); err != nil {
				return nil, err
			}
		}
		c.Barrier()
	}
	return c, nil
}

// Measurement reads expectation values for every (wire, basis) pair,
// wire-major.
type Measurement struct {
	Wires []int
	Bases []Basis
}

func (m Measurement) Apply(c *Circuit) ([]Expr, error) {
	out := make([]Expr, 0, len(m.Wires)*len(m.Bases))
	for _, w := range m.Wires {
		for _, b := range m.Bases {
			v, err := c.Measure(w, b)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}
