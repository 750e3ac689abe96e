package qsym

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theapemachine/errnie"
)

// MeasurementMode selects what Call reads out of the bound state.
type MeasurementMode int

const (
	MeasureUnset MeasurementMode = iota
	// MeasureAll reads every basis on every wire, wire-major.
	MeasureAll
	// MeasureSingle reads every basis on wire 0.
	MeasureSingle
)

func (m MeasurementMode) String() string {
	switch m {
	case MeasureAll:
		return "measure_all"
	case MeasureSingle:
		return "measure_single"
	}
	return "unset"
}

func ParseMeasurementMode(s string) (MeasurementMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset", "none":
		return MeasureUnset, nil
	case "measure_all", "all":
		return MeasureAll, nil
	case "measure_single", "single":
		return MeasureSingle, nil
	}
	return MeasureUnset, fmt.Errorf("%w: measurement mode %q", ErrInvalidParameter, s)
}

// SetMeasurement configures the readout used by Call.
func (c *Circuit) SetMeasurement(mode MeasurementMode, bases ...Basis) error {
	for _, b := range bases {
		if pauli(b) == nil {
			return &InvalidBasisError{Basis: string(b)}
		}
	}
	c.mode = mode
	c.bases = append([]Basis(nil), bases...)
	return nil
}

// Measurement returns the configured readout.
func (c *Circuit) Measurement() (MeasurementMode, []Basis) {
	return c.mode, append([]Basis(nil), c.bases...)
}

// SetInputs designates the parameters bound positionally by Call. Without
// it Call binds InputPrefix followed by the position.
func (c *Circuit) SetInputs(names ...string) {
	c.inputs = append([]string(nil), names...)
}

// Inputs returns the explicitly designated input names.
func (c *Circuit) Inputs() []string {
	return append([]string(nil), c.inputs...)
}

func (c *Circuit) inputBindings(x []float64) (map[string]Expr, error) {
	if len(c.inputs) > 0 && len(x) > len(c.inputs) {
		return nil, fmt.Errorf("%d values for %d inputs: %w", len(x), len(c.inputs), ErrTooManyInputs)
	}

	bindings := make(map[string]Expr, len(x))
	for i, v := range x {
		name := c.config.InputPrefix + strconv.Itoa(i)
		if len(c.inputs) > 0 {
			name = c.inputs[i]
		}
		bindings[name] = Number(v)
	}
	return bindings, nil
}

// Bind substitutes exact values into the final state, evolving first when
// needed. Parameters missing from bindings stay symbolic.
func (c *Circuit) Bind(bindings map[string]Expr) *Matrix {
	return c.State().Subs(bindings)
}

/*
Call binds x to the designated inputs, numerically evaluates the final
state and applies the configured readout. Parameters that are not inputs
stay symbolic in the result.

With MeasureAll the values are ordered wire-major: every basis of wire 0,
then every basis of wire 1, and so on. With MeasureSingle they are the
bases of wire 0 in order. Without a readout the bound state amplitudes are
returned.
*/
func (c *Circuit) Call(x ...float64) ([]Expr, error) {
	return c.CallWith(nil, x...)
}

// CallWith is Call with extra bindings for parameters that are not inputs.
// Positional inputs win over extra bindings of the same name.
func (c *Circuit) CallWith(extra map[string]Expr, x ...float64) ([]Expr, error) {
	bindings, err := c.inputBindings(x)
	if err != nil {
		return nil, err
	}
	for name, v := range extra {
		if _, ok := bindings[name]; !ok {
			bindings[name] = v
		}
	}

	state := c.State().Subs(bindings).Evalf()

	var out []Expr
	switch c.mode {
	case MeasureAll:
		for wire := 0; wire < c.numQubits; wire++ {
			for _, basis := range c.bases {
				obs, err := Observable(c.numQubits, wire, basis)
				if err != nil {
					return nil, err
				}
				out = append(out, expectation(state, obs).Evalf())
			}
		}
	case MeasureSingle:
		for _, basis := range c.bases {
			obs, err := Observable(c.numQubits, 0, basis)
			if err != nil {
				return nil, err
			}
			out = append(out, expectation(state, obs).Evalf())
		}
	default:
		out = state.Column(0)
	}

	if c.config.Verbose {
		errnie.Info("Call - circuit %s, inputs %v, mode %s, %d values", c.ID, x, c.mode, len(out))
	}
	return out, nil
}
