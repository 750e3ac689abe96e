package qsym

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

/*
CircuitSpec is the YAML description of a circuit:

	name: bell
	qubits: 2
	gates:
	  - gate: h
	    wires: [0]
	  - gate: rx
	    param: theta
	    wires: [1]
	  - gate: cx
	    wires: [0, 1]
	measure:
	  mode: measure_all
	  bases: [Z, X]
	bind:
	  theta: pi/2

Parameters are parsed with Param: numbers, multiples of pi such as -3*pi/4,
or free parameter names.
*/
type CircuitSpec struct {
	Name    string            `yaml:"name"`
	Qubits  int               `yaml:"qubits"`
	Inputs  []string          `yaml:"inputs,omitempty"`
	Gates   []GateSpec        `yaml:"gates"`
	Measure *MeasureSpec      `yaml:"measure,omitempty"`
	Bind    map[string]string `yaml:"bind,omitempty"`
}

type GateSpec struct {
	Gate    string `yaml:"gate"`
	Param   string `yaml:"param,omitempty"`
	Wires   []int  `yaml:"wires"`
	Barrier bool   `yaml:"barrier,omitempty"`
}

type MeasureSpec struct {
	Mode  string   `yaml:"mode"`
	Bases []string `yaml:"bases"`
}

func ParseCircuitSpec(data []byte) (*CircuitSpec, error) {
	desc := &CircuitSpec{}
	if err := yaml.Unmarshal(data, desc); err != nil {
		return nil, fmt.Errorf("parse circuit: %w", err)
	}
	if desc.Qubits < 1 {
		return nil, fmt.Errorf("circuit %q declares %d qubits: %w", desc.Name, desc.Qubits, ErrInvalidParameter)
	}
	return desc, nil
}

func LoadCircuitFile(path string) (*CircuitSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCircuitSpec(data)
}

/*
Build appends every gate of the description to a new circuit and applies the
readout configuration. A gate entry with barrier set and no gate name only
adds a diagram barrier.
*/
func (desc *CircuitSpec) Build(config *Config) (*Circuit, error) {
	c := NewCircuit(desc.Qubits, config)
	if len(desc.Inputs) > 0 {
		c.SetInputs(desc.Inputs...)
	}

	for i, g := range desc.Gates {
		if g.Gate == "" && g.Barrier {
			c.Barrier()
			continue
		}
		kind, err := ParseGateKind(g.Gate)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}

		var theta Expr
		if kind.Parametrized() {
			if g.Param == "" {
				return nil, fmt.Errorf("gate %d: %s needs a param: %w", i, kind, ErrInvalidParameter)
			}
			if theta, err = parseParam(g.Param); err != nil {
				return nil, fmt.Errorf("gate %d: %w", i, err)
			}
		}
		if err := c.Apply(kind, theta, g.Wires...); err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		if g.Barrier {
			c.Barrier()
		}
	}

	if desc.Measure != nil {
		mode, err := ParseMeasurementMode(desc.Measure.Mode)
		if err != nil {
			return nil, err
		}
		bases := make([]Basis, len(desc.Measure.Bases))
		for i, b := range desc.Measure.Bases {
			if bases[i], err = ParseBasis(b); err != nil {
				return nil, err
			}
		}
		if err := c.SetMeasurement(mode, bases...); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Bindings parses the bind section.
func (desc *CircuitSpec) Bindings() (map[string]Expr, error) {
	out := make(map[string]Expr, len(desc.Bind))
	for name, raw := range desc.Bind {
		v, err := parseParam(raw)
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}
