package qsym

import "github.com/theapemachine/errnie"

/*
Compose returns a new circuit running a's gates followed by b's. b must not
be wider than a. Free parameters and designated inputs are merged, and a's
readout configuration wins when both define one. Neither operand is
modified.
*/
func Compose(a, b *Circuit) (*Circuit, error) {
	if a.numQubits < b.numQubits {
		return nil, &CompositionSizeError{Left: a.numQubits, Right: b.numQubits}
	}

	out := NewCircuit(a.numQubits, a.config)
	out.gates = make([]Gate, 0, len(a.gates)+len(b.gates))
	for _, g := range append(append([]Gate(nil), a.gates...), b.gates...) {
		out.gates = append(out.gates, g.clone())
	}

	for _, src := range []map[string]struct{}{a.params, b.params} {
		for name := range src {
			out.params[name] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	for _, name := range append(append([]string(nil), a.inputs...), b.inputs...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out.inputs = append(out.inputs, name)
	}

	switch {
	case a.mode != MeasureUnset:
		out.mode, out.bases = a.mode, append([]Basis(nil), a.bases...)
	case b.mode != MeasureUnset:
		out.mode, out.bases = b.mode, append([]Basis(nil), b.bases...)
	}

	out.diagram = a.diagram.Compose(b.diagram)

	if out.config.Verbose {
		errnie.Info(
			"Compose - %s (%d gates) + %s (%d gates) -> %s",
			a.ID, len(a.gates), b.ID, len(b.gates), out.ID,
		)
	}
	return out, nil
}

// Compose appends o after c into a new circuit.
func (c *Circuit) Compose(o *Circuit) (*Circuit, error) {
	return Compose(c, o)
}
