package qsym

import (
	"fmt"
)

/*
Linear is a dense classical layer with symbolic weights. Output neuron i
has bias prefix^(i+1)_0 and weights prefix^(i+1)_j for j = 1..In, so it
composes with circuit readouts into one differentiable expression.
*/
type Linear struct {
	In, Out int
	Prefix  string
}

func NewLinear(in, out int) *Linear {
	return &Linear{In: in, Out: out, Prefix: "L"}
}

// Weight returns the symbol for neuron i (0-based) and input j, where j = 0
// is the bias.
func (l *Linear) Weight(i, j int) *Sym {
	return Symbol(fmt.Sprintf("%s^%d_%d", l.Prefix, i+1, j))
}

// Params returns every weight name, neuron by neuron.
func (l *Linear) Params() []string {
	out := make([]string, 0, l.Out*(l.In+1))
	for i := 0; i < l.Out; i++ {
		for j := 0; j <= l.In; j++ {
			out = append(out, l.Weight(i, j).Name())
		}
	}
	return out
}

// Apply returns W x + b.
func (l *Linear) Apply(x []Expr) ([]Expr, error) {
	if len(x) != l.In {
		return nil, fmt.Errorf("linear layer expects %d inputs, got %d: %w", l.In, len(x), ErrDimensionMismatch)
	}

	out := make([]Expr, l.Out)
	for i := range out {
		terms := []Expr{l.Weight(i, 0)}
		for j, v := range x {
			terms = append(terms, Mul(l.Weight(i, j+1), v))
		}
		out[i] = Add(terms...)
	}
	return out, nil
}
