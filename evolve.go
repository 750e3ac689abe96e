package qsym

import (
	"fmt"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Evolve applies the gate record to |0...0> and caches the result.

Single-qubit gates are folded into a per-wire pending buffer and only
tensored into the state when a two-qubit gate needs the full width, or at
the end of the record. The buffer lives for the duration of one call, so
repeated calls on the same record give identical states.
*/
func (c *Circuit) Evolve() *Matrix {
	start := time.Now()
	stats := &Stats{}
	n := c.numQubits

	buffer := make([]*Matrix, n)
	reset := func() {
		for w := range buffer {
			buffer[w] = Identity(2)
		}
	}
	reset()

	state := c.initial
	pending := false

	flush := func() {
		if !pending {
			return
		}
		state = Kron(buffer...).Mul(state)
		reset()
		pending = false
		stats.recordFlush()
	}

	for _, g := range c.gates {
		switch g.Arity() {
		case Single:
			w := g.Wires[0]
			buffer[w] = g.matrix.Mul(buffer[w])
			pending = true
			stats.SingleQubitGates++
		case Two:
			flush()
			state = embedTwo(g.matrix, g.Wires[0], g.Wires[1], n).Mul(state)
			stats.recordTwoQubit()
		default:
			panic(fmt.Sprintf("qsym: %v: %s", ErrUnknownGate, g.Kind))
		}
	}
	flush()

	stats.Duration = time.Since(start)
	c.final = state
	c.stats = stats

	if c.config.Verbose {
		errnie.Info(
			"Evolve - circuit %s, qubits %d, gates %d, flushes %d, took %v",
			c.ID, n, len(c.gates), stats.Flushes, stats.Duration,
		)
	}
	return state
}

// State returns the cached final state, evolving first if needed.
func (c *Circuit) State() *Matrix {
	if c.final == nil {
		c.Evolve()
	}
	return c.final
}

// Evolved reports whether a final state is cached.
func (c *Circuit) Evolved() bool {
	return c.final != nil
}
