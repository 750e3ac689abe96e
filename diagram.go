package qsym

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type diagramOp struct {
	name    string
	param   Expr
	wires   []int
	barrier bool
}

/*
Diagram mirrors the gate-append calls of a circuit for drawing. It is
written alongside the gate record and never read back by evolution.
*/
type Diagram struct {
	numWires int
	ops      []diagramOp
}

func NewDiagram(numWires int) *Diagram {
	return &Diagram{numWires: numWires}
}

// Append records a gate. param is nil for fixed gates.
func (d *Diagram) Append(name string, param Expr, wires ...int) {
	d.ops = append(d.ops, diagramOp{
		name:  name,
		param: param,
		wires: append([]int(nil), wires...),
	})
}

// Barrier records a barrier across every wire.
func (d *Diagram) Barrier() {
	d.ops = append(d.ops, diagramOp{name: "barrier", barrier: true})
}

// Len returns the number of recorded operations, barriers included.
func (d *Diagram) Len() int {
	return len(d.ops)
}

// Compose returns a diagram with o's operations after d's.
func (d *Diagram) Compose(o *Diagram) *Diagram {
	out := &Diagram{numWires: max(d.numWires, o.numWires)}
	out.ops = append(append(out.ops, d.ops...), o.ops...)
	return out
}

func (op diagramOp) label() string {
	if op.param == nil {
		return op.name
	}
	return fmt.Sprintf("%s(%s)", op.name, op.param)
}

// cell returns the symbol drawn on wire for op; wires strictly between the
// two wires of a two-qubit gate show its connector.
func (op diagramOp) cell(wire int) string {
	if op.barrier {
		return "░"
	}
	if len(op.wires) == 1 {
		if op.wires[0] == wire {
			return op.label()
		}
		return ""
	}

	first, second := op.wires[0], op.wires[1]
	switch wire {
	case first, second:
		switch op.name {
		case "CX":
			if wire == first {
				return "@"
			}
			return "X"
		case "CZ":
			return "@"
		case "SWAP":
			return "x"
		}
		return op.label()
	}
	if wire > min(first, second) && wire < max(first, second) {
		return "|"
	}
	return ""
}

// String renders one column per operation, one row per wire.
func (d *Diagram) String() string {
	rows := make([]strings.Builder, d.numWires)
	for w := range rows {
		fmt.Fprintf(&rows[w], "q%d: ─", w)
	}

	for _, op := range d.ops {
		cells := make([]string, d.numWires)
		width := 1
		for w := range cells {
			cells[w] = op.cell(w)
			width = max(width, utf8.RuneCountInString(cells[w]))
		}
		for w, cell := range cells {
			pad := width - utf8.RuneCountInString(cell)
			left := pad / 2
			rows[w].WriteString(strings.Repeat("─", left))
			rows[w].WriteString(cell)
			rows[w].WriteString(strings.Repeat("─", pad-left))
			rows[w].WriteString("─")
		}
	}

	lines := make([]string, d.numWires)
	for w := range rows {
		lines[w] = rows[w].String()
	}
	return strings.Join(lines, "\n")
}

// QASM renders the diagram as an OpenQASM 2.0 program. Symbolic angles are
// written as their canonical expression.
func (d *Diagram) QASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", max(d.numWires, 1))

	for _, op := range d.ops {
		if op.barrier {
			sb.WriteString("barrier q;\n")
			continue
		}
		name := strings.ToLower(op.name)
		if op.param != nil {
			name = fmt.Sprintf("%s(%s)", name, op.param)
		}
		args := make([]string, len(op.wires))
		for i, w := range op.wires {
			args[i] = fmt.Sprintf("q[%d]", w)
		}
		fmt.Fprintf(&sb, "%s %s;\n", name, strings.Join(args, ", "))
	}
	return sb.String()
}

// Barrier adds a drawing barrier. It does not touch the gate record.
func (c *Circuit) Barrier() {
	c.diagram.Barrier()
}
