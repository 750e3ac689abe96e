package qsym

import (
	"fmt"
	"strings"
)

/*
Matrix is a dense rows x cols matrix of expressions, stored row-major.
Shape mismatches are programming errors and panic.
*/
type Matrix struct {
	rows, cols int
	data       []Expr
}

// NewMatrix returns a zero matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("qsym: invalid matrix shape %dx%d", rows, cols))
	}
	data := make([]Expr, rows*cols)
	for i := range data {
		data[i] = Int(0)
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// MatrixOf builds a matrix from row slices of equal length.
func MatrixOf(rows ...[]Expr) *Matrix {
	if len(rows) == 0 {
		panic("qsym: empty matrix")
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			panic("qsym: ragged matrix rows")
		}
		copy(m.data[i*m.cols:], row)
	}
	return m
}

// Identity returns the n x n identity. Sizes below 1 yield the 1x1 identity.
func Identity(n int) *Matrix {
	if n < 1 {
		n = 1
	}
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = Int(1)
	}
	return m
}

func (m *Matrix) Rows() int            { return m.rows }
func (m *Matrix) Cols() int            { return m.cols }
func (m *Matrix) At(i, j int) Expr     { return m.data[i*m.cols+j] }
func (m *Matrix) Set(i, j int, e Expr) { m.data[i*m.cols+j] = e }

// Mul returns m * o.
func (m *Matrix) Mul(o *Matrix) *Matrix {
	if m.cols != o.rows {
		panic(fmt.Sprintf("qsym: cannot multiply %dx%d by %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
	out := NewMatrix(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			terms := make([]Expr, 0, m.cols)
			for k := 0; k < m.cols; k++ {
				a, b := m.At(i, k), o.At(k, j)
				if IsZero(a) || IsZero(b) {
					continue
				}
				terms = append(terms, Mul(a, b))
			}
			out.Set(i, j, Add(terms...))
		}
	}
	return out
}

// Kron returns the Kronecker product of ms from left to right. With no
// arguments it returns the 1x1 identity.
func Kron(ms ...*Matrix) *Matrix {
	out := Identity(1)
	for _, m := range ms {
		out = kron(out, m)
	}
	return out
}

func kron(a, b *Matrix) *Matrix {
	out := NewMatrix(a.rows*b.rows, a.cols*b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			x := a.At(i, j)
			if IsZero(x) {
				continue
			}
			for k := 0; k < b.rows; k++ {
				for l := 0; l < b.cols; l++ {
					if y := b.At(k, l); !IsZero(y) {
						out.Set(i*b.rows+k, j*b.cols+l, Mul(x, y))
					}
				}
			}
		}
	}
	return out
}

// Adjoint returns the conjugate transpose.
func (m *Matrix) Adjoint() *Matrix {
	out := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, m.At(i, j).Conj())
		}
	}
	return out
}

func (m *Matrix) apply(fn func(Expr) Expr) *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]Expr, len(m.data))}
	for i, e := range m.data {
		out.data[i] = fn(e)
	}
	return out
}

// Subs substitutes bindings into every entry.
func (m *Matrix) Subs(bindings map[string]Expr) *Matrix {
	return m.apply(func(e Expr) Expr { return e.Subs(bindings) })
}

// Evalf numerically folds every entry.
func (m *Matrix) Evalf() *Matrix {
	return m.apply(Expr.Evalf)
}

// Diff differentiates every entry with respect to name.
func (m *Matrix) Diff(name string) *Matrix {
	return m.apply(func(e Expr) Expr { return e.Diff(name) })
}

// Equal reports whether both matrices have the same shape and canonical entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if !Equal(m.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// Column returns a copy of column j.
func (m *Matrix) Column(j int) []Expr {
	out := make([]Expr, m.rows)
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}

// FreeSymbols returns the sorted names of free parameters in any entry.
func (m *Matrix) FreeSymbols() []string {
	set := make(map[string]struct{})
	for _, e := range m.data {
		e.symbols(set)
	}
	return sortedNames(set)
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		row := make([]string, m.cols)
		for j := range row {
			row[j] = m.At(i, j).String()
		}
		sb.WriteString("[" + strings.Join(row, ", ") + "]")
		if i < m.rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
