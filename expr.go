package qsym

import (
	"fmt"
	"math"
	"sort"
)

/*
Expr is a node of the closed expression algebra used for gate matrices and
state amplitudes. Every constructor returns a canonical form, so two
expressions are equal when their string forms are equal.

Free symbols are treated as real, which lets conjugation push through the
tree.
*/
type Expr interface {
	fmt.Stringer

	// Eval returns the numeric value when the expression has no free symbols.
	Eval() (complex128, bool)
	// Subs replaces free symbols by name and re-canonicalizes.
	Subs(bindings map[string]Expr) Expr
	// Diff differentiates with respect to the named symbol.
	Diff(name string) Expr
	// Conj returns the complex conjugate.
	Conj() Expr
	// Evalf folds every numeric subtree into an approximate number.
	Evalf() Expr

	symbols(out map[string]struct{})
}

// Sym is a named real free parameter.
type Sym struct {
	name string
}

// Symbol returns the free parameter with the given name.
func Symbol(name string) *Sym {
	return &Sym{name: name}
}

func (s *Sym) Name() string                    { return s.name }
func (s *Sym) String() string                  { return s.name }
func (s *Sym) Eval() (complex128, bool)        { return 0, false }
func (s *Sym) Conj() Expr                      { return s }
func (s *Sym) Evalf() Expr                     { return s }
func (s *Sym) symbols(out map[string]struct{}) { out[s.name] = struct{}{} }

func (s *Sym) Subs(bindings map[string]Expr) Expr {
	if v, ok := bindings[s.name]; ok {
		return v
	}
	return s
}

func (s *Sym) Diff(name string) Expr {
	if s.name == name {
		return Int(1)
	}
	return Int(0)
}

type constant struct {
	name  string
	value float64
}

// Pi is the exact constant pi. Trigonometric functions of rational multiples
// of pi with a half-integer denominator evaluate exactly.
var Pi Expr = &constant{name: "pi", value: math.Pi}

func (k *constant) String() string              { return k.name }
func (k *constant) Eval() (complex128, bool)    { return complex(k.value, 0), true }
func (k *constant) Subs(map[string]Expr) Expr   { return k }
func (k *constant) Diff(string) Expr            { return Int(0) }
func (k *constant) Conj() Expr                  { return k }
func (k *constant) Evalf() Expr                 { return Number(k.value) }
func (k *constant) symbols(map[string]struct{}) {}

// Equal reports whether two expressions have the same canonical form.
func Equal(a, b Expr) bool {
	return a.String() == b.String()
}

// IsZero reports whether e is the number zero.
func IsZero(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.IsZero()
}

// FreeSymbols returns the sorted names of the free parameters in e.
func FreeSymbols(e Expr) []string {
	set := make(map[string]struct{})
	e.symbols(set)
	return sortedNames(set)
}

// Gradient returns the partial derivatives of e with respect to names.
func Gradient(e Expr, names []string) []Expr {
	out := make([]Expr, len(names))
	for i, name := range names {
		out[i] = e.Diff(name)
	}
	return out
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Neg returns -e.
func Neg(e Expr) Expr {
	return Mul(Int(-1), e)
}

// Sub returns a - b.
func Sub(a, b Expr) Expr {
	return Add(a, Neg(b))
}

// Sqrt returns the principal square root of e.
func Sqrt(e Expr) Expr {
	return Pow(e, 1, 2)
}
