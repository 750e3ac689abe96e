package qsym

import (
	"math/big"
	"math/cmplx"
)

// Fn is an application of sin, cos or exp.
type Fn struct {
	name string
	arg  Expr
}

// Sin returns sin(x). Multiples of pi/2 fold to exact values.
func Sin(x Expr) Expr {
	if n, ok := x.(*Num); ok {
		if n.IsExact() && n.IsZero() {
			return Int(0)
		}
		return ComplexNumber(cmplx.Sin(n.Complex128()))
	}
	if m, ok := quarterTurns(x, false); ok {
		return Int([]int64{0, 1, 0, -1}[m])
	}
	if pos, ok := negated(x); ok {
		return Neg(Sin(pos))
	}
	return &Fn{name: "sin", arg: x}
}

// Cos returns cos(x). Multiples of pi/2 fold to exact values.
func Cos(x Expr) Expr {
	if n, ok := x.(*Num); ok {
		if n.IsExact() && n.IsZero() {
			return Int(1)
		}
		return ComplexNumber(cmplx.Cos(n.Complex128()))
	}
	if m, ok := quarterTurns(x, false); ok {
		return Int([]int64{1, 0, -1, 0}[m])
	}
	if pos, ok := negated(x); ok {
		return Cos(pos)
	}
	return &Fn{name: "cos", arg: x}
}

// Exp returns e^x. Imaginary multiples of pi/2 fold to exact values.
func Exp(x Expr) Expr {
	if n, ok := x.(*Num); ok {
		if n.IsExact() && n.IsZero() {
			return Int(1)
		}
		return ComplexNumber(cmplx.Exp(n.Complex128()))
	}
	if m, ok := quarterTurns(x, true); ok {
		return []*Num{Int(1), ImagUnit(), Int(-1), numNeg(ImagUnit())}[m]
	}
	return &Fn{name: "exp", arg: x}
}

func applyFn(name string, arg Expr) Expr {
	switch name {
	case "sin":
		return Sin(arg)
	case "cos":
		return Cos(arg)
	case "exp":
		return Exp(arg)
	}
	panic("qsym: unknown function " + name)
}

func (f *Fn) Name() string   { return f.name }
func (f *Fn) Arg() Expr      { return f.arg }
func (f *Fn) String() string { return f.name + "(" + f.arg.String() + ")" }

func (f *Fn) Eval() (complex128, bool) {
	v, ok := f.arg.Eval()
	if !ok {
		return 0, false
	}
	switch f.name {
	case "sin":
		return cmplx.Sin(v), true
	case "cos":
		return cmplx.Cos(v), true
	}
	return cmplx.Exp(v), true
}

func (f *Fn) Subs(bindings map[string]Expr) Expr {
	return applyFn(f.name, f.arg.Subs(bindings))
}

func (f *Fn) Diff(name string) Expr {
	d := f.arg.Diff(name)
	if IsZero(d) {
		return Int(0)
	}
	switch f.name {
	case "sin":
		return Mul(Cos(f.arg), d)
	case "cos":
		return Mul(Int(-1), Sin(f.arg), d)
	}
	return Mul(f, d)
}

func (f *Fn) Conj() Expr {
	return applyFn(f.name, f.arg.Conj())
}

func (f *Fn) Evalf() Expr {
	if v, ok := f.Eval(); ok {
		return ComplexNumber(v)
	}
	return applyFn(f.name, f.arg.Evalf())
}

func (f *Fn) symbols(out map[string]struct{}) {
	f.arg.symbols(out)
}

// quarterTurns reports x as m quarter turns (m*pi/2 mod 2pi) when x is a
// rational multiple of pi, or of i*pi when imaginary is set.
func quarterTurns(x Expr, imaginary bool) (int, bool) {
	k, ok := piCoefficient(x, imaginary)
	if !ok {
		return 0, false
	}
	twice := new(big.Rat).Mul(k, big.NewRat(2, 1))
	if !twice.IsInt() {
		return 0, false
	}
	m := new(big.Int).Mod(twice.Num(), big.NewInt(4))
	return int(m.Int64()), true
}

func piCoefficient(x Expr, imaginary bool) (*big.Rat, bool) {
	if x == Pi {
		return ratOne, !imaginary
	}
	p, ok := x.(*Product)
	if !ok || len(p.factors) != 1 || p.factors[0] != Pi || p.coeff.approx {
		return nil, false
	}
	if imaginary {
		return p.coeff.im, p.coeff.re.Sign() == 0
	}
	return p.coeff.re, p.coeff.im.Sign() == 0
}

// negated returns -x when x carries a negative real coefficient.
func negated(x Expr) (Expr, bool) {
	p, ok := x.(*Product)
	if !ok || !p.coeff.isNegativeReal() {
		return nil, false
	}
	return Mul(append([]Expr{numNeg(p.coeff)}, p.factors...)...), true
}
