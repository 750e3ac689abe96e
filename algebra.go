package qsym

import (
	"math/big"
	"math/cmplx"
	"sort"
	"strings"
)

var ratOne = big.NewRat(1, 1)

/*
Sum is a canonical sum. Like terms are collected by their non-numeric part,
terms are sorted by that part, and a numeric constant, if any, comes last.
*/
type Sum struct {
	terms []Expr
}

// Add returns the canonical sum of terms.
func Add(terms ...Expr) Expr {
	constant := Int(0)
	coeffs := make(map[string]*Num)
	rests := make(map[string]Expr)
	keys := make([]string, 0, len(terms))

	var collect func(e Expr)
	collect = func(e Expr) {
		switch v := e.(type) {
		case *Num:
			constant = numAdd(constant, v)
		case *Sum:
			for _, t := range v.terms {
				collect(t)
			}
		default:
			coeff, rest := splitCoeff(e)
			key := rest.String()
			if prev, ok := coeffs[key]; ok {
				coeffs[key] = numAdd(prev, coeff)
				return
			}
			coeffs[key] = coeff
			rests[key] = rest
			keys = append(keys, key)
		}
	}

	for _, t := range terms {
		collect(t)
	}

	sort.Strings(keys)
	out := make([]Expr, 0, len(keys)+1)
	for _, key := range keys {
		if coeff := coeffs[key]; !coeff.IsZero() {
			out = append(out, scale(coeff, rests[key]))
		}
	}
	if !constant.IsZero() {
		out = append(out, constant)
	}

	switch len(out) {
	case 0:
		return constant
	case 1:
		return out[0]
	}
	return &Sum{terms: out}
}

// Terms returns a copy of the summands.
func (s *Sum) Terms() []Expr {
	return append([]Expr(nil), s.terms...)
}

func (s *Sum) String() string {
	var sb strings.Builder
	for i, t := range s.terms {
		str := t.String()
		switch {
		case i == 0:
			sb.WriteString(str)
		case strings.HasPrefix(str, "-"):
			sb.WriteString(" - ")
			sb.WriteString(str[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(str)
		}
	}
	return sb.String()
}

func (s *Sum) Eval() (complex128, bool) {
	var acc complex128
	for _, t := range s.terms {
		v, ok := t.Eval()
		if !ok {
			return 0, false
		}
		acc += v
	}
	return acc, true
}

func (s *Sum) Subs(bindings map[string]Expr) Expr {
	return Add(mapExprs(s.terms, func(e Expr) Expr { return e.Subs(bindings) })...)
}

func (s *Sum) Diff(name string) Expr {
	return Add(mapExprs(s.terms, func(e Expr) Expr { return e.Diff(name) })...)
}

func (s *Sum) Conj() Expr {
	return Add(mapExprs(s.terms, Expr.Conj)...)
}

func (s *Sum) Evalf() Expr {
	if v, ok := s.Eval(); ok {
		return ComplexNumber(v)
	}
	return Add(mapExprs(s.terms, Expr.Evalf)...)
}

func (s *Sum) symbols(out map[string]struct{}) {
	for _, t := range s.terms {
		t.symbols(out)
	}
}

/*
Product is a canonical product: a numeric coefficient followed by
non-numeric factors sorted by their base. Equal bases have their exponents
merged, and all exp() factors are merged into a single exp of the summed
arguments.
*/
type Product struct {
	coeff   *Num
	factors []Expr
}

// Mul returns the canonical product of factors.
func Mul(factors ...Expr) Expr {
	coeff := Int(1)
	exps := make(map[string]*big.Rat)
	bases := make(map[string]Expr)
	keys := make([]string, 0, len(factors))
	var expArgs []Expr

	addFactor := func(base Expr, exp *big.Rat) {
		key := base.String()
		if prev, ok := exps[key]; ok {
			prev.Add(prev, exp)
			return
		}
		exps[key] = new(big.Rat).Set(exp)
		bases[key] = base
		keys = append(keys, key)
	}

	var collect func(e Expr)
	collect = func(e Expr) {
		switch v := e.(type) {
		case *Num:
			coeff = numMul(coeff, v)
		case *Product:
			coeff = numMul(coeff, v.coeff)
			for _, f := range v.factors {
				collect(f)
			}
		case *Power:
			addFactor(v.base, v.exp)
		case *Fn:
			if v.name == "exp" {
				expArgs = append(expArgs, v.arg)
				return
			}
			addFactor(v, ratOne)
		default:
			addFactor(e, ratOne)
		}
	}

	for _, f := range factors {
		collect(f)
	}
	if coeff.IsZero() {
		return coeff
	}

	if len(expArgs) > 0 {
		switch merged := Exp(Add(expArgs...)).(type) {
		case *Num:
			coeff = numMul(coeff, merged)
		default:
			addFactor(merged, ratOne)
		}
	}

	sort.Strings(keys)
	out := make([]Expr, 0, len(keys))
	for _, key := range keys {
		exp := exps[key]
		if exp.Sign() == 0 {
			continue
		}
		base := bases[key]
		if n, ok := base.(*Num); ok {
			var rest Expr
			coeff, rest = foldNumericPower(coeff, n, exp)
			if rest != nil {
				out = append(out, rest)
			}
			continue
		}
		if exp.Cmp(ratOne) == 0 {
			out = append(out, base)
			continue
		}
		out = append(out, &Power{base: base, exp: exp})
	}

	switch {
	case coeff.IsZero():
		return coeff
	case len(out) == 0:
		return coeff
	case len(out) == 1 && coeff.IsOne():
		return out[0]
	}
	return &Product{coeff: coeff, factors: out}
}

// Coeff returns the numeric coefficient.
func (p *Product) Coeff() *Num { return p.coeff }

// Factors returns a copy of the non-numeric factors.
func (p *Product) Factors() []Expr {
	return append([]Expr(nil), p.factors...)
}

func (p *Product) String() string {
	parts := make([]string, len(p.factors))
	for i, f := range p.factors {
		if _, ok := f.(*Sum); ok {
			parts[i] = "(" + f.String() + ")"
			continue
		}
		parts[i] = f.String()
	}
	body := strings.Join(parts, "*")

	switch {
	case p.coeff.IsOne():
		return body
	case p.coeff.IsNegOne():
		return "-" + body
	}
	return p.coeff.String() + "*" + body
}

func (p *Product) Eval() (complex128, bool) {
	acc := p.coeff.Complex128()
	for _, f := range p.factors {
		v, ok := f.Eval()
		if !ok {
			return 0, false
		}
		acc *= v
	}
	return acc, true
}

func (p *Product) Subs(bindings map[string]Expr) Expr {
	args := append([]Expr{p.coeff}, mapExprs(p.factors, func(e Expr) Expr { return e.Subs(bindings) })...)
	return Mul(args...)
}

func (p *Product) Diff(name string) Expr {
	terms := make([]Expr, 0, len(p.factors))
	for i, f := range p.factors {
		df := f.Diff(name)
		if IsZero(df) {
			continue
		}
		args := []Expr{p.coeff, df}
		for j, g := range p.factors {
			if j != i {
				args = append(args, g)
			}
		}
		terms = append(terms, Mul(args...))
	}
	return Add(terms...)
}

func (p *Product) Conj() Expr {
	return Mul(append([]Expr{p.coeff.Conj()}, mapExprs(p.factors, Expr.Conj)...)...)
}

func (p *Product) Evalf() Expr {
	if v, ok := p.Eval(); ok {
		return ComplexNumber(v)
	}
	return Mul(append([]Expr{p.coeff.Evalf()}, mapExprs(p.factors, Expr.Evalf)...)...)
}

func (p *Product) symbols(out map[string]struct{}) {
	for _, f := range p.factors {
		f.symbols(out)
	}
}

// Power is base raised to a rational exponent.
type Power struct {
	base Expr
	exp  *big.Rat
}

// Pow returns base^(p/q).
func Pow(base Expr, p, q int64) Expr {
	if q == 0 {
		panic("qsym: zero denominator in exponent")
	}
	return power(base, big.NewRat(p, q))
}

func power(base Expr, exp *big.Rat) Expr {
	switch {
	case exp.Sign() == 0:
		return Int(1)
	case exp.Cmp(ratOne) == 0:
		return base
	}

	switch b := base.(type) {
	case *Num:
		coeff, rest := foldNumericPower(Int(1), b, exp)
		if rest == nil {
			return coeff
		}
		return Mul(coeff, rest)
	case *Power:
		if exp.IsInt() || isPositiveRational(b.base) {
			return power(b.base, new(big.Rat).Mul(b.exp, exp))
		}
	case *Product:
		if exp.IsInt() {
			k := exp.Num().Int64()
			args := []Expr{numPowInt(b.coeff, k)}
			for _, f := range b.factors {
				args = append(args, power(f, exp))
			}
			return Mul(args...)
		}
	case *Fn:
		if b.name == "exp" && exp.IsInt() {
			return Exp(Mul(ratNum(exp), b.arg))
		}
	}
	return Mul(&Power{base: base, exp: new(big.Rat).Set(exp)})
}

// foldNumericPower multiplies coeff by base^exp as far as that stays exact.
// Integer parts of rational powers of positive rationals move into the
// coefficient; the fractional remainder, if any, is returned as a factor.
func foldNumericPower(coeff, base *Num, exp *big.Rat) (*Num, Expr) {
	if exp.IsInt() {
		return numMul(coeff, numPowInt(base, exp.Num().Int64())), nil
	}
	if base.approx {
		e, _ := exp.Float64()
		return numMul(coeff, ComplexNumber(cmplx.Pow(base.c, complex(e, 0)))), nil
	}
	if !base.isPositiveRational() {
		return coeff, &Power{base: base, exp: new(big.Rat).Set(exp)}
	}

	whole := new(big.Int).Div(exp.Num(), exp.Denom())
	frac := new(big.Rat).Sub(exp, new(big.Rat).SetInt(whole))
	coeff = numMul(coeff, numPowInt(base, whole.Int64()))
	if base.IsOne() {
		return coeff, nil
	}
	return coeff, &Power{base: base, exp: frac}
}

// Base returns the base of the power.
func (p *Power) Base() Expr { return p.base }

// Exponent returns a copy of the rational exponent.
func (p *Power) Exponent() *big.Rat { return new(big.Rat).Set(p.exp) }

func (p *Power) String() string {
	b := p.base.String()
	switch v := p.base.(type) {
	case *Sum, *Product, *Power:
		b = "(" + b + ")"
	case *Num:
		if !v.IsReal() || v.isNegativeReal() || (v.IsExact() && !v.re.IsInt()) {
			b = "(" + b + ")"
		}
	}
	if p.exp.IsInt() && p.exp.Sign() > 0 {
		return b + "^" + p.exp.Num().String()
	}
	return b + "^(" + ratString(p.exp) + ")"
}

func (p *Power) Eval() (complex128, bool) {
	b, ok := p.base.Eval()
	if !ok {
		return 0, false
	}
	if p.exp.IsInt() && p.exp.Num().IsInt64() {
		return powComplexInt(b, p.exp.Num().Int64()), true
	}
	e, _ := p.exp.Float64()
	return cmplx.Pow(b, complex(e, 0)), true
}

func (p *Power) Subs(bindings map[string]Expr) Expr {
	return power(p.base.Subs(bindings), p.exp)
}

func (p *Power) Diff(name string) Expr {
	d := p.base.Diff(name)
	if IsZero(d) {
		return Int(0)
	}
	lowered := new(big.Rat).Sub(p.exp, ratOne)
	return Mul(ratNum(p.exp), power(p.base, lowered), d)
}

func (p *Power) Conj() Expr {
	return power(p.base.Conj(), p.exp)
}

func (p *Power) Evalf() Expr {
	if v, ok := p.Eval(); ok {
		return ComplexNumber(v)
	}
	return power(p.base.Evalf(), p.exp)
}

func (p *Power) symbols(out map[string]struct{}) {
	p.base.symbols(out)
}

func splitCoeff(e Expr) (*Num, Expr) {
	p, ok := e.(*Product)
	if !ok {
		return Int(1), e
	}
	if len(p.factors) == 1 {
		return p.coeff, p.factors[0]
	}
	return p.coeff, &Product{coeff: Int(1), factors: p.factors}
}

func scale(coeff *Num, rest Expr) Expr {
	if coeff.IsOne() {
		return rest
	}
	if p, ok := rest.(*Product); ok {
		return &Product{coeff: coeff, factors: p.factors}
	}
	return &Product{coeff: coeff, factors: []Expr{rest}}
}

func ratNum(r *big.Rat) *Num {
	return exactNum(new(big.Rat).Set(r), new(big.Rat))
}

func isPositiveRational(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.isPositiveRational()
}

func powComplexInt(b complex128, k int64) complex128 {
	if k < 0 {
		return 1 / powComplexInt(b, -k)
	}
	out := complex(1, 0)
	for ; k > 0; k-- {
		out *= b
	}
	return out
}

func mapExprs(in []Expr, fn func(Expr) Expr) []Expr {
	out := make([]Expr, len(in))
	for i, e := range in {
		out[i] = fn(e)
	}
	return out
}
