package qsym

import (
	"math/big"
	"math/cmplx"
	"strconv"
)

/*
Num is a complex number. Exact numbers keep real and imaginary parts as
rationals; approximate numbers hold a complex128 and are produced whenever a
float enters the computation. Arithmetic with an approximate operand yields
an approximate result.
*/
type Num struct {
	re, im *big.Rat
	approx bool
	c      complex128
}

// Int returns the exact integer n.
func Int(n int64) *Num {
	return &Num{re: new(big.Rat).SetInt64(n), im: new(big.Rat)}
}

// Rat returns the exact rational p/q.
func Rat(p, q int64) *Num {
	if q == 0 {
		panic("qsym: zero denominator")
	}
	return &Num{re: big.NewRat(p, q), im: new(big.Rat)}
}

// ImagUnit returns the exact imaginary unit i.
func ImagUnit() *Num {
	return &Num{re: new(big.Rat), im: new(big.Rat).SetInt64(1)}
}

// Number returns an approximate real number.
func Number(f float64) *Num {
	return &Num{approx: true, c: complex(f, 0)}
}

// ComplexNumber returns an approximate complex number.
func ComplexNumber(c complex128) *Num {
	return &Num{approx: true, c: c}
}

func exactNum(re, im *big.Rat) *Num {
	return &Num{re: re, im: im}
}

func (n *Num) IsExact() bool { return !n.approx }

func (n *Num) IsZero() bool {
	if n.approx {
		return n.c == 0
	}
	return n.re.Sign() == 0 && n.im.Sign() == 0
}

func (n *Num) IsOne() bool {
	if n.approx {
		return n.c == 1
	}
	return n.im.Sign() == 0 && n.re.IsInt() && n.re.Num().IsInt64() && n.re.Num().Int64() == 1
}

func (n *Num) IsNegOne() bool {
	if n.approx {
		return n.c == -1
	}
	return n.im.Sign() == 0 && n.re.IsInt() && n.re.Num().IsInt64() && n.re.Num().Int64() == -1
}

// IsReal reports whether the imaginary part is zero.
func (n *Num) IsReal() bool {
	if n.approx {
		return imag(n.c) == 0
	}
	return n.im.Sign() == 0
}

func (n *Num) isNegativeReal() bool {
	if n.approx {
		return imag(n.c) == 0 && real(n.c) < 0
	}
	return n.im.Sign() == 0 && n.re.Sign() < 0
}

func (n *Num) isPositiveRational() bool {
	return !n.approx && n.im.Sign() == 0 && n.re.Sign() > 0
}

// Complex128 converts the number to a complex128.
func (n *Num) Complex128() complex128 {
	if n.approx {
		return n.c
	}
	re, _ := n.re.Float64()
	im, _ := n.im.Float64()
	return complex(re, im)
}

func (n *Num) Eval() (complex128, bool)    { return n.Complex128(), true }
func (n *Num) Subs(map[string]Expr) Expr   { return n }
func (n *Num) Diff(string) Expr            { return Int(0) }
func (n *Num) Evalf() Expr                 { return ComplexNumber(n.Complex128()) }
func (n *Num) symbols(map[string]struct{}) {}

func (n *Num) Conj() Expr {
	if n.approx {
		return ComplexNumber(cmplx.Conj(n.c))
	}
	return exactNum(new(big.Rat).Set(n.re), new(big.Rat).Neg(n.im))
}

func (n *Num) String() string {
	if n.approx {
		re, im := real(n.c), imag(n.c)
		switch {
		case im == 0:
			return formatFloat(re)
		case re == 0:
			return imagString(formatFloat(im))
		case im < 0:
			return "(" + formatFloat(re) + " - " + imagString(formatFloat(-im)) + ")"
		default:
			return "(" + formatFloat(re) + " + " + imagString(formatFloat(im)) + ")"
		}
	}

	switch {
	case n.im.Sign() == 0:
		return ratString(n.re)
	case n.re.Sign() == 0:
		return imagString(ratString(n.im))
	case n.im.Sign() < 0:
		return "(" + ratString(n.re) + " - " + imagString(ratString(new(big.Rat).Neg(n.im))) + ")"
	default:
		return "(" + ratString(n.re) + " + " + imagString(ratString(n.im)) + ")"
	}
}

func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func imagString(coeff string) string {
	switch coeff {
	case "1":
		return "I"
	case "-1":
		return "-I"
	}
	return coeff + "*I"
}

func numAdd(a, b *Num) *Num {
	if a.approx || b.approx {
		return ComplexNumber(a.Complex128() + b.Complex128())
	}
	return exactNum(new(big.Rat).Add(a.re, b.re), new(big.Rat).Add(a.im, b.im))
}

func numMul(a, b *Num) *Num {
	if a.approx || b.approx {
		return ComplexNumber(a.Complex128() * b.Complex128())
	}
	ac := new(big.Rat).Mul(a.re, b.re)
	bd := new(big.Rat).Mul(a.im, b.im)
	ad := new(big.Rat).Mul(a.re, b.im)
	bc := new(big.Rat).Mul(a.im, b.re)
	return exactNum(ac.Sub(ac, bd), ad.Add(ad, bc))
}

func numNeg(a *Num) *Num {
	if a.approx {
		return ComplexNumber(-a.c)
	}
	return exactNum(new(big.Rat).Neg(a.re), new(big.Rat).Neg(a.im))
}

func numInv(a *Num) *Num {
	if a.IsZero() {
		panic("qsym: division by zero")
	}
	if a.approx {
		return ComplexNumber(1 / a.c)
	}
	// (a - bi) / (a^2 + b^2)
	den := new(big.Rat).Mul(a.re, a.re)
	den.Add(den, new(big.Rat).Mul(a.im, a.im))
	re := new(big.Rat).Quo(a.re, den)
	im := new(big.Rat).Quo(new(big.Rat).Neg(a.im), den)
	return exactNum(re, im)
}

// numPowInt raises a to the integer power k.
func numPowInt(a *Num, k int64) *Num {
	if k < 0 {
		return numPowInt(numInv(a), -k)
	}
	out := Int(1)
	if a.approx {
		out = ComplexNumber(1)
	}
	for ; k > 0; k-- {
		out = numMul(out, a)
	}
	return out
}
