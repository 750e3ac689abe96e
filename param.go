package qsym

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Matches pi, -pi, 2*pi, pi/2, -3*pi/4 and 3pi/4.
var piPattern = regexp.MustCompile(`^(-)?(\d+)?\*?pi(?:/(\d+))?$`)

/*
Param converts a gate parameter to an expression. Strings name a free
parameter unless they parse as a finite number or a rational multiple of
pi; names with operator or parenthesis characters are rejected;
integers and big rationals stay exact, floats become approximate numbers.
*/
func Param(v any) (Expr, error) {
	switch p := v.(type) {
	case Expr:
		return p, nil
	case string:
		return parseParam(p)
	case int:
		return Int(int64(p)), nil
	case int64:
		return Int(p), nil
	case float64:
		return Number(p), nil
	case float32:
		return Number(float64(p)), nil
	case complex128:
		return ComplexNumber(p), nil
	case *big.Rat:
		return ratNum(p), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidParameter, v)
}

func parseParam(s string) (Expr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidParameter)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Number(f), nil
	}
	if m := piPattern.FindStringSubmatch(strings.ToLower(s)); m != nil {
		num, den := int64(1), int64(1)
		if m[2] != "" {
			num, _ = strconv.ParseInt(m[2], 10, 64)
		}
		if m[3] != "" {
			den, _ = strconv.ParseInt(m[3], 10, 64)
			if den == 0 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidParameter, s)
			}
		}
		if m[1] == "-" {
			num = -num
		}
		return Mul(Rat(num, den), Pi), nil
	}
	if !validName(s) {
		return nil, fmt.Errorf("%w: parameter name %q", ErrInvalidParameter, s)
	}
	return Symbol(s), nil
}

var (
	namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.,{}^']*$`)
	// x^2 would print like a power of x.
	powerSuffix = regexp.MustCompile(`\^\d+$`)
)

// validName reports whether a parameter name cannot be mistaken for an
// expression: no operators, parentheses or spaces, no power-like suffix, and
// not the imaginary unit.
func validName(name string) bool {
	return name != "I" && namePattern.MatchString(name) && !powerSuffix.MatchString(name)
}
