// Package gopoly provides exact-structure arithmetic over univariate
// polynomials with real coefficients.
//
// Design goals:
//   - A canonical term list: strictly descending exponents, no zero terms
//   - Deterministic cancellation (exact float comparison, no epsilon)
//   - Stable text, LaTeX and JSON output
//   - A JSON tool surface for HTTP and agent backends
package gopoly

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================
// Monomial — coefficient * x^exponent
// ============================================================

// MaxExponent is the largest exponent NewMonomial accepts. Two such
// exponents sum without overflowing a 64-bit int.
const MaxExponent = math.MaxInt32

// Monomial is an immutable single term. The zero value is the zero monomial.
type Monomial struct {
	coefficient float64
	exponent    int
}

// NewMonomial returns coefficient*x^exponent. The exponent must be in
// [0, MaxExponent].
func NewMonomial(coefficient float64, exponent int) (Monomial, error) {
	if exponent < 0 {
		return Monomial{}, fmt.Errorf("monomial %g x^%d: %w", coefficient, exponent, ErrInvalidExponent)
	}
	if exponent > MaxExponent {
		return Monomial{}, fmt.Errorf("monomial %g x^%d: %w", coefficient, exponent, ErrExponentRange)
	}
	return Monomial{coefficient: coefficient, exponent: exponent}, nil
}

// MustMonomial is like NewMonomial but panics on an invalid exponent.
func MustMonomial(coefficient float64, exponent int) Monomial {
	m, err := NewMonomial(coefficient, exponent)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Monomial) Coefficient() float64 { return m.coefficient }
func (m Monomial) Exponent() int        { return m.exponent }
func (m Monomial) IsZero() bool         { return m.coefficient == 0 }
func (m Monomial) Neg() Monomial        { return Monomial{coefficient: -m.coefficient, exponent: m.exponent} }
func (m Monomial) Equal(o Monomial) bool {
	return m.coefficient == o.coefficient && m.exponent == o.exponent
}

func (m Monomial) Add(o Monomial) (Monomial, error) {
	if m.exponent != o.exponent {
		return Monomial{}, fmt.Errorf("add x^%d and x^%d: %w", m.exponent, o.exponent, ErrIncompatibleTerms)
	}
	return Monomial{coefficient: m.coefficient + o.coefficient, exponent: m.exponent}, nil
}

func (m Monomial) Subtract(o Monomial) (Monomial, error) {
	if m.exponent != o.exponent {
		return Monomial{}, fmt.Errorf("subtract x^%d and x^%d: %w", m.exponent, o.exponent, ErrIncompatibleTerms)
	}
	return Monomial{coefficient: m.coefficient - o.coefficient, exponent: m.exponent}, nil
}

// Multiply never fails for operands built by NewMonomial. Chained products
// can grow the exponent past math.MaxInt; that panics with ErrExponentRange
// rather than wrapping negative. Use CheckProduct to stay within MaxExponent.
func (m Monomial) Multiply(o Monomial) Monomial {
	if o.exponent > 0 && m.exponent > math.MaxInt-o.exponent {
		panic(fmt.Errorf("multiply x^%d by x^%d: %w", m.exponent, o.exponent, ErrExponentRange))
	}
	return Monomial{coefficient: m.coefficient * o.coefficient, exponent: m.exponent + o.exponent}
}

// Divide returns m/divisor. The divisor coefficient must be nonzero and its
// exponent must not exceed m's.
func (m Monomial) Divide(divisor Monomial) (Monomial, error) {
	if divisor.coefficient == 0 {
		return Monomial{}, fmt.Errorf("divide by zero coefficient: %w", ErrDivision)
	}
	if m.exponent < divisor.exponent {
		return Monomial{}, fmt.Errorf("divide x^%d by x^%d: %w", m.exponent, divisor.exponent, ErrDivision)
	}
	return Monomial{coefficient: m.coefficient / divisor.coefficient, exponent: m.exponent - divisor.exponent}, nil
}

// Evaluate returns coefficient * x^exponent, with 0^0 = 1.
func (m Monomial) Evaluate(x float64) float64 {
	return m.coefficient * math.Pow(x, float64(m.exponent))
}

// String renders the term as "<sign> <|c|>[ x[^e]]", e.g. "+ 5 x^11",
// "- x", "- 1". The zero monomial is always "+ 0".
func (m Monomial) String() string {
	if m.coefficient == 0 {
		return "+ 0"
	}
	var sb strings.Builder
	if m.coefficient > 0 {
		sb.WriteString("+ ")
	} else {
		sb.WriteString("- ")
	}
	abs := math.Abs(m.coefficient)
	if m.exponent == 0 || abs != 1 {
		sb.WriteString(formatCoefficient(abs))
		if m.exponent > 0 {
			sb.WriteByte(' ')
		}
	}
	switch {
	case m.exponent == 1:
		sb.WriteString("x")
	case m.exponent > 1:
		sb.WriteString("x^")
		sb.WriteString(strconv.Itoa(m.exponent))
	}
	return sb.String()
}

// LaTeX renders the term as a signed LaTeX fragment, e.g. "5x^{11}", "-x".
func (m Monomial) LaTeX() string {
	if m.coefficient == 0 {
		return "0"
	}
	sign := ""
	if m.coefficient < 0 {
		sign = "-"
	}
	abs := math.Abs(m.coefficient)
	coeff := formatCoefficient(abs)
	switch {
	case abs == 1 && m.exponent > 0:
		coeff = ""
	case math.IsInf(abs, 1) && m.exponent > 0:
		coeff = `\infty `
	case math.IsInf(abs, 1):
		coeff = `\infty`
	}
	switch m.exponent {
	case 0:
		return sign + coeff
	case 1:
		return sign + coeff + "x"
	}
	return fmt.Sprintf("%s%sx^{%d}", sign, coeff, m.exponent)
}

func formatCoefficient(c float64) string {
	if math.IsInf(c, 1) {
		return "Inf"
	}
	return strconv.FormatFloat(c, 'g', -1, 64)
}
