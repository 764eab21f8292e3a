package gopoly

import (
	"fmt"
	"strings"
)

// ============================================================
// Polynomial — ordered sum of monomials
// ============================================================

// Polynomial is a sum of monomials kept simplified and sorted from the
// largest to the smallest exponent. It always holds at least one term; the
// zero polynomial is a single zero monomial.
//
// Insert mutates the receiver. Add, Subtract and Multiply never touch their
// operands and return a new Polynomial. A Polynomial is not safe for
// concurrent mutation.
type Polynomial struct {
	terms []Monomial
}

// New returns the zero polynomial.
func New() *Polynomial { return &Polynomial{terms: []Monomial{{}}} }

// FromTerms returns the normalized sum of terms.
func FromTerms(terms ...Monomial) *Polynomial {
	p := New()
	for _, t := range terms {
		p.Insert(t)
	}
	return p
}

// Insert adds term to p, keeping exponents unique and strictly descending.
// Zero terms are ignored; a term that cancels an existing one removes it.
func (p *Polynomial) Insert(term Monomial) {
	if term.coefficient == 0 {
		return
	}
	if p.IsZero() {
		p.terms = append(p.terms[:0], term)
		return
	}

	inserted := false
	for i := 0; i < len(p.terms) && !inserted; i++ {
		cur := p.terms[i]
		switch {
		case term.exponent > cur.exponent:
			p.terms = append(p.terms, Monomial{})
			copy(p.terms[i+1:], p.terms[i:])
			p.terms[i] = term
			inserted = true
		case term.exponent == cur.exponent:
			if sum := cur.coefficient + term.coefficient; sum != 0 {
				p.terms[i] = Monomial{coefficient: sum, exponent: cur.exponent}
			} else {
				p.terms = append(p.terms[:i], p.terms[i+1:]...)
			}
			inserted = true
		}
	}
	if !inserted {
		p.terms = append(p.terms, term)
	}

	if len(p.terms) == 0 {
		p.terms = append(p.terms, Monomial{})
	} else if len(p.terms) == 1 && p.terms[0].coefficient == 0 {
		p.terms[0] = Monomial{}
	}
}

// view returns the stored terms, treating the zero value as the zero polynomial.
func (p *Polynomial) view() []Monomial {
	if len(p.terms) == 0 {
		return []Monomial{{}}
	}
	return p.terms
}

// Append is Insert under the name used by term-by-term builders.
func (p *Polynomial) Append(term Monomial) { p.Insert(term) }

func (p *Polynomial) Add(o *Polynomial) *Polynomial {
	sum := New()
	for _, t := range p.view() {
		sum.Insert(t)
	}
	for _, t := range o.view() {
		sum.Insert(t)
	}
	return sum
}

func (p *Polynomial) Subtract(o *Polynomial) *Polynomial {
	diff := New()
	for _, t := range p.view() {
		diff.Insert(t)
	}
	for _, t := range o.view() {
		diff.Insert(t.Neg())
	}
	return diff
}

func (p *Polynomial) Multiply(o *Polynomial) *Polynomial {
	product := New()
	for _, a := range p.view() {
		for _, b := range o.view() {
			product.Insert(a.Multiply(b))
		}
	}
	return product
}

// CheckProduct reports whether a.Multiply(b) keeps every exponent within
// MaxExponent, so the product can be rebuilt through NewMonomial.
func CheckProduct(a, b *Polynomial) error {
	if deg := int64(a.Degree()) + int64(b.Degree()); deg > MaxExponent {
		return fmt.Errorf("product degree %d: %w", deg, ErrExponentRange)
	}
	return nil
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial { return New().Subtract(p) }

// Evaluate sums the value of every term at x.
func (p *Polynomial) Evaluate(x float64) float64 {
	var result float64
	for _, t := range p.view() {
		result += t.Evaluate(x)
	}
	return result
}

// Degree is the exponent of the leading term; 0 for the zero polynomial.
func (p *Polynomial) Degree() int { return p.view()[0].exponent }
func (p *Polynomial) Len() int    { return len(p.view()) }
func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].coefficient == 0)
}

// Terms returns a copy of the stored terms in descending exponent order.
func (p *Polynomial) Terms() []Monomial {
	terms := p.view()
	out := make([]Monomial, len(terms))
	copy(out, terms)
	return out
}

func (p *Polynomial) Coefficients() []float64 {
	terms := p.view()
	out := make([]float64, len(terms))
	for i, t := range terms {
		out[i] = t.coefficient
	}
	return out
}

func (p *Polynomial) Exponents() []int {
	terms := p.view()
	out := make([]int, len(terms))
	for i, t := range terms {
		out[i] = t.exponent
	}
	return out
}

// Coefficient returns the coefficient of x^exponent, 0 when absent.
func (p *Polynomial) Coefficient(exponent int) float64 {
	for _, t := range p.view() {
		if t.exponent == exponent {
			return t.coefficient
		}
		if t.exponent < exponent {
			break
		}
	}
	return 0
}

func (p *Polynomial) Clone() *Polynomial { return &Polynomial{terms: p.Terms()} }

func (p *Polynomial) Equal(o *Polynomial) bool {
	a, b := p.view(), o.view()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String renders every term in stored order separated by a single space,
// e.g. "+ 2 x^4 - x^3 + 5 x - 5".
func (p *Polynomial) String() string {
	terms := p.view()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func (p *Polynomial) LaTeX() string {
	var sb strings.Builder
	for i, t := range p.view() {
		s := t.LaTeX()
		switch {
		case i == 0:
			sb.WriteString(s)
		case strings.HasPrefix(s, "-"):
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}
	return sb.String()
}
