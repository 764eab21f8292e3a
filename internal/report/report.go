// Package report renders the polynomial demonstration report: properties
// of each sample, an evaluation table, and pairwise sum, difference and
// product.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/njchilds90/gopoly"
)

// Named pairs a polynomial with its display name, e.g. "P1".
type Named struct {
	Name string
	Poly *gopoly.Polynomial
}

// Write renders the full report for polys evaluated at points.
func Write(w io.Writer, polys []Named, points []float64) error {
	var sb strings.Builder

	sb.WriteString("POLYNOMIALS AND THEIR PROPERTIES\n\n")
	for _, p := range polys {
		Properties(&sb, p)
		sb.WriteByte('\n')
	}

	sb.WriteString("EVALUATION OF POLYNOMIALS\n\n")
	for _, x := range points {
		for _, p := range polys {
			fmt.Fprintf(&sb, "%s(%s) = %s\n", p.Name, formatFloat(x), formatFloat(p.Poly.Evaluate(x)))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("OPERATION BETWEEN POLYNOMIALS\n\n")
	for i := range polys {
		for j := i + 1; j < len(polys); j++ {
			Operations(&sb, polys[i], polys[j])
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Properties writes the rendering, coefficients, exponents and degree of p.
func Properties(sb *strings.Builder, p Named) {
	fmt.Fprintf(sb, "%s(x) = %s\n", p.Name, p.Poly)
	fmt.Fprintf(sb, "* Coefficients: %s\n", FloatList(p.Poly.Coefficients()))
	fmt.Fprintf(sb, "* Exponents: %s\n", IntList(p.Poly.Exponents()))
	fmt.Fprintf(sb, "* Degree: %d\n", p.Poly.Degree())
}

// Operations writes a+b, a-b and a*b.
func Operations(sb *strings.Builder, a, b Named) {
	fmt.Fprintf(sb, "%s(x) and %s(x)\n", a.Name, b.Name)
	fmt.Fprintf(sb, "* SUM: %s\n", a.Poly.Add(b.Poly))
	fmt.Fprintf(sb, "* DIFFERENCE: %s\n", a.Poly.Subtract(b.Poly))
	fmt.Fprintf(sb, "* PRODUCT: %s\n", a.Poly.Multiply(b.Poly))
}

// FloatList formats values as "[a,b,c]".
func FloatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// IntList formats values as "[a,b,c]".
func IntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
