package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/njchilds90/gopoly"
	"github.com/njchilds90/gopoly/internal/config"
	"github.com/njchilds90/gopoly/internal/report"
)

// =============================================================================
// ROOT
// =============================================================================

type cliState struct {
	configPath string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	st := &cliState{}
	root := &cobra.Command{
		Use:           "polycalc",
		Short:         "Univariate polynomial arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(st.configPath)
			if err != nil {
				return err
			}
			st.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&st.configPath, "config", "", "YAML/JSON file with samples and evaluation points")

	root.AddCommand(
		newDemoCmd(st),
		newShowCmd(st),
		newEvalCmd(st),
		newBinaryCmd(st, "add", "Sum of two polynomials", (*gopoly.Polynomial).Add, nil),
		newBinaryCmd(st, "sub", "Difference of two polynomials", (*gopoly.Polynomial).Subtract, nil),
		newBinaryCmd(st, "mul", "Product of two polynomials", (*gopoly.Polynomial).Multiply, gopoly.CheckProduct),
		newDivideCmd(),
	)
	return root
}

// =============================================================================
// POLYNOMIAL ARGUMENTS
// =============================================================================

// resolve turns a flag value into a polynomial. A single value naming a
// configured sample selects it; otherwise every value is a "c:e" term.
func (st *cliState) resolve(values []string) (*gopoly.Polynomial, error) {
	if len(values) == 1 {
		for _, s := range st.cfg.Samples {
			if s.Name == values[0] {
				return s.Polynomial()
			}
		}
	}
	p := gopoly.New()
	for _, v := range values {
		m, err := parseTerm(v)
		if err != nil {
			return nil, err
		}
		p.Insert(m)
	}
	return p, nil
}

// parseTerm parses "c:e" (e.g. "-17:5"); a bare "c" is a constant term.
// Coefficients must be finite.
func parseTerm(s string) (gopoly.Monomial, error) {
	cs, es, hasExp := strings.Cut(strings.TrimSpace(s), ":")
	c, err := strconv.ParseFloat(cs, 64)
	if err != nil {
		return gopoly.Monomial{}, fmt.Errorf("term %q: bad coefficient: %w", s, err)
	}
	if math.IsInf(c, 0) || math.IsNaN(c) {
		return gopoly.Monomial{}, fmt.Errorf("term %q: coefficient must be finite", s)
	}
	e := 0
	if hasExp {
		if e, err = strconv.Atoi(es); err != nil {
			return gopoly.Monomial{}, fmt.Errorf("term %q: bad exponent: %w", s, err)
		}
	}
	m, err := gopoly.NewMonomial(c, e)
	if err != nil {
		return gopoly.Monomial{}, fmt.Errorf("term %q: %w", s, err)
	}
	return m, nil
}

// =============================================================================
// COMMANDS
// =============================================================================

func newDemoCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print properties, evaluations and pairwise operations of the samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, polys, err := st.cfg.Polynomials()
			if err != nil {
				return err
			}
			named := make([]report.Named, len(polys))
			for i := range polys {
				named[i] = report.Named{Name: names[i], Poly: polys[i]}
			}
			return report.Write(cmd.OutOrStdout(), named, st.cfg.Points)
		},
	}
}

func newShowCmd(st *cliState) *cobra.Command {
	var terms []string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show coefficients, exponents, degree and LaTeX of a polynomial",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := st.resolve(terms)
			if err != nil {
				return err
			}
			var sb strings.Builder
			report.Properties(&sb, report.Named{Name: "P", Poly: p})
			fmt.Fprintf(&sb, "* LaTeX: %s\n", p.LaTeX())
			_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
	cmd.Flags().StringSliceVarP(&terms, "poly", "p", nil, "sample name or c:e terms")
	_ = cmd.MarkFlagRequired("poly")
	return cmd
}

func newEvalCmd(st *cliState) *cobra.Command {
	var terms []string
	var xs []float64
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a polynomial at one or more points",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := st.resolve(terms)
			if err != nil {
				return err
			}
			if len(xs) == 0 {
				xs = st.cfg.Points
			}
			for _, x := range xs {
				fmt.Fprintf(cmd.OutOrStdout(), "P(%s) = %s\n",
					strconv.FormatFloat(x, 'g', -1, 64),
					strconv.FormatFloat(p.Evaluate(x), 'g', -1, 64))
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&terms, "poly", "p", nil, "sample name or c:e terms")
	cmd.Flags().Float64SliceVar(&xs, "x", nil, "evaluation points (default: configured points)")
	_ = cmd.MarkFlagRequired("poly")
	return cmd
}

// newBinaryCmd wires a two-operand command. check, when set, vets the
// operands before op runs.
func newBinaryCmd(st *cliState, use, short string, op func(a, b *gopoly.Polynomial) *gopoly.Polynomial,
	check func(a, b *gopoly.Polynomial) error) *cobra.Command {
	var aTerms, bTerms []string
	var latex bool
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.resolve(aTerms)
			if err != nil {
				return err
			}
			b, err := st.resolve(bTerms)
			if err != nil {
				return err
			}
			if check != nil {
				if err := check(a, b); err != nil {
					return err
				}
			}
			out := op(a, b)
			if latex {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out.LaTeX())
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out.String())
			}
			return err
		},
	}
	cmd.Flags().StringSliceVar(&aTerms, "a", nil, "left operand: sample name or c:e terms")
	cmd.Flags().StringSliceVar(&bTerms, "b", nil, "right operand: sample name or c:e terms")
	cmd.Flags().BoolVar(&latex, "latex", false, "print LaTeX instead of plain text")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

func newDivideCmd() *cobra.Command {
	var a, b string
	cmd := &cobra.Command{
		Use:   "divide",
		Short: "Divide monomial a by monomial b",
		RunE: func(cmd *cobra.Command, args []string) error {
			ma, err := parseTerm(a)
			if err != nil {
				return err
			}
			mb, err := parseTerm(b)
			if err != nil {
				return err
			}
			q, err := ma.Divide(mb)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q.String())
			return err
		},
	}
	cmd.Flags().StringVar(&a, "a", "", "dividend c:e")
	cmd.Flags().StringVar(&b, "b", "", "divisor c:e")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}
