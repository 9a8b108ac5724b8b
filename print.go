package f4gb

import (
	"fmt"
	"strings"
)

// String returns p's canonical textual form with indeterminates numbered
// from zero: x[0], x[1], and so on.
func (p *Polynomial) String() string { return p.Format(0) }

// Format returns p's canonical textual form, the sum of its terms under
// its current order, with indeterminate indices offset by min so that the
// i'th coordinate prints as x[i+min]. The coefficient 1 is omitted on
// non-constant monomials and the exponent 1 is omitted, matching the
// grammar accepted by Parse.
func (p *Polynomial) Format(min int) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		c := p.coeffs[i]
		if i > 0 {
			b.WriteString(" + ")
		}

		nonConstant := t.deg > 0
		if !(nonConstant && c == 1) {
			fmt.Fprintf(&b, "%d", c)
			if nonConstant {
				b.WriteString("*")
			}
		}
		if nonConstant {
			writeMonomial(&b, t, min)
		}
	}
	return b.String()
}

func writeMonomial(b *strings.Builder, t *Term, min int) {
	first := true
	for i, e := range t.exps {
		if e == 0 {
			continue
		}
		if !first {
			b.WriteString("*")
		}
		first = false
		fmt.Fprintf(b, "x[%d]", i+min)
		if e != 1 {
			fmt.Fprintf(b, "^%d", e)
		}
	}
}

// Print renders a list of polynomials using the ', ' list surface accepted
// by ParseList.
func Print(min int, ps []*Polynomial) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Format(min)
	}
	return strings.Join(parts, ", ")
}
