package f4gb

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/fumin/f4gb/field"
)

// A Monomial is a (coefficient, term) pair, the unit FromMonomials
// operates on. Coefficient is signed so that a monomial freshly produced
// by the parser (before BringIn has reduced it into [0, p)) can carry a
// negative sign.
type Monomial struct {
	Coefficient int64
	Term        *Term
}

// A Polynomial is a finite sequence of (coefficient, term handle) pairs,
// its support, represented as parallel slices, plus a sugar degree tracked
// for F4 selection strategies. A Polynomial is in canonical form with
// respect to a (Field, Ordering) pair once BringIn and Order have been
// called: every coefficient lies in [0, p), every term is distinct, and
// the terms are sorted strictly decreasing under the ordering. Before
// BringIn, coefficients may be any signed integer (e.g. freshly parsed
// from surface syntax with a leading '-'); coeffs is int64 to admit this
// pre-canonical state rather than forcing every caller through a field at
// construction time.
type Polynomial struct {
	coeffs []int64
	terms  []*Term

	field   *field.Field
	ordered bool
	order   Ordering

	sugar int
}

// Empty returns the zero polynomial, an empty support.
func Empty() *Polynomial {
	return &Polynomial{}
}

// FromTerm returns the polynomial with coefficient 1 and a single term t.
func FromTerm(t *Term) *Polynomial {
	return &Polynomial{coeffs: []int64{1}, terms: []*Term{t}}
}

// FromVectors builds a polynomial directly from parallel coefficient and
// term slices. The caller is responsible for calling BringIn and Order
// before relying on canonical-form invariants.
func FromVectors(coeffs []int64, terms []*Term) (*Polynomial, error) {
	if len(coeffs) != len(terms) {
		return nil, errors.Wrap(&InvariantViolation{Op: "FromVectors", Msg: "coefficient and term slices have different lengths"}, "")
	}
	return &Polynomial{coeffs: slices.Clone(coeffs), terms: slices.Clone(terms)}, nil
}

// FromMonomials builds a polynomial from a list of monomials. If purify is
// true, duplicate terms are folded by summing their (possibly signed,
// pre-canonical) coefficients, and any term whose summed coefficient is
// exactly zero is dropped. f, if non-nil, is recorded as the field p is
// already brought into; pass nil when building from surface syntax that
// has not been through BringIn yet.
func FromMonomials(monomials []Monomial, purify bool, f *field.Field) (*Polynomial, error) {
	if !purify {
		p := &Polynomial{coeffs: make([]int64, len(monomials)), terms: make([]*Term, len(monomials)), field: f}
		for i, m := range monomials {
			p.coeffs[i] = m.Coefficient
			p.terms[i] = m.Term
		}
		return p, nil
	}

	byTerm := make(map[*Term]int64, len(monomials))
	order := make([]*Term, 0, len(monomials))
	for _, m := range monomials {
		if _, ok := byTerm[m.Term]; !ok {
			order = append(order, m.Term)
		}
		byTerm[m.Term] += m.Coefficient
	}

	p := &Polynomial{field: f}
	for _, t := range order {
		c := byTerm[t]
		if c == 0 {
			continue
		}
		p.coeffs = append(p.coeffs, c)
		p.terms = append(p.terms, t)
	}
	return p, nil
}

// Len reports the number of terms in the support of p.
func (p *Polynomial) Len() int { return len(p.terms) }

// IsZero reports whether p's support is empty.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Field returns the coefficient field p was last brought into, or nil if
// BringIn has not been called.
func (p *Polynomial) Field() *field.Field { return p.field }

// Ordering returns the ordering p was last sorted under, or nil if Order
// has not been called.
func (p *Polynomial) Ordering() Ordering { return p.order }

// Sugar returns p's sugar degree.
func (p *Polynomial) Sugar() int { return p.sugar }

// SetSugar sets p's sugar degree.
func (p *Polynomial) SetSugar(s int) { p.sugar = s }

// At returns the (coefficient, term) pair at position i, position 0
// being the leading term once Order has been called.
func (p *Polynomial) At(i int) (int64, *Term) { return p.coeffs[i], p.terms[i] }

// LT returns the leading term handle of p. LT panics on the zero
// polynomial, per §4.5: the leading term is undefined there.
func (p *Polynomial) LT() *Term {
	if p.IsZero() {
		panic("f4gb: LT of zero polynomial is undefined")
	}
	return p.terms[0]
}

// LC returns the leading coefficient of p. LC panics on the zero
// polynomial.
func (p *Polynomial) LC() int64 {
	if p.IsZero() {
		panic("f4gb: LC of zero polynomial is undefined")
	}
	return p.coeffs[0]
}

// LcmLT returns the LCM of the leading terms of p and other.
func (p *Polynomial) LcmLT(other *Polynomial) (*Term, error) {
	return Lcm(p.LT(), other.LT())
}

// Clone returns a deep copy of p sharing no backing arrays with p.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{
		coeffs:  slices.Clone(p.coeffs),
		terms:   slices.Clone(p.terms),
		field:   p.field,
		ordered: p.ordered,
		order:   p.order,
		sugar:   p.sugar,
	}
}

// Equal reports whether p and q have identical supports: the same
// coefficient and the same term handle at every position. Equal is purely
// structural; it does not imply semantic equality unless both operands are
// already in canonical form under the same (Field, Ordering).
func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i] != q.terms[i] || p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

// BringIn reduces every coefficient of p into the canonical range of f,
// then, if normalize is true, scales the support so the leading
// coefficient is 1 (requiring p to already be ordered so LC is
// meaningful).
func (p *Polynomial) BringIn(f *field.Field, normalize bool) error {
	for i, c := range p.coeffs {
		p.coeffs[i] = int64(f.Reduce(c))
	}
	p.field = f
	if normalize {
		return p.Normalize(f)
	}
	return nil
}

// Normalize scales the whole support by the inverse of the leading
// coefficient, so that a non-zero p has LC(p) == 1. Normalize is a no-op
// on the zero polynomial. Normalize requires p to be ordered, since the
// leading coefficient is only meaningful once the support is sorted.
func (p *Polynomial) Normalize(f *field.Field) error {
	if p.IsZero() {
		return nil
	}
	if !p.ordered {
		return errors.Wrap(&InvariantViolation{Op: "Normalize", Msg: "ordering must be called before normalize"}, "")
	}
	lc := uint32(p.LC())
	if lc == f.One() {
		return nil
	}
	inv, err := f.Inv(lc)
	if err != nil {
		return errors.Wrap(DivisionByZero, "Normalize")
	}
	return p.MulByScalar(inv, f)
}

// MulByScalar multiplies every coefficient of p by lambda modulo f.
// Coefficients must already be canonical (in [0, p)), i.e. BringIn has
// been called; otherwise MulByScalar returns a FieldError and leaves p
// unchanged.
func (p *Polynomial) MulByScalar(lambda uint32, f *field.Field) error {
	for _, c := range p.coeffs {
		if c < 0 || c >= int64(f.Characteristic()) {
			return errors.Wrap(&FieldError{Op: "MulByScalar", Msg: "coefficient outside [0, p); BringIn has not been called"}, "")
		}
	}
	for i, c := range p.coeffs {
		p.coeffs[i] = int64(f.Mul(uint32(c), lambda))
	}
	return nil
}

// MulBy multiplies every term in p's support by t, preserving ordering:
// multiplication is order-preserving for any valid monomial ordering.
func (p *Polynomial) MulBy(t *Term) error {
	for i, s := range p.terms {
		ts, err := Mul(s, t)
		if err != nil {
			return errors.Wrap(err, "MulBy")
		}
		p.terms[i] = ts
	}
	return nil
}

// Mul returns a new polynomial with p's support multiplied by t.
func (p *Polynomial) Mul(t *Term) (*Polynomial, error) {
	q := p.Clone()
	if err := q.MulBy(t); err != nil {
		return nil, err
	}
	return q, nil
}

// Order performs a stable sort of p's support into strictly decreasing
// order under o. Order returns an InvariantViolation, leaving p unchanged,
// if p's support contains duplicate terms, since no ordering can make such
// a support strictly decreasing; callers
// that might have duplicates should build with FromMonomials(..., purify:
// true, ...) first.
func (p *Polynomial) Order(o Ordering) error {
	if err := p.checkNoDuplicates(); err != nil {
		return err
	}

	idx := make([]int, len(p.terms))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int {
		return -o(p.terms[i], p.terms[j])
	})

	coeffs := make([]int64, len(p.coeffs))
	terms := make([]*Term, len(p.terms))
	for newI, oldI := range idx {
		coeffs[newI] = p.coeffs[oldI]
		terms[newI] = p.terms[oldI]
	}
	p.coeffs, p.terms = coeffs, terms
	p.order = o
	p.ordered = true
	return nil
}

func (p *Polynomial) checkNoDuplicates() error {
	seen := make(map[*Term]struct{}, len(p.terms))
	for _, t := range p.terms {
		if _, ok := seen[t]; ok {
			return errors.Wrap(&InvariantViolation{Op: "Order", Msg: "support contains duplicate terms"}, "")
		}
		seen[t] = struct{}{}
	}
	return nil
}

// A Direction selects whether Comparator orders polynomials by increasing
// or decreasing leading term.
type Direction int

const (
	// Ascending orders polynomials by increasing leading term.
	Ascending Direction = iota
	// Descending orders polynomials by decreasing leading term.
	Descending
)

// Comparator returns a comparison function over polynomials that orders
// them by their leading term under o, in the direction dir. Comparator
// panics if called on the zero polynomial, the same way LT does.
func Comparator(o Ordering, dir Direction) func(a, b *Polynomial) int {
	return func(a, b *Polynomial) int {
		c := o(a.LT(), b.LT())
		if dir == Ascending {
			return c
		}
		return -c
	}
}
