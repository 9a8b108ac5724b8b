package f4gb

import (
	"testing"

	"github.com/fumin/f4gb/field"
)

func TestFromMonomialsPurify(t *testing.T) {
	m := NewMonoid(1, 8)
	x1, _ := m.Create([]uint16{1})

	// x1 - x1 + 3*x1 purifies to 3*x1.
	monomials := []Monomial{
		{Coefficient: 1, Term: x1},
		{Coefficient: -1, Term: x1},
		{Coefficient: 3, Term: x1},
	}
	p, err := FromMonomials(monomials, true, nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	c, tm := p.At(0)
	if c != 3 || tm != x1 {
		t.Errorf("got (%d, %v), want (3, x1)", c, tm)
	}
}

func TestFromMonomialsPurifyDropsZero(t *testing.T) {
	m := NewMonoid(1, 8)
	x1, _ := m.Create([]uint16{1})
	monomials := []Monomial{
		{Coefficient: 5, Term: x1},
		{Coefficient: -5, Term: x1},
	}
	p, err := FromMonomials(monomials, true, nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !p.IsZero() {
		t.Errorf("expected the zero polynomial, got %v", p)
	}
}

func TestBringInAndNormalize(t *testing.T) {
	m := NewMonoid(1, 8)
	x1, _ := m.Create([]uint16{1})
	one := m.One()
	f := field.New(32003)

	p, err := FromVectors([]int64{-1, 6}, []*Term{x1, one})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if err := p.Order(DegRevLex); err != nil {
		t.Fatalf("%+v", err)
	}
	if err := p.BringIn(f, true); err != nil {
		t.Fatalf("%+v", err)
	}

	if p.IsZero() {
		t.Fatalf("polynomial should not be zero")
	}
	if p.LC() != 1 {
		t.Errorf("LC() = %d, want 1 after Normalize", p.LC())
	}
}

func TestOrderStrictlyDecreasing(t *testing.T) {
	m := NewMonoid(2, 8)
	a, _ := m.Create([]uint16{2, 0})
	b, _ := m.Create([]uint16{1, 1})
	c, _ := m.Create([]uint16{0, 2})

	p, err := FromVectors([]int64{1, 1, 1}, []*Term{c, a, b})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if err := p.Order(DegRevLex); err != nil {
		t.Fatalf("%+v", err)
	}
	for i := 1; i < p.Len(); i++ {
		_, prev := p.At(i - 1)
		_, cur := p.At(i)
		if DegRevLex(prev, cur) <= 0 {
			t.Errorf("support is not strictly decreasing at position %d", i)
		}
	}
	if p.LT() != a {
		t.Errorf("LT() = %v, want x[0]^2", p.LT())
	}
}

func TestOrderRejectsDuplicates(t *testing.T) {
	m := NewMonoid(1, 8)
	x1, _ := m.Create([]uint16{1})
	p, err := FromVectors([]int64{1, 1}, []*Term{x1, x1})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if err := p.Order(Lex); err == nil {
		t.Errorf("expected an error ordering a polynomial with duplicate terms")
	}
}

func TestEqual(t *testing.T) {
	m := NewMonoid(1, 8)
	x1, _ := m.Create([]uint16{1})
	one := m.One()

	a, _ := FromVectors([]int64{1, 2}, []*Term{x1, one})
	b, _ := FromVectors([]int64{1, 2}, []*Term{x1, one})
	c, _ := FromVectors([]int64{1, 3}, []*Term{x1, one})

	if !a.Equal(b) {
		t.Errorf("expected equal polynomials to compare equal")
	}
	if a.Equal(c) {
		t.Errorf("expected differing coefficients to compare unequal")
	}
}

func TestMulBy(t *testing.T) {
	m := NewMonoid(1, 8)
	x1, _ := m.Create([]uint16{1})
	x2, _ := m.Create([]uint16{2})
	one := m.One()

	p := FromTerm(one)
	q, err := p.Mul(x1)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if q.terms[0] != x1 {
		t.Errorf("Mul(one, x1) = %v, want x1", q.terms[0])
	}

	r, err := q.Mul(x1)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if r.terms[0] != x2 {
		t.Errorf("Mul(x1, x1) = %v, want x1^2", r.terms[0])
	}

	if q.terms[0] != x1 {
		t.Errorf("Mul mutated its receiver")
	}
}

func TestComparator(t *testing.T) {
	m := NewMonoid(1, 8)
	x1, _ := m.Create([]uint16{1})
	x2, _ := m.Create([]uint16{2})

	small := FromTerm(x1)
	big := FromTerm(x2)

	cmp := Comparator(DegRevLex, Ascending)
	if cmp(small, big) >= 0 {
		t.Errorf("expected small < big under Ascending")
	}
	cmpDesc := Comparator(DegRevLex, Descending)
	if cmpDesc(small, big) <= 0 {
		t.Errorf("expected small > big under Descending")
	}
}

func TestFormat(t *testing.T) {
	m := NewMonoid(2, 8)
	a, _ := m.Create([]uint16{2, 0})
	b, _ := m.Create([]uint16{1, 1})
	one := m.One()

	p, err := FromVectors([]int64{1, 2, 5}, []*Term{a, b, one})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if err := p.Order(DegRevLex); err != nil {
		t.Fatalf("%+v", err)
	}
	if got, want := p.Format(1), "x[1]^2 + 2*x[1]*x[2] + 5"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatZero(t *testing.T) {
	if got, want := Empty().String(), "0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
