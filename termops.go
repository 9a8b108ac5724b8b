package f4gb

import "github.com/pkg/errors"

// Mul returns the handle denoting the componentwise sum of a and b's
// exponent vectors. Neither input is mutated. Mul returns a MonoidError if
// an exponent of the product would exceed the uint16 range.
func Mul(a, b *Term) (*Term, error) {
	if err := sameMonoid(a, b); err != nil {
		return nil, errors.Wrap(err, "Mul")
	}
	if b == b.monoid.one {
		return a, nil
	}
	if a == a.monoid.one {
		return b, nil
	}

	exps := make([]uint16, a.monoid.n)
	for i := range exps {
		s := uint32(a.exps[i]) + uint32(b.exps[i])
		if s > 1<<16-1 {
			return nil, errors.Wrap(&MonoidError{Op: "Mul", Msg: "exponent overflow"}, "")
		}
		exps[i] = uint16(s)
	}
	return a.monoid.Create(exps)
}

// Div returns the handle denoting the componentwise difference a-b.
// Div requires that a is divisible by b; violating this precondition is
// undefined behavior in hot loops, so callers on a fast path should check
// DivisibleBy first. Div itself still checks for underflow and returns a
// MonoidError rather than wrapping around, since the check is cheap
// relative to the division it guards.
func Div(a, b *Term) (*Term, error) {
	if err := sameMonoid(a, b); err != nil {
		return nil, errors.Wrap(err, "Div")
	}
	if b == b.monoid.one {
		return a, nil
	}

	exps := make([]uint16, a.monoid.n)
	for i := range exps {
		if a.exps[i] < b.exps[i] {
			return nil, errors.Wrap(&MonoidError{Op: "Div", Msg: "dividend is not divisible by divisor"}, "")
		}
		exps[i] = a.exps[i] - b.exps[i]
	}
	return a.monoid.Create(exps)
}

// Lcm returns the handle denoting the componentwise maximum of a and b's
// exponent vectors.
func Lcm(a, b *Term) (*Term, error) {
	if err := sameMonoid(a, b); err != nil {
		return nil, errors.Wrap(err, "Lcm")
	}

	exps := make([]uint16, a.monoid.n)
	for i := range exps {
		exps[i] = max(a.exps[i], b.exps[i])
	}
	return a.monoid.Create(exps)
}

// DivisibleBy reports whether a is divisible by b, i.e. whether a[i] >= b[i]
// for every coordinate i.
func DivisibleBy(a, b *Term) (bool, error) {
	if err := sameMonoid(a, b); err != nil {
		return false, errors.Wrap(err, "DivisibleBy")
	}
	for i := range a.exps {
		if a.exps[i] < b.exps[i] {
			return false, nil
		}
	}
	return true, nil
}

// Deg returns the total degree of a, the precomputed sum of its exponents.
func Deg(a *Term) int { return a.deg }
