package f4gb

import "cmp"

// An Ordering is a pure comparator on term handles of a common monoid,
// returning negative, zero, or positive the way [cmp.Compare] does.
// Orderings are stateless and parametric only in the monoid the handles
// came from.
type Ordering func(a, b *Term) int

// Lex compares a and b by their first differing coordinate; the handle
// with the larger exponent there wins.
func Lex(a, b *Term) int {
	for i := range a.exps {
		if c := cmp.Compare(a.exps[i], b.exps[i]); c != 0 {
			return c
		}
	}
	return 0
}

// DegLex compares a and b by total degree first, breaking ties with Lex.
func DegLex(a, b *Term) int {
	if c := cmp.Compare(a.deg, b.deg); c != 0 {
		return c
	}
	return Lex(a, b)
}

// DegRevLex compares a and b by total degree first. On a tie, it finds the
// last coordinate where the exponents differ and returns the sign of the
// difference with the operands swapped: the handle with the smaller
// exponent at that later coordinate is the larger term.
func DegRevLex(a, b *Term) int {
	if c := cmp.Compare(a.deg, b.deg); c != 0 {
		return c
	}
	for i := len(a.exps) - 1; i >= 0; i-- {
		if c := cmp.Compare(b.exps[i], a.exps[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Custom builds an Ordering from a comparator over raw exponent vectors,
// the escape hatch for orderings beyond Lex, DegLex, and DegRevLex.
func Custom(cmp func(x, y []uint16) int) Ordering {
	return func(a, b *Term) int { return cmp(a.exps, b.exps) }
}
