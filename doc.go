// Package f4gb implements the symbolic-algebra core of an F4 Gröbner basis
// engine over a finite prime field. It provides the interned term monoid,
// the polynomial data model with pluggable term orderings, and the glue the
// F4 algorithm needs for symbolic preprocessing. The critical-pair
// scheduler, the linear-algebra row reducer, ideal I/O, and command-line
// tooling are external collaborators and are not implemented here.
//
// [Gröbner basis]: https://en.wikipedia.org/wiki/Gr%C3%B6bner_basis
package f4gb
