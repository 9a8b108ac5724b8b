// Package parse turns the polynomial surface syntax into *f4gb.Polynomial
// values directly, without an intermediate AST: the grammar has no nested
// expressions, so a single recursive-descent pass that calls the monoid as
// it goes is sufficient.
//
//	poly   := ['+'|'-'] term (('+'|'-') term)*
//	term   := factor ('*' factor)*
//	factor := Int | 'x' '[' Int ']' ('^' Int)?
//
// A bare Int factor contributes to the monomial's coefficient; a bare
// 'x[i]' factor contributes exponent 1 at coordinate i-min unless followed
// by '^' Int.
package parse

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fumin/f4gb"
	"github.com/fumin/f4gb/parse/scan"
)

const maxExponent = 1<<16 - 1

// A Parser holds the state needed to turn surface syntax into polynomials
// over a fixed Monoid: the scanner's lookahead token, and the coordinate
// window [min, min+N) that x[i] tokens are validated and offset against.
type Parser struct {
	scanner *scan.Scanner
	monoid  *f4gb.Monoid
	min     int
	input   string

	tok scan.Token
}

// New returns a Parser reading input against monoid, where min is the
// smallest indeterminate index accepted: x[min] maps to coordinate 0 of
// monoid, x[min+1] to coordinate 1, and so on.
func New(input string, monoid *f4gb.Monoid, min int) *Parser {
	p := &Parser{
		scanner: scan.NewScanner(strings.NewReader(input)),
		monoid:  monoid,
		min:     min,
		input:   input,
	}
	p.advance()
	return p
}

// Parse parses a single polynomial from input under monoid, a ring with
// min as its smallest accepted indeterminate index. The result is not
// brought into any field and is not ordered; call BringIn and Order on it
// before relying on canonical-form invariants.
func Parse(input string, monoid *f4gb.Monoid, min int) (*f4gb.Polynomial, error) {
	p := New(input, monoid, min)
	poly, err := p.parsePolynomial()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != scan.EOF {
		return nil, p.errorf("unexpected trailing input %q", p.tok.Text)
	}
	return poly, nil
}

// ParseList parses a comma-separated list of polynomials, the surface
// Print renders with the same min.
func ParseList(input string, monoid *f4gb.Monoid, min int) ([]*f4gb.Polynomial, error) {
	p := New(input, monoid, min)
	var out []*f4gb.Polynomial
	for {
		poly, err := p.parsePolynomial()
		if err != nil {
			return nil, err
		}
		out = append(out, poly)
		if p.tok.Type != scan.Comma {
			break
		}
		p.advance()
	}
	if p.tok.Type != scan.EOF {
		return nil, p.errorf("unexpected trailing input %q", p.tok.Text)
	}
	return out, nil
}

func (p *Parser) advance() { p.tok = p.scanner.Next() }

func (p *Parser) errorf(format string, args ...any) error {
	return errors.Wrap(&f4gb.ParseError{
		Input:  p.input,
		Offset: p.tok.Location.Column,
		Msg:    errors.Errorf(format, args...).Error(),
	}, "")
}

func (p *Parser) parsePolynomial() (*f4gb.Polynomial, error) {
	var monomials []f4gb.Monomial

	sign := int64(1)
	switch p.tok.Type {
	case scan.Plus:
		p.advance()
	case scan.Minus:
		sign = -1
		p.advance()
	}
	m, err := p.parseTerm(sign)
	if err != nil {
		return nil, err
	}
	monomials = append(monomials, m)

	for p.tok.Type == scan.Plus || p.tok.Type == scan.Minus {
		sign = int64(1)
		if p.tok.Type == scan.Minus {
			sign = -1
		}
		p.advance()
		m, err := p.parseTerm(sign)
		if err != nil {
			return nil, err
		}
		monomials = append(monomials, m)
	}

	return f4gb.FromMonomials(monomials, true, nil)
}

func (p *Parser) parseTerm(sign int64) (f4gb.Monomial, error) {
	coeff := sign
	exps := make([]uint16, p.monoid.N())
	sawFactor := false

	for {
		switch p.tok.Type {
		case scan.Int:
			v, err := strconv.ParseInt(p.tok.Text, 10, 64)
			if err != nil {
				return f4gb.Monomial{}, p.errorf("malformed integer %q", p.tok.Text)
			}
			coeff *= v
			p.advance()
			sawFactor = true
		case scan.X:
			if err := p.parseIndeterminate(exps); err != nil {
				return f4gb.Monomial{}, err
			}
			sawFactor = true
		default:
			if !sawFactor {
				return f4gb.Monomial{}, p.errorf("expected a coefficient or an indeterminate, got %q", p.tok.Text)
			}
			return p.finishTerm(coeff, exps)
		}

		if p.tok.Type != scan.Star {
			return p.finishTerm(coeff, exps)
		}
		p.advance()
	}
}

func (p *Parser) finishTerm(coeff int64, exps []uint16) (f4gb.Monomial, error) {
	t, err := p.monoid.Create(exps)
	if err != nil {
		return f4gb.Monomial{}, errors.Wrap(err, "parse")
	}
	return f4gb.Monomial{Coefficient: coeff, Term: t}, nil
}

// parseIndeterminate parses 'x' '[' Int ']' ('^' Int)?, the current token
// already having been confirmed as X, and accumulates the resulting
// exponent into exps.
func (p *Parser) parseIndeterminate(exps []uint16) error {
	p.advance() // consume 'x'
	if p.tok.Type != scan.LBracket {
		return p.errorf("expected '[' after x, got %q", p.tok.Text)
	}
	p.advance()
	if p.tok.Type != scan.Int {
		return p.errorf("expected an index inside x[...], got %q", p.tok.Text)
	}
	idx, err := strconv.Atoi(p.tok.Text)
	if err != nil {
		return p.errorf("malformed index %q", p.tok.Text)
	}
	p.advance()
	if p.tok.Type != scan.RBracket {
		return p.errorf("expected ']', got %q", p.tok.Text)
	}
	p.advance()

	coord := idx - p.min
	if coord < 0 || coord >= len(exps) {
		return p.errorf("index x[%d] is outside the accepted range [%d, %d)", idx, p.min, p.min+len(exps))
	}

	exp := int64(1)
	if p.tok.Type == scan.Caret {
		p.advance()
		if p.tok.Type != scan.Int {
			return p.errorf("expected an exponent after '^', got %q", p.tok.Text)
		}
		exp, err = strconv.ParseInt(p.tok.Text, 10, 64)
		if err != nil {
			return p.errorf("malformed exponent %q", p.tok.Text)
		}
		p.advance()
	}
	if exp < 0 || exp > maxExponent || int64(exps[coord])+exp > maxExponent {
		return p.errorf("exponent at x[%d] exceeds the monoid's capacity", idx)
	}
	exps[coord] += uint16(exp)
	return nil
}
