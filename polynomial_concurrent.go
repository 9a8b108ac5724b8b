package f4gb

import (
	"context"
	"slices"

	"github.com/pkg/errors"

	"github.com/fumin/f4gb/internal/workerpool"
)

// MulAll produces the parallel sequence {t*s : s in support(p)} across
// pool's worker budget, per the module's concurrency model: each worker
// calls Mul and is subject to the monoid's internal synchronization. MulAll
// does not mutate p; it returns a new polynomial. A MonoidError from any
// worker (e.g. t and p's terms coming from different monoids) is returned;
// workers do not check ctx, so the remaining multiplications still run.
func (p *Polynomial) MulAll(ctx context.Context, pool *workerpool.Pool, t *Term) (*Polynomial, error) {
	terms := make([]*Term, len(p.terms))
	err := pool.Map(ctx, len(p.terms), func(ctx context.Context, i int) error {
		nt, err := Mul(p.terms[i], t)
		if err != nil {
			return err
		}
		terms[i] = nt
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "MulAll")
	}
	return &Polynomial{
		coeffs:  slices.Clone(p.coeffs),
		terms:   terms,
		field:   p.field,
		order:   p.order,
		ordered: p.ordered,
		sugar:   p.sugar,
	}, nil
}
