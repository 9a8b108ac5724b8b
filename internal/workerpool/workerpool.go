// Package workerpool implements the fork-join primitive the core uses for
// bulk term multiplication and for exercising the Simplify table
// concurrently. The number of workers is the only runtime parameter the
// core observes (see the module's external-interfaces notes); everything
// else about scheduling is delegated to golang.org/x/sync/errgroup.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// A Pool bounds fan-out to a fixed worker budget.
type Pool struct {
	n int
}

// New returns a Pool with n workers. n below 1 is treated as 1.
func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{n: n}
}

// N returns the worker budget of p.
func (p *Pool) N() int { return p.n }

// Map applies fn to every index in [0, n), fork-join style, bounded to p's
// worker budget. The first error returned by any fn cancels the remaining
// calls' context and is returned from Map; all in-flight calls are
// awaited before Map returns.
func (p *Pool) Map(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.n)
	for i := range n {
		g.Go(func() error { return fn(gctx, i) })
	}
	return g.Wait()
}

// Go returns a schedule function, which runs fn on p's worker budget, and
// a wait function, which waits for every scheduled call to finish and
// returns the first error encountered.
func (p *Pool) Go() (schedule func(fn func() error), wait func() error) {
	g := &errgroup.Group{}
	g.SetLimit(p.n)
	return func(fn func() error) { g.Go(fn) }, g.Wait
}
