// Package simplify implements the two-level concurrent table F4 symbolic
// preprocessing consults before materializing t*f: if (f, t), or (f, a
// divisor of t), has already been reduced, the stored result is reused
// instead of redoing the multiply-then-reduce work.
package simplify

import (
	"fmt"
	"sync"

	"github.com/jba/omap"
	"golang.org/x/sync/singleflight"

	"github.com/fumin/f4gb"
)

// inner is the per-f table, term handle to the polynomial t*f reduces to.
// omap.MapFunc is not safe for concurrent use on its own, so reads and
// writes against one inner table are guarded by its own mutex; different
// f's inner tables never contend with each other.
type inner struct {
	mu sync.RWMutex
	m  *omap.MapFunc[*f4gb.Term, *f4gb.Polynomial]
}

// A Table is a Simplify table: outer map from f-basis polynomial identity
// to its inner term-keyed table. The outer map is write-mostly-once per
// key (one inner table is created the first time a given f is ever
// inserted into), which is exactly the access pattern sync.Map is built
// for. Concurrent creation of the same f's inner table is collapsed via
// singleflight so exactly one inner table is ever published per f.
type Table struct {
	outer sync.Map // *f4gb.Polynomial -> *inner
	sf    singleflight.Group
}

// New returns an empty Table.
func New() *Table { return &Table{} }

func (t *Table) innerFor(f *f4gb.Polynomial, order f4gb.Ordering) *inner {
	if v, ok := t.outer.Load(f); ok {
		return v.(*inner)
	}
	key := fmt.Sprintf("%p", f)
	v, _, _ := t.sf.Do(key, func() (any, error) {
		if v, ok := t.outer.Load(f); ok {
			return v, nil
		}
		in := &inner{m: omap.NewMapFunc[*f4gb.Term, *f4gb.Polynomial](order)}
		t.outer.Store(f, in)
		return in, nil
	})
	return v.(*inner)
}

// Insert records that multiplying f by t reduced to p. Insert is
// idempotent in the sense required by the table's contract: a later
// Insert for the same (f, t) overwrites the earlier entry, so callers
// must only insert results that are at least as reduced as what is
// already there. f's inner table is ordered by f's own Ordering, or by p's
// if f has not been ordered, since any p ever inserted for a given f was
// produced under a consistent ordering over the run of one F4 computation.
func (t *Table) Insert(term *f4gb.Term, f, p *f4gb.Polynomial) {
	order := f.Ordering()
	if order == nil {
		order = p.Ordering()
	}
	in := t.innerFor(f, order)
	in.mu.Lock()
	in.m.Set(term, p)
	in.mu.Unlock()
}

// Search looks up the pair (f, t). If f has an inner table and some entry
// t' there divides t, Search returns (t/t', p) where p is the polynomial
// stored for t'; every entry is visited, and among all dividing entries
// the one of largest degree deg(t') is chosen (on a tie, the first one met
// walking the inner table from its largest key down). If no suitable t'
// exists, Search returns (t, f) unchanged.
func (t *Table) Search(term *f4gb.Term, f *f4gb.Polynomial) (*f4gb.Term, *f4gb.Polynomial) {
	v, ok := t.outer.Load(f)
	if !ok {
		return term, f
	}
	in := v.(*inner)

	in.mu.RLock()
	defer in.mu.RUnlock()

	var bestTerm *f4gb.Term
	var bestPoly *f4gb.Polynomial
	bestDeg := -1
	for t2, p2 := range in.m.Backward() {
		ok, err := f4gb.DivisibleBy(term, t2)
		if err != nil || !ok {
			continue
		}
		if d := f4gb.Deg(t2); d > bestDeg {
			bestDeg, bestTerm, bestPoly = d, t2, p2
		}
	}
	if bestTerm == nil {
		return term, f
	}
	quotient, err := f4gb.Div(term, bestTerm)
	if err != nil {
		return term, f
	}
	return quotient, bestPoly
}

// Len reports the number of f's with a populated inner table.
func (t *Table) Len() int {
	n := 0
	t.outer.Range(func(_, _ any) bool { n++; return true })
	return n
}
