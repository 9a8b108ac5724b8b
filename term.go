package f4gb

import (
	"encoding/binary"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// A Term is an opaque handle denoting a unique exponent vector under a
// fixed Monoid. Two handles obtained from the same Monoid for the same
// exponent vector are the same pointer; identity comparison is therefore
// '=='. A Term is immutable for the lifetime of its Monoid and carries its
// exponent vector, total degree, and hash precomputed at interning time.
type Term struct {
	monoid *Monoid
	exps   []uint16
	deg    int
	hash   uint64
}

// Exponents returns a copy of t's exponent vector.
func (t *Term) Exponents() []uint16 {
	exps := make([]uint16, len(t.exps))
	copy(exps, t.exps)
	return exps
}

// Deg returns the total degree of t, the sum of its exponents.
func (t *Term) Deg() int { return t.deg }

// Hash returns t's degree-packed hash, fixed by the monoid's D parameter.
func (t *Term) Hash() uint64 { return t.hash }

// Monoid returns the Monoid that produced t.
func (t *Term) Monoid() *Monoid { return t.monoid }

// Equal reports whether t and u denote the same exponent vector. Since
// handles are interned, this is a pointer comparison for handles from the
// same Monoid.
func (t *Term) Equal(u *Term) bool { return t == u }

// A Monoid is a factory for canonical Term handles over N indeterminates.
// It hash-conses exponent vectors so that two Create calls with equal
// vectors return the same handle, and it owns every handle it produces:
// handles do not outlive their Monoid.
type Monoid struct {
	n int
	d int

	mu    sync.RWMutex
	index map[string]*Term
	terms []*Term
	one   *Term

	sf singleflight.Group
}

// NewMonoid returns a Monoid over n indeterminates, where d is the
// per-exponent bit budget used by the degree-packed hash (see Term.Hash).
// n must satisfy n*d <= 64 so the hash does not alias catastrophically;
// a d of 8 and n up to 8 is the design target for a uint64 hash.
func NewMonoid(n, d int) *Monoid {
	if n < 1 {
		panic("f4gb: NewMonoid: n must be >= 1")
	}
	m := &Monoid{n: n, d: d, index: make(map[string]*Term)}
	m.one = m.mustCreate(make([]uint16, n))
	return m
}

// N returns the number of indeterminates of m.
func (m *Monoid) N() int { return m.n }

// One returns the term with all exponents zero.
func (m *Monoid) One() *Term { return m.one }

func (m *Monoid) mustCreate(exps []uint16) *Term {
	t, err := m.Create(exps)
	if err != nil {
		panic(err)
	}
	return t
}

// Create returns the unique handle denoting exps, a length-N exponent
// vector. Create is idempotent: two calls with equal exponent vectors
// return the same handle. Create is safe for concurrent use; concurrent
// calls interning the same vector converge on one handle via a
// singleflight collapse guarded by m's lock.
func (m *Monoid) Create(exps []uint16) (*Term, error) {
	if len(exps) != m.n {
		return nil, errors.Wrap(&MonoidError{Op: "Create", Msg: "exponent vector length does not match monoid arity"}, "")
	}

	key := encodeExps(exps)

	m.mu.RLock()
	if t, ok := m.index[key]; ok {
		m.mu.RUnlock()
		return t, nil
	}
	m.mu.RUnlock()

	v, err, _ := m.sf.Do(key, func() (any, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if t, ok := m.index[key]; ok {
			return t, nil
		}
		cp := make([]uint16, len(exps))
		copy(cp, exps)
		var deg int
		for _, e := range cp {
			deg += int(e)
		}
		t := &Term{monoid: m, exps: cp, deg: deg, hash: packedHash(cp, m.d)}
		m.index[key] = t
		m.terms = append(m.terms, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Term), nil
}

func packedHash(exps []uint16, d int) uint64 {
	if len(exps) == 0 {
		return 0
	}
	h := uint64(exps[0])
	for _, e := range exps[1:] {
		h = (h << uint(d)) + uint64(e)
	}
	return h
}

func encodeExps(exps []uint16) string {
	buf := make([]byte, 2*len(exps))
	for i, e := range exps {
		binary.LittleEndian.PutUint16(buf[2*i:], e)
	}
	return string(buf)
}

func sameMonoid(a, b *Term) error {
	if a.monoid != b.monoid {
		return errors.Wrap(&MonoidError{Op: "sameMonoid", Msg: "term handles come from different monoids"}, "")
	}
	return nil
}
