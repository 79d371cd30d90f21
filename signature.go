package holodex

import "math"

// Signature is a per-document approximate-membership filter: a Bloom
// filter sized from an expected observation count and a target false
// positive rate. Insert is idempotent with respect to membership;
// Contains is total (never panics) and returns true for every hash that
// was ever inserted, with a false-positive rate near the target for
// hashes that were not. Immutable after construction except via Insert.
type Signature struct {
	bits []byte
	m    uint64 // size in bits
	k    int    // probe count
}

// NewSignature sizes a filter for n expected observations at target
// false positive rate p, per the standard Bloom sizing formulae:
//
//	m = ceil(-n * ln(p) / (ln 2)^2), floored at 64
//	k = ceil((m / n) * ln 2), clamped to [1, 10]
func NewSignature(n int, p float64) *Signature {
	if n < 1 {
		n = 1
	}
	nf := float64(n)

	m := uint64(math.Ceil(-nf * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m < 64 {
		m = 64
	}

	k := int(math.Ceil((float64(m) / nf) * math.Ln2))
	if k < 1 {
		k = 1
	}
	if k > 10 {
		k = 10
	}

	return &Signature{
		bits: make([]byte, (m+7)/8),
		m:    m,
		k:    k,
	}
}

// Insert sets the k probe bits for hash. Idempotent: inserting the same
// hash twice leaves membership unchanged.
func (s *Signature) Insert(hash uint64) {
	h1, h2 := splitHash(hash)
	for i := 0; i < s.k; i++ {
		idx := probeIndex(h1, h2, i, s.m)
		s.bits[idx/8] |= 1 << (idx % 8)
	}
}

// Contains returns true if hash may have been inserted (all k probe bits
// are set), false if it was definitely never inserted.
func (s *Signature) Contains(hash uint64) bool {
	h1, h2 := splitHash(hash)
	for i := 0; i < s.k; i++ {
		idx := probeIndex(h1, h2, i, s.m)
		if s.bits[idx/8]&(1<<(idx%8)) == 0 {
			return false
		}
	}
	return true
}

// SizeBytes returns the number of bytes backing this signature's bit
// vector.
func (s *Signature) SizeBytes() int { return len(s.bits) }

// splitHash divides a 64-bit hash into its low and high 32-bit halves
// for the double-hashing probe schedule.
func splitHash(hash uint64) (h1, h2 uint64) {
	return hash & 0xffffffff, hash >> 32
}

// probeIndex computes the i-th double-hashing probe position into an
// m-bit vector: (h1 + i*h2) mod m. Wrapping arithmetic; no modular bias
// correction is required per spec.
func probeIndex(h1, h2 uint64, i int, m uint64) uint64 {
	return (h1 + uint64(i)*h2) % m
}
