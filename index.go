package holodex

import (
	"runtime"
	"sync"
)

// Validate checks the preconditions Build itself doesn't enforce. Build
// accepts an empty collection and returns a well-defined, zero-length
// Holodex (every query answers with no candidates); callers who'd rather
// treat that as a usage error can call Validate first.
func Validate(docs []Document) error {
	if len(docs) == 0 {
		return ErrEmptyCollection
	}
	return nil
}

// Document is an (id, Value) pair as handed to Build by an ingest
// collaborator. id is treated as opaque — commonly a source document's
// _id field, falling back to an id the collaborator synthesizes when it
// is absent (the ingest subpackage hashes the raw line).
type Document struct {
	ID    string
	Value Value
}

// Holodex is an immutable, position-indexed collection of per-document
// signatures. Documents are numbered 0..Len()-1 in build order; position
// i in every method below refers to the i-th Document passed to Build.
type Holodex struct {
	signatures []*Signature
	ids        []string
}

// Build fingerprints each document independently and returns the
// resulting index. For document i, the pair extractor's observations are
// counted, a Signature is sized with n = max(observationCount,
// opts.MinObservations) and p = opts.FalsePositiveRate, and every
// observation contributes: HashPair(path, value) for primitive-valued
// observations, and HashPathOnly(path) for every observation (primitive
// and composite alike).
//
// Per-document work is independent (spec §5), so Build fans documents
// out across a worker pool sized to GOMAXPROCS and writes each resulting
// signature directly to its final position — no merge step, no shared
// mutable state between workers.
func Build(docs []Document, opts Options) *Holodex {
	opts = opts.withDefaults()

	idx := &Holodex{
		signatures: make([]*Signature, len(docs)),
		ids:        make([]string, len(docs)),
	}
	if len(docs) == 0 {
		return idx
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(docs) {
		workers = len(docs)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan int)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				idx.ids[i] = docs[i].ID
				idx.signatures[i] = fingerprint(docs[i].Value, opts)
			}
		}()
	}
	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return idx
}

// fingerprint builds the Signature for a single document's Value.
func fingerprint(v Value, opts Options) *Signature {
	pairs := Extract(v)

	n := len(pairs)
	if n < opts.MinObservations {
		n = opts.MinObservations
	}
	sig := NewSignature(n, opts.FalsePositiveRate)

	for _, pair := range pairs {
		if !pair.Value.IsComposite() {
			sig.Insert(HashPair(pair.Path, pair.Value))
		}
		sig.Insert(HashPathOnly(pair.Path))
	}

	return sig
}

// CandidatesEq returns, in ascending position order, every document
// position whose signature reports a possible match for path == value.
// path is normalized before hashing, so query paths written with
// concrete array indices (body[0].text) hit documents indexed under the
// same normalized shape (body[*].text). value must be a primitive: a
// composite (Array or Object) value is rejected and yields no candidates.
func (h *Holodex) CandidatesEq(path string, value Value) []int {
	if value.IsComposite() {
		return nil
	}
	hash := HashPair(Normalize(path), value)
	return h.probe(hash)
}

// CandidatesDefined returns, in ascending position order, every document
// position whose signature reports that path exists, regardless of the
// value bound to it.
func (h *Holodex) CandidatesDefined(path string) []int {
	hash := HashPathOnly(Normalize(path))
	return h.probe(hash)
}

// probe fans a single hash out across all signatures concurrently —
// each signature's Contains is a read-only, independent operation post
// build (spec §5) — and joins the results back into position order.
func (h *Holodex) probe(hash uint64) []int {
	n := len(h.signatures)
	if n == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	hits := make([]bool, n)
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				hits[i] = h.signatures[i].Contains(hash)
			}
		}(start, end)
	}
	wg.Wait()

	var positions []int
	for i, hit := range hits {
		if hit {
			positions = append(positions, i)
		}
	}
	return positions
}

// DocID returns the opaque id of the document at pos.
func (h *Holodex) DocID(pos int) (string, error) {
	if pos < 0 || pos >= len(h.ids) {
		return "", ErrPositionOutOfRange
	}
	return h.ids[pos], nil
}

// Len returns the number of documents in the index.
func (h *Holodex) Len() int { return len(h.signatures) }

// SizeBytes returns the total number of bytes backing every signature's
// bit vector.
func (h *Holodex) SizeBytes() int {
	total := 0
	for _, sig := range h.signatures {
		total += sig.SizeBytes()
	}
	return total
}
