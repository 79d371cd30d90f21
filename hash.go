package holodex

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Type tag bytes mixed into a hash after the path to keep primitive
// domains disjoint. These exact values are part of the wire contract:
// two independent implementations that disagree on a tag byte will
// silently fail to find each other's documents.
const (
	tagString   byte = 0x01
	tagNumber   byte = 0x02
	tagBool     byte = 0x03
	tagNull     byte = 0x04
	tagPathOnly byte = 0x05
)

// HashPair computes the 64-bit XXH64 (seed 0) hash of a normalized path
// and a typed primitive value: path bytes, then a single type-tag byte,
// then the typed value's payload bytes (little-endian for numbers).
//
// v must not be composite (Array or Object) — the documented pipeline
// only ever calls HashPair on primitives, since composite values
// contribute to the fingerprint through HashPathOnly and recursion into
// their children instead. A composite argument here is a programmer
// error in the caller, not a reportable condition: per spec, it degrades
// to hashing the path alone with no type tag, matching the reference
// behavior rather than panicking.
func HashPair(path string, v Value) uint64 {
	h := xxhash.New()
	h.Write([]byte(path))

	switch v.Kind() {
	case KindString:
		h.Write([]byte{tagString})
		h.Write([]byte(v.AsString()))
	case KindNumber:
		h.Write([]byte{tagNumber})
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.AsNumber()))
		h.Write(buf[:])
	case KindBool:
		h.Write([]byte{tagBool})
		if v.AsBool() {
			h.Write([]byte{0x01})
		} else {
			h.Write([]byte{0x00})
		}
	case KindNull:
		h.Write([]byte{tagNull})
	default:
		// Array/Object: no type tag, path bytes only. Unreachable through
		// Build/CandidatesEq, which reject composites at the boundary.
	}

	return h.Sum64()
}

// HashPathOnly computes the 64-bit XXH64 (seed 0) hash of a normalized
// path alone, tagged PATH_ONLY. Every observation — primitive or
// composite — contributes one of these, which is what makes
// CandidatesDefined work regardless of the value at path.
func HashPathOnly(path string) uint64 {
	h := xxhash.New()
	h.Write([]byte(path))
	h.Write([]byte{tagPathOnly})
	return h.Sum64()
}
