package holodex

// Snapshot is the serializable form of a built Holodex: every signature's
// raw bit vector and sizing parameters, paired with its document id.
// Persistence is explicitly out of this package's scope (spec §6); this
// type exists only so an external collaborator (see the persist
// subpackage) can round-trip a Holodex without reaching into unexported
// fields.
type Snapshot struct {
	Docs []DocSnapshot
}

// DocSnapshot is one document's serialized signature.
type DocSnapshot struct {
	ID   string
	Bits []byte
	M    uint64
	K    int
}

// Export captures h as a Snapshot.
func (h *Holodex) Export() Snapshot {
	docs := make([]DocSnapshot, len(h.signatures))
	for i, sig := range h.signatures {
		bits := make([]byte, len(sig.bits))
		copy(bits, sig.bits)
		docs[i] = DocSnapshot{
			ID:   h.ids[i],
			Bits: bits,
			M:    sig.m,
			K:    sig.k,
		}
	}
	return Snapshot{Docs: docs}
}

// Import rebuilds a Holodex from a Snapshot, preserving the original
// signatures bit-for-bit rather than re-deriving them from documents.
func Import(snap Snapshot) *Holodex {
	h := &Holodex{
		signatures: make([]*Signature, len(snap.Docs)),
		ids:        make([]string, len(snap.Docs)),
	}
	for i, d := range snap.Docs {
		bits := make([]byte, len(d.Bits))
		copy(bits, d.Bits)
		h.signatures[i] = &Signature{bits: bits, m: d.M, k: d.K}
		h.ids[i] = d.ID
	}
	return h
}
