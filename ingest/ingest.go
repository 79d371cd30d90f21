// Package ingest provides a reference line-delimited JSON reader for
// holodex.Build — the external ingest collaborator holodex's core
// deliberately pushes JSON parsing and id selection out to (spec §1/§6).
//
// Each line is decoded independently and converted into a holodex.Value.
// An id is taken from the document's _id field when present and a
// string; otherwise one is synthesized from a content hash of the raw
// line, selectable via Algorithm, mirroring the multi-algorithm id
// strategy the teacher database uses for its own document ids.
package ingest

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"

	"github.com/tidx/holodex"
)

// Algorithm selects the id-synthesis hash used when a line has no usable
// _id field.
type Algorithm int

const (
	// AlgXXH3 is the default: fastest, no cryptographic guarantees.
	AlgXXH3 Algorithm = iota
	// AlgFNV1a has no external dependency, useful as a fallback.
	AlgFNV1a
	// AlgBlake2b offers stronger collision resistance at a speed cost.
	AlgBlake2b
)

// Options configures a Reader.
type Options struct {
	// Algorithm selects the id-synthesis hash. Zero value is AlgXXH3.
	Algorithm Algorithm

	// ReadBuffer sizes the line scanner's initial buffer. Zero value
	// defaults to 64KB, matching the teacher's default Config.ReadBuffer.
	ReadBuffer int

	// MaxLineSize bounds the scanner's maximum token size. Zero value
	// defaults to 16MB, matching the teacher's default MaxRecordSize.
	MaxLineSize int
}

func (o Options) withDefaults() Options {
	if o.ReadBuffer == 0 {
		o.ReadBuffer = 64 * 1024
	}
	if o.MaxLineSize == 0 {
		o.MaxLineSize = 16 * 1024 * 1024
	}
	return o
}

// ReadAll decodes every line of r as a JSON document and returns the
// resulting holodex.Document slice in file order, synthesizing ids for
// any line whose decoded object lacks a string _id field.
func ReadAll(r io.Reader, opts Options) ([]holodex.Document, error) {
	opts = opts.withDefaults()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, opts.ReadBuffer), opts.MaxLineSize)

	var docs []holodex.Document
	position := 0

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var raw any
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", position, err)
		}

		v, err := holodex.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", position, err)
		}

		id := documentID(raw, line, position, opts.Algorithm)
		docs = append(docs, holodex.Document{ID: id, Value: v})
		position++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// documentID extracts a string _id field if one exists, otherwise
// synthesizes one from the raw line bytes using the selected algorithm.
func documentID(raw any, line []byte, position int, alg Algorithm) string {
	if obj, ok := raw.(map[string]any); ok {
		if id, ok := obj["_id"].(string); ok && id != "" {
			return id
		}
	}

	h := hashLine(line, alg)
	if h == "" {
		return "doc-" + strconv.Itoa(position)
	}
	return h
}

// hashLine computes a content-hash id for line using alg. Returns "" for
// an unrecognized algorithm, falling back to doc-<position> in the
// caller — this mirrors the teacher's hash() returning "" for an invalid
// algorithm rather than silently producing a made-up id.
func hashLine(line []byte, alg Algorithm) string {
	switch alg {
	case AlgXXH3:
		return fmt.Sprintf("%016x", xxh3.Hash(line))
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(line)
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil)
		h.Write(line)
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}
