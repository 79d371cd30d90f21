// Package persist is a reference external collaborator for saving and
// loading a built holodex.Holodex to a single file. holodex's core treats
// serialization as out of scope (spec §6) — "any persistence layer is an
// external collaborator and must preserve bit-exact signature contents";
// this package is one such layer, built the way the teacher database
// frames a header record around a larger payload and compresses it.
package persist

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"github.com/tidx/holodex"
)

// Version is the envelope format version written by Save and checked by
// Load, the same role the teacher's Header.Version field plays for its
// on-disk record format.
const Version = 1

// envelope is the small versioned wrapper around the snapshot payload,
// mirroring the teacher's fixed-size Header framing a variable-size body.
// Save compresses the whole marshalled envelope, header fields included.
type envelope struct {
	Version int               `json:"v"`
	Docs    int               `json:"docs"`
	Payload []holodex.DocSnapshot `json:"payload"`
}

// Save serializes idx to w: a JSON envelope (version, document count,
// per-document signature snapshots) wrapped in a zstd compressor, so the
// on-disk form stays small even though signature bit vectors don't
// compress as well as text content.
func Save(w io.Writer, idx *holodex.Holodex) error {
	snap := idx.Export()
	env := envelope{Version: Version, Docs: len(snap.Docs), Payload: snap.Docs}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("persist: marshal: %w", err)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return fmt.Errorf("persist: new encoder: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return fmt.Errorf("persist: write: %w", err)
	}
	return enc.Close()
}

// Load reads an index previously written by Save. It returns
// ErrUnsupportedVersion if the envelope's version doesn't match what
// this build of persist knows how to read.
func Load(r io.Reader) (*holodex.Holodex, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("persist: new decoder: %w", err)
	}
	defer dec.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, dec); err != nil {
		return nil, fmt.Errorf("persist: read: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		return nil, fmt.Errorf("persist: unmarshal: %w", err)
	}
	if env.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, env.Version, Version)
	}

	return holodex.Import(holodex.Snapshot{Docs: env.Payload}), nil
}
