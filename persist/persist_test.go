// Save/Load round-trip tests.
//
// persist.Save/Load must preserve a built Holodex's signature contents
// bit-for-bit (spec §6's serialization requirement for any persistence
// layer) — a round-trip bug here would silently change which candidates
// a query returns after a save/load cycle.
package persist

import (
	"bytes"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"github.com/tidx/holodex"
)

func makeIndex() *holodex.Holodex {
	docs := []holodex.Document{
		{ID: "doc-1", Value: holodex.Object([]holodex.Field{
			{Name: "title", Value: holodex.String("Hello World")},
			{Name: "author", Value: holodex.Object([]holodex.Field{
				{Name: "_ref", Value: holodex.String("author-1")},
			})},
		})},
		{ID: "doc-2", Value: holodex.Object([]holodex.Field{
			{Name: "title", Value: holodex.String("Goodbye World")},
			{Name: "author", Value: holodex.Object([]holodex.Field{
				{Name: "_ref", Value: holodex.String("author-2")},
			})},
		})},
	}
	return holodex.Build(docs, holodex.Options{})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	idx := makeIndex()

	var buf bytes.Buffer
	if err := Save(&buf, idx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Len() != idx.Len() {
		t.Fatalf("Len() = %d, want %d", loaded.Len(), idx.Len())
	}

	for i := 0; i < idx.Len(); i++ {
		wantID, _ := idx.DocID(i)
		gotID, err := loaded.DocID(i)
		if err != nil {
			t.Fatalf("DocID(%d): %v", i, err)
		}
		if gotID != wantID {
			t.Errorf("DocID(%d) = %q, want %q", i, gotID, wantID)
		}
	}

	if loaded.SizeBytes() != idx.SizeBytes() {
		t.Errorf("SizeBytes() = %d, want %d", loaded.SizeBytes(), idx.SizeBytes())
	}
}

func TestSaveLoadPreservesQueryResults(t *testing.T) {
	idx := makeIndex()

	var buf bytes.Buffer
	if err := Save(&buf, idx); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := idx.CandidatesEq("title", holodex.String("Hello World"))
	got := loaded.CandidatesEq("title", holodex.String("Hello World"))
	if len(want) != len(got) {
		t.Fatalf("CandidatesEq after round trip = %v, want %v", got, want)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("CandidatesEq after round trip = %v, want %v", got, want)
			break
		}
	}

	wantDefined := idx.CandidatesDefined("author._ref")
	gotDefined := loaded.CandidatesDefined("author._ref")
	if len(wantDefined) != len(gotDefined) {
		t.Fatalf("CandidatesDefined after round trip = %v, want %v", gotDefined, wantDefined)
	}
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	idx := makeIndex()

	var buf bytes.Buffer
	if err := Save(&buf, idx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A well-formed zstd frame around an envelope with a version this
	// build does not know reaches Load's version check.
	data, err := json.Marshal(envelope{Version: Version + 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var bad bytes.Buffer
	enc, err := zstd.NewWriter(&bad)
	if err != nil {
		t.Fatalf("new encoder: %v", err)
	}
	if _, err := enc.Write(data); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := Load(&bad); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Load with version %d: got %v, want ErrUnsupportedVersion", Version+1, err)
	}

	// Non-zstd input fails earlier, in the decoder, and must also error.
	if _, err := Load(bytes.NewReader([]byte("not a zstd frame"))); err == nil {
		t.Error("Load on garbage input should return an error")
	}
}
