// Pair extraction tests.
package holodex

import "testing"

func hasPath(pairs []Pair, path string) bool {
	for _, p := range pairs {
		if p.Path == path {
			return true
		}
	}
	return false
}

func TestExtractPairs(t *testing.T) {
	doc := Object([]Field{
		{Name: "title", Value: String("Hello")},
		{Name: "nested", Value: Object([]Field{
			{Name: "field", Value: Number(42)},
		})},
	})

	pairs := Extract(doc)

	if !hasPath(pairs, "title") {
		t.Error("expected observation for path \"title\"")
	}
	if !hasPath(pairs, "nested") {
		t.Error("expected path-only observation for composite path \"nested\"")
	}
	if !hasPath(pairs, "nested.field") {
		t.Error("expected observation for path \"nested.field\"")
	}
}

// TestExtractArrayPaths verifies that array element paths carry "[*]",
// not a concrete index, at extraction time — the normalization the
// hasher relies on to collapse positional differences across documents.
func TestExtractArrayPaths(t *testing.T) {
	doc := Object([]Field{
		{Name: "body", Value: Array([]Value{
			Object([]Field{
				{Name: "children", Value: Array([]Value{
					Object([]Field{{Name: "text", Value: String("Hello")}}),
				})},
			}),
		})},
	})

	pairs := Extract(doc)

	if !hasPath(pairs, "body[*].children[*].text") {
		t.Errorf("expected normalized array path, got: %+v", pairs)
	}
}

// TestExtractCompositeCarriesValue verifies that the Pair
// for a composite node carries its full child Value (so Extract can
// recurse into it and report its existence), even though the hasher
// only ever folds that Pair's path into the fingerprint, never its
// value bytes.
func TestExtractCompositeCarriesValue(t *testing.T) {
	inner := Object([]Field{{Name: "field", Value: Number(1)}})
	doc := Object([]Field{{Name: "nested", Value: inner}})

	pairs := Extract(doc)
	for _, p := range pairs {
		if p.Path == "nested" {
			if p.Value.Kind() != KindObject {
				t.Errorf("expected nested pair's Value to be the composite, got kind %v", p.Value.Kind())
			}
			return
		}
	}
	t.Fatal("no pair found for path \"nested\"")
}
