package holodex

// Pair is a single (normalized_path, Value) observation extracted from a
// document. Primitive leaves and path-only markers for composite nodes
// both appear as Pairs; the hasher decides which bytes of a composite
// Pair actually get hashed (see HashPair/HashPathOnly).
type Pair struct {
	Path  string
	Value Value
}

// Extract walks v from the root, accumulating a dotted/bracketed path,
// and returns every (path, value) observation in the document: one Pair
// per object field (value attached, path-only for composites handled by
// the caller via HashPathOnly) and one Pair per array element (path
// already carrying "[*]").
//
// Every internal node is emitted as an observation with its child value
// attached — this is what lets a defined(author) query hit even when
// author is itself a nested object: the path-only marker at "author"
// exists regardless of what author's value looks like.
func Extract(v Value) []Pair {
	var pairs []Pair
	extract(v, "", &pairs)
	return pairs
}

func extract(v Value, prefix string, pairs *[]Pair) {
	switch v.Kind() {
	case KindObject:
		for _, f := range v.Fields() {
			path := joinField(prefix, f.Name)
			*pairs = append(*pairs, Pair{Path: path, Value: f.Value})
			extract(f.Value, path, pairs)
		}
	case KindArray:
		path := prefix + "[*]"
		for _, elem := range v.Elements() {
			*pairs = append(*pairs, Pair{Path: path, Value: elem})
			extract(elem, path, pairs)
		}
	default:
		// Primitive leaves were already emitted by the parent call.
	}
}

func joinField(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
