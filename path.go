package holodex

import "strings"

// Normalize maps a concrete or user-supplied path to its canonical
// query-equivalent form: every bracketed run of ASCII digits becomes the
// literal "[*]"; any other bracketed content, including the empty bracket
// "[]", is left verbatim. Normalize is idempotent: Normalize(Normalize(p))
// always equals Normalize(p).
//
// Segments produced by Extract (numeric indices or identifier characters
// only) are a strict subset of what Normalize must also accept from
// user-written queries ("[]", "[key]", arbitrary "[N]") — both paths
// through this function must agree on canonical form, or a query probe
// would never hit a document insert built from the same logical path.
//
// Behavior on malformed input (leading dots, consecutive dots, unclosed
// brackets) is unspecified but never panics.
func Normalize(path string) string {
	var result strings.Builder
	var segment strings.Builder
	inBracket := false

	flush := func() {
		if segment.Len() == 0 {
			return
		}
		if result.Len() != 0 {
			result.WriteByte('.')
		}
		result.WriteString(segment.String())
		segment.Reset()
	}

	for _, ch := range path {
		switch {
		case ch == '[' && !inBracket:
			flush()
			inBracket = true
			segment.WriteRune(ch)
		case ch == ']':
			segment.WriteRune(ch)
			inBracket = false
			result.WriteString(normalizeBracketSegment(segment.String()))
			segment.Reset()
		case ch == '.' && !inBracket:
			flush()
		default:
			segment.WriteRune(ch)
		}
	}
	flush()

	return result.String()
}

// normalizeBracketSegment replaces a "[digits]" run with the literal
// "[*]"; any other bracketed content, including "[]", is returned as-is.
// It does not prepend the leading dot flush handles for plain field
// segments — bracket markers attach directly to the preceding segment.
func normalizeBracketSegment(seg string) string {
	if len(seg) < 2 || seg[0] != '[' || seg[len(seg)-1] != ']' {
		return seg
	}
	inner := seg[1 : len(seg)-1]
	if inner == "" {
		return seg
	}
	for _, c := range inner {
		if c < '0' || c > '9' {
			return seg
		}
	}
	return "[*]"
}
