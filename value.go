// Package holodex implements a probabilistic pre-filter index over
// semi-structured (JSON-like) documents. Given an equality or existence
// predicate over a structural path — author._ref == "author-1" or
// body[0].children[1].text == "Hello" — Build and the Holodex it returns
// answer with a candidate set of document positions that may satisfy the
// predicate. The candidate set never misses a true match; it may contain
// false positives at a tunable rate. Callers re-run the exact predicate on
// the candidates themselves — Holodex is a pre-filter, not a query engine.
//
// JSON parsing, line-delimited ingest, CLI handling, logging, and
// persistence are deliberately outside this package; see the ingest and
// persist subpackages for reference implementations of those concerns.
package holodex

import (
	"fmt"
)

// Kind discriminates the cases a Value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Field is a single entry of an Object, in the order it was constructed.
type Field struct {
	Name  string
	Value Value
}

// Value is a tagged variant over the six JSON-like cases: null, bool,
// 64-bit float, string, ordered array, and ordered object. Numbers are
// always binary64; integral source values are lifted into that domain by
// the caller (see FromAny), so two Values built from equivalent documents
// hash identically regardless of their originating parser's integer width.
//
// Object field order is preserved as constructed but is not semantically
// meaningful: two objects with the same field/value set fingerprint the
// same way, since extraction walks fields independently of sibling order.
type Value struct {
	kind   Kind
	b      bool
	n      float64
	s      string
	arr    []Value
	fields []Field
}

// Null is the Value representing JSON null.
var Null = Value{kind: KindNull}

// Bool returns a Value wrapping b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a Value wrapping n as an IEEE-754 binary64.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a Value wrapping s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns a Value wrapping an ordered sequence of elements.
func Array(elems []Value) Value { return Value{kind: KindArray, arr: elems} }

// Object returns a Value wrapping an ordered sequence of field/value pairs.
func Object(fields []Field) Value { return Value{kind: KindObject, fields: fields} }

// Kind reports which case v holds.
func (v Value) Kind() Kind { return v.kind }

// IsComposite reports whether v is an Array or Object — the two kinds the
// hasher never hashes by value, only by path (spec §4.4/§4.5).
func (v Value) IsComposite() bool { return v.kind == KindArray || v.kind == KindObject }

// AsBool returns the wrapped bool. Only meaningful when Kind() == KindBool.
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the wrapped float64. Only meaningful when Kind() == KindNumber.
func (v Value) AsNumber() float64 { return v.n }

// AsString returns the wrapped string. Only meaningful when Kind() == KindString.
func (v Value) AsString() string { return v.s }

// Elements returns the wrapped array's elements. Only meaningful when
// Kind() == KindArray.
func (v Value) Elements() []Value { return v.arr }

// Fields returns the wrapped object's fields in construction order. Only
// meaningful when Kind() == KindObject.
func (v Value) Fields() []Field { return v.fields }

// FromAny lifts a Go value produced by any JSON decoder — the shapes
// encoding/json and goccy/go-json both decode into, plus the primitive
// Go kinds a caller might construct by hand — into a Value. Integral
// numeric kinds are widened to float64, accepting the documented
// precision loss spec §4.1 calls out for integers too large to represent
// losslessly in binary64.
func FromAny(a any) (Value, error) {
	switch x := a.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return Array(elems), nil
	case map[string]any:
		fields := make([]Field, 0, len(x))
		for k, v := range x {
			fv, err := FromAny(v)
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, Field{Name: k, Value: fv})
		}
		return Object(fields), nil
	case []Field:
		return Object(x), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnknownValueKind, a)
	}
}
