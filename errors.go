package holodex

import "errors"

// Sentinel errors returned by package operations.
var (
	// ErrEmptyCollection is returned by Validate when given zero documents.
	// Build itself accepts an empty collection: an empty Holodex is
	// well-defined (Len() == 0, every query returns nil), so this is
	// opt-in for callers who want to treat it as a bug.
	ErrEmptyCollection = errors.New("holodex: empty document collection")

	// ErrUnknownValueKind is returned by FromAny when given a Go value
	// that isn't one of the kinds a JSON decoder produces.
	ErrUnknownValueKind = errors.New("holodex: unknown value kind")

	// ErrPositionOutOfRange is returned by DocID when pos is outside
	// [0, Len()).
	ErrPositionOutOfRange = errors.New("holodex: position out of range")
)
