package persist

import "errors"

// ErrUnsupportedVersion is returned by Load when the envelope's version
// doesn't match this build's Version.
var ErrUnsupportedVersion = errors.New("persist: unsupported envelope version")
