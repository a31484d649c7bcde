// Package print implements the printer: a configurable serializer over
// the value tree that supports pretty and
// compact layout, selective per-key compaction, reference flattening
// with cycle fallback, and a JSON-compatibility mode.
package print

import (
	"errors"
	"fmt"
)

// ErrPrint wraps every error this package returns.
var ErrPrint = errors.New("print")

var (
	// ErrBadOption indicates the options object passed to [FromValue] had
	// an unrecognized shape for one of its keys.
	ErrBadOption = fmt.Errorf("%w: bad option", ErrPrint)

	// ErrJSONCompatibility indicates an integer value fell outside
	// ±(2^53-1) while compatible mode was active.
	ErrJSONCompatibility = fmt.Errorf("%w: json compatibility", ErrPrint)
)
