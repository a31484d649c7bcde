// Package nav implements the navigator: a single dispatch point over
// integer index, object-member name, and
// slash-separated path string index forms, plus write-path
// autovivification.
//
// Navigator reuses [github.com/cppon-go/cppon/value.Resolve] for its read path and adds only what
// that read-only walk cannot do: index-form dispatch and creating
// missing containers on the way to a write target.
package nav

import (
	"errors"
	"fmt"
)

// ErrNav wraps every error this package returns.
var ErrNav = errors.New("nav")

var (
	// ErrExcessiveArrayResize indicates a write-path array growth would
	// exceed the navigator's configured MaxArrayDelta.
	ErrExcessiveArrayResize = fmt.Errorf("%w: excessive array resize", ErrNav)

	// ErrUnsupportedIndex indicates an index value of a type Get/Set does
	// not accept (only int and string are index forms).
	ErrUnsupportedIndex = fmt.Errorf("%w: unsupported index type", ErrNav)
)
