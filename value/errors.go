package value

import (
	"errors"
	"fmt"
)

// ErrValue wraps every error this package returns.
var ErrValue = errors.New("value")

// Sentinel errors returned by value-model operations. Each wraps [ErrValue].
var (
	// ErrTypeMismatch indicates the resolved slot does not hold the kind
	// an operation required.
	ErrTypeMismatch = fmt.Errorf("%w: type mismatch", ErrValue)

	// ErrUnsafePointerAssignment indicates an attempt to assign an
	// in-tree pointer whose target is mid-reassignment (indeterminate).
	ErrUnsafePointerAssignment = fmt.Errorf("%w: unsafe pointer assignment", ErrValue)

	// ErrNumberNotConverted indicates a read-only getter encountered a
	// lazy number token that has not been realized.
	ErrNumberNotConverted = fmt.Errorf("%w: number not converted", ErrValue)

	// ErrBlobNotRealized indicates a read-only getter encountered a
	// base64 token that has not been decoded into an owned blob.
	ErrBlobNotRealized = fmt.Errorf("%w: blob not realized", ErrValue)

	// ErrInvalidPath indicates an attempt to construct a path token from
	// a string that is empty or does not begin with '/'.
	ErrInvalidPath = fmt.Errorf("%w: invalid path", ErrValue)
)
