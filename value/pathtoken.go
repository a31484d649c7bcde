package value

import (
	"database/sql/driver"
	"fmt"
)

// PathToken is a standalone, self-contained path string, wrapping the
// same absolute-path invariant a [KindPath] node enforces. It exists so
// a path extracted from a tree (or destined for one) can compose with
// `database/sql` and `encoding`-adjacent tooling, mirroring the
// teacher's own `Path.Scan`/`Path.Value`/`Path.MarshalText` quartet.
type PathToken string

// ErrScan wraps path-token scan failures.
var ErrScan = fmt.Errorf("%w: scan", ErrValue)

// AsPathToken returns v's path text as a PathToken, and true if v holds
// [KindPath].
func (v *Value) AsPathToken() (PathToken, bool) {
	if v.kind != KindPath {
		return "", false
	}
	return PathToken(v.str), true
}

// PathTokenValue returns the [Value] a PathToken encodes.
func (t PathToken) PathTokenValue() (Value, error) {
	return Path(string(t))
}

// Scan implements sql.Scanner: src must be a string or []byte beginning
// with '/', or nil/empty, which scans to the zero PathToken.
func (t *PathToken) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		if src == "" {
			*t = ""
			return nil
		}
		if _, err := Path(src); err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}
		*t = PathToken(src)
		return nil
	case []byte:
		return t.Scan(string(src))
	default:
		return fmt.Errorf("%w: unable to scan type %T into PathToken", ErrScan, src)
	}
}

// Value implements driver.Valuer.
func (t PathToken) Value() (driver.Value, error) {
	return string(t), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t PathToken) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PathToken) UnmarshalText(data []byte) error {
	return t.Scan(string(data))
}
