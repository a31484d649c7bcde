// Package codec implements the small, stateless conversions the value
// model defers until a caller actually needs them: base64 encode/decode
// for blob tokens, and textual-to-concrete numeric conversion for lazy
// number tokens.
//
// Nothing here depends on the value package. That's deliberate: both
// directions of lazy realization (value wrapping a concrete number,
// value unwrapping a token's text) are owned by the value package, which
// imports codec, not the reverse — see [value.Value.Realize] and
// [value.Value.RealizeBlob].
package codec

import (
	"encoding/base64"
	"errors"
)

// ErrInvalidBase64 is returned by [DecodeBase64] in strict mode when the
// input contains a byte outside the standard alphabet or a misplaced
// padding character.
var ErrInvalidBase64 = errors.New("codec: invalid base64")

// EncodeBase64 encodes data using the standard alphabet, padding with
// '=' to a multiple of 4 characters.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes text, which must use the standard alphabet with
// canonical padding. If strict is true, an invalid byte or malformed
// padding returns [ErrInvalidBase64]; if strict is false, the same
// condition returns a nil, empty result with no error.
func DecodeBase64(text string, strict bool) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		if strict {
			return nil, ErrInvalidBase64
		}
		return nil, nil
	}
	return out, nil
}
