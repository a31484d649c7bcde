package value

import "github.com/cppon-go/cppon/codec"

// Realize converts a [KindLazyNumber] slot into its concrete numeric
// counterpart in place. It fails with [ErrTypeMismatch] if v does not
// hold a lazy number (including if it's already concrete — callers that
// want "realize if needed, else return as-is" check Kind() first, as the
// getters do, or use [Value.RealizedNumber]).
//
// Once this returns successfully, v.kind is a concrete numeric kind and
// is never KindLazyNumber again: the slot is replaced atomically by
// [Value.realize], the single mutation point for this transition.
func (v *Value) Realize() error {
	if v.kind != KindLazyNumber {
		return ErrTypeMismatch
	}
	n, err := codec.Realize(v.str, v.numKind.codecForm())
	if err != nil {
		return err
	}
	concrete := Value{kind: v.numKind.Kind()}
	switch concrete.kind {
	case KindDouble:
		concrete.f64 = n.F64
	case KindFloat:
		concrete.f32 = n.F32
	case KindUint64:
		concrete.i64 = int64(n.U64)
	default:
		concrete.i64 = n.I64
	}
	v.realize(concrete)
	return nil
}

// RealizedNumber returns v's numeric value as a concrete [Value],
// realizing it first if v currently holds a lazy number. It fails with
// [ErrTypeMismatch] if v holds neither a lazy number nor a concrete
// numeric kind.
func (v *Value) RealizedNumber() (*Value, error) {
	if v.kind == KindLazyNumber {
		if err := v.Realize(); err != nil {
			return nil, err
		}
		return v, nil
	}
	if !v.kind.IsNumeric() {
		return nil, ErrTypeMismatch
	}
	return v, nil
}

// RealizeBlob converts a [KindBorrowedBase64] slot into an owned blob in
// place; read it back with [Value.Blob]. It fails with [ErrTypeMismatch] if v does not
// hold a base64 token, and with whatever [codec.DecodeBase64] in strict
// mode returns on malformed base64 text.
func (v *Value) RealizeBlob() error {
	if v.kind != KindBorrowedBase64 {
		return ErrTypeMismatch
	}
	data, err := decodeBase64Strict(v.str)
	if err != nil {
		return err
	}
	*v = Value{kind: KindOwnedBlob, blob: data}
	return nil
}

func decodeBase64Strict(text string) ([]byte, error) {
	return codec.DecodeBase64(text, true)
}
