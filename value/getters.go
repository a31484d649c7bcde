package value

// This file implements four getter categories. GetStrict, GetCast, and
// GetBlob each take a write flag selecting a read-only or read-write
// form; GetOptional has a single form that never realizes anything.
// All of them perform [DerefIfPtr] traversal first,
// so a pointer or path token resolves transparently
// before the category's own rule applies.

// Numeric constrains the concrete numeric Go types a [Value] can store.
type Numeric interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// readNumber extracts v's numeric payload as T, assuming v already holds
// a concrete numeric kind (the caller has realized it if necessary).
func readNumber[T Numeric](v *Value) T {
	switch v.kind {
	case KindDouble:
		return T(v.f64)
	case KindFloat:
		return T(v.f32)
	case KindUint64:
		return T(uint64(v.i64))
	default:
		return T(v.i64)
	}
}

// GetStrict requires the resolved slot to hold exactly the kind T
// represents (bool, string, or a sized numeric type — not a cast between
// numeric kinds). write selects the read-write form, which realizes a
// lazy number before checking; the read-only form fails with
// [ErrNumberNotConverted] if the resolved slot is still lazy.
func GetStrict[T bool | string | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64](
	rs *RootStack, slot *Value, write bool,
) (T, error) {
	var zero T
	v := DerefIfPtr(slot, rs)

	switch any(zero).(type) {
	case bool:
		if v.kind != KindBool {
			return zero, ErrTypeMismatch
		}
		return any(v.Bool()).(T), nil
	case string:
		if !v.kind.IsString() {
			return zero, ErrTypeMismatch
		}
		return any(v.Text()).(T), nil
	default:
		want := strictNumericKind(zero)
		if v.kind == KindLazyNumber {
			if !write {
				return zero, ErrNumberNotConverted
			}
			if err := v.Realize(); err != nil {
				return zero, err
			}
		}
		if v.kind != want {
			return zero, ErrTypeMismatch
		}
		return exactNumber(v).(T), nil
	}
}

// strictNumericKind reports the exact [Kind] a zero value of a numeric Go
// type maps to, for [GetStrict]'s exact-kind check.
func strictNumericKind(zero any) Kind {
	switch zero.(type) {
	case int8:
		return KindInt8
	case uint8:
		return KindUint8
	case int16:
		return KindInt16
	case uint16:
		return KindUint16
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	case int64:
		return KindInt64
	case uint64:
		return KindUint64
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	default:
		return KindNull
	}
}

// exactNumber returns v's numeric payload as the Go type its concrete
// numeric kind stores, for the exact-kind getters.
func exactNumber(v *Value) any {
	switch v.kind {
	case KindDouble:
		return v.f64
	case KindFloat:
		return v.f32
	case KindInt8:
		return int8(v.i64)
	case KindUint8:
		return uint8(v.i64)
	case KindInt16:
		return int16(v.i64)
	case KindUint16:
		return uint16(v.i64)
	case KindInt32:
		return int32(v.i64)
	case KindUint32:
		return uint32(v.i64)
	case KindUint64:
		return uint64(v.i64)
	default:
		return v.i64
	}
}

// GetCast requires the resolved slot to hold any concrete numeric kind
// (realizing a lazy number first in the read-write form) and casts it to
// T, the way a narrowing or widening numeric conversion would. The
// read-only form fails with [ErrNumberNotConverted] on an unrealized
// lazy number.
func GetCast[T Numeric](rs *RootStack, slot *Value, write bool) (T, error) {
	var zero T
	v := DerefIfPtr(slot, rs)

	if v.kind == KindLazyNumber {
		if !write {
			return zero, ErrNumberNotConverted
		}
		if err := v.Realize(); err != nil {
			return zero, err
		}
	}
	if !v.kind.IsNumeric() {
		return zero, ErrTypeMismatch
	}
	return readNumber[T](v), nil
}

// GetBlob resolves slot to a byte blob. The read-write form decodes a
// base64 token in place and returns the owned bytes; the read-only form
// fails with [ErrBlobNotRealized] if the resolved slot is still a base64
// token rather than an owned blob.
func GetBlob(rs *RootStack, slot *Value, write bool) ([]byte, error) {
	v := DerefIfPtr(slot, rs)
	switch v.kind {
	case KindOwnedBlob:
		return v.Blob(), nil
	case KindBorrowedBase64:
		if !write {
			return nil, ErrBlobNotRealized
		}
		if err := v.RealizeBlob(); err != nil {
			return nil, err
		}
		return v.Blob(), nil
	default:
		return nil, ErrTypeMismatch
	}
}

// GetOptional resolves slot and, if it holds exactly T's kind, returns
// it with ok=true; otherwise returns the zero value and false. It never
// fails on a type mismatch and never realizes a lazy number or base64
// token — an unrealized slot of the matching logical type is reported
// absent, not coerced.
func GetOptional[T bool | string | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64](
	rs *RootStack, slot *Value,
) (T, bool) {
	var zero T
	v := DerefIfPtr(slot, rs)

	switch any(zero).(type) {
	case bool:
		if v.kind != KindBool {
			return zero, false
		}
		return any(v.Bool()).(T), true
	case string:
		if !v.kind.IsString() {
			return zero, false
		}
		return any(v.Text()).(T), true
	default:
		want := strictNumericKind(zero)
		if v.kind != want {
			return zero, false
		}
		return exactNumber(v).(T), true
	}
}
