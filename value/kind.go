// Package value provides the in-memory JSON value model: a tagged-variant
// node, its ordered object and array containers, the per-thread root
// stack used to resolve absolute paths, and the typed getters that span
// the parser and navigator.
//
// The complete list of kinds a [Value] may hold, in their fixed ordinal
// order (dispatch order, not a wire format):
//
//   - [KindObject], [KindArray]
//   - [KindDouble], [KindFloat]
//   - [KindInt8], [KindUint8], [KindInt16], [KindUint16], [KindInt32],
//     [KindUint32], [KindInt64], [KindUint64]
//   - [KindLazyNumber]
//   - [KindBool]
//   - [KindBorrowedString], [KindBorrowedBase64]
//   - [KindOwnedString]
//   - [KindPath]
//   - [KindOwnedBlob]
//   - [KindPointer]
//   - [KindNull]
package value

import "github.com/cppon-go/cppon/codec"

// Kind identifies the alternative a [Value] currently holds.
type Kind uint8

// Kind constants, in a fixed ordinal order chosen for dispatch.
// The order affects dispatch tables only; it carries no wire meaning.
const (
	KindObject Kind = iota
	KindArray
	KindDouble
	KindFloat
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindLazyNumber
	KindBool
	KindBorrowedString
	KindBorrowedBase64
	KindOwnedString
	KindPath
	KindOwnedBlob
	KindPointer
	KindNull
)

// String returns a short, lower-case label for k, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindDouble:
		return "double"
	case KindFloat:
		return "float"
	case KindInt8:
		return "int8"
	case KindUint8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindLazyNumber:
		return "lazy-number"
	case KindBool:
		return "bool"
	case KindBorrowedString:
		return "string"
	case KindBorrowedBase64:
		return "base64"
	case KindOwnedString:
		return "string"
	case KindPath:
		return "path"
	case KindOwnedBlob:
		return "blob"
	case KindPointer:
		return "pointer"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether k is one of the concrete numeric kinds
// (double, float, or a sized signed/unsigned integer). It is false for
// [KindLazyNumber], which has not yet been realized.
func (k Kind) IsNumeric() bool {
	return k >= KindDouble && k <= KindUint64
}

// IsString reports whether k holds textual data directly (borrowed or
// owned). Path tokens and base64 tokens are textual in representation but
// carry distinct semantics, so they're excluded.
func (k Kind) IsString() bool {
	return k == KindBorrowedString || k == KindOwnedString
}

// NumKind classifies the lexical form of a lazy number token, per the
// JSON-superset numeric-suffix grammar.
type NumKind uint8

const (
	NumInt64 NumKind = iota
	NumDouble
	NumFloat
	NumInt8
	NumUint8
	NumInt16
	NumUint16
	NumInt32
	NumUint32
	NumUint64
)

// String returns a short label for n, used in error messages and by the
// printer when it must name a type suffix.
func (n NumKind) String() string {
	switch n {
	case NumInt64:
		return "i64"
	case NumDouble:
		return "double"
	case NumFloat:
		return "f"
	case NumInt8:
		return "i8"
	case NumUint8:
		return "u8"
	case NumInt16:
		return "i16"
	case NumUint16:
		return "u16"
	case NumInt32:
		return "i32"
	case NumUint32:
		return "u32"
	case NumUint64:
		return "u64"
	default:
		return "unknown"
	}
}

// codecForm returns the codec.Form used to parse a lazy number of kind n.
func (n NumKind) codecForm() codec.Form {
	switch n {
	case NumDouble:
		return codec.FormDouble
	case NumFloat:
		return codec.FormFloat
	case NumInt8:
		return codec.FormInt8
	case NumUint8:
		return codec.FormUint8
	case NumInt16:
		return codec.FormInt16
	case NumUint16:
		return codec.FormUint16
	case NumInt32:
		return codec.FormInt32
	case NumUint32:
		return codec.FormUint32
	case NumUint64:
		return codec.FormUint64
	default:
		return codec.FormInt64
	}
}

// Kind returns the concrete [Kind] that realizing a lazy number of kind n
// produces.
func (n NumKind) Kind() Kind {
	switch n {
	case NumDouble:
		return KindDouble
	case NumFloat:
		return KindFloat
	case NumInt8:
		return KindInt8
	case NumUint8:
		return KindUint8
	case NumInt16:
		return KindInt16
	case NumUint16:
		return KindUint16
	case NumInt32:
		return KindInt32
	case NumUint32:
		return KindUint32
	case NumUint64:
		return KindUint64
	default:
		return KindInt64
	}
}
