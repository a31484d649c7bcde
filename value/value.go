package value

// Value is the tagged-variant JSON node. Its zero value is not a usable
// node: its kind is [KindObject] (ordinal 0) with no backing [Object].
// Use [Null], [NewObject], and the other constructors to build nodes.
//
// A Value is deliberately a plain struct, not an interface over distinct
// concrete node types: [KindPointer] nodes hold a *Value into another
// node's storage slot (an element of an [Array] or the Val field of an
// [Object] Pair), and that slot must be independently addressable for the
// pointer to observe later writes through it. An interface-based sum
// type would make that address unstable. The cost every caller must
// respect: growing the backing container that owns a pointer's target
// invalidates the pointer.
type Value struct {
	kind Kind

	i64 int64
	f64 float64
	f32 float32

	// str carries whichever kind's textual payload applies: borrowed
	// string view, borrowed base64 text (without its prefix), owned
	// string, path text (without its prefix, always leading '/'), or the
	// source byte range of a lazy number token.
	str string

	blob []byte
	obj  *Object
	arr  *Array
	ptr  *Value

	numKind NumKind

	// inProgress is set for the duration of an assignment into this slot
	// so that a pointer construction targeting it mid-assignment (e.g.
	// self-referential autovivification) is rejected rather than
	// observed in a half-written state.
	inProgress bool
}

// Null returns a new null node. The zero Value is not null (see
// [Value]), so null nodes are always built with Null.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a new boolean node.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.i64 = 1
	}
	return v
}

// Int64, Uint64, Int32, Uint32, Int16, Uint16, Int8, Uint8, Double, and
// Float construct concrete numeric nodes of their respective kind.
func Int64(n int64) Value   { return Value{kind: KindInt64, i64: n} }
func Uint64(n uint64) Value { return Value{kind: KindUint64, i64: int64(n)} }
func Int32(n int32) Value   { return Value{kind: KindInt32, i64: int64(n)} }
func Uint32(n uint32) Value { return Value{kind: KindUint32, i64: int64(n)} }
func Int16(n int16) Value   { return Value{kind: KindInt16, i64: int64(n)} }
func Uint16(n uint16) Value { return Value{kind: KindUint16, i64: int64(n)} }
func Int8(n int8) Value     { return Value{kind: KindInt8, i64: int64(n)} }
func Uint8(n uint8) Value   { return Value{kind: KindUint8, i64: int64(n)} }
func Double(f float64) Value { return Value{kind: KindDouble, f64: f} }
func Float(f float32) Value  { return Value{kind: KindFloat, f32: f} }

// BorrowedString returns a new borrowed string-view node over s. The
// caller must guarantee the buffer s derives from outlives the tree.
func BorrowedString(s string) Value { return Value{kind: KindBorrowedString, str: s} }

// OwnedString returns a new owned string node.
func OwnedString(s string) Value { return Value{kind: KindOwnedString, str: s} }

// BorrowedBase64 returns a new borrowed base64-token node carrying the
// raw (un-decoded) base64 text, without its configured prefix.
func BorrowedBase64(text string) Value { return Value{kind: KindBorrowedBase64, str: text} }

// OwnedBlob returns a new owned byte-blob node.
func OwnedBlob(b []byte) Value { return Value{kind: KindOwnedBlob, blob: b} }

// LazyNumber returns a new lazy-number-token node carrying the verbatim
// source text of the literal and its classified kind.
func LazyNumber(text string, kind NumKind) Value {
	return Value{kind: KindLazyNumber, str: text, numKind: kind}
}

// Path returns a new path-token node. Construction enforces the
// absolute-path invariant: p must begin with '/'. Returns
// [ErrInvalidPath] otherwise.
func Path(p string) (Value, error) {
	if p == "" || p[0] != '/' {
		return Value{}, ErrInvalidPath
	}
	return Value{kind: KindPath, str: p}, nil
}

// MustPath is like [Path] but panics on an invalid path string. Intended
// for call sites with a literal, known-good path.
func MustPath(p string) Value {
	v, err := Path(p)
	if err != nil {
		panic(err)
	}
	return v
}

// Pointer returns a new raw in-tree pointer node targeting target.
// Returns [ErrUnsafePointerAssignment] if target is mid-assignment.
func Pointer(target *Value) (Value, error) {
	if target != nil && target.inProgress {
		return Value{}, ErrUnsafePointerAssignment
	}
	return Value{kind: KindPointer, ptr: target}, nil
}

// NewObject returns a new, empty object node with room for at least
// capacity entries before it must grow.
func NewObject(capacity int) Value {
	return Value{kind: KindObject, obj: newObject(capacity)}
}

// NewArray returns a new, empty array node with room for at least
// capacity elements before it must grow.
func NewArray(capacity int) Value {
	return Value{kind: KindArray, arr: newArray(capacity)}
}

// Kind returns the alternative v currently holds.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds [KindNull].
func (v *Value) IsNull() bool { return v.kind == KindNull }

// Object returns v's underlying [Object] and true if v holds
// [KindObject]; otherwise it returns nil, false.
func (v *Value) Object() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Array returns v's underlying [Array] and true if v holds [KindArray];
// otherwise it returns nil, false.
func (v *Value) Array() (*Array, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// MustObject is like [Value.Object] but panics if v does not hold
// [KindObject].
func (v *Value) MustObject() *Object {
	o, ok := v.Object()
	if !ok {
		panic(ErrTypeMismatch)
	}
	return o
}

// MustArray is like [Value.Array] but panics if v does not hold
// [KindArray].
func (v *Value) MustArray() *Array {
	a, ok := v.Array()
	if !ok {
		panic(ErrTypeMismatch)
	}
	return a
}

// Bool returns v's boolean payload. Only meaningful when Kind() ==
// KindBool.
func (v *Value) Bool() bool { return v.i64 != 0 }

// Int64 returns v's payload reinterpreted as int64, valid for any
// concrete integer kind.
func (v *Value) Int64() int64 { return v.i64 }

// Uint64 returns v's payload reinterpreted as uint64, valid for any
// concrete integer kind.
func (v *Value) Uint64() uint64 { return uint64(v.i64) }

// Double returns v's float64 payload. Only meaningful when Kind() ==
// KindDouble.
func (v *Value) Double() float64 { return v.f64 }

// Float returns v's float32 payload. Only meaningful when Kind() ==
// KindFloat.
func (v *Value) Float() float32 { return v.f32 }

// Text returns v's textual payload: the borrowed or owned string, the
// base64 text (without prefix), the path text (without prefix, leading
// '/'), or the lazy number's source text — whichever applies to Kind().
func (v *Value) Text() string { return v.str }

// Blob returns v's owned byte-blob payload. Only meaningful when Kind()
// == KindOwnedBlob.
func (v *Value) Blob() []byte { return v.blob }

// NumKind returns the classified numeric kind of a lazy number token.
// Only meaningful when Kind() == KindLazyNumber.
func (v *Value) NumKind() NumKind { return v.numKind }

// PointerTarget returns the in-tree node v's raw pointer targets, or nil
// for a null pointer. Only meaningful when Kind() == KindPointer.
func (v *Value) PointerTarget() *Value { return v.ptr }

// Assign replaces v's slot with next, in place. It fails with
// [ErrUnsafePointerAssignment] if next is a pointer whose target is
// currently mid-assignment.
func (v *Value) Assign(next Value) error {
	if next.kind == KindPointer && next.ptr != nil && next.ptr.inProgress {
		return ErrUnsafePointerAssignment
	}
	v.inProgress = true
	*v = next
	v.inProgress = false
	return nil
}

// realize replaces a lazy-number slot with its concrete numeric
// counterpart. It is the single mutation point lazy-number realization
// uses, so that "never converted twice" holds by construction: once
// v.kind leaves KindLazyNumber, realize is never called on it again.
func (v *Value) realize(concrete Value) {
	*v = concrete
}
