package value

import "fmt"

// Errors returned by path resolution (component E/G territory, housed
// here because both the deref rules below and the reference resolver
// need the same segment walk).
var (
	// ErrMemberNotFound indicates an object-arm traversal crossed a
	// missing member with more path segments remaining.
	ErrMemberNotFound = fmt.Errorf("%w: member not found", ErrValue)

	// ErrNullValue indicates an array-arm traversal crossed a missing
	// element with more path segments remaining.
	ErrNullValue = fmt.Errorf("%w: null value", ErrValue)

	// ErrBadArrayIndex indicates a path segment that should select an
	// array element is not composed entirely of decimal digits.
	ErrBadArrayIndex = fmt.Errorf("%w: bad array index", ErrValue)
)

// DerefIfPtr implements the read-path dereference rule: a raw in-tree
// pointer resolves to its target (or the root stack's sentinel if the
// pointer is null); a path token resolves against the current root with
// its leading '/' removed; every other kind passes through unchanged.
func DerefIfPtr(v *Value, rs *RootStack) *Value {
	switch v.kind {
	case KindPointer:
		if v.ptr == nil {
			return rs.sentinel.Node()
		}
		return v.ptr
	case KindPath:
		root := rs.CurrentRoot()
		target, err := Resolve(rs, root, SplitPath(v.str))
		if err != nil {
			return rs.sentinel.Node()
		}
		return target
	default:
		return v
	}
}

// DerefIfNotNull implements the write-path dereference rule: if v holds
// a null raw pointer, v itself is returned (so a subsequent write
// replaces the slot with a container, not the pointer's absent target);
// otherwise it delegates to [DerefIfPtr].
func DerefIfNotNull(v *Value, rs *RootStack) *Value {
	if v.kind == KindPointer && v.ptr == nil {
		return v
	}
	return DerefIfPtr(v, rs)
}

// SplitPath splits an absolute or relative slash-separated path into its
// segments. A leading '/' is ignored; "" and "/" both yield no segments,
// meaning "the node itself".
func SplitPath(path string) []string {
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}
	if path == "" {
		return nil
	}
	segs := []string{}
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			segs = append(segs, path[start:i])
			start = i + 1
		}
	}
	segs = append(segs, path[start:])
	return segs
}

// parseArrayIndex reports whether seg is composed entirely of decimal
// digits, and if so its integer value.
func parseArrayIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// Resolve performs the read-only segment walk: integer segments index
// arrays, any other non-empty segment names an object member, and an
// empty segment list resolves to root itself. At each step the current
// node is dereferenced via [DerefIfPtr] before its kind decides how the
// next segment applies.
//
// A missing member or out-of-bounds index at the last segment returns
// rs's sentinel node, not an error (a leaf miss). The same miss
// with segments still remaining is reported by the container it
// happened in: [ErrMemberNotFound] for an object, [ErrNullValue] for an
// array. A segment applied to a null node is [ErrNullValue] if it is
// numeric and [ErrMemberNotFound] otherwise. Attempting to index a
// non-container, non-null node is [ErrTypeMismatch].
func Resolve(rs *RootStack, root *Value, segments []string) (*Value, error) {
	cur := root
	for i, seg := range segments {
		cur = DerefIfPtr(cur, rs)
		last := i == len(segments)-1

		if arr, ok := cur.Array(); ok {
			idx, numeric := parseArrayIndex(seg)
			if !numeric {
				return nil, ErrBadArrayIndex
			}
			if idx < 0 || idx >= arr.Len() {
				if last {
					return rs.sentinel.Node(), nil
				}
				return nil, ErrNullValue
			}
			cur = arr.At(idx)
			continue
		}

		if obj, ok := cur.Object(); ok {
			val, found := obj.Get(seg)
			if !found {
				if last {
					return rs.sentinel.Node(), nil
				}
				return nil, ErrMemberNotFound
			}
			cur = val
			continue
		}

		if cur == rs.sentinel.Node() || cur.IsNull() {
			if _, numeric := parseArrayIndex(seg); numeric {
				return nil, ErrNullValue
			}
			return nil, ErrMemberNotFound
		}

		return nil, ErrTypeMismatch
	}
	return cur, nil
}
