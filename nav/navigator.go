package nav

import (
	"strings"

	"github.com/cppon-go/cppon/value"
)

// Navigator binds a [value.RootStack] and an array-growth policy to a
// single-dispatch set of path index forms. A Navigator is not safe for
// concurrent use: besides writes to the tree, Get and Set with an
// absolute ('/'-prefixed) path push and pop the shared root stack.
type Navigator struct {
	rs            *value.RootStack
	maxArrayDelta int
}

// New returns a Navigator using rs for absolute-path root switching and
// maxArrayDelta (or [value.DefaultMaxArrayDelta] if <= 0) as the
// write-path array growth cap.
func New(rs *value.RootStack, maxArrayDelta int) *Navigator {
	if maxArrayDelta <= 0 {
		maxArrayDelta = value.DefaultMaxArrayDelta
	}
	return &Navigator{rs: rs, maxArrayDelta: maxArrayDelta}
}

// Get resolves index against node and returns the resolved slot,
// read-only. index must be an int (array position), or a string: a bare
// name/segment path resolves relative to node; a string with a leading
// '/' first makes node the current root ("self") and resolves the
// remainder against it.
func (n *Navigator) Get(node *value.Value, index any) (*value.Value, error) {
	switch idx := index.(type) {
	case int:
		d := value.DerefIfPtr(node, n.rs)
		arr, ok := d.Array()
		if !ok {
			return nil, value.ErrTypeMismatch
		}
		if idx < 0 || idx >= arr.Len() {
			return n.rs.SentinelNode(), nil
		}
		return arr.At(idx), nil

	case string:
		segments := value.SplitPath(idx)
		root := node
		if strings.HasPrefix(idx, "/") {
			release := value.ScopedRoot(n.rs, node)
			defer release()
			root = n.rs.CurrentRoot()
		}
		return value.Resolve(n.rs, root, segments)

	default:
		return nil, ErrUnsupportedIndex
	}
}

// Set resolves index against node exactly like Get, except that any
// null, absent, or null-pointer slot encountered along the way is
// autovivified into an array or object per the write rules below, and
// the final resolved slot is assigned val. The write rules:
//
//   - A numeric segment (or an int index) on such a slot creates an
//     array there; any other non-empty segment creates an object.
//   - An array grows, padding with null, until the index is valid;
//     growth of more than the navigator's array delta past the current
//     length fails with [ErrExcessiveArrayResize].
//   - A numeric segment on an object, or any index on a slot that is
//     neither a container nor null, fails with [value.ErrTypeMismatch].
//   - A non-numeric segment on an array, an empty segment on a null
//     slot, or a negative int index fails with [value.ErrBadArrayIndex].
//
// Set returns a pointer to the written slot.
func (n *Navigator) Set(node *value.Value, index any, val value.Value) (*value.Value, error) {
	switch idx := index.(type) {
	case int:
		arr, err := n.ensureArraySlot(node, idx)
		if err != nil {
			return nil, err
		}
		*arr = val
		return arr, nil

	case string:
		segments := value.SplitPath(idx)
		root := node
		if strings.HasPrefix(idx, "/") {
			release := value.ScopedRoot(n.rs, node)
			defer release()
			root = n.rs.CurrentRoot()
		}
		slot, err := n.walkOrCreate(root, segments)
		if err != nil {
			return nil, err
		}
		*slot = val
		return slot, nil

	default:
		return nil, ErrUnsupportedIndex
	}
}

// ensureArraySlot autovivifies node into an array (if it is currently
// null, absent, or a null pointer) and grows it so that index idx is
// valid, then returns a pointer to that element.
func (n *Navigator) ensureArraySlot(node *value.Value, idx int) (*value.Value, error) {
	d := value.DerefIfNotNull(node, n.rs)
	if d.IsNull() || (d.Kind() == value.KindPointer && d.PointerTarget() == nil) {
		*d = value.NewArray(0)
	}
	arr, ok := d.Array()
	if !ok {
		return nil, value.ErrTypeMismatch
	}
	if idx < 0 {
		return nil, value.ErrBadArrayIndex
	}
	if delta := idx - arr.Len(); delta > n.maxArrayDelta {
		return nil, ErrExcessiveArrayResize
	}
	arr.GrowTo(idx)
	return arr.At(idx), nil
}

// walkOrCreate walks segments from root, autovivifying missing
// intermediate containers per the write rules documented on [Set], and
// returns a pointer to the final slot (not yet assigned).
func (n *Navigator) walkOrCreate(root *value.Value, segments []string) (*value.Value, error) {
	cur := root
	for _, seg := range segments {
		cur = value.DerefIfNotNull(cur, n.rs)
		idx, numeric := parseArrayIndex(seg)

		if arr, ok := cur.Array(); ok {
			if !numeric {
				return nil, value.ErrBadArrayIndex
			}
			if idx < 0 {
				return nil, value.ErrBadArrayIndex
			}
			if delta := idx - arr.Len(); delta > n.maxArrayDelta {
				return nil, ErrExcessiveArrayResize
			}
			arr.GrowTo(idx)
			cur = arr.At(idx)
			continue
		}

		if obj, ok := cur.Object(); ok {
			if numeric {
				return nil, value.ErrTypeMismatch
			}
			if slot, found := obj.Get(seg); found {
				cur = slot
				continue
			}
			cur = obj.Set(seg, value.Null())
			continue
		}

		if cur.IsNull() || (cur.Kind() == value.KindPointer && cur.PointerTarget() == nil) {
			if seg == "" {
				return nil, value.ErrBadArrayIndex
			}
			if numeric {
				*cur = value.NewArray(0)
				arr, _ := cur.Array()
				if idx < 0 {
					return nil, value.ErrBadArrayIndex
				}
				if idx > n.maxArrayDelta {
					return nil, ErrExcessiveArrayResize
				}
				arr.GrowTo(idx)
				cur = arr.At(idx)
			} else {
				*cur = value.NewObject(0)
				obj, _ := cur.Object()
				cur = obj.Set(seg, value.Null())
			}
			continue
		}

		return nil, value.ErrTypeMismatch
	}
	return cur, nil
}

// parseArrayIndex reports whether seg is composed entirely of decimal
// digits, and if so its integer value. Mirrors the unexported helper in
// package value; duplicated here because the write path needs it
// outside that package and the logic is a two-line scan not worth
// exporting just for this.
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
