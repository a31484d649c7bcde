// Package ref implements the reference resolver: converting path
// tokens scattered through a tree into direct in-tree
// pointers for fast repeated traversal, and reversing the process for
// serialization.
package ref

import (
	"strconv"

	"github.com/cppon-go/cppon/value"
)

// Pair records one path-token node's original path string alongside the
// slot it was found in, as produced by [FindReferences] and consumed by
// [ResolveTargets], [ResolvePaths], and [RestorePaths].
type Pair struct {
	Path string
	Slot *value.Value
}

// FindReferences walks root depth-first and collects a [Pair] for every
// path-token node reachable from it.
func FindReferences(root *value.Value) []Pair {
	var pairs []Pair
	collect(root, &pairs)
	return pairs
}

func collect(v *value.Value, pairs *[]Pair) {
	switch {
	case v.Kind() == value.KindPath:
		*pairs = append(*pairs, Pair{Path: v.Text(), Slot: v})
	case v.Kind() == value.KindArray:
		arr, _ := v.Array()
		for i := 0; i < arr.Len(); i++ {
			collect(arr.At(i), pairs)
		}
	case v.Kind() == value.KindObject:
		obj, _ := v.Object()
		for i := 0; i < obj.Len(); i++ {
			p := obj.Pair(i)
			collect(&p.Val, pairs)
		}
	}
}

// Target records the outcome of resolving one [Pair]: either a live
// target pointer, or Broken if the path missed.
type Target struct {
	Path   string
	Node   *value.Value
	Broken bool
}

// ResolveTargets walks root for each pair's path, in order. A path that
// misses (any segment not found) marks its pair's slot as a null raw
// pointer (a broken reference) and records Broken; otherwise it
// records the resolved target node.
func ResolveTargets(rs *value.RootStack, root *value.Value, pairs []Pair) []Target {
	targets := make([]Target, 0, len(pairs))
	for _, p := range pairs {
		segments := value.SplitPath(p.Path)
		target, err := value.Resolve(rs, root, segments)
		if err != nil || target == rs.SentinelNode() {
			*p.Slot, _ = value.Pointer(nil)
			targets = append(targets, Target{Path: p.Path, Broken: true})
			continue
		}
		targets = append(targets, Target{Path: p.Path, Node: target})
	}
	return targets
}

// ResolvePaths replaces every pair's path-token slot with a raw-pointer
// slot to its resolved target (a null pointer if resolution found the
// path broken), and returns the pair list so [RestorePaths] can later
// invert the change.
func ResolvePaths(rs *value.RootStack, root *value.Value, pairs []Pair) ([]Pair, error) {
	for i := range pairs {
		p := &pairs[i]
		segments := value.SplitPath(p.Path)
		target, err := value.Resolve(rs, root, segments)
		if err != nil || target == rs.SentinelNode() {
			ptr, perr := value.Pointer(nil)
			if perr != nil {
				return nil, perr
			}
			*p.Slot = ptr
			continue
		}
		ptr, perr := value.Pointer(target)
		if perr != nil {
			return nil, perr
		}
		*p.Slot = ptr
	}
	return pairs, nil
}

// RestorePaths reverses [ResolvePaths]: every slot recorded in pairs is
// rewritten back to a path-token node bearing its original path string.
func RestorePaths(pairs []Pair) error {
	for _, p := range pairs {
		pv, err := value.Path(p.Path)
		if err != nil {
			return err
		}
		*p.Slot = pv
	}
	return nil
}

// Contains recursively reports whether target is reachable as a
// descendant raw pointer from parent: any array element or object value
// that is itself a pointer equal to target, or that contains target
// transitively.
func Contains(parent *value.Value, target *value.Value) bool {
	if parent == target {
		return true
	}
	switch parent.Kind() {
	case value.KindPointer:
		p := parent.PointerTarget()
		if p == target {
			return true
		}
		if p == nil {
			return false
		}
		return Contains(p, target)

	case value.KindArray:
		arr, _ := parent.Array()
		for i := 0; i < arr.Len(); i++ {
			if Contains(arr.At(i), target) {
				return true
			}
		}
		return false

	case value.KindObject:
		obj, _ := parent.Object()
		for i := 0; i < obj.Len(); i++ {
			p := obj.Pair(i)
			if Contains(&p.Val, target) {
				return true
			}
		}
		return false

	default:
		return false
	}
}

// IsCyclic reports whether the pointer node ptr participates in a cycle:
// whether its own target contains ptr among its descendants.
func IsCyclic(ptr *value.Value) bool {
	target := ptr.PointerTarget()
	if target == nil {
		return false
	}
	return Contains(target, ptr)
}

// FindObjectPath performs a depth-first search from root for target,
// returning the '/'-joined path to it, or "" if target is not reachable.
func FindObjectPath(root *value.Value, target *value.Value) (string, bool) {
	if root == target {
		return "", true
	}
	switch root.Kind() {
	case value.KindArray:
		arr, _ := root.Array()
		for i := 0; i < arr.Len(); i++ {
			if p, ok := FindObjectPath(arr.At(i), target); ok {
				return joinSegment(strconv.Itoa(i), p), true
			}
		}
	case value.KindObject:
		obj, _ := root.Object()
		for i := 0; i < obj.Len(); i++ {
			pr := obj.Pair(i)
			if p, ok := FindObjectPath(&pr.Val, target); ok {
				return joinSegment(pr.Key, p), true
			}
		}
	}
	return "", false
}

func joinSegment(head, rest string) string {
	if rest == "" {
		return head
	}
	return head + "/" + rest
}

// LookupPath performs an O(n) scan of pairs for the one whose slot
// equals ptr, returning its originally stored path string.
func LookupPath(pairs []Pair, ptr *value.Value) (string, bool) {
	for _, p := range pairs {
		if p.Slot == ptr {
			return p.Path, true
		}
	}
	return "", false
}
