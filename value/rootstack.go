package value

// Sentinel holds the null node returned by read-only traversal for
// missing members. A per-thread singleton is the conceptual model, but
// Go has no portable thread-local storage, so cppon scopes it to the
// caller's explicit execution context instead (typically one
// [RootStack] per goroutine that walks a tree), rather than an implicit
// global. Identity, not value, is what callers check:
// [RootStack.CurrentRoot] and the navigator compare addresses against
// Sentinel.Node to recognize a miss.
type Sentinel struct {
	node Value
}

// NewSentinel returns a fresh null sentinel.
func NewSentinel() *Sentinel { return &Sentinel{node: Null()} }

// Node returns the sentinel's node. It is always null; callers must
// treat it as read-only.
func (s *Sentinel) Node() *Value { return &s.node }

// RootStack is a LIFO of "current document" roots, seeded with a bottom
// sentinel so it is never empty. The conceptual model is per-thread;
// cppon scopes one RootStack to each execution context that needs absolute
// path resolution (typically one per [Document], or one per concurrent
// query over a shared tree that no goroutine mutates). A RootStack is
// not safe for concurrent use.
type RootStack struct {
	sentinel *Sentinel
	stack    []*Value
}

// NewRootStack returns a RootStack seeded with sentinel as its bottom
// entry.
func NewRootStack(sentinel *Sentinel) *RootStack {
	return &RootStack{sentinel: sentinel, stack: []*Value{sentinel.Node()}}
}

// PushRoot makes node the current root. If node is already present on
// the stack it is hoisted to the top instead of duplicated.
func (rs *RootStack) PushRoot(node *Value) {
	for i, n := range rs.stack {
		if n == node {
			rs.hoist(i)
			return
		}
	}
	rs.stack = append(rs.stack, node)
}

// PopRoot removes node from the stack if present, first hoisting it to
// the top (so pop always removes the top). It is a no-op if node is not
// on the stack.
func (rs *RootStack) PopRoot(node *Value) {
	for i, n := range rs.stack {
		if n == node {
			rs.hoist(i)
			rs.stack = rs.stack[:len(rs.stack)-1]
			return
		}
	}
}

// hoist moves the entry at index i to the top of the stack.
func (rs *RootStack) hoist(i int) {
	n := rs.stack[i]
	rs.stack = append(rs.stack[:i], rs.stack[i+1:]...)
	rs.stack = append(rs.stack, n)
}

// SentinelNode returns rs's null sentinel node, the value read-only
// traversal returns for a leaf miss (missing member, out-of-bounds
// index).
func (rs *RootStack) SentinelNode() *Value { return rs.sentinel.Node() }

// CurrentRoot returns the top of the stack. It panics if the stack has
// been corrupted down to just the sentinel and is consulted anyway: the
// top must never be the sentinel when this is called, and that
// invariant is a contract violation, not a runtime error, when it
// fails.
func (rs *RootStack) CurrentRoot() *Value {
	top := rs.stack[len(rs.stack)-1]
	if top == rs.sentinel.Node() {
		panic("value: CurrentRoot consulted with an empty root stack")
	}
	return top
}

// ScopedRoot pushes node as the current root and returns a release
// function that pops it. Call the release function via defer to
// guarantee release on every exit path:
//
//	defer value.ScopedRoot(stack, &root)()
func ScopedRoot(rs *RootStack, node *Value) func() {
	rs.PushRoot(node)
	return func() { rs.PopRoot(node) }
}
