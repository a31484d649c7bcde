package value

// defaultObjectReserve is the object's initial reserve, chosen to
// match the small, typical object sizes where linear scan beats hashing.
const defaultObjectReserve = 8

// Pair is one (key, value) entry of an [Object]. Key is a borrowed
// string view in parser-built objects; write-path assignment may also
// store an owned key.
type Pair struct {
	Key string
	Val Value
}

// Object is the ordered container backing [KindObject] nodes: a
// contiguous vector of pairs. This layout, not a hash map, is
// deliberate — for the small objects typical of real-world JSON, linear
// scan beats hashing, and insertion order is preserved for free.
//
// Duplicate keys are never deduplicated on insert; [Object.Get] and
// [Object.Index] return the first match. [Object.Set] updates the first
// matching key in place; a missing key is appended.
type Object struct {
	pairs []Pair
}

func newObject(capacity int) *Object {
	if capacity <= 0 {
		capacity = defaultObjectReserve
	}
	return &Object{pairs: make([]Pair, 0, capacity)}
}

// Len returns the number of pairs in o, counting duplicate keys
// separately.
func (o *Object) Len() int { return len(o.pairs) }

// Pair returns the i'th pair in insertion order.
func (o *Object) Pair(i int) *Pair { return &o.pairs[i] }

// Index returns the position of the first pair whose key equals key, or
// -1 if none matches. Keys are compared as byte sequences.
func (o *Object) Index(key string) int {
	for i := range o.pairs {
		if o.pairs[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns a pointer to the value of the first pair whose key equals
// key, and true. Returns nil, false if no pair matches.
//
// The returned pointer addresses the live slot inside o's backing
// storage; it is invalidated by any subsequent append that reallocates
// o's backing array (see [Value] for the general raw-pointer caveat).
func (o *Object) Get(key string) (*Value, bool) {
	i := o.Index(key)
	if i < 0 {
		return nil, false
	}
	return &o.pairs[i].Val, true
}

// Set assigns val to the first pair whose key equals key, or appends a
// new (key, val) pair if none matches. Returns a pointer to the written
// slot.
func (o *Object) Set(key string, val Value) *Value {
	i := o.Index(key)
	if i >= 0 {
		o.pairs[i].Val = val
		return &o.pairs[i].Val
	}
	return o.Append(key, val)
}

// Append always adds a new (key, val) pair, even when key already
// exists. The parser uses Append to preserve duplicate keys verbatim
// from source text; write-path autovivification uses [Object.Set].
func (o *Object) Append(key string, val Value) *Value {
	o.pairs = append(o.pairs, Pair{Key: key, Val: val})
	return &o.pairs[len(o.pairs)-1].Val
}

// Pairs returns the live backing slice of o's pairs, in insertion order.
// Callers must not retain element pointers across a subsequent Append
// that may reallocate it.
func (o *Object) Pairs() []Pair { return o.pairs }
