package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectGetSetAppend(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	o := newObject(0)
	o.Append("a", Int64(1))
	o.Append("b", Int64(2))
	a.Equal(2, o.Len())

	v, ok := o.Get("a")
	a.True(ok)
	a.Equal(int64(1), v.Int64())

	_, ok = o.Get("missing")
	a.False(ok)

	o.Set("a", Int64(99))
	a.Equal(2, o.Len(), "Set updates in place, does not append")
	v, _ = o.Get("a")
	a.Equal(int64(99), v.Int64())

	o.Set("c", Int64(3))
	a.Equal(3, o.Len(), "Set appends a missing key")
}

func TestObjectDuplicateKeysPreserveFirstMatch(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	o := newObject(0)
	o.Append("k", Int64(1))
	o.Append("k", Int64(2))
	a.Equal(2, o.Len())

	v, ok := o.Get("k")
	a.True(ok)
	a.Equal(int64(1), v.Int64(), "Get returns the first match")
}

func TestObjectPairsLiveAddressing(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	o := newObject(4)
	o.Append("a", Int64(1))
	slot, _ := o.Get("a")
	*slot = Int64(42)

	v, _ := o.Get("a")
	a.Equal(int64(42), v.Int64(), "writing through a returned slot pointer mutates the object")
}
