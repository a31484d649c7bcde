package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayAppendAt(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	arr := newArray(0)
	arr.Append(Int64(1))
	arr.Append(Int64(2))
	a.Equal(2, arr.Len())
	a.Equal(int64(1), arr.At(0).Int64())
	a.Equal(int64(2), arr.At(1).Int64())
	a.Nil(arr.At(2))
	a.Nil(arr.At(-1))
}

func TestArrayGrowTo(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	arr := newArray(0)
	arr.Append(Int64(1))
	arr.GrowTo(3)
	a.Equal(4, arr.Len())
	a.True(arr.At(1).IsNull())
	a.True(arr.At(2).IsNull())
	a.True(arr.At(3).IsNull())

	arr.GrowTo(1)
	a.Equal(4, arr.Len(), "GrowTo is a no-op when k is already within range")
}

func TestArrayItemsLiveAddressing(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	arr := newArray(0)
	arr.Append(Int64(1))
	slot := arr.At(0)
	*slot = Int64(99)
	a.Equal(int64(99), arr.At(0).Int64())
}
