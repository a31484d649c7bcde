package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	null, yes, no := Null(), Bool(true), Bool(false)
	i64, u64 := Int64(42), Uint64(42)
	bs, os := BorrowedString("hi"), OwnedString("hi")
	b64, blob := BorrowedBase64("aGk="), OwnedBlob([]byte("hi"))

	a.Equal(KindNull, null.Kind())
	a.True(yes.Bool())
	a.False(no.Bool())
	a.Equal(int64(42), i64.Int64())
	a.Equal(uint64(42), u64.Uint64())
	a.Equal("hi", bs.Text())
	a.Equal("hi", os.Text())
	a.Equal(KindBorrowedBase64, b64.Kind())
	a.Equal([]byte("hi"), blob.Blob())
}

func TestPath(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := assert.New(t)

	v, err := Path("/a/b")
	r.NoError(err)
	a.Equal(KindPath, v.Kind())
	a.Equal("/a/b", v.Text())

	_, err = Path("")
	a.ErrorIs(err, ErrInvalidPath)

	_, err = Path("a/b")
	a.ErrorIs(err, ErrInvalidPath)
}

func TestPointer(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	a := assert.New(t)

	target := Int64(7)
	p, err := Pointer(&target)
	r.NoError(err)
	a.Equal(KindPointer, p.Kind())
	a.Same(&target, p.PointerTarget())

	nullPtr, err := Pointer(nil)
	r.NoError(err)
	a.Nil(nullPtr.PointerTarget())
}

func TestPointerRejectsInProgress(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	target := Int64(1)
	target.inProgress = true
	_, err := Pointer(&target)
	a.ErrorIs(err, ErrUnsafePointerAssignment)
}

func TestObjectArrayAccessors(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	obj := NewObject(0)
	o, ok := obj.Object()
	a.True(ok)
	o.Set("k", Int64(1))
	a.Equal(1, o.Len())

	arr := NewArray(0)
	ar, ok := arr.Array()
	a.True(ok)
	ar.Append(Int64(1))
	a.Equal(1, ar.Len())

	_, ok = obj.Array()
	a.False(ok)
	_, ok = arr.Object()
	a.False(ok)
}
