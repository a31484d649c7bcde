package ref

import (
	"testing"

	"github.com/cppon-go/cppon/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTreeWithPaths(t *testing.T) value.Value {
	t.Helper()
	root := value.NewObject(0)
	o, _ := root.Object()

	leaf := value.Int64(42)
	o.Set("leaf", leaf)

	p, err := value.Path("/leaf")
	require.NoError(t, err)
	o.Set("ref", p)

	bad, err := value.Path("/missing")
	require.NoError(t, err)
	o.Set("broken", bad)

	return root
}

func TestFindReferences(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	root := buildTreeWithPaths(t)
	pairs := FindReferences(&root)
	r.Len(pairs, 2)

	paths := []string{pairs[0].Path, pairs[1].Path}
	a.ElementsMatch([]string{"/leaf", "/missing"}, paths)
}

func TestResolveTargets(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	root := buildTreeWithPaths(t)
	rs := value.NewRootStack(value.NewSentinel())
	pairs := FindReferences(&root)

	targets := ResolveTargets(rs, &root, pairs)
	r.Len(targets, 2)

	var sawLive, sawBroken bool
	for _, tg := range targets {
		if tg.Path == "/leaf" {
			sawLive = true
			a.False(tg.Broken)
			a.Equal(int64(42), tg.Node.Int64())
		}
		if tg.Path == "/missing" {
			sawBroken = true
			a.True(tg.Broken)
		}
	}
	a.True(sawLive)
	a.True(sawBroken)
}

func TestResolveAndRestorePathsRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	root := buildTreeWithPaths(t)
	rs := value.NewRootStack(value.NewSentinel())
	pairs := FindReferences(&root)

	resolved, err := ResolvePaths(rs, &root, pairs)
	r.NoError(err)

	obj, _ := root.Object()
	refSlot, ok := obj.Get("ref")
	r.True(ok)
	a.Equal(value.KindPointer, refSlot.Kind())

	brokenSlot, ok := obj.Get("broken")
	r.True(ok)
	a.Equal(value.KindPointer, brokenSlot.Kind())
	a.Nil(brokenSlot.PointerTarget())

	r.NoError(RestorePaths(resolved))

	refSlot, _ = obj.Get("ref")
	a.Equal(value.KindPath, refSlot.Kind())
	a.Equal("/leaf", refSlot.Text())

	brokenSlot, _ = obj.Get("broken")
	a.Equal(value.KindPath, brokenSlot.Kind())
	a.Equal("/missing", brokenSlot.Text())
}

func TestContainsDirect(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	target := value.Int64(1)
	ptr, _ := value.Pointer(&target)
	container := value.NewArray(0)
	arr, _ := container.Array()
	arr.Append(ptr)

	a.True(Contains(&container, &target))

	other := value.Int64(2)
	a.False(Contains(&container, &other))
}

func TestIsCyclic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	obj := value.NewObject(0)
	o, _ := obj.Object()
	selfPtr, _ := value.Pointer(&obj)
	o.Set("self", selfPtr)

	ptrSlot, _ := o.Get("self")
	a.True(IsCyclic(ptrSlot))

	notCyclic := value.Int64(1)
	otherPtr, _ := value.Pointer(&notCyclic)
	a.False(IsCyclic(&otherPtr))
}

func TestFindObjectPath(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	root := value.NewObject(0)
	o, _ := root.Object()
	arr := value.NewArray(0)
	ar, _ := arr.Array()
	target := value.Int64(5)
	ar.Append(target)
	o.Set("items", arr)

	obj, _ := root.Object()
	items, _ := obj.Get("items")
	arr2, _ := items.Array()
	targetSlot := arr2.At(0)

	p, ok := FindObjectPath(&root, targetSlot)
	r.True(ok)
	a.Equal("items/0", p)

	other := value.Int64(999)
	_, ok = FindObjectPath(&root, &other)
	a.False(ok)
}

func TestLookupPath(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	root := buildTreeWithPaths(t)
	pairs := FindReferences(&root)

	p, ok := LookupPath(pairs, pairs[0].Slot)
	a.True(ok)
	a.Equal(pairs[0].Path, p)

	other := value.Int64(1)
	_, ok = LookupPath(pairs, &other)
	a.False(ok)
}
