package cppon

import (
	"testing"

	"github.com/cppon-go/cppon/nav"
	"github.com/cppon-go/cppon/parser"
	"github.com/cppon-go/cppon/print"
	"github.com/cppon-go/cppon/value"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// treeDiffOpts lets cmp.Diff compare [value.Value] trees field-by-field:
// every concrete payload cppon stores lives in Value's unexported
// fields (and Object/Array's backing slices), so structural-equality
// tests need cmp.AllowUnexported rather than a hand-rolled walker.
var treeDiffOpts = cmp.AllowUnexported(value.Value{}, value.Object{}, value.Array{})

func TestParseAndPrintRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	text := `{"a":1,"b":[1,2,3]}`
	doc, err := Parse(text, parser.WithMode(parser.ModeFull))
	r.NoError(err)
	defer doc.Close()

	out, err := doc.Print()
	r.NoError(err)
	a.Equal(text, out)
}

func TestParseErrorWrapsErrCPPON(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	_, err := Parse(`{"a":`)
	a.ErrorIs(err, ErrCPPON)
}

func TestDocumentNavigatorGetSet(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	doc, err := Parse(`{"settings":{"retries":1}}`, parser.WithMode(parser.ModeFull))
	r.NoError(err)
	defer doc.Close()

	_, err = doc.Navigator().Set(doc.Root(), "/settings/retries", value.Int64(3))
	r.NoError(err)

	v, err := doc.Navigator().Get(doc.Root(), "/settings/retries")
	r.NoError(err)
	a.Equal(int64(3), v.Int64())
}

func TestDocumentResolveAndRestoreReferences(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	text := `{"leaf":5,"ref":"$cppon-path:/leaf"}`
	doc, err := Parse(text, parser.WithMode(parser.ModeFull))
	r.NoError(err)
	defer doc.Close()

	pairs, err := doc.ResolveReferences()
	r.NoError(err)
	r.Len(pairs, 1)

	obj, ok := doc.Root().Object()
	r.True(ok)
	refSlot, ok := obj.Get("ref")
	r.True(ok)
	a.Equal(value.KindPointer, refSlot.Kind())

	r.NoError(doc.RestoreReferences())
	refSlot, _ = obj.Get("ref")
	a.Equal(value.KindPath, refSlot.Kind())

	out, err := doc.Print()
	r.NoError(err)
	a.Equal(text, out)
}

func TestDocumentPrintUsesResolvedPairsForPath(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	text := `{"leaf":5,"ref":"$cppon-path:/leaf"}`
	doc, err := Parse(text, parser.WithMode(parser.ModeFull))
	r.NoError(err)
	defer doc.Close()

	_, err = doc.ResolveReferences()
	r.NoError(err)

	out, err := doc.Print()
	r.NoError(err)
	a.Equal(text, out)
}

func TestDocumentPrintPretty(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	doc, err := Parse(`{"a":1}`, parser.WithMode(parser.ModeFull))
	r.NoError(err)
	defer doc.Close()

	out, err := doc.Print(print.WithPretty())
	r.NoError(err)
	a.Equal("{\n  \"a\":1\n}", out)
}

func TestDocumentArrayAutovivBoundary(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	doc, err := Parse(`[]`, parser.WithMode(parser.ModeFull))
	r.NoError(err)
	defer doc.Close()

	_, err = doc.Navigator().Set(doc.Root(), 1000, value.Int64(1))
	a.ErrorIs(err, nav.ErrExcessiveArrayResize)
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	text := `{"a":1,"b":[true,false,null,"s"]}`
	doc1, err := Parse(text, parser.WithMode(parser.ModeFull))
	r.NoError(err)
	defer doc1.Close()

	doc2, err := Parse(text, parser.WithMode(parser.ModeFull))
	r.NoError(err)
	defer doc2.Close()

	if diff := cmp.Diff(*doc1.Root(), *doc2.Root(), treeDiffOpts); diff != "" {
		t.Errorf("identical input produced different trees (-doc1 +doc2):\n%s", diff)
	}
}

func TestQuickModeRealizesToSameTreeAsFullMode(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	text := `{"n":42,"items":[1,2,3]}`
	quick, err := Parse(text, parser.WithMode(parser.ModeQuick))
	r.NoError(err)
	defer quick.Close()

	full, err := Parse(text, parser.WithMode(parser.ModeFull))
	r.NoError(err)
	defer full.Close()

	obj, ok := quick.Root().Object()
	r.True(ok)
	n, ok := obj.Get("n")
	r.True(ok)
	r.NoError(n.Realize())
	items, ok := obj.Get("items")
	r.True(ok)
	arr, _ := items.Array()
	for i := 0; i < arr.Len(); i++ {
		r.NoError(arr.At(i).Realize())
	}

	if diff := cmp.Diff(*quick.Root(), *full.Root(), treeDiffOpts); diff != "" {
		t.Errorf("lazily-realized quick-mode tree diverged from full-mode tree (-quick +full):\n%s", diff)
	}
}

func TestDocumentClose(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	doc, err := Parse(`{}`)
	r.NoError(err)
	a.Same(doc.Root(), doc.RootStack().CurrentRoot())
	doc.Close()
	a.Panics(func() { doc.RootStack().CurrentRoot() })
}
