package print

import (
	"testing"

	"github.com/cppon-go/cppon/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func objOf(t *testing.T, pairs map[string]value.Value) value.Value {
	t.Helper()
	v := value.NewObject(len(pairs))
	o, _ := v.Object()
	for k, val := range pairs {
		o.Set(k, val)
	}
	return v
}

func TestNormalizeDefaults(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	o := Normalize(Options{})
	a.Equal(2, o.Tabulation)
	a.Equal(defaultReservePerElement, o.ReservePerElement)
}

func TestWithCompactKeysAndSet(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	var o Options
	WithCompactKeys("a", "b")(&o)
	a.Equal([]string{"a", "b"}, o.CompactKeySet())
}

func TestFromValuePretty(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v := objOf(t, map[string]value.Value{"pretty": value.Bool(true)})
	o, err := FromValue(Options{}, v)
	r.NoError(err)
	a.True(o.Pretty)
}

func TestFromValueBadShape(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	_, err := FromValue(Options{}, value.Int64(1))
	a.ErrorIs(err, ErrBadOption)
}

func TestFromValueLayoutString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v := objOf(t, map[string]value.Value{"layout": value.BorrowedString("json")})
	o, err := FromValue(Options{}, v)
	r.NoError(err)
	a.True(o.Compatible)
	a.False(o.Flatten)

	v = objOf(t, map[string]value.Value{"layout": value.BorrowedString("flatten")})
	o, err = FromValue(Options{}, v)
	r.NoError(err)
	a.True(o.Flatten)

	v = objOf(t, map[string]value.Value{"layout": value.BorrowedString("bogus")})
	_, err = FromValue(Options{}, v)
	a.ErrorIs(err, ErrBadOption)
}

func TestFromValueLayoutObject(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	layout := objOf(t, map[string]value.Value{
		"compatible": value.Bool(true),
		"flatten":    value.Bool(true),
	})
	v := objOf(t, map[string]value.Value{"layout": layout})
	o, err := FromValue(Options{}, v)
	r.NoError(err)
	a.True(o.Compatible)
	a.True(o.Flatten)
}

func TestFromValueCompactBool(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v := objOf(t, map[string]value.Value{"compact": value.Bool(true)})
	o, err := FromValue(Options{}, v)
	r.NoError(err)
	a.True(o.CompactAll)
}

func TestFromValueCompactKeys(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	keys := value.NewArray(2)
	arr, _ := keys.Array()
	arr.Append(value.BorrowedString("a"))
	arr.Append(value.BorrowedString("b"))
	v := objOf(t, map[string]value.Value{"compact": keys})
	o, err := FromValue(Options{}, v)
	r.NoError(err)
	a.Equal([]string{"a", "b"}, o.CompactKeySet())
}

func TestFromValueCompactBadElement(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	keys := value.NewArray(1)
	arr, _ := keys.Array()
	arr.Append(value.Int64(1))
	v := objOf(t, map[string]value.Value{"compact": keys})
	_, err := FromValue(Options{}, v)
	a.ErrorIs(err, ErrBadOption)
}

func TestFromValueBuffer(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v := objOf(t, map[string]value.Value{"buffer": value.BorrowedString("retain")})
	o, err := FromValue(Options{}, v)
	r.NoError(err)
	a.Equal(BufferRetain, o.Buffer)

	bufObj := objOf(t, map[string]value.Value{
		"mode":                value.BorrowedString("reserve"),
		"reserve_per_element": value.Int64(32),
	})
	v = objOf(t, map[string]value.Value{"buffer": bufObj})
	o, err = FromValue(Options{}, v)
	r.NoError(err)
	a.Equal(BufferReserve, o.Buffer)
	a.Equal(32, o.ReservePerElement)
}

func TestFromValueMarginAndTabulation(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v := objOf(t, map[string]value.Value{
		"margin":     value.Int64(4),
		"tabulation": value.Int64(8),
	})
	o, err := FromValue(Options{}, v)
	r.NoError(err)
	a.Equal(4, o.Margin)
	a.Equal(8, o.Tabulation)
}

func TestFromValueBadInt(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	v := objOf(t, map[string]value.Value{"margin": value.BorrowedString("x")})
	_, err := FromValue(Options{}, v)
	a.ErrorIs(err, ErrBadOption)
}
