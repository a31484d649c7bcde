package parser

import (
	"testing"

	"github.com/cppon-go/cppon/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberBareInt(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v, _, err := Parse("42", WithMode(ModeFull))
	r.NoError(err)
	a.Equal(value.KindInt64, v.Kind())
	a.Equal(int64(42), v.Int64())
}

func TestParseNumberNegative(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v, _, err := Parse("-7", WithMode(ModeFull))
	r.NoError(err)
	a.Equal(int64(-7), v.Int64())
}

func TestParseNumberLeadingZero(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v, _, err := Parse("0", WithMode(ModeFull))
	r.NoError(err)
	a.Equal(int64(0), v.Int64())
}

func TestParseNumberFraction(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v, _, err := Parse("3.5", WithMode(ModeFull))
	r.NoError(err)
	a.Equal(value.KindDouble, v.Kind())
	a.InDelta(3.5, v.Double(), 0)
}

func TestParseNumberExponent(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v, _, err := Parse("1e3", WithMode(ModeFull))
	r.NoError(err)
	a.Equal(value.KindDouble, v.Kind())
	a.InDelta(1000.0, v.Double(), 0)
}

func TestParseNumberFloatSuffix(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v, _, err := Parse("3.5f", WithMode(ModeFull))
	r.NoError(err)
	a.Equal(value.KindFloat, v.Kind())
}

func TestParseNumberTypedSuffixes(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	cases := []struct {
		text string
		kind value.Kind
	}{
		{"7i8", value.KindInt8},
		{"7u8", value.KindUint8},
		{"7i16", value.KindInt16},
		{"7u16", value.KindUint16},
		{"7i32", value.KindInt32},
		{"7u32", value.KindUint32},
		{"7i64", value.KindInt64},
		{"7u64", value.KindUint64},
		{"7i", value.KindInt64},
		{"7u", value.KindUint64},
	}
	for _, c := range cases {
		v, _, err := Parse(c.text, WithMode(ModeFull))
		r.NoError(err, c.text)
		a.Equal(c.kind, v.Kind(), c.text)
	}
}

func TestParseNumberLazyUntilRealized(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v, _, err := Parse("42", WithMode(ModeQuick))
	r.NoError(err)
	a.Equal(value.KindLazyNumber, v.Kind())

	r.NoError(v.Realize())
	a.Equal(int64(42), v.Int64())
}

func TestParseNumberBadExponent(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	_, _, err := Parse("1e")
	a.ErrorIs(err, ErrUnexpectedSymbol)
}
