package codec

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotLazyNumber is returned by [Realize] when form is not one of the
// declared Form constants. Text that does not parse under a valid form
// yields the strconv error instead.
var ErrNotLazyNumber = errors.New("codec: not a lazy number")

// Form classifies the lexical form of a numeric literal, independent of
// the value package's own NumKind enum, which maps onto Form when it
// calls [Realize].
type Form uint8

const (
	FormInt64 Form = iota
	FormDouble
	FormFloat
	FormInt8
	FormUint8
	FormInt16
	FormUint16
	FormInt32
	FormUint32
	FormUint64
)

// suffixLen is the number of trailing bytes [Realize] strips from text
// before handing the mantissa to strconv, for each typed-suffix Form.
// FormInt64 and FormUint64 are variable (1 byte for "i"/"u", 3 for
// "i64"/"u64") and handled specially.
var suffixLen = map[Form]int{
	FormFloat:  1, // f/F
	FormInt8:   2, // i8
	FormUint8:  2, // u8
	FormInt16:  3, // i16
	FormUint16: 3, // u16
	FormInt32:  3, // i32
	FormUint32: 3, // u32
}

// Number is the realized value of a numeric literal: exactly one of I64,
// U64, F64, or F32 is meaningful, selected by Form.
type Number struct {
	Form Form
	I64  int64
	U64  uint64
	F64  float64
	F32  float32
}

// Realize parses text — the full verbatim source range of a numeric
// literal, suffix included — per form, and returns the concrete value.
// Overflow and syntax errors from the underlying strconv call are
// returned unwrapped rather than translated or swallowed.
func Realize(text string, form Form) (Number, error) {
	mantissa := text
	switch form {
	case FormDouble:
		// No suffix to strip.
	case FormInt64, FormUint64:
		// The suffix marker may be either case: i, I, u, or U.
		if k := strings.IndexAny(mantissa, "iIuU"); k >= 0 {
			mantissa = mantissa[:k]
		}
	default:
		if n, ok := suffixLen[form]; ok && len(mantissa) >= n {
			mantissa = mantissa[:len(mantissa)-n]
		}
	}

	switch form {
	case FormDouble:
		f, err := strconv.ParseFloat(mantissa, 64)
		return Number{Form: form, F64: f}, err
	case FormFloat:
		f, err := strconv.ParseFloat(mantissa, 32)
		return Number{Form: form, F32: float32(f)}, err
	case FormInt64, FormInt8, FormInt16, FormInt32:
		n, err := strconv.ParseInt(mantissa, 10, bitsFor(form))
		return Number{Form: form, I64: n}, err
	case FormUint64, FormUint8, FormUint16, FormUint32:
		n, err := strconv.ParseUint(mantissa, 10, bitsFor(form))
		return Number{Form: form, U64: n}, err
	default:
		return Number{}, ErrNotLazyNumber
	}
}

func bitsFor(form Form) int {
	switch form {
	case FormInt8, FormUint8:
		return 8
	case FormInt16, FormUint16:
		return 16
	case FormInt32, FormUint32:
		return 32
	default:
		return 64
	}
}
