package print

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/cppon-go/cppon/value"
)

// BufferMode selects how a [Printer]'s reusable output buffer is handled
// across calls.
type BufferMode uint8

const (
	// BufferReset clears the buffer's contents but keeps its capacity.
	BufferReset BufferMode = iota
	// BufferRetain keeps both contents and capacity, appending.
	BufferRetain
	// BufferReserve clears contents and additionally grows capacity to
	// the preallocation heuristic's current estimate.
	BufferReserve
	// BufferNoReserve clears contents without consulting the heuristic.
	BufferNoReserve
)

// Options configures a [Printer]. The zero Options, passed through
// [Normalize], yields cppon's default non-compatible, pretty-off layout.
type Options struct {
	Buffer BufferMode

	Pretty     bool
	Compatible bool
	Flatten    bool

	Margin     int
	Tabulation int

	// CompactAll forces every object to print inline regardless of
	// Pretty. CompactKeys, when non-empty, instead selects inlining by
	// object key name (the object's own key in its parent, not its
	// members' keys).
	CompactAll  bool
	CompactKeys map[string]struct{}

	// ReservePerElement seeds the preallocation heuristic: initial guess
	// is ReservePerElement * element count.
	ReservePerElement int

	// StrictEscape, when non-nil, is called with every string value and
	// object key before it is written; an error from it aborts printing.
	// It validates only: strings are still written verbatim (never
	// re-escaped). The zero value (nil) skips the check.
	StrictEscape func(s string) error
}

// Option mutates Options during construction.
type Option func(*Options)

func WithPretty() Option       { return func(o *Options) { o.Pretty = true } }
func WithCompatible() Option   { return func(o *Options) { o.Compatible = true } }
func WithFlatten() Option      { return func(o *Options) { o.Flatten = true } }
func WithCompactAll() Option   { return func(o *Options) { o.CompactAll = true } }
func WithBuffer(m BufferMode) Option { return func(o *Options) { o.Buffer = m } }
func WithMargin(n int) Option        { return func(o *Options) { o.Margin = n } }
func WithTabulation(n int) Option    { return func(o *Options) { o.Tabulation = n } }

// WithCompactKeys selectively inlines objects reached via one of the
// given keys, regardless of Pretty.
func WithCompactKeys(keys ...string) Option {
	return func(o *Options) {
		if o.CompactKeys == nil {
			o.CompactKeys = make(map[string]struct{}, len(keys))
		}
		for _, k := range keys {
			o.CompactKeys[k] = struct{}{}
		}
	}
}

// CompactKeySet returns o's selective-compaction keys as a sorted slice,
// for diagnostics and deterministic test output, using the common
// `maps.Keys(m); slices.Sort(keys)` idiom for presenting a key-value
// base's keys in a stable order.
func (o Options) CompactKeySet() []string {
	keys := maps.Keys(o.CompactKeys)
	sort.Strings(keys)
	return keys
}

// WithStrictEscape installs the strict-emission validator hook.
func WithStrictEscape(fn func(s string) error) Option {
	return func(o *Options) { o.StrictEscape = fn }
}

// WithReservePerElement seeds the preallocation heuristic.
func WithReservePerElement(n int) Option {
	return func(o *Options) { o.ReservePerElement = n }
}

const defaultReservePerElement = 16

// Normalize fills any zero-valued field of o with its default and
// returns the result; it does not mutate o.
func Normalize(o Options) Options {
	if o.Tabulation == 0 {
		o.Tabulation = 2
	}
	if o.ReservePerElement == 0 {
		o.ReservePerElement = defaultReservePerElement
	}
	return o
}

// FromValue decodes an options object (a parsed JSON object, never a
// re-parsed string) into Options, applied on top of base.
// Recognized keys: "buffer", "layout", "compact", "pretty", "margin",
// "tabulation". An unrecognized shape for any key is [ErrBadOption].
func FromValue(base Options, v value.Value) (Options, error) {
	obj, ok := v.Object()
	if !ok {
		return Options{}, ErrBadOption
	}
	o := base

	if slot, found := obj.Get("buffer"); found {
		if err := decodeBuffer(slot, &o); err != nil {
			return Options{}, err
		}
	}
	if slot, found := obj.Get("layout"); found {
		if err := decodeLayout(slot, &o); err != nil {
			return Options{}, err
		}
	}
	if slot, found := obj.Get("compact"); found {
		if err := decodeCompact(slot, &o); err != nil {
			return Options{}, err
		}
	}
	if slot, found := obj.Get("pretty"); found {
		if slot.Kind() != value.KindBool {
			return Options{}, ErrBadOption
		}
		o.Pretty = slot.Bool()
	}
	if slot, found := obj.Get("margin"); found {
		n, err := decodeInt(slot)
		if err != nil {
			return Options{}, err
		}
		o.Margin = n
	}
	if slot, found := obj.Get("tabulation"); found {
		n, err := decodeInt(slot)
		if err != nil {
			return Options{}, err
		}
		o.Tabulation = n
	}
	return o, nil
}

func decodeInt(v *value.Value) (int, error) {
	switch v.Kind() {
	case value.KindInt64:
		return int(v.Int64()), nil
	case value.KindUint64:
		return int(v.Uint64()), nil
	case value.KindInt32, value.KindInt16, value.KindInt8:
		return int(v.Int64()), nil
	case value.KindUint32, value.KindUint16, value.KindUint8:
		return int(v.Uint64()), nil
	default:
		return 0, ErrBadOption
	}
}

func decodeBuffer(v *value.Value, o *Options) error {
	if v.Kind().IsString() {
		switch v.Text() {
		case "reset":
			o.Buffer = BufferReset
		case "retain":
			o.Buffer = BufferRetain
		case "reserve":
			o.Buffer = BufferReserve
		case "noreserve":
			o.Buffer = BufferNoReserve
		default:
			return ErrBadOption
		}
		return nil
	}
	obj, ok := v.Object()
	if !ok {
		return ErrBadOption
	}
	if slot, found := obj.Get("mode"); found {
		if err := decodeBuffer(slot, o); err != nil {
			return err
		}
	}
	if slot, found := obj.Get("reserve_per_element"); found {
		n, err := decodeInt(slot)
		if err != nil {
			return err
		}
		o.ReservePerElement = n
	}
	return nil
}

func decodeLayout(v *value.Value, o *Options) error {
	if v.Kind().IsString() {
		switch v.Text() {
		case "json":
			o.Compatible = true
			o.Flatten = false
		case "flatten":
			o.Flatten = true
		case "cppon":
			// defaults; nothing to set
		default:
			return ErrBadOption
		}
		return nil
	}
	obj, ok := v.Object()
	if !ok {
		return ErrBadOption
	}
	if slot, found := obj.Get("compatible"); found {
		if slot.Kind() != value.KindBool {
			return ErrBadOption
		}
		o.Compatible = slot.Bool()
	}
	if slot, found := obj.Get("flatten"); found {
		if slot.Kind() != value.KindBool {
			return ErrBadOption
		}
		o.Flatten = slot.Bool()
	}
	return nil
}

func decodeCompact(v *value.Value, o *Options) error {
	if v.Kind() == value.KindBool {
		o.CompactAll = v.Bool()
		return nil
	}
	arr, ok := v.Array()
	if !ok {
		return ErrBadOption
	}
	o.CompactKeys = make(map[string]struct{}, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		elem := arr.At(i)
		if !elem.Kind().IsString() {
			return ErrBadOption
		}
		o.CompactKeys[elem.Text()] = struct{}{}
	}
	return nil
}
