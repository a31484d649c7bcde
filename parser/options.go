package parser

import "github.com/cppon-go/cppon/scan"

// Mode selects how much work the parser does beyond structural
// validation.
type Mode uint8

const (
	// ModeEval builds the tree, converting numbers eagerly but leaving
	// base64 as tokens. It is the zero Mode, and so the default.
	ModeEval Mode = iota
	// ModeParse only validates structure; no tree is built, and the
	// parse result is a null node.
	ModeParse
	// ModeQuick builds the tree, leaving numbers as lazy tokens and
	// base64 blobs as base64 tokens.
	ModeQuick
	// ModeFull builds the tree, converting numbers and decoding base64
	// into owned blobs.
	ModeFull
)

func (m Mode) buildsTree() bool { return m != ModeParse }
func (m Mode) eagerNumbers() bool { return m == ModeEval || m == ModeFull }
func (m Mode) eagerBlobs() bool   { return m == ModeFull }

// Defaults for the parser's configuration knobs.
const (
	DefaultPathPrefix   = "$cppon-path:"
	DefaultBlobPrefix   = "$cppon-blob:"
	DefaultNumberPrefix = "$cppon-number:"

	DefaultObjectReserve = 8
	DefaultArrayReserve  = 8
)

// Options configures a parse. The zero Options, passed through
// [Normalize], yields the documented defaults below.
type Options struct {
	Mode Mode

	// PathPrefix and BlobPrefix select the string prefixes that mark a
	// path token or a blob token in JSON string literals. Both must be
	// ASCII and begin with '$'.
	PathPrefix string
	BlobPrefix string

	// NumberPrefix is a reserved configuration knob, kept alongside the
	// path/blob prefixes, with no grammar rule consuming
	// it yet: cppon's number literals are always bare, never prefixed
	// strings. Kept so a future numeric-literal-as-string extension has
	// a place to read its prefix from, the way the printer's
	// StrictEscape hook reserves a seam for stricter emission.
	NumberPrefix string

	ObjectReserve int
	ArrayReserve  int

	// MaxArrayDelta bounds autovivification growth; it has no effect on
	// parsing (arrays grow one element at a time while parsing a JSON
	// array literal) but is threaded through to a [nav.Navigator] built
	// from the same Options, so a single configuration object covers
	// both entry points into the tree.
	MaxArrayDelta int

	// TrustedWhitespace opts into a relaxed whitespace predicate (any
	// byte in 0x01..0x20). Default false: strict JSON whitespace only.
	TrustedWhitespace bool

	// Dispatcher binds the scanner primitives' SIMD level. A nil
	// Dispatcher uses [scan.NewDispatcher] with [scan.DefaultQuerier].
	Dispatcher *scan.Dispatcher
}

// Option mutates Options during construction.
type Option func(*Options)

// WithMode sets the parse mode.
func WithMode(m Mode) Option { return func(o *Options) { o.Mode = m } }

// WithPrefixes overrides the path/blob string prefixes.
func WithPrefixes(pathPrefix, blobPrefix string) Option {
	return func(o *Options) { o.PathPrefix, o.BlobPrefix = pathPrefix, blobPrefix }
}

// WithTrustedWhitespace opts into the relaxed whitespace predicate.
func WithTrustedWhitespace() Option { return func(o *Options) { o.TrustedWhitespace = true } }

// WithDispatcher supplies a pre-configured scanner dispatcher, e.g. one
// with a process-wide or thread-local SIMD override already applied.
func WithDispatcher(d *scan.Dispatcher) Option { return func(o *Options) { o.Dispatcher = d } }

// WithReserve overrides the object/array initial reserve.
func WithReserve(object, array int) Option {
	return func(o *Options) { o.ObjectReserve, o.ArrayReserve = object, array }
}

// Normalize fills any zero-valued field of o with its documented
// default and returns the result; it does not mutate o.
func Normalize(o Options) Options {
	if o.PathPrefix == "" {
		o.PathPrefix = DefaultPathPrefix
	}
	if o.BlobPrefix == "" {
		o.BlobPrefix = DefaultBlobPrefix
	}
	if o.NumberPrefix == "" {
		o.NumberPrefix = DefaultNumberPrefix
	}
	if o.ObjectReserve == 0 {
		o.ObjectReserve = DefaultObjectReserve
	}
	if o.ArrayReserve == 0 {
		o.ArrayReserve = DefaultArrayReserve
	}
	if o.MaxArrayDelta == 0 {
		o.MaxArrayDelta = 256
	}
	if o.Dispatcher == nil {
		o.Dispatcher = scan.NewDispatcher(scan.DefaultQuerier)
	}
	return o
}
