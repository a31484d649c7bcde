/*
Package cppon provides an in-memory JSON-superset value model together
with the parser, navigator, and printer that operate on it: zero-copy
string views over the source buffer, lazy numeric and base64 tokens,
path-based navigation with write-path autovivification, and a reference
resolver that converts textual absolute-path references into direct
in-tree pointers (and back).

# Component Equivalents

List of the subsystems and their package homes:

  - Value tree, containers, root stack: [value]
  - Scanner primitives (quote search, digit runs, SIMD dispatch): [scan]
  - Base64 and lazy-number conversion: [codec]
  - Parser (BOM guards, string/number/array/object acceptance): [parser]
  - Navigator (single-dispatch index forms, autovivification): [nav]
  - Reference resolver (path↔pointer, cycle detection): [ref]
  - Printer (layout, compaction, flatten, JSON-compatibility): [print]

# Typical Use

Parse a document, resolve its path references into pointers for fast
repeated traversal, navigate and mutate it, then print it back out:

	doc, err := cppon.Parse(text)
	if err != nil {
		return err
	}
	pairs, err := doc.ResolveReferences()
	if err != nil {
		return err
	}
	if _, err := doc.Navigator().Set(doc.Root(), "/settings/retries", value.Int64(3)); err != nil {
		return err
	}
	out, err := doc.Print(print.WithPretty())
	_ = pairs

# Errors

Every error [Parse], [Document.Print], and [Document.ResolveReferences]
can return wraps ErrCPPON, which in turn wraps whichever sub-package
sentinel actually failed.
*/
package cppon

import (
	"errors"
	"fmt"

	"github.com/cppon-go/cppon/nav"
	"github.com/cppon-go/cppon/parser"
	"github.com/cppon-go/cppon/print"
	"github.com/cppon-go/cppon/ref"
	"github.com/cppon-go/cppon/scan"
	"github.com/cppon-go/cppon/value"
)

// ErrCPPON wraps every error this package returns, including those
// propagated from its sub-packages.
var ErrCPPON = errors.New("cppon")

// Document owns a parsed tree together with the execution context its
// operations need: the source buffer its borrowed views alias, the root
// stack absolute-path resolution consults, and the scanner dispatcher
// resolved from its parse options.
//
// A Document is not safe for concurrent use; give each goroutine its
// own.
type Document struct {
	buf  []byte
	root value.Value

	sentinel   *value.Sentinel
	rootStack  *value.RootStack
	dispatcher *scan.Dispatcher

	nav *nav.Navigator

	pairs []ref.Pair
}

// Parse parses text into a new Document using opt (see [parser.Option]).
// Returns an error wrapping ErrCPPON (and, transitively, the relevant
// [parser] sentinel) on malformed input.
func Parse(text string, opt ...parser.Option) (*Document, error) {
	sentinel := value.NewSentinel()
	rootStack := value.NewRootStack(sentinel)

	o := parser.Normalize(applyOptions(opt))

	root, buf, err := parser.Parse(text, opt...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCPPON, err)
	}

	d := &Document{
		buf:        buf,
		root:       root,
		sentinel:   sentinel,
		rootStack:  rootStack,
		dispatcher: o.Dispatcher,
	}
	d.rootStack.PushRoot(&d.root)
	d.nav = nav.New(d.rootStack, o.MaxArrayDelta)
	return d, nil
}

// applyOptions replays opt into a bare parser.Options so Parse can read
// back the dispatcher/array-delta knobs the caller configured, without
// parser needing to export its internal accumulation step twice.
func applyOptions(opt []parser.Option) parser.Options {
	var o parser.Options
	for _, f := range opt {
		f(&o)
	}
	return o
}

// Root returns a pointer to d's tree root.
func (d *Document) Root() *value.Value { return &d.root }

// Navigator returns d's navigator, bound to d's root stack and
// configured array-growth cap.
func (d *Document) Navigator() *nav.Navigator { return d.nav }

// RootStack returns d's root stack, for callers that need to push a
// nested root (e.g. to resolve an absolute path against a subtree).
func (d *Document) RootStack() *value.RootStack { return d.rootStack }

// Close removes d's root from its root stack. Callers that keep a
// Document alive only transiently may skip calling Close; it exists for
// long-lived processes that parse many short-lived documents sharing one
// root stack's thread context (a tree is destroyed by dropping its
// root, which must be removed from the root stack).
func (d *Document) Close() {
	d.rootStack.PopRoot(&d.root)
}

// ResolveReferences converts every path-token node reachable from d's
// root into a raw in-tree pointer (or a null pointer if its path is
// broken), and retains the path/pointer pair list so later printing can
// reverse-look-up a pointer's original path in O(n) and so
// [Document.RestoreReferences] can undo the conversion.
func (d *Document) ResolveReferences() ([]ref.Pair, error) {
	pairs := ref.FindReferences(&d.root)
	resolved, err := ref.ResolvePaths(d.rootStack, &d.root, pairs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCPPON, err)
	}
	d.pairs = resolved
	return resolved, nil
}

// RestoreReferences reverses the last [Document.ResolveReferences] call,
// replacing every resolved pointer slot with a path-token node bearing
// its original path string.
func (d *Document) RestoreReferences() error {
	if err := ref.RestorePaths(d.pairs); err != nil {
		return fmt.Errorf("%w: %w", ErrCPPON, err)
	}
	d.pairs = nil
	return nil
}

// Print serializes d's tree using opt (see [print.Option]). If
// [Document.ResolveReferences] was called and not yet restored, the
// printer uses its pair list for pointer reverse-lookup.
func (d *Document) Print(opt ...print.Option) (string, error) {
	p := print.New(d.rootStack, opt...)
	if d.pairs != nil {
		p.SetPairs(d.pairs)
	}
	out, err := p.Print(&d.root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCPPON, err)
	}
	return out, nil
}
