package print

import (
	"bytes"
	"strconv"

	"github.com/cppon-go/cppon/codec"
	"github.com/cppon-go/cppon/parser"
	"github.com/cppon-go/cppon/ref"
	"github.com/cppon-go/cppon/value"
)

// jsonCompatMax is the largest (and, negated, the smallest) integer
// compatible mode allows: ±(2^53 - 1), the exact-integer range of an
// IEEE-754 double.
const jsonCompatMax = 1<<53 - 1

// Printer serializes a value tree, reusing its output buffer and
// per-element size estimate across calls as a thread-isolated, reusable
// emission state. A Printer is not safe for concurrent use; give each
// goroutine its own, mirroring [value.RootStack].
type Printer struct {
	buf  bytes.Buffer
	opts Options
	rs   *value.RootStack
	root *value.Value

	pairs []ref.Pair

	meanUsage int // running per-element usage estimate, elements seen so far
	elemSeen  int
}

// New returns a Printer that resolves absolute paths and path tokens
// against rs.
func New(rs *value.RootStack, opt ...Option) *Printer {
	var o Options
	for _, f := range opt {
		f(&o)
	}
	return &Printer{opts: Normalize(o), rs: rs}
}

// SetPairs installs the resolver's path/pointer pair list so Print can
// reverse-look-up a raw pointer's original path in O(n) instead of
// falling back to a DFS via [ref.FindObjectPath].
func (p *Printer) SetPairs(pairs []ref.Pair) { p.pairs = pairs }

// Print serializes root and returns the emitted text.
func (p *Printer) Print(root *value.Value) (string, error) {
	p.root = root
	p.prepareBuffer(root)

	if err := p.writeValue(root, 0); err != nil {
		return "", err
	}

	out := p.buf.String()
	p.recordUsage(len(out))
	return out, nil
}

func (p *Printer) prepareBuffer(root *value.Value) {
	switch p.opts.Buffer {
	case BufferRetain:
		// keep contents and capacity; append
	case BufferReserve:
		p.buf.Reset()
		p.buf.Grow(p.opts.ReservePerElement * countElements(root))
	case BufferNoReserve:
		p.buf.Reset()
	default: // BufferReset
		p.buf.Reset()
		if p.meanUsage > 0 {
			p.buf.Grow(p.meanUsage * countElements(root))
		}
	}
}

// recordUsage implements the preallocation heuristic: if actual usage
// exceeded the predicted mean, recompute the per-element average from
// this run so the next call's guess improves.
func (p *Printer) recordUsage(actual int) {
	n := countElements(p.root)
	if n == 0 {
		return
	}
	p.elemSeen += n
	predicted := p.opts.ReservePerElement * n
	if actual > predicted {
		p.meanUsage = actual / n
		p.opts.ReservePerElement = p.meanUsage
	}
}

func countElements(v *value.Value) int {
	switch v.Kind() {
	case value.KindArray:
		arr, _ := v.Array()
		n := 1
		for i := 0; i < arr.Len(); i++ {
			n += countElements(arr.At(i))
		}
		return n
	case value.KindObject:
		obj, _ := v.Object()
		n := 1
		for i := 0; i < obj.Len(); i++ {
			n += countElements(&obj.Pair(i).Val)
		}
		return n
	default:
		return 1
	}
}

func (p *Printer) writeValue(v *value.Value, depth int) error {
	switch v.Kind() {
	case value.KindObject:
		return p.writeObject(v, depth, "")
	case value.KindArray:
		return p.writeArray(v, depth)
	case value.KindBool:
		if v.Bool() {
			p.buf.WriteString("true")
		} else {
			p.buf.WriteString("false")
		}
		return nil
	case value.KindNull:
		p.buf.WriteString("null")
		return nil
	case value.KindLazyNumber:
		p.buf.WriteString(v.Text())
		return nil
	case value.KindDouble, value.KindFloat,
		value.KindInt8, value.KindUint8, value.KindInt16, value.KindUint16,
		value.KindInt32, value.KindUint32, value.KindInt64, value.KindUint64:
		return p.writeNumber(v)
	case value.KindBorrowedString, value.KindOwnedString:
		return p.writeQuoted(v.Text())
	case value.KindBorrowedBase64:
		return p.writeQuoted(p.pathOrBlobPrefix(false) + v.Text())
	case value.KindOwnedBlob:
		return p.writeQuoted(p.pathOrBlobPrefix(false) + codec.EncodeBase64(v.Blob()))
	case value.KindPath:
		return p.writeQuoted(p.pathOrBlobPrefix(true) + v.Text())
	case value.KindPointer:
		return p.writePointer(v, depth)
	default:
		return ErrBadOption
	}
}

func (p *Printer) pathOrBlobPrefix(path bool) string {
	if path {
		return parser.DefaultPathPrefix
	}
	return parser.DefaultBlobPrefix
}

func (p *Printer) writeQuoted(s string) error {
	if p.opts.StrictEscape != nil {
		if err := p.opts.StrictEscape(s); err != nil {
			return err
		}
	}
	p.buf.WriteByte('"')
	p.buf.WriteString(s)
	p.buf.WriteByte('"')
	return nil
}

func (p *Printer) writeNumber(v *value.Value) error {
	switch v.Kind() {
	case value.KindDouble:
		return p.writeFloatLike(v.Double(), 64, false)
	case value.KindFloat:
		return p.writeFloatLike(float64(v.Float()), 32, true)
	case value.KindInt64:
		n := v.Int64()
		if p.opts.Compatible && (n > jsonCompatMax || n < -jsonCompatMax) {
			return ErrJSONCompatibility
		}
		p.buf.WriteString(strconv.FormatInt(n, 10))
		return nil
	case value.KindUint64:
		if p.opts.Compatible && v.Uint64() > jsonCompatMax {
			return ErrJSONCompatibility
		}
		p.buf.WriteString(strconv.FormatUint(v.Uint64(), 10))
		if !p.opts.Compatible {
			p.buf.WriteByte('u')
		}
		return nil
	default:
		return p.writeSizedInt(v)
	}
}

func (p *Printer) writeSizedInt(v *value.Value) error {
	n := v.Int64()
	if p.opts.Compatible && (n > jsonCompatMax || n < -jsonCompatMax) {
		return ErrJSONCompatibility
	}
	p.buf.WriteString(strconv.FormatInt(n, 10))
	if !p.opts.Compatible {
		p.buf.WriteString(typeSuffix(v.Kind()))
	}
	return nil
}

func typeSuffix(k value.Kind) string {
	switch k {
	case value.KindInt8:
		return "i8"
	case value.KindUint8:
		return "u8"
	case value.KindInt16:
		return "i16"
	case value.KindUint16:
		return "u16"
	case value.KindInt32:
		return "i32"
	case value.KindUint32:
		return "u32"
	default:
		return ""
	}
}

// writeFloatLike formats a double or float with the shortest
// representation that round-trips at bitSize, forcing a trailing ".0"
// when the result would otherwise look integral, and appending the
// float suffix in non-compatible mode.
func (p *Printer) writeFloatLike(f float64, bitSize int, isFloat32 bool) error {
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !bytes.ContainsAny([]byte(s), ".eE") {
		s += ".0"
	}
	p.buf.WriteString(s)
	if isFloat32 && !p.opts.Compatible {
		p.buf.WriteByte('f')
	}
	return nil
}

func (p *Printer) writePointer(v *value.Value, depth int) error {
	target := v.PointerTarget()

	if p.opts.Flatten && target != nil && !ref.IsCyclic(v) {
		return p.writeValue(target, depth)
	}

	path, ok := "", false
	if target != nil {
		if p.pairs != nil {
			path, ok = ref.LookupPath(p.pairs, v)
		}
		if !ok {
			path, ok = ref.FindObjectPath(p.root, target)
			if ok {
				path = "/" + path
			}
		}
	}
	if !ok {
		path = "/"
	}
	return p.writeQuoted(p.pathOrBlobPrefix(true) + path)
}

func (p *Printer) writeArray(v *value.Value, depth int) error {
	arr, _ := v.Array()
	p.buf.WriteByte('[')
	n := arr.Len()
	for i := 0; i < n; i++ {
		if i > 0 {
			p.buf.WriteByte(',')
		}
		p.newlineIndent(depth + 1)
		if err := p.writeValue(arr.At(i), depth+1); err != nil {
			return err
		}
	}
	if n > 0 {
		p.newlineIndent(depth)
	}
	p.buf.WriteByte(']')
	return nil
}

func (p *Printer) writeObject(v *value.Value, depth int, selfKey string) error {
	obj, _ := v.Object()
	compact := p.opts.CompactAll || !p.opts.Pretty
	if !compact && p.opts.CompactKeys != nil {
		if _, ok := p.opts.CompactKeys[selfKey]; ok {
			compact = true
		}
	}

	p.buf.WriteByte('{')
	n := obj.Len()
	for i := 0; i < n; i++ {
		pr := obj.Pair(i)
		if i > 0 {
			p.buf.WriteByte(',')
		}
		if !compact {
			p.newlineIndent(depth + 1)
		}
		if err := p.writeQuoted(pr.Key); err != nil {
			return err
		}
		p.buf.WriteByte(':')
		if err := p.writeMember(&pr.Val, depth+1, pr.Key); err != nil {
			return err
		}
	}
	if n > 0 && !compact {
		p.newlineIndent(depth)
	}
	p.buf.WriteByte('}')
	return nil
}

// writeMember dispatches like writeValue but threads the member's own
// key through to writeObject, so selective compaction-by-key
// ("compact": [...]) can match on it.
func (p *Printer) writeMember(v *value.Value, depth int, key string) error {
	if v.Kind() == value.KindObject {
		return p.writeObject(v, depth, key)
	}
	return p.writeValue(v, depth)
}

func (p *Printer) newlineIndent(depth int) {
	if !p.opts.Pretty {
		return
	}
	p.buf.WriteByte('\n')
	for i := 0; i < p.opts.Margin+depth*p.opts.Tabulation; i++ {
		p.buf.WriteByte(' ')
	}
}
