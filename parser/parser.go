package parser

import (
	"errors"

	"github.com/cppon-go/cppon/scan"
	"github.com/cppon-go/cppon/value"
)

// parser holds the mutable state of a single parse: the NUL-terminated
// source buffer, the current byte offset, and the configuration that
// shapes the parse (mode, prefixes, dispatcher).
type parser struct {
	buf  []byte // NUL-terminated: len(buf) == len(source)+1
	pos  int
	opts Options
}

// Parse parses text per opts and returns the resulting tree. text need
// not be NUL-terminated itself; Parse copies it into an internally owned
// buffer with a trailing NUL sentinel, which the returned tree's
// borrowed string/base64 views alias — callers must keep the returned
// buffer reachable (e.g. via the root-level Document type) for as long
// as the tree is used.
//
// Empty input parses to null.
func Parse(text string, opt ...Option) (value.Value, []byte, error) {
	var o Options
	for _, f := range opt {
		f(&o)
	}
	o = Normalize(o)

	buf := make([]byte, len(text)+1)
	copy(buf, text)
	// buf[len(text)] is already the zero byte Go allocates.

	p := &parser{buf: buf, opts: o}

	if err := p.checkBOM(); err != nil {
		return value.Value{}, nil, err
	}

	if err := p.skipWS("document"); err != nil {
		if err == errSentinelAtTop {
			return value.Null(), buf, nil
		}
		return value.Value{}, nil, err
	}

	v, err := p.parseValue()
	if err != nil {
		return value.Value{}, nil, err
	}
	return v, buf, nil
}

// errSentinelAtTop signals that skipWS reached the sentinel before any
// value began, i.e. the (trimmed) input is empty. It never escapes this
// package as a real error.
var errSentinelAtTop = errors.New("parser: empty input")

// checkBOM applies the pre-scan guards: reject UTF-32/UTF-16 BOMs,
// reject invalid leading UTF-8 first bytes, and strip a UTF-8 BOM.
func (p *parser) checkBOM() error {
	b := p.buf
	switch {
	case len(b) >= 4 && b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF:
		return syntaxErr(ErrUnexpectedUTF32BOM, 0, "")
	case len(b) >= 4 && b[0] == 0xFF && b[1] == 0xFE && b[2] == 0x00 && b[3] == 0x00:
		return syntaxErr(ErrUnexpectedUTF32BOM, 0, "")
	case len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF:
		return syntaxErr(ErrUnexpectedUTF16BOM, 0, "")
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE:
		return syntaxErr(ErrUnexpectedUTF16BOM, 0, "")
	case len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		p.pos = 3
		return nil
	}
	if len(b) > 0 && b[0] != 0 {
		if b[0]&0xF8 == 0xF8 {
			return syntaxErr(ErrInvalidUTF8Sequence, 0, "")
		}
		if b[0]&0xC0 == 0x80 {
			return syntaxErr(ErrInvalidUTF8Continuation, 0, "")
		}
	}
	return nil
}

// cur returns the byte at p.pos, or 0 if at/after the sentinel.
func (p *parser) cur() byte {
	if p.pos >= len(p.buf) {
		return 0
	}
	return p.buf[p.pos]
}

// atEnd reports whether p has reached the NUL sentinel.
func (p *parser) atEnd() bool { return p.pos >= len(p.buf)-1 }

// skipWS advances past whitespace. If the sentinel is reached with no
// value ever having started (p.pos == 0 semantically, i.e. this is the
// very first skip of the whole document), it returns errSentinelAtTop;
// otherwise reaching the sentinel here is an [ErrUnexpectedEndOfText].
func (p *parser) skipWS(context string) error {
	wasStart := p.pos == 0 || (p.pos == 3 && p.buf[0] == 0xEF)
	next, hitSentinel := scan.SkipWhitespace(p.buf, p.pos, p.opts.TrustedWhitespace)
	p.pos = next
	if hitSentinel {
		if wasStart {
			return errSentinelAtTop
		}
		return syntaxErr(ErrUnexpectedEndOfText, p.pos, context)
	}
	return nil
}

// parseValue dispatches on the current byte.
func (p *parser) parseValue() (value.Value, error) {
	switch c := p.cur(); {
	case c == '"':
		return p.parseString()
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == 'n':
		return p.parseLiteral("null", value.Null())
	case c == 't':
		return p.parseLiteral("true", value.Bool(true))
	case c == 'f':
		return p.parseLiteral("false", value.Bool(false))
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == 0:
		return value.Value{}, syntaxErr(ErrUnexpectedEndOfText, p.pos, "value")
	default:
		return value.Value{}, syntaxErr(ErrUnexpectedSymbol, p.pos, "value")
	}
}

// parseLiteral matches the fixed ASCII keyword lit starting at p.pos and
// returns result on success.
func (p *parser) parseLiteral(lit string, result value.Value) (value.Value, error) {
	start := p.pos
	for i := 0; i < len(lit); i++ {
		if p.pos >= len(p.buf)-1 || p.buf[p.pos] != lit[i] {
			return value.Value{}, syntaxErr(ErrUnexpectedSymbol, start, "value")
		}
		p.pos++
	}
	return result, nil
}
