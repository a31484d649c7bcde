package parser

import "github.com/cppon-go/cppon/value"

// parseNumber accepts a numeric literal (optional sign, integer part,
// optional fraction/exponent, optional typed suffix) and records it as
// a lazy number token, realizing immediately if the parse mode calls
// for eager numbers.
func (p *parser) parseNumber() (value.Value, error) {
	start := p.pos

	if p.cur() == '-' {
		p.pos++
	}

	// Step 2: a leading zero is exactly one digit; otherwise a digit run.
	if p.cur() == '0' {
		p.pos++
	} else if p.cur() >= '1' && p.cur() <= '9' {
		p.pos = p.opts.Dispatcher.ScanDigits(p.buf, p.pos)
	} else {
		return value.Value{}, syntaxErr(ErrUnexpectedSymbol, p.pos, "number")
	}

	kind := value.NumInt64

	// Step 3: fractional part.
	if p.cur() == '.' && p.peekIsDigit(1) {
		p.pos++ // consume '.'
		p.pos = p.opts.Dispatcher.ScanDigits(p.buf, p.pos)
		kind = value.NumDouble
	} else if c := p.cur(); c == 'i' || c == 'I' || c == 'u' || c == 'U' {
		// Step 4: typed-integer suffix marker (sign taken from the letter).
		signed := c == 'i' || c == 'I'
		p.pos++
		kind = p.classifySuffixWidth(signed)
		return p.finishNumber(start, kind)
	}

	// Step 5: exponent, only for an otherwise-unsuffixed number.
	if kind == value.NumInt64 || kind == value.NumDouble {
		if c := p.cur(); c == 'e' || c == 'E' {
			p.pos++
			if c2 := p.cur(); c2 == '+' || c2 == '-' {
				p.pos++
			}
			if !p.peekIsDigit(0) {
				return value.Value{}, syntaxErr(ErrUnexpectedSymbol, p.pos, "number")
			}
			p.pos = p.opts.Dispatcher.ScanDigits(p.buf, p.pos)
			kind = value.NumDouble
		}
	}

	// Step 6: float suffix promotes a double to float.
	if kind == value.NumDouble {
		if c := p.cur(); c == 'f' || c == 'F' {
			p.pos++
			kind = value.NumFloat
		}
	}

	return p.finishNumber(start, kind)
}

// peekIsDigit reports whether the byte offset bytes ahead of the current
// position is an ASCII digit.
func (p *parser) peekIsDigit(offset int) bool {
	i := p.pos + offset
	return i < len(p.buf)-1 && p.buf[i] >= '0' && p.buf[i] <= '9'
}

// classifySuffixWidth implements step 7: decode the width suffix
// following an 'i'/'u' marker. Any byte after the marker other than
// '8'/'1'/'3'/'6' defaults to 64-bit.
func (p *parser) classifySuffixWidth(signed bool) value.NumKind {
	switch p.cur() {
	case '8':
		p.pos++
		if signed {
			return value.NumInt8
		}
		return value.NumUint8
	case '1':
		p.pos++
		if p.cur() == '6' {
			p.pos++
		}
		if signed {
			return value.NumInt16
		}
		return value.NumUint16
	case '3':
		p.pos++
		if p.cur() == '2' {
			p.pos++
		}
		if signed {
			return value.NumInt32
		}
		return value.NumUint32
	case '6':
		p.pos++
		if p.cur() == '4' {
			p.pos++
		}
		if signed {
			return value.NumInt64
		}
		return value.NumUint64
	default:
		if signed {
			return value.NumInt64
		}
		return value.NumUint64
	}
}

// finishNumber records the full token byte range (start..p.pos) and
// kind as a lazy number, realizing it immediately for eager-number
// modes.
func (p *parser) finishNumber(start int, kind value.NumKind) (value.Value, error) {
	text := string(p.buf[start:p.pos])
	v := value.LazyNumber(text, kind)
	if p.opts.Mode.eagerNumbers() {
		if err := v.Realize(); err != nil {
			return value.Value{}, err
		}
	}
	return v, nil
}
