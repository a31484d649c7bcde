package parser

import "github.com/cppon-go/cppon/value"

// parseArray accepts a JSON array literal: '[' whitespace (']' | value
// (',' value)* ']'), recursing into parseValue for each element.
func (p *parser) parseArray() (value.Value, error) {
	p.pos++ // skip '['
	if err := p.skipWSIn("array"); err != nil {
		return value.Value{}, err
	}

	buildsTree := p.opts.Mode.buildsTree()
	result := value.Null()
	var arr *value.Array
	if buildsTree {
		result = value.NewArray(p.opts.ArrayReserve)
		arr, _ = result.Array()
	}

	if p.cur() == ']' {
		p.pos++
		return result, nil
	}

	for {
		elem, err := p.parseValue()
		if err != nil {
			return value.Value{}, err
		}
		if buildsTree {
			arr.Append(elem)
		}

		if err := p.skipWSIn("array"); err != nil {
			return value.Value{}, err
		}
		switch p.cur() {
		case ',':
			p.pos++
			if err := p.skipWSIn("array"); err != nil {
				return value.Value{}, err
			}
		case ']':
			p.pos++
			return result, nil
		case 0:
			return value.Value{}, syntaxErr(ErrUnexpectedEndOfText, p.pos, "array")
		default:
			return value.Value{}, syntaxErr(ErrExpectedSymbol, p.pos, "array")
		}
	}
}

// parseObject accepts a JSON object literal: '{' whitespace ('}' |
// member (',' member)* '}'), where member is STRING ':' value. Duplicate
// keys are preserved verbatim on parse: the parser always appends,
// never updates in place (lookup is left to return the first match).
func (p *parser) parseObject() (value.Value, error) {
	p.pos++ // skip '{'
	if err := p.skipWSIn("object"); err != nil {
		return value.Value{}, err
	}

	buildsTree := p.opts.Mode.buildsTree()
	result := value.Null()
	var obj *value.Object
	if buildsTree {
		result = value.NewObject(p.opts.ObjectReserve)
		obj, _ = result.Object()
	}

	if p.cur() == '}' {
		p.pos++
		return result, nil
	}

	for {
		if p.cur() != '"' {
			return value.Value{}, syntaxErr(ErrUnexpectedSymbol, p.pos, "object")
		}
		keyVal, err := p.parseString()
		if err != nil {
			return value.Value{}, err
		}
		key := keyVal.Text()

		if err := p.skipWSIn("object"); err != nil {
			return value.Value{}, err
		}
		if p.cur() != ':' {
			return value.Value{}, syntaxErr(ErrExpectedSymbol, p.pos, "object")
		}
		p.pos++
		if err := p.skipWSIn("object"); err != nil {
			return value.Value{}, err
		}

		val, err := p.parseValue()
		if err != nil {
			return value.Value{}, err
		}
		if buildsTree {
			obj.Append(key, val)
		}

		if err := p.skipWSIn("object"); err != nil {
			return value.Value{}, err
		}
		switch p.cur() {
		case ',':
			p.pos++
			if err := p.skipWSIn("object"); err != nil {
				return value.Value{}, err
			}
		case '}':
			p.pos++
			return result, nil
		case 0:
			return value.Value{}, syntaxErr(ErrUnexpectedEndOfText, p.pos, "object")
		default:
			return value.Value{}, syntaxErr(ErrExpectedSymbol, p.pos, "object")
		}
	}
}

// skipWSIn advances past whitespace inside a container, always treating
// the sentinel as an error (unlike the top-level skipWS, which tolerates
// an entirely empty document).
func (p *parser) skipWSIn(context string) error {
	err := p.skipWS(context)
	if err == errSentinelAtTop {
		return syntaxErr(ErrUnexpectedEndOfText, p.pos, context)
	}
	return err
}
