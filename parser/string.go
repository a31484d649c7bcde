package parser

import (
	"strings"

	"github.com/cppon-go/cppon/codec"
	"github.com/cppon-go/cppon/value"
)

// parseString accepts a JSON string literal starting at the opening
// quote and classifies it: a path-prefixed literal becomes a path
// token, a blob-prefixed literal becomes a base64 token (or a decoded
// blob in full mode), and anything else becomes a borrowed
// string view. Escape sequences are never decoded — the returned text is
// the verbatim byte range between the quotes.
func (p *parser) parseString() (value.Value, error) {
	start := p.pos
	p.pos++ // skip opening quote

	end, err := p.findClosingQuote()
	if err != nil {
		return value.Value{}, err
	}
	text := string(p.buf[start+1 : end])
	p.pos = end + 1

	switch {
	case strings.HasPrefix(text, "$") && strings.HasPrefix(text, p.opts.PathPrefix):
		rest := text[len(p.opts.PathPrefix):]
		if rest == "" {
			rest = "/"
		}
		pv, err := value.Path(rest)
		if err != nil {
			return value.Value{}, err
		}
		return pv, nil

	case strings.HasPrefix(text, "$") && strings.HasPrefix(text, p.opts.BlobPrefix):
		b64 := text[len(p.opts.BlobPrefix):]
		if p.opts.Mode.eagerBlobs() {
			data, err := codec.DecodeBase64(b64, true)
			if err != nil {
				return value.Value{}, err
			}
			return value.OwnedBlob(data), nil
		}
		return value.BorrowedBase64(b64), nil

	default:
		return value.BorrowedString(text), nil
	}
}

// findClosingQuote locates the end of a string literal: the smallest
// closing quote not itself escaped by an odd run of backslashes. It uses
// the dispatcher's [scan.Dispatcher.FindQuote] for the hot search and
// only inspects backslash runs around each candidate.
func (p *parser) findClosingQuote() (int, error) {
	from := p.pos
	for {
		idx, found := p.opts.Dispatcher.FindQuote(p.buf, from)
		if !found {
			return 0, syntaxErr(ErrUnexpectedEndOfText, idx, "string")
		}
		if evenBackslashRun(p.buf, idx) {
			return idx, nil
		}
		from = idx + 1
	}
}

// evenBackslashRun reports whether the run of consecutive backslashes
// immediately preceding text[quote] has even length (so the quote at
// quote is not escaped).
func evenBackslashRun(text []byte, quote int) bool {
	n := 0
	for i := quote - 1; i >= 0 && text[i] == '\\'; i-- {
		n++
	}
	return n%2 == 0
}
