// Package reader turns a character stream into Lispy value trees. It is a
// small hand-written recursive-descent reader: no regular expressions, no
// lookahead beyond a single pushed-back rune.
package reader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lispy-repl/lispy"
)

// Reader consumes runes from an io.RuneReader and parses them into Lispy
// forms.
type Reader struct {
	rr   io.RuneReader
	buf  []rune // single-rune pushback
	name string
}

// New creates a Reader over r. name identifies the input; it is stored
// with the reader and is not included in error messages.
func New(r io.RuneReader, name string) *Reader {
	return &Reader{rr: r, name: name}
}

// NewFromString creates a Reader over an in-memory string, as used by the
// REPL for each entered line.
func NewFromString(src string) *Reader {
	return New(strings.NewReader(src), "<input>")
}

func (rd *Reader) nextRune() (rune, error) {
	if len(rd.buf) > 0 {
		ch := rd.buf[len(rd.buf)-1]
		rd.buf = rd.buf[:len(rd.buf)-1]
		return ch, nil
	}
	ch, _, err := rd.rr.ReadRune()
	return ch, err
}

func (rd *Reader) unread(ch rune) {
	rd.buf = append(rd.buf, ch)
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '\v':
		return true
	default:
		return false
	}
}

func isSymbolChar(ch rune) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	}
	switch ch {
	case '_', '+', '-', '*', '/', '\\', '=', '<', '>', '!', '&':
		return true
	}
	return false
}

// skipIgnorable discards whitespace and `;` line comments and returns the
// first other rune (the start of a form or a closing delimiter). Returns
// io.EOF if the stream ends first.
func (rd *Reader) skipIgnorable() (rune, error) {
	for {
		ch, err := rd.nextRune()
		if err != nil {
			return 0, err
		}
		if isSpace(ch) {
			continue
		}
		if ch == ';' {
			for {
				c, err := rd.nextRune()
				if err != nil {
					return 0, err
				}
				if c == '\n' {
					break
				}
			}
			continue
		}
		return ch, nil
	}
}

// ReadAll reads every form up to end of input and returns them as an
// SExpr, as the CLI driver and `load` builtin require.
func (rd *Reader) ReadAll() (lispy.SExpr, error) {
	forms := lispy.SExpr{}
	for {
		ch, err := rd.skipIgnorable()
		if err == io.EOF {
			return forms, nil
		}
		if err != nil {
			return forms, err
		}
		v, err := rd.readForm(ch)
		if err != nil {
			return forms, err
		}
		forms = forms.Append(v)
	}
}

// readForm parses one form whose first significant rune is ch.
func (rd *Reader) readForm(ch rune) (lispy.Value, error) {
	switch ch {
	case '(':
		items, err := rd.readItems(')')
		if err != nil {
			return nil, err
		}
		return lispy.SExpr(items), nil
	case '{':
		items, err := rd.readItems('}')
		if err != nil {
			return nil, err
		}
		return lispy.QExpr(items), nil
	case '"':
		return rd.readString()
	case ')', '}':
		return nil, fmt.Errorf("Unexpected character %c", ch)
	}
	if isSymbolChar(ch) {
		return rd.readAtom(ch)
	}
	return nil, fmt.Errorf("Unexpected character %c", ch)
}

// readItems reads forms up to and including the closing delimiter end.
func (rd *Reader) readItems(end rune) ([]lispy.Value, error) {
	items := []lispy.Value{}
	for {
		ch, err := rd.skipIgnorable()
		if err == io.EOF {
			return nil, fmt.Errorf("Unexpected end of input")
		}
		if err != nil {
			return nil, err
		}
		if ch == end {
			return items, nil
		}
		form, err := rd.readForm(ch)
		if err != nil {
			return nil, err
		}
		items = append(items, form)
	}
}

var escapeIn = map[rune]byte{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r',
	't': '\t', 'v': '\v', '\\': '\\', '\'': '\'', '"': '"',
}

func (rd *Reader) readString() (lispy.Value, error) {
	var sb strings.Builder
	for {
		ch, err := rd.nextRune()
		if err == io.EOF {
			return nil, fmt.Errorf("Unexpected end of input")
		}
		if err != nil {
			return nil, err
		}
		if ch == '"' {
			return lispy.MakeString(sb.String()), nil
		}
		if ch != '\\' {
			sb.WriteRune(ch)
			continue
		}
		esc, err := rd.nextRune()
		if err == io.EOF {
			return nil, fmt.Errorf("Unexpected end of input")
		}
		if err != nil {
			return nil, err
		}
		mapped, ok := escapeIn[esc]
		if !ok {
			return nil, fmt.Errorf("Invalid escape sequence \\%c", esc)
		}
		sb.WriteByte(mapped)
	}
}

// readAtom reads the maximal run of symbol characters starting with first
// and classifies it as an Integer or a Symbol.
func (rd *Reader) readAtom(first rune) (lispy.Value, error) {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		ch, err := rd.nextRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isSymbolChar(ch) {
			rd.unread(ch)
			break
		}
		sb.WriteRune(ch)
	}
	tok := sb.String()
	if looksLikeInteger(tok) {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Invalid number")
		}
		return lispy.Integer(n), nil
	}
	return lispy.Symbol(tok), nil
}

// looksLikeInteger reports whether tok is digits, optionally preceded by a
// single '-', and not a bare "-".
func looksLikeInteger(tok string) bool {
	if tok == "-" || tok == "" {
		return false
	}
	s := tok
	if s[0] == '-' {
		s = s[1:]
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
