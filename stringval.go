package lispy

import "strings"

// String represents a character-sequence Value.
type String struct {
	value string
}

// MakeString creates a String from a Go string.
func MakeString(s string) String { return String{value: s} }

// GoString returns the raw (unescaped, unquoted) string content.
func (s String) GoString() string { return s.value }

func (String) IsAtom() bool { return true }

func (s String) IsEqual(other Value) bool {
	o, ok := other.(String)
	return ok && s.value == o.value
}

// escapeTable mirrors the escape set the reader accepts: a, b, f, n, r,
// t, v, backslash, and the two quote characters.
var escapeTable = map[byte]byte{
	'\a': 'a',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// String returns the printed representation: surrounded by double quotes,
// with the reader's escape set re-escaped.
func (s String) String() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s.value); i++ {
		c := s.value[i]
		if esc, found := escapeTable[c]; found {
			sb.WriteByte('\\')
			sb.WriteByte(esc)
			continue
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
	return sb.String()
}

// GetString returns the value as a String, if possible.
func GetString(v Value) (String, bool) {
	s, ok := v.(String)
	return s, ok
}
