package lispy

import "strings"

// SExpr is an ordered sequence of values representing an unevaluated call
// or grouping. QExpr is structurally identical; the two types exist so the
// evaluator can switch on tag alone to tell code from data.
type SExpr []Value

// QExpr is an ordered sequence of values representing quoted (data) list.
type QExpr []Value

func (s SExpr) IsAtom() bool { return false }
func (q QExpr) IsAtom() bool { return false }

func (s SExpr) IsEqual(other Value) bool {
	o, ok := other.(SExpr)
	return ok && seqEqual(s, o)
}

func (q QExpr) IsEqual(other Value) bool {
	o, ok := other.(QExpr)
	return ok && seqEqual(q, o)
}

func seqEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if !v.IsEqual(b[i]) {
			return false
		}
	}
	return true
}

func (s SExpr) String() string { return printSeq(s, '(', ')') }
func (q QExpr) String() string { return printSeq(q, '{', '}') }

func printSeq(items []Value, open, close byte) string {
	var sb strings.Builder
	sb.WriteByte(open)
	for i, v := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(close)
	return sb.String()
}

// Append returns a new sequence with v appended, used by the reader to
// build lists incrementally from successive forms. It always copies, so
// that two sequences built from a shared prefix never alias each other's
// backing array.
func (s SExpr) Append(v Value) SExpr {
	out := make(SExpr, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

func (q QExpr) Append(v Value) QExpr {
	out := make(QExpr, len(q), len(q)+1)
	copy(out, q)
	return append(out, v)
}

// PopAt removes and returns the element at index i, along with the
// resulting sequence. Used pervasively by builtins and call machinery to
// pull the next argument or formal off the front of a list.
func (s SExpr) PopAt(i int) (Value, SExpr) {
	v, rest := popAt([]Value(s), i)
	return v, SExpr(rest)
}

func (q QExpr) PopAt(i int) (Value, QExpr) {
	v, rest := popAt([]Value(q), i)
	return v, QExpr(rest)
}

func popAt(items []Value, i int) (Value, []Value) {
	v := items[i]
	rest := make([]Value, 0, len(items)-1)
	rest = append(rest, items[:i]...)
	rest = append(rest, items[i+1:]...)
	return v, rest
}

// AsSExpr converts a QExpr to an equivalent SExpr, used by the `eval`
// builtin and by full lambda application.
func (q QExpr) AsSExpr() SExpr { return SExpr(append([]Value(nil), q...)) }

// AsQExpr converts an SExpr to an equivalent QExpr, used by `list`.
func (s SExpr) AsQExpr() QExpr { return QExpr(append([]Value(nil), s...)) }

// GetSExpr returns the value as an SExpr, if possible.
func GetSExpr(v Value) (SExpr, bool) {
	s, ok := v.(SExpr)
	return s, ok
}

// GetQExpr returns the value as a QExpr, if possible.
func GetQExpr(v Value) (QExpr, bool) {
	q, ok := v.(QExpr)
	return q, ok
}
