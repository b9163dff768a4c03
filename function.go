package lispy

import (
	"fmt"
	"reflect"

	"t73f.de/r/zero/set"
)

// BuiltinFn is the native Go signature every builtin primitive implements:
// given the calling environment and the (already evaluated) argument
// sequence, produce a result Value or an Error Value.
type BuiltinFn func(env *Env, args SExpr) Value

// Builtin wraps a named native callable.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (Builtin) IsAtom() bool { return true }

func (b Builtin) IsEqual(other Value) bool {
	o, ok := other.(Builtin)
	if !ok {
		return false
	}
	return reflect.ValueOf(b.Fn).Pointer() == reflect.ValueOf(o.Fn).Pointer()
}

func (b Builtin) String() string { return fmt.Sprintf("<builtin '%s'>", b.Name) }

// Lambda is a user-defined function: formals, body, and the environment
// captured at creation time. Formals is a QExpr whose elements are all
// Symbols, possibly containing one `&` marker followed by exactly one
// Symbol denoting the variadic rest binding.
type Lambda struct {
	Formals QExpr
	Body    QExpr
	Env     *Env
}

// MakeLambda builds a Lambda, rejecting a formals list that is not all
// Symbols or that repeats a parameter name.
func MakeLambda(formals, body QExpr, env *Env) (Lambda, error) {
	names := make([]Symbol, 0, len(formals))
	for _, f := range formals {
		sym, ok := GetSymbol(f)
		if !ok {
			return Lambda{}, fmt.Errorf("lambda formal must be a symbol, got %T", f)
		}
		names = append(names, sym)
	}
	if unique := set.New(names...).Length(); unique != len(names) {
		return Lambda{}, fmt.Errorf("duplicate symbol in lambda formals: %v", formals)
	}
	return Lambda{Formals: formals, Body: body, Env: env}, nil
}

func (Lambda) IsAtom() bool { return true }

func (l Lambda) IsEqual(other Value) bool {
	o, ok := other.(Lambda)
	return ok && l.Formals.IsEqual(o.Formals) && l.Body.IsEqual(o.Body)
}

func (l Lambda) String() string {
	return "(\\ " + l.Formals.String() + " " + l.Body.String() + ")"
}

// GetBuiltin returns the value as a Builtin, if possible.
func GetBuiltin(v Value) (Builtin, bool) {
	b, ok := v.(Builtin)
	return b, ok
}

// GetLambda returns the value as a Lambda, if possible.
func GetLambda(v Value) (Lambda, bool) {
	l, ok := v.(Lambda)
	return l, ok
}

// IsFunction reports whether v is callable (Builtin or Lambda).
func IsFunction(v Value) bool {
	switch v.(type) {
	case Builtin, Lambda:
		return true
	default:
		return false
	}
}
