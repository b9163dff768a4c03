// Package builtins implements the fixed set of primitive operations that
// ground the evaluator: list manipulation, arithmetic, comparison,
// definition, conditionals, and I/O.
package builtins

import (
	"fmt"

	"github.com/lispy-repl/lispy"
)

// RegisterAll binds every builtin into env under its canonical name.
func RegisterAll(env *lispy.Env) {
	for name, fn := range table() {
		env.Put(lispy.Symbol(name), lispy.Builtin{Name: name, Fn: fn})
	}
}

func table() map[string]lispy.BuiltinFn {
	return map[string]lispy.BuiltinFn{
		"list": List,
		"head": Head,
		"tail": Tail,
		"join": Join,
		"eval": Eval,

		"def": Def,
		"=":   Put,
		"\\":  Lambda,

		"+": Add,
		"-": Sub,
		"*": Mul,
		"/": Div,

		">":  Gt,
		"<":  Lt,
		">=": Ge,
		"<=": Le,
		"==": Eq,
		"!=": Ne,

		"if": If,

		"load":  Load,
		"print": Print,
		"error": MakeError,
	}
}

// arityError produces the standard arity-mismatch message.
func arityError(name string, got, want int) lispy.Value {
	return lispy.Error{Message: fmt.Sprintf(
		"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		name, got, want,
	)}
}

// typeError produces the standard type-mismatch message.
func typeError(name string, index int, got lispy.Value, expected string) lispy.Value {
	return lispy.Error{Message: fmt.Sprintf(
		"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
		name, index, lispy.TypeName(got), expected,
	)}
}

func checkArity(name string, args lispy.SExpr, want int) lispy.Value {
	if len(args) != want {
		return arityError(name, len(args), want)
	}
	return nil
}

func checkMinArity(name string, args lispy.SExpr, min int) lispy.Value {
	if len(args) < min {
		return arityError(name, len(args), min)
	}
	return nil
}

func requireQExpr(name string, args lispy.SExpr, i int) (lispy.QExpr, lispy.Value) {
	q, ok := lispy.GetQExpr(args[i])
	if !ok {
		return nil, typeError(name, i, args[i], "Q-Expression")
	}
	return q, nil
}

func requireInteger(name string, args lispy.SExpr, i int) (lispy.Integer, lispy.Value) {
	n, ok := lispy.GetInteger(args[i])
	if !ok {
		return 0, typeError(name, i, args[i], "Integer")
	}
	return n, nil
}

func requireString(name string, args lispy.SExpr, i int) (lispy.String, lispy.Value) {
	s, ok := lispy.GetString(args[i])
	if !ok {
		return lispy.String{}, typeError(name, i, args[i], "String")
	}
	return s, nil
}
