// Package eval implements the tree-walking evaluator: a single function
// that reduces a value in an environment to a result value, with no
// separate parse/compile stage and no tail-call optimization.
package eval

import (
	"fmt"

	"github.com/lispy-repl/lispy"
)

// Eval reduces v in env to a result value, keyed on v's tag.
//
//   - Symbol: environment lookup.
//   - SExpr: reduce (evaluate children, then apply).
//   - everything else (QExpr, Integer, String, Error, Builtin, Lambda):
//     self-evaluating.
func Eval(env *lispy.Env, v lispy.Value) lispy.Value {
	switch val := v.(type) {
	case lispy.Symbol:
		return env.Get(val)
	case lispy.SExpr:
		return evalSExpr(env, val)
	default:
		return v
	}
}

func evalSExpr(env *lispy.Env, s lispy.SExpr) lispy.Value {
	children := make(lispy.SExpr, len(s))
	for i, c := range s {
		children[i] = Eval(env, c)
	}
	for _, c := range children {
		if lispy.IsError(c) {
			return c
		}
	}

	switch len(children) {
	case 0:
		return children
	case 1:
		return children[0]
	}

	head, rest := children.PopAt(0)
	if !lispy.IsFunction(head) {
		return lispy.Error{Message: fmt.Sprintf(
			"S-expression does not start with function. Got %s, Expected Function.",
			lispy.TypeName(head),
		)}
	}
	return Call(env, head, rest)
}
