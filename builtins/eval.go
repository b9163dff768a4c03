package builtins

import (
	"github.com/lispy-repl/lispy"
	evaluator "github.com/lispy-repl/lispy/eval"
)

// Eval converts its single QExpr argument to an SExpr and evaluates it in
// the caller's environment.
func Eval(env *lispy.Env, args lispy.SExpr) lispy.Value {
	if errv := checkArity("eval", args, 1); errv != nil {
		return errv
	}
	q, errv := requireQExpr("eval", args, 0)
	if errv != nil {
		return errv
	}
	return evaluator.Eval(env, q.AsSExpr())
}

// If evaluates the branch selected by (cond != 0) as if it were an SExpr,
// in the caller's environment.
func If(env *lispy.Env, args lispy.SExpr) lispy.Value {
	if errv := checkArity("if", args, 3); errv != nil {
		return errv
	}
	cond, errv := requireInteger("if", args, 0)
	if errv != nil {
		return errv
	}
	thenQ, errv := requireQExpr("if", args, 1)
	if errv != nil {
		return errv
	}
	elseQ, errv := requireQExpr("if", args, 2)
	if errv != nil {
		return errv
	}
	if lispy.IsTrue(cond) {
		return evaluator.Eval(env, thenQ.AsSExpr())
	}
	return evaluator.Eval(env, elseQ.AsSExpr())
}
