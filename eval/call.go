package eval

import (
	"fmt"

	"github.com/lispy-repl/lispy"
)

// Call unifies Builtin and Lambda dispatch: fn has already been popped off
// the front of a reduced SExpr, and args is the remaining, already
// evaluated, argument sequence.
func Call(env *lispy.Env, fn lispy.Value, args lispy.SExpr) lispy.Value {
	if b, ok := lispy.GetBuiltin(fn); ok {
		return b.Fn(env, args)
	}
	l, ok := lispy.GetLambda(fn)
	if !ok {
		return lispy.Error{Message: fmt.Sprintf(
			"S-expression does not start with function. Got %s, Expected Function.",
			lispy.TypeName(fn),
		)}
	}
	return callLambda(env, l, args)
}

// callLambda implements the partial-application algorithm: formals are
// consumed against args in lockstep, binding each into a private copy of
// the lambda's captured environment. A fully-saturated call evaluates the
// body in the caller's lexical chain (callerEnv); a partial call returns a
// new Lambda holding the remaining formals.
func callLambda(callerEnv *lispy.Env, l lispy.Lambda, args lispy.SExpr) lispy.Value {
	total := len(l.Formals)
	given := len(args)

	callEnv := l.Env.Copy()
	formals := l.Formals

	for len(args) > 0 {
		if len(formals) == 0 {
			return lispy.Error{Message: fmt.Sprintf(
				"Function passed too many arguments. Got %d, Expected %d.", given, total,
			)}
		}
		var sym lispy.Symbol
		sym, formals = popFormal(formals)

		if sym == "&" {
			rest, ok := popSingleFormal(formals)
			if !ok {
				return lispy.Error{Message: "Function format invalid. Symbol '&' not followed by single symbol."}
			}
			callEnv.Put(rest, args.AsQExpr())
			formals = lispy.QExpr{}
			args = lispy.SExpr{}
			break
		}

		var v lispy.Value
		v, args = popArg(args)
		callEnv.Put(sym, v)
	}

	if len(formals) > 0 && formals[0].IsEqual(lispy.Symbol("&")) {
		rest, ok := popSingleFormal(formals[1:])
		if !ok {
			return lispy.Error{Message: "Function format invalid. Symbol '&' not followed by single symbol."}
		}
		callEnv.Put(rest, lispy.QExpr{})
		formals = lispy.QExpr{}
	}

	if len(formals) == 0 {
		callEnv.SetParent(callerEnv)
		// Equivalent to applying the `eval` builtin to the body: convert the
		// QExpr body to an SExpr and evaluate it directly.
		return Eval(callEnv, l.Body.AsSExpr())
	}

	partial, err := lispy.MakeLambda(formals, l.Body, callEnv)
	if err != nil {
		return lispy.Error{Message: err.Error()}
	}
	return partial
}

func popFormal(formals lispy.QExpr) (lispy.Symbol, lispy.QExpr) {
	v, rest := formals.PopAt(0)
	sym, _ := lispy.GetSymbol(v)
	return sym, rest
}

// popSingleFormal reports whether formals holds exactly one Symbol, and
// returns it.
func popSingleFormal(formals lispy.QExpr) (lispy.Symbol, bool) {
	if len(formals) != 1 {
		return "", false
	}
	return lispy.GetSymbol(formals[0])
}

func popArg(args lispy.SExpr) (lispy.Value, lispy.SExpr) {
	v, rest := args.PopAt(0)
	return v, rest
}
