package builtins

import (
	"fmt"

	"github.com/lispy-repl/lispy"
	"t73f.de/r/zero/set"
)

// bindList implements the shared shape of `def` and `=`: args[0] is a
// QExpr of Symbols, args[1:] are the values to bind to them in order.
// put is called once per (symbol, value) pair.
func bindList(name string, args lispy.SExpr, put func(lispy.Symbol, lispy.Value)) lispy.Value {
	if errv := checkMinArity(name, args, 1); errv != nil {
		return errv
	}
	syms, errv := requireQExpr(name, args, 0)
	if errv != nil {
		return errv
	}
	values := args[1:]
	if len(syms) != len(values) {
		return lispy.Error{Message: fmt.Sprintf(
			"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, len(values), len(syms),
		)}
	}

	names := make([]lispy.Symbol, len(syms))
	for i, s := range syms {
		sym, ok := lispy.GetSymbol(s)
		if !ok {
			return typeError(name, i, s, "Symbol")
		}
		names[i] = sym
	}
	if unique := set.New(names...).Length(); unique != len(names) {
		return lispy.Error{Message: fmt.Sprintf("Function '%s' passed duplicate symbol in binding list.", name)}
	}

	for i, sym := range names {
		put(sym, values[i])
	}
	return lispy.SExpr{}
}

// Def binds a QExpr of symbols to N values in the global environment.
func Def(env *lispy.Env, args lispy.SExpr) lispy.Value {
	return bindList("def", args, env.Define)
}

// Put binds a QExpr of symbols to N values in the current (local)
// environment. Named Put, not Set, to keep it apart from the imported set
// package used in this file.
func Put(env *lispy.Env, args lispy.SExpr) lispy.Value {
	return bindList("=", args, env.Put)
}

// Lambda constructs a user function: formals = arg 0, body = arg 1, both
// QExprs; formals must all be Symbols.
func Lambda(env *lispy.Env, args lispy.SExpr) lispy.Value {
	if errv := checkArity("\\", args, 2); errv != nil {
		return errv
	}
	formals, errv := requireQExpr("\\", args, 0)
	if errv != nil {
		return errv
	}
	body, errv := requireQExpr("\\", args, 1)
	if errv != nil {
		return errv
	}
	l, err := lispy.MakeLambda(formals, body, env)
	if err != nil {
		return lispy.Error{Message: err.Error()}
	}
	return l
}
