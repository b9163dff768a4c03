package builtins

import "github.com/lispy-repl/lispy"

// Add left-folds its Integer arguments with +.
func Add(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	return fold("+", args, func(a, b lispy.Integer) (lispy.Integer, lispy.Value) { return a + b, nil })
}

// Sub left-folds its Integer arguments with -; a single argument negates.
func Sub(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	if len(args) == 1 {
		n, errv := requireInteger("-", args, 0)
		if errv != nil {
			return errv
		}
		return -n
	}
	return fold("-", args, func(a, b lispy.Integer) (lispy.Integer, lispy.Value) { return a - b, nil })
}

// Mul left-folds its Integer arguments with *.
func Mul(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	return fold("*", args, func(a, b lispy.Integer) (lispy.Integer, lispy.Value) { return a * b, nil })
}

// Div left-folds its Integer arguments with truncating division; dividing
// by zero is an Error.
func Div(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	return fold("/", args, func(a, b lispy.Integer) (lispy.Integer, lispy.Value) {
		if b == 0 {
			return 0, lispy.Error{Message: "Division by zero"}
		}
		return a / b, nil
	})
}

// fold implements the "≥1 Integer, left-fold with the operator" contract
// shared by +, -, *, /: the first argument seeds the accumulator, every
// subsequent argument is combined into it in order.
func fold(name string, args lispy.SExpr, op func(a, b lispy.Integer) (lispy.Integer, lispy.Value)) lispy.Value {
	if errv := checkMinArity(name, args, 1); errv != nil {
		return errv
	}
	acc, errv := requireInteger(name, args, 0)
	if errv != nil {
		return errv
	}
	for i := 1; i < len(args); i++ {
		n, errv := requireInteger(name, args, i)
		if errv != nil {
			return errv
		}
		var res lispy.Value
		acc, res = op(acc, n)
		if res != nil {
			return res
		}
	}
	return acc
}
