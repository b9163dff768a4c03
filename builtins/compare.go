package builtins

import "github.com/lispy-repl/lispy"

func boolInt(b bool) lispy.Integer {
	if b {
		return 1
	}
	return 0
}

func numericCompare(name string, args lispy.SExpr, cmp func(a, b lispy.Integer) bool) lispy.Value {
	if errv := checkArity(name, args, 2); errv != nil {
		return errv
	}
	a, errv := requireInteger(name, args, 0)
	if errv != nil {
		return errv
	}
	b, errv := requireInteger(name, args, 1)
	if errv != nil {
		return errv
	}
	return boolInt(cmp(a, b))
}

// Gt returns 1 if the first argument is strictly greater, else 0.
func Gt(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	return numericCompare(">", args, func(a, b lispy.Integer) bool { return a > b })
}

// Lt returns 1 if the first argument is strictly less, else 0.
func Lt(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	return numericCompare("<", args, func(a, b lispy.Integer) bool { return a < b })
}

// Ge returns 1 if the first argument is greater or equal, else 0.
func Ge(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	return numericCompare(">=", args, func(a, b lispy.Integer) bool { return a >= b })
}

// Le returns 1 if the first argument is less or equal, else 0.
func Le(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	return numericCompare("<=", args, func(a, b lispy.Integer) bool { return a <= b })
}

// Eq reports structural equality of its two arguments.
func Eq(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	if errv := checkArity("==", args, 2); errv != nil {
		return errv
	}
	return boolInt(args[0].IsEqual(args[1]))
}

// Ne reports structural inequality of its two arguments.
func Ne(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	if errv := checkArity("!=", args, 2); errv != nil {
		return errv
	}
	return boolInt(!args[0].IsEqual(args[1]))
}
