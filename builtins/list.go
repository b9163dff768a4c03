package builtins

import "github.com/lispy-repl/lispy"

// List rewrites its arguments' tag to QExpr, taking any number of
// already-evaluated values as-is.
func List(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	return args.AsQExpr()
}

// Head returns a QExpr containing only the first element of its single
// QExpr argument.
func Head(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	if errv := checkArity("head", args, 1); errv != nil {
		return errv
	}
	q, errv := requireQExpr("head", args, 0)
	if errv != nil {
		return errv
	}
	if len(q) == 0 {
		return lispy.Error{Message: "Function 'head' passed {}"}
	}
	return lispy.QExpr{q[0]}
}

// Tail returns its single QExpr argument minus its first element.
func Tail(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	if errv := checkArity("tail", args, 1); errv != nil {
		return errv
	}
	q, errv := requireQExpr("tail", args, 0)
	if errv != nil {
		return errv
	}
	if len(q) == 0 {
		return lispy.Error{Message: "Function 'tail' passed {}"}
	}
	_, rest := q.PopAt(0)
	return rest
}

// Join concatenates any number of QExpr arguments, in order, into a
// single QExpr.
func Join(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	out := lispy.QExpr{}
	for i := range args {
		q, errv := requireQExpr("join", args, i)
		if errv != nil {
			return errv
		}
		for _, v := range q {
			out = out.Append(v)
		}
	}
	return out
}
