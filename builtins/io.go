package builtins

import (
	"fmt"
	"os"

	"github.com/lispy-repl/lispy"
	evaluator "github.com/lispy-repl/lispy/eval"
	"github.com/lispy-repl/lispy/reader"
)

// Load reads the named file whole, reads every form from it, and
// evaluates each in turn. Per-form errors are printed and iteration
// continues; this is the only site that consumes errors instead of
// propagating them. A file-open failure is itself an Error value.
func Load(env *lispy.Env, args lispy.SExpr) lispy.Value {
	if errv := checkArity("load", args, 1); errv != nil {
		return errv
	}
	path, errv := requireString("load", args, 0)
	if errv != nil {
		return errv
	}

	data, err := os.ReadFile(path.GoString())
	if err != nil {
		return lispy.Error{Message: fmt.Sprintf("Could not load library %s", path.GoString())}
	}

	forms, err := reader.NewFromString(string(data)).ReadAll()
	if err != nil {
		return lispy.Error{Message: err.Error()}
	}

	for _, form := range forms {
		result := evaluator.Eval(env, form)
		if lispy.IsError(result) {
			fmt.Println(result.String())
		}
	}
	return lispy.SExpr{}
}

// Print writes each argument separated by spaces, terminated with a
// newline, and returns an empty SExpr.
func Print(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	for i, a := range args {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(a.String())
	}
	fmt.Println()
	return lispy.SExpr{}
}

// MakeError returns an Error whose message is its single String argument.
func MakeError(_ *lispy.Env, args lispy.SExpr) lispy.Value {
	if errv := checkArity("error", args, 1); errv != nil {
		return errv
	}
	s, errv := requireString("error", args, 0)
	if errv != nil {
		return errv
	}
	return lispy.Error{Message: s.GoString()}
}
