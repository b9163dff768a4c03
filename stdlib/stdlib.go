// Package stdlib embeds and loads the standard-library script written in
// Lispy itself: fun, unpack, and pack.
package stdlib

import (
	_ "embed"
	"fmt"

	"github.com/lispy-repl/lispy"
	"github.com/lispy-repl/lispy/eval"
	"github.com/lispy-repl/lispy/reader"
)

//go:embed prelude.lisp
var prelude string

// Load reads and evaluates the embedded prelude in env. Builtins must
// already be registered; the prelude relies on def, \, head, tail, eval,
// join, and list.
func Load(env *lispy.Env) error {
	forms, err := reader.NewFromString(prelude).ReadAll()
	if err != nil {
		return err
	}
	for _, form := range forms {
		result := eval.Eval(env, form)
		if lispy.IsError(result) {
			return fmt.Errorf("loading prelude: %s", result.String())
		}
	}
	return nil
}
