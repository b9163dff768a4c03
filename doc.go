// Package lispy provides the value model and lexical-environment model for
// the Lispy interpreter: a small Lisp-family language with S-expression
// syntax, first-class functions with partial application, and quoted list
// literals (Q-expressions).
//
// Reading source text into values lives in [github.com/lispy-repl/lispy/reader];
// reducing values to results lives in [github.com/lispy-repl/lispy/eval];
// the fixed set of primitive operations lives in
// [github.com/lispy-repl/lispy/builtins].
package lispy
