package lispy_test

import (
	"testing"

	"github.com/lispy-repl/lispy"
)

func TestEnvRoot(t *testing.T) {
	t.Parallel()
	root := lispy.NewRootEnv()
	if got := root.Parent(); got != nil {
		t.Error("root env has a parent", got)
	}
	child := lispy.NewChildEnv(root, "child")
	if got := child.Parent(); got != root {
		t.Error("child's parent is not root", got)
	}
}

func TestPutLocalOnly(t *testing.T) {
	t.Parallel()
	root := lispy.NewRootEnv()
	child := lispy.NewChildEnv(root, "child")
	child.Put("x", lispy.Integer(1))

	if _, ok := lispy.GetError(root.Get("x")); !ok {
		t.Error("Put on child must not leak into parent")
	}
	if got := child.Get("x"); !got.IsEqual(lispy.Integer(1)) {
		t.Error("expected 1, got", got)
	}
}

func TestDefineReachesGlobal(t *testing.T) {
	t.Parallel()
	root := lispy.NewRootEnv()
	child := lispy.NewChildEnv(root, "child")
	child.Define("x", lispy.Integer(42))

	if got := root.Get("x"); !got.IsEqual(lispy.Integer(42)) {
		t.Error("Define did not reach the global frame, got", got)
	}
}

func TestLookupUnbound(t *testing.T) {
	t.Parallel()
	root := lispy.NewRootEnv()
	got := root.Get("nope")
	errVal, ok := lispy.GetError(got)
	if !ok {
		t.Fatalf("expected an Error value, got %v", got)
	}
	if want := "Unbound symbol 'nope'"; errVal.Message != want {
		t.Errorf("message = %q, want %q", errVal.Message, want)
	}
}

func TestShadowing(t *testing.T) {
	t.Parallel()
	root := lispy.NewRootEnv()
	root.Put("x", lispy.Integer(1))
	child := lispy.NewChildEnv(root, "child")
	child.Put("x", lispy.Integer(2))

	if got := child.Get("x"); !got.IsEqual(lispy.Integer(2)) {
		t.Error("inner binding should shadow outer, got", got)
	}
	if got := root.Get("x"); !got.IsEqual(lispy.Integer(1)) {
		t.Error("outer binding should be unaffected, got", got)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	t.Parallel()
	root := lispy.NewRootEnv()
	child := lispy.NewChildEnv(root, "child")
	child.Put("x", lispy.Integer(1))

	dup := child.Copy()
	dup.Put("x", lispy.Integer(99))

	if got := child.Get("x"); !got.IsEqual(lispy.Integer(1)) {
		t.Error("mutating the copy must not affect the original, got", got)
	}
	if got := dup.Parent(); got != root {
		t.Error("copy should keep the same parent reference")
	}
}
