package lispy_test

import (
	"testing"

	"github.com/lispy-repl/lispy"
)

func TestIntegerPrint(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   lispy.Integer
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-7, "-7"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Integer(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsTrue(t *testing.T) {
	t.Parallel()
	if lispy.IsTrue(lispy.Integer(0)) {
		t.Error("0 must be false")
	}
	if !lispy.IsTrue(lispy.Integer(1)) {
		t.Error("1 must be true")
	}
	if !lispy.IsTrue(lispy.Integer(-1)) {
		t.Error("-1 must be true")
	}
	if lispy.IsTrue(lispy.MakeString("x")) {
		t.Error("a non-Integer must be false")
	}
}

func TestStringEscaping(t *testing.T) {
	t.Parallel()
	s := lispy.MakeString("a\nb\"c\\d")
	want := `"a\nb\"c\\d"`
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestErrorPrint(t *testing.T) {
	t.Parallel()
	e := lispy.Error{Message: "Division by zero"}
	if got, want := e.String(), "Error: Division by zero"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSymbolEquality(t *testing.T) {
	t.Parallel()
	if !lispy.Symbol("x").IsEqual(lispy.Symbol("x")) {
		t.Error("identical symbols must be equal")
	}
	if lispy.Symbol("x").IsEqual(lispy.Symbol("y")) {
		t.Error("distinct symbols must not be equal")
	}
	if lispy.Symbol("x").IsEqual(lispy.Integer(0)) {
		t.Error("a symbol must not equal an integer")
	}
}

func TestFunctionPrintForms(t *testing.T) {
	t.Parallel()
	b := lispy.Builtin{Name: "head", Fn: func(*lispy.Env, lispy.SExpr) lispy.Value { return nil }}
	if got, want := b.String(), "<builtin 'head'>"; got != want {
		t.Errorf("Builtin.String() = %q, want %q", got, want)
	}

	env := lispy.NewRootEnv()
	l, err := lispy.MakeLambda(
		lispy.QExpr{lispy.Symbol("a"), lispy.Symbol("b")},
		lispy.QExpr{lispy.SExpr{lispy.Symbol("+"), lispy.Symbol("a"), lispy.Symbol("b")}},
		env,
	)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := l.String(), "(\\ {a b} {(+ a b)})"; got != want {
		t.Errorf("Lambda.String() = %q, want %q", got, want)
	}
}

func TestLambdaDuplicateFormalRejected(t *testing.T) {
	t.Parallel()
	env := lispy.NewRootEnv()
	_, err := lispy.MakeLambda(
		lispy.QExpr{lispy.Symbol("a"), lispy.Symbol("a")},
		lispy.QExpr{},
		env,
	)
	if err == nil {
		t.Error("expected an error for duplicate formal names")
	}
}
