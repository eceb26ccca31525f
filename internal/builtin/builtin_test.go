package builtin_test

import (
	"testing"

	"github.com/hipparcos/dialecte/internal/eval"
	"github.com/hipparcos/dialecte/internal/lerr"
)

// run drives a fresh default environment through internal/eval, exercising
// the builtins registered by internal/builtin end to end (internal/builtin
// cannot itself import internal/eval without a cycle, so its contracts are
// tested from this external package instead, the same split the teacher
// uses between pkg/eval and pkg/eval_test for builtin coverage).
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	env := eval.DefaultEnv()
	v, err := eval.EvalFromString(env, src)
	if err != nil {
		return "", err
	}

	return eval.PrintValue(v), nil
}

func TestListBuiltins(t *testing.T) {
	cases := []struct{ src, want string }{
		{"tail {1 2 3}", "{2 3}"},
		{"init {1 2 3}", "{1 2}"},
		{"cons 0 {1 2 3}", "{0 1 2 3}"},
		{"join {1 2} {3 4}", "{1 2 3 4}"},
		{"list 1 2 3", "{1 2 3}"},
		{"len {1 2 3 4}", "4"},
		{"filter (lambda {x} {> x 2}) {1 2 3 4}", "{3 4}"},
		{"fold (lambda {acc x} {+ acc x}) 0 {1 2 3 4}", "10"},
	}
	for _, c := range cases {
		got, err := run(t, c.src)
		if err != nil {
			t.Errorf("eval(%q) returned error %v, want %s", c.src, err, c.want)

			continue
		}
		if got != c.want {
			t.Errorf("eval(%q) = %s, want %s", c.src, got, c.want)
		}
	}
}

func TestListBuiltinGuards(t *testing.T) {
	cases := []struct {
		src  string
		code lerr.Code
	}{
		{"head {}", lerr.BadOperand},
		{"tail 1", lerr.BadOperand},
		{"cons 0 1", lerr.BadOperand},
	}
	for _, c := range cases {
		_, err := run(t, c.src)
		if err == nil {
			t.Errorf("eval(%q) succeeded, want error %s", c.src, c.code)

			continue
		}
		lerror, ok := err.(*lerr.Error)
		if !ok {
			t.Errorf("eval(%q) returned %T, want *lerr.Error", c.src, err)

			continue
		}
		if lerror.Code != c.code {
			t.Errorf("eval(%q) code = %s, want %s", c.src, lerror.Code, c.code)
		}
	}
}

func TestArithExtras(t *testing.T) {
	cases := []struct{ src, want string }{
		{"% 10 3", "1"},
		{"^ 2 8", "256"},
		{"min 5 2 8", "2"},
		{"max 5 2 8", "8"},
		{"min 7", "7"},
		{"max 7", "7"},
		{"! 5", "120"},
		{"! 0", "1"},
	}
	for _, c := range cases {
		got, err := run(t, c.src)
		if err != nil {
			t.Errorf("eval(%q) returned error %v, want %s", c.src, err, c.want)

			continue
		}
		if got != c.want {
			t.Errorf("eval(%q) = %s, want %s", c.src, got, c.want)
		}
	}
}

func TestLogicalNot(t *testing.T) {
	got, err := run(t, `! "nonempty"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0" {
		t.Fatalf("got %s, want 0 (logical not of a truthy string)", got)
	}

	got, err = run(t, "! (def {z} 1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1" {
		t.Fatalf("got %s, want 1 (logical not of a falsey Nil)", got)
	}
}

func TestModuloByZero(t *testing.T) {
	_, err := run(t, "% 10 0")
	if err == nil {
		t.Fatal("expected DivZero error")
	}
	lerror, ok := err.(*lerr.Error)
	if !ok || lerror.Code != lerr.DivZero {
		t.Fatalf("got %v, want DivZero", err)
	}
}

func TestCompareAndLogical(t *testing.T) {
	cases := []struct{ src, want string }{
		{"== 1 1", "1"},
		{"== 1 2", "0"},
		{"!= 1 2", "1"},
		{"> 3 2", "1"},
		{"< 3 2", "0"},
		{">= 3 3", "1"},
		{"<= 2 3", "1"},
		{"&& 1 1 1", "1"},
		{"&& 1 0 1", "0"},
		{"|| 0 0 1", "1"},
		{"|| 0 0 0", "0"},
		{`== {1 2} {1 2}`, "1"},
		{`== "a" "b"`, "0"},
	}
	for _, c := range cases {
		got, err := run(t, c.src)
		if err != nil {
			t.Errorf("eval(%q) returned error %v, want %s", c.src, err, c.want)

			continue
		}
		if got != c.want {
			t.Errorf("eval(%q) = %s, want %s", c.src, got, c.want)
		}
	}
}

func TestDefAndEqualsScopeSeparation(t *testing.T) {
	got, err := run(t, "(def {a b} 1 2)(+ a b)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "3" {
		t.Fatalf("got %s, want 3", got)
	}

	_, err = run(t, "(fun {f x} {= {local} x})(f 10)(local)")
	if err == nil {
		t.Fatal("expected local to be unbound outside f's call frame")
	}
}

func TestFunPrintFormat(t *testing.T) {
	got, err := run(t, "(fun {add a b} {+ a b})(eval {add})")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "func@add(0/2)" {
		t.Fatalf("got %s, want func@add(0/2)", got)
	}
}

func TestPrintAndErrorBuiltins(t *testing.T) {
	got, err := run(t, `(println "hi")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "nil" {
		t.Fatalf("got %s, want nil (println returns Nil)", got)
	}

	_, err = run(t, `error "boom"`)
	if err == nil {
		t.Fatal("expected error builtin to raise")
	}
	if err.Error() != "Error: boom" {
		t.Fatalf("got %q, want %q", err.Error(), "Error: boom")
	}
}
