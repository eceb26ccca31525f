package value_test

import (
	"testing"

	"github.com/hipparcos/dialecte/internal/lerr"
	"github.com/hipparcos/dialecte/internal/value"
)

func TestEqualReflexiveAndSymmetric(t *testing.T) {
	vals := []*value.Value{
		value.NewInt(1),
		value.NewDouble(1.5),
		value.NewString("hi"),
		value.NewSymbol("x"),
		value.NewQExpr(value.NewInt(1), value.NewInt(2)),
	}
	for _, v := range vals {
		if !value.Equal(v, v) {
			t.Errorf("Equal(%s, %s) = false, want true (reflexive)", v, v)
		}
	}

	a, b := value.NewInt(1), value.NewInt(1)
	if value.Equal(a, b) != value.Equal(b, a) {
		t.Errorf("Equal is not symmetric for %s, %s", a, b)
	}
}

func TestEqualCopy(t *testing.T) {
	original := value.NewQExpr(value.NewInt(1), value.NewString("s"), value.NewSymbol("y"))
	cp := value.Copy(original)
	if !value.Equal(original, cp) {
		t.Fatalf("Equal(V, Copy(V)) = false for %s", original)
	}
	// mutating the original's children slice must not affect the copy.
	original.Push(value.NewQExpr(value.NewInt(99)))
	if value.Equal(original, cp) {
		t.Fatalf("copy should be independent of later mutation")
	}
}

func TestDoubleToleranceEquality(t *testing.T) {
	a := value.NewDouble(1.0000001)
	b := value.NewDouble(1.0000002)
	if !value.Equal(a, b) {
		t.Errorf("doubles within tolerance should compare equal")
	}
	c := value.NewDouble(2.0)
	if value.Equal(a, c) {
		t.Errorf("doubles outside tolerance should not compare equal")
	}
}

func TestErrorsCompareByCodeOnly(t *testing.T) {
	e1 := value.NewError(lerr.New(lerr.DivZero, "message one"))
	e2 := value.NewError(lerr.New(lerr.DivZero, "a completely different message"))
	if !value.Equal(e1, e2) {
		t.Errorf("errors with the same code but different messages should compare equal")
	}

	e3 := value.NewError(lerr.New(lerr.BadOperand, "message one"))
	if value.Equal(e1, e3) {
		t.Errorf("errors with different codes should not compare equal")
	}
}

func TestPrintCanonicalForms(t *testing.T) {
	tests := []struct {
		v    *value.Value
		want string
	}{
		{value.NewNil(), "nil"},
		{value.NewInt(42), "42"},
		{value.NewInt(-7), "-7"},
		{value.NewString(`a "b" c`), `"a \"b\" c"`},
		{value.NewSymbol("foo"), "foo"},
		{value.NewSExpr(value.NewInt(1), value.NewInt(2)), "(1 2)"},
		{value.NewQExpr(value.NewInt(1), value.NewInt(2)), "{1 2}"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestListOperations(t *testing.T) {
	list := value.NewQExpr(value.NewInt(1), value.NewInt(2), value.NewInt(3))
	if list.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", list.Len())
	}
	head := list.Pop(0)
	if head.Int() != 1 {
		t.Errorf("Pop(0) = %s, want 1", head)
	}
	if list.Len() != 2 {
		t.Errorf("after Pop, Len() = %d, want 2", list.Len())
	}
	list.Cons(value.NewInt(0))
	if list.Index(0).Int() != 0 {
		t.Errorf("after Cons, Index(0) = %s, want 0", list.Index(0))
	}
	list.Push(value.NewQExpr(value.NewInt(9)))
	if list.Index(list.Len() - 1).Int() != 9 {
		t.Errorf("after Push, last element = %s, want 9", list.Index(list.Len()-1))
	}
}

// errOf returns msg as a plain error value that is not an *lerr.Error.
func errOf(t *testing.T, msg string) interface {
	Error() string
} {
	t.Helper()

	return stringError(msg)
}

type stringError string

func (s stringError) Error() string { return string(s) }
