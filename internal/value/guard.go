package value

import "github.com/hipparcos/dialecte/internal/lerr"

// Selector values for Guard.Arg, per §3: -1 validates the whole arglist,
// 0 validates every argument individually, k>0 validates argument k
// (1-based).
const (
	WholeArglist = -1
	EachArgument = 0
)

// Predicate is a guard's condition: given an opaque parameter, the
// function being dispatched, and the value(s) in scope (a single argument
// for Arg>=0, the full slice wrapped as a QExpr for WholeArglist), it
// returns nil when the check passes or an error describing the failure.
type Predicate func(param any, fn *Function, arg *Value) error

// Guard is a triple: an argument selector, a predicate, and an opaque
// parameter, per §3.
type Guard struct {
	Arg   int
	Pred  Predicate
	Param any
}

// runGuards runs a list of guards against args, wrapping any failure with
// function-name/argument-index context exactly as
// original_source/lfunc.c's `lfunc_check_guards` does.
func runGuards(guards []Guard, fn *Function, args []*Value) error {
	for _, g := range guards {
		switch {
		case g.Arg > 0:
			if g.Arg > len(args) {
				continue
			}
			if err := g.Pred(g.Param, fn, args[g.Arg-1]); err != nil {
				return lerr.WrapArgument(err, g.Arg, fn.Name)
			}
		case g.Arg == EachArgument:
			for i, a := range args {
				if err := g.Pred(g.Param, fn, a); err != nil {
					return lerr.WrapArgument(err, i+1, fn.Name)
				}
			}
		default: // WholeArglist
			if err := g.Pred(g.Param, fn, NewQExpr(args...)); err != nil {
				return lerr.WrapFunction(err, fn.Name)
			}
		}
	}

	return nil
}

// --- reusable predicates, grounded on
// original_source/lbuiltin_condition.inc.c and lbuiltin_func.c's guard
// condition functions ---

// KindIs builds a guard predicate requiring the argument to have the
// given kind; param is unused.
func KindIs(kind Kind) Predicate {
	return func(_ any, fn *Function, v *Value) error {
		if v.Kind != kind {
			return lerr.New(lerr.BadOperand, "expected %s, got %s", kind, v.Kind)
		}

		return nil
	}
}

// KindIsNumeric requires the argument to be Int, BigInt or Double,
// mirroring lbuiltin_condition.inc.c's `cnd_are_num`.
func KindIsNumeric(_ any, fn *Function, v *Value) error {
	if !v.IsNumeric() {
		return lerr.New(lerr.BadOperand, "expected a number, got %s", v.Kind)
	}

	return nil
}

// NonEmptyList requires a QExpr/SExpr argument to have at least one
// child, mirroring lbuiltin_func.c's head/tail/init guards.
func NonEmptyList(_ any, fn *Function, v *Value) error {
	if !v.IsList() {
		return lerr.New(lerr.BadOperand, "expected a list, got %s", v.Kind)
	}
	if v.Len() == 0 {
		return lerr.New(lerr.BadOperand, "expected a non-empty list")
	}

	return nil
}

// NonEmptyQExpr requires the argument to be a non-empty Q-expression,
// mirroring lbuiltin_func.c's head/tail/init guard pair collapsed into one
// predicate.
func NonEmptyQExpr(_ any, fn *Function, v *Value) error {
	if v.Kind != QExpr {
		return lerr.New(lerr.BadOperand, "expected a Q-expression, got %s", v.Kind)
	}
	if v.Len() == 0 {
		return lerr.New(lerr.BadOperand, "expected a non-empty Q-expression")
	}

	return nil
}

// YIsNotZero requires argument 2 of a binary arithmetic call to be
// non-zero, mirroring lbuiltin_condition.inc.c's `cnd_y_is_zero`.
func YIsNotZero(_ any, fn *Function, v *Value) error {
	if v.IsNumeric() && v.IsZero() {
		return lerr.New(lerr.DivZero, "division by zero")
	}

	return nil
}
