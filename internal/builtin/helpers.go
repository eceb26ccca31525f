package builtin

import (
	"math"

	"github.com/hipparcos/dialecte/internal/value"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// truthy implements §9's open-question resolution: non-zero Int/BigInt/
// Double and any non-Nil, non-Error value are truthy; Nil and Error are
// falsey.
func truthy(v *value.Value) bool {
	switch {
	case v.IsNil(), v.IsError():
		return false
	case v.IsNumeric():
		return v.Sign() != 0
	default:
		return true
	}
}

// boolValue represents booleans as Int 0/1, matching this Lisp's
// C-flavoured heritage (original_source has no dedicated boolean kind).
func boolValue(b bool) *value.Value {
	if b {
		return value.NewInt(1)
	}

	return value.NewInt(0)
}

// toExecutable treats a Q-expression's children as a (head, args...)
// application list, the same conversion buildFunction applies to a
// lambda/fun body, reused by if/loop/eval so a quoted branch runs exactly
// the way a function body would.
func toExecutable(q *value.Value) *value.Value {
	return value.NewSExpr(q.Children()...)
}
