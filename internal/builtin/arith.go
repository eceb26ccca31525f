package builtin

import "github.com/hipparcos/dialecte/internal/value"

// registerArith installs the accumulator-mode arithmetic builtins plus the
// unary `!` factorial, grounded on §4.5's numeric.go promotion table for
// the actual arithmetic and on
// original_source/lbuiltin_condition.inc.c's `cnd_are_num` for the
// every-argument-numeric guard.
func registerArith(env *value.Environment) {
	numeric := eachArg(value.KindIsNumeric)

	registerAcc(env, "+", 1, value.Unbounded, true, value.NewInt(0), []value.Guard{numeric},
		func(_ *value.Environment, next, acc *value.Value) error {
			acc.Assign(value.Add(acc, next))

			return nil
		})

	registerAcc(env, "-", 1, value.Unbounded, false, value.NewInt(0), []value.Guard{numeric},
		func(_ *value.Environment, next, acc *value.Value) error {
			acc.Assign(value.Sub(acc, next))

			return nil
		})

	registerAcc(env, "*", 1, value.Unbounded, true, value.NewInt(1), []value.Guard{numeric},
		func(_ *value.Environment, next, acc *value.Value) error {
			acc.Assign(value.Mul(acc, next))

			return nil
		})

	registerAcc(env, "/", 1, value.Unbounded, false, value.NewInt(1), []value.Guard{numeric},
		func(_ *value.Environment, next, acc *value.Value) error {
			q, err := value.Div(acc, next)
			if err != nil {
				return err
			}
			acc.Assign(q)

			return nil
		})

	registerAcc(env, "%", 1, value.Unbounded, false, value.NewInt(1), []value.Guard{numeric},
		func(_ *value.Environment, next, acc *value.Value) error {
			r, err := value.Mod(acc, next)
			if err != nil {
				return err
			}
			acc.Assign(r)

			return nil
		})

	registerAcc(env, "^", 1, value.Unbounded, false, value.NewInt(1), []value.Guard{numeric},
		func(_ *value.Environment, next, acc *value.Value) error {
			acc.Assign(value.Pow(acc, next))

			return nil
		})

	// min/max are neutral-free folding accumulators: the neutral element
	// is an out-of-band sentinel (+Inf/-Inf) that every real operand beats
	// on the first fold, so the unary case (which always folds against
	// the neutral per §4.6) yields the lone argument unchanged.
	registerAcc(env, "min", 1, value.Unbounded, false, value.NewDouble(posInf), []value.Guard{numeric},
		func(_ *value.Environment, next, acc *value.Value) error {
			if value.Compare(next, acc) < 0 {
				acc.Assign(next)
			}

			return nil
		})

	registerAcc(env, "max", 1, value.Unbounded, false, value.NewDouble(negInf), []value.Guard{numeric},
		func(_ *value.Environment, next, acc *value.Value) error {
			if value.Compare(next, acc) > 0 {
				acc.Assign(next)
			}

			return nil
		})

	// `!` is overloaded per §4.6's catalogue (it appears both as unary
	// factorial and in the comparison/logical group): numeric operands
	// factorial, anything else is logical negation.
	registerFunc(env, "!", 1, 1, nil, func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
		v := args[0]
		if v.IsNumeric() {
			return value.Factorial(v)
		}

		return boolValue(!truthy(v)), nil
	})
}
