package builtin

import "github.com/hipparcos/dialecte/internal/value"

// registerCompare installs the equality, ordering and logical builtins.
// Equality works on any value kind via value.Equal; ordering requires
// numeric operands (guarded the same way as the arithmetic builtins);
// logical and/or fold truthy() across an already-evaluated argument list
// (this language has no lazy special forms besides the Q-expression
// branches `if`/`loop` quote explicitly).
func registerCompare(env *value.Environment) {
	registerFunc(env, "==", 2, 2, nil,
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return boolValue(value.Equal(args[0], args[1])), nil
		})

	registerFunc(env, "!=", 2, 2, nil,
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return boolValue(!value.Equal(args[0], args[1])), nil
		})

	numeric := eachArg(value.KindIsNumeric)

	registerFunc(env, ">", 2, 2, []value.Guard{numeric},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return boolValue(value.Compare(args[0], args[1]) > 0), nil
		})

	registerFunc(env, "<", 2, 2, []value.Guard{numeric},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return boolValue(value.Compare(args[0], args[1]) < 0), nil
		})

	registerFunc(env, ">=", 2, 2, []value.Guard{numeric},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return boolValue(value.Compare(args[0], args[1]) >= 0), nil
		})

	registerFunc(env, "<=", 2, 2, []value.Guard{numeric},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return boolValue(value.Compare(args[0], args[1]) <= 0), nil
		})

	registerFunc(env, "&&", 1, value.Unbounded, nil,
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			for _, a := range args {
				if !truthy(a) {
					return boolValue(false), nil
				}
			}

			return boolValue(true), nil
		})

	registerFunc(env, "||", 1, value.Unbounded, nil,
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			for _, a := range args {
				if truthy(a) {
					return boolValue(true), nil
				}
			}

			return boolValue(false), nil
		})
}
