package builtin

import "github.com/hipparcos/dialecte/internal/value"

// registerList installs the Q-expression data primitives and the
// eval/map/filter/fold function-mode builtins, grounded on
// original_source/lbuiltin_func.c's head/tail/init/cons/len/join/list/eval
// (guard shapes `lbi_cond_qexpr`/`lbi_cond_list`/`lbi_cond_qexpr_all`); map/
// filter/fold are §12's supplemented fold helpers, generalized the same
// way.
func registerList(env *value.Environment) {
	registerFunc(env, "head", 1, 1, []value.Guard{arg(1, value.NonEmptyQExpr)},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return value.Copy(args[0].Index(0)), nil
		})

	registerFunc(env, "tail", 1, 1, []value.Guard{arg(1, value.NonEmptyQExpr)},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			children := args[0].Children()

			return value.NewQExpr(copyAll(children[1:])...), nil
		})

	registerFunc(env, "init", 1, 1, []value.Guard{arg(1, value.NonEmptyQExpr)},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			children := args[0].Children()

			return value.NewQExpr(copyAll(children[:len(children)-1])...), nil
		})

	registerFunc(env, "cons", 2, 2, []value.Guard{arg(2, value.KindIs(value.QExpr))},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			result := value.Copy(args[1])
			result.Cons(value.Copy(args[0]))

			return result, nil
		})

	registerFunc(env, "join", 1, value.Unbounded, []value.Guard{eachArg(value.KindIs(value.QExpr))},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			result := value.NewQExpr()
			for _, a := range args {
				result.Push(value.Copy(a))
			}

			return result, nil
		})

	registerFunc(env, "list", 0, value.Unbounded, nil,
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return value.NewQExpr(copyAll(args)...), nil
		})

	registerFunc(env, "len", 1, 1, []value.Guard{arg(1, value.KindIs(value.QExpr))},
		func(_ *value.Environment, args []*value.Value) (*value.Value, error) {
			return value.NewInt(int64(args[0].Len())), nil
		})

	// eval's single argument is evaluated generically rather than
	// required to be a Q-expression: `eval $ head {+ -}` passes eval a
	// bare Symbol (head's "as-is" first element), which must resolve
	// through the environment just like any other value, not be rejected
	// by a QExpr-only guard.
	registerFunc(env, "eval", 1, 1, nil,
		func(env *value.Environment, args []*value.Value) (*value.Value, error) {
			target := args[0]
			if target.Kind == value.QExpr {
				target = toExecutable(target)
			}

			return env.Evaluator().EvalValue(env, target)
		})

	registerFunc(env, "map", 2, 2, []value.Guard{arg(1, value.KindIs(value.FunctionKind)), arg(2, value.KindIs(value.QExpr))},
		func(env *value.Environment, args []*value.Value) (*value.Value, error) {
			fn, list := args[0], args[1]
			out := make([]*value.Value, 0, list.Len())
			for _, elem := range list.Children() {
				r, err := value.Dispatch(env.Evaluator(), env, fn, []*value.Value{elem})
				if err != nil {
					return nil, err
				}
				out = append(out, r)
			}

			return value.NewQExpr(out...), nil
		})

	registerFunc(env, "filter", 2, 2, []value.Guard{arg(1, value.KindIs(value.FunctionKind)), arg(2, value.KindIs(value.QExpr))},
		func(env *value.Environment, args []*value.Value) (*value.Value, error) {
			fn, list := args[0], args[1]
			out := make([]*value.Value, 0, list.Len())
			for _, elem := range list.Children() {
				r, err := value.Dispatch(env.Evaluator(), env, fn, []*value.Value{elem})
				if err != nil {
					return nil, err
				}
				if truthy(r) {
					out = append(out, value.Copy(elem))
				}
			}

			return value.NewQExpr(out...), nil
		})

	registerFunc(env, "fold", 3, 3, []value.Guard{arg(1, value.KindIs(value.FunctionKind)), arg(3, value.KindIs(value.QExpr))},
		func(env *value.Environment, args []*value.Value) (*value.Value, error) {
			fn, acc, list := args[0], args[1], args[2]
			for _, elem := range list.Children() {
				r, err := value.Dispatch(env.Evaluator(), env, fn, []*value.Value{acc, elem})
				if err != nil {
					return nil, err
				}
				acc = r
			}

			return acc, nil
		})
}

func copyAll(vs []*value.Value) []*value.Value {
	out := make([]*value.Value, len(vs))
	for i, v := range vs {
		out[i] = value.Copy(v)
	}

	return out
}
