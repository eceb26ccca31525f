package builtin

import "github.com/hipparcos/dialecte/internal/value"

// registerControl installs if/loop. Both branches arrive as Q-expressions
// (quoted, hence not pre-evaluated by ordinary left-to-right argument
// evaluation) and are only executed once the builtin itself chooses to,
// grounded in spirit on the teacher's pkg/eval/control_flow.go evalIf
// then/else branch selection, generalized to this language's
// quote-then-eval special-form trick instead of a dedicated AST node.
func registerControl(env *value.Environment) {
	registerFunc(env, "if", 3, 3, []value.Guard{arg(2, value.KindIs(value.QExpr)), arg(3, value.KindIs(value.QExpr))},
		func(env *value.Environment, args []*value.Value) (*value.Value, error) {
			branch := args[2]
			if truthy(args[0]) {
				branch = args[1]
			}

			return env.Evaluator().EvalValue(env, toExecutable(branch))
		})

	registerFunc(env, "loop", 2, 2, []value.Guard{arg(1, value.KindIs(value.QExpr)), arg(2, value.KindIs(value.QExpr))},
		func(env *value.Environment, args []*value.Value) (*value.Value, error) {
			condQ, bodyQ := args[0], args[1]
			for {
				cond, err := env.Evaluator().EvalValue(env, toExecutable(condQ))
				if err != nil {
					return nil, err
				}
				if !truthy(cond) {
					break
				}
				if _, err := env.Evaluator().EvalValue(env, toExecutable(bodyQ)); err != nil {
					return nil, err
				}
			}

			return value.NewNil(), nil
		})
}
