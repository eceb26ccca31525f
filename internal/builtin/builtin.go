// Package builtin registers every builtin named in §4.6's catalogue into a
// value.Environment, grounded on original_source/lbuiltin_func.c and
// lbuiltin_condition.inc.c for guard shapes and on the teacher's
// pkg/eval/builtins.go registerBuiltin(name, arity, fn) registration
// pattern, generalized from fixed arity to the spec's min/max-window +
// guard-list model.
package builtin

import "github.com/hipparcos/dialecte/internal/value"

// Register installs every builtin into env's root frame.
func Register(env *value.Environment) {
	registerArith(env)
	registerList(env)
	registerCompare(env)
	registerDefine(env)
	registerControl(env)
	registerIO(env)
}

func newFunc(name string, min, max int, guards []value.Guard) *value.Function {
	return &value.Function{Name: name, MinArgc: min, MaxArgc: max, Guards: guards}
}

// registerAcc installs an accumulator-mode builtin (§4.6).
func registerAcc(env *value.Environment, name string, min, max int, initNeutral bool, neutral *value.Value, guards []value.Guard, cb value.AccMode) {
	f := newFunc(name, min, max, guards)
	f.Accumulator = true
	f.InitNeutral = initNeutral
	f.Neutral = neutral
	f.AccCallback = cb
	env.PutGlobal(name, value.NewFunction(f))
}

// registerFunc installs a function-mode builtin (§4.6).
func registerFunc(env *value.Environment, name string, min, max int, guards []value.Guard, cb value.FuncMode) {
	f := newFunc(name, min, max, guards)
	f.FuncCallback = cb
	env.PutGlobal(name, value.NewFunction(f))
}

func eachArg(pred value.Predicate) value.Guard {
	return value.Guard{Arg: value.EachArgument, Pred: pred}
}

func arg(n int, pred value.Predicate) value.Guard {
	return value.Guard{Arg: n, Pred: pred}
}
