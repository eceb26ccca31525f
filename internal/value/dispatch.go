package value

import "github.com/hipparcos/dialecte/internal/lerr"

// Evaluator is implemented by internal/eval and supplied to Dispatch so
// that applying a user-defined function's body (itself executable code,
// not already a finished value) can recurse back into the AST/value
// walker without this package importing internal/eval — the opposite
// dependency would create an import cycle, since internal/eval already
// imports internal/value for the data types. This narrow-interface
// inversion is the idiomatic Go answer to the same "dispatch core calls
// back into eval" shape original_source/lfunc.c gets for free by being
// one translation unit with leval.c.
type Evaluator interface {
	EvalValue(env *Environment, v *Value) (*Value, error)
}

// Dispatch is the unified function-execution routine (§4.7's "Dispatch
// core"), ported from original_source/lfunc.c's `lfunc_exec`: it handles
// partial application, guard validation, callee-scope preparation, and
// the accumulator/function-mode fork.
func Dispatch(ev Evaluator, env *Environment, fnVal *Value, args []*Value) (*Value, error) {
	if fnVal == nil {
		return nil, lerr.New(lerr.NilFuncCall, "nil can't be executed")
	}
	if !fnVal.IsFunction() {
		return nil, lerr.New(lerr.Eval, "cannot apply a non-function value of kind %s", fnVal.Kind)
	}
	f := fnVal.fn
	if f == nil {
		return nil, lerr.New(lerr.NilFuncCall, "nil can't be executed")
	}

	combined := make([]*Value, 0, len(f.Args)+len(args))
	combined = append(combined, f.Args...)
	combined = append(combined, args...)

	// Step 1: partial application.
	if len(combined) < f.MinArgc {
		clone := f.Clone()
		clone.Args = combined

		return NewFunction(clone), nil
	}

	// Step 2: universal guards, then the function's own.
	if f.MaxArgc != Unbounded && len(combined) > f.MaxArgc {
		return nil, lerr.New(lerr.TooManyArgs, "'%s' passed too many arguments", f.Name)
	}
	if err := runGuards(f.Guards, f, combined); err != nil {
		return nil, err
	}

	// Step 3/4: prepare scope; for user-defined functions the executed
	// "arglist" becomes the function body.
	if f.IsUserDefined() {
		callEnv := prepareUserEnv(f, env, combined)

		return ev.EvalValue(callEnv, f.Body)
	}

	// Step 5: execute a builtin, either accumulator-mode or function-mode.
	if f.Accumulator {
		return execAccumulator(env, f, combined)
	}

	return f.FuncCallback(env, combined)
}

// prepareUserEnv binds combined args to f's formals in a clone of f's
// captured scope, re-parented to the calling environment. The formal
// immediately following a `&` marker is bound to the remaining arguments
// wrapped as a Q-expression, mirroring `lfunc_prepare_env`.
func prepareUserEnv(f *Function, caller *Environment, combined []*Value) *Environment {
	scope := f.Scope.Clone()
	scope.SetParent(caller)

	formals := f.Formals.Children()
	idx := 0
	for i := 0; i < len(formals); i++ {
		sym := formals[i].Symbol()
		if sym == "&" && i == len(formals)-2 {
			restSym := formals[i+1].Symbol()
			scope.PutLocal(restSym, NewQExpr(combined[idx:]...))
			idx = len(combined)

			break
		}
		if idx < len(combined) {
			scope.PutLocal(sym, combined[idx])
			idx++
		} else {
			scope.PutLocal(sym, NewNil())
		}
	}

	return scope
}

// execAccumulator folds combined into a running value per §4.6: a single
// argument folds against the neutral element; otherwise init_neutral
// picks whether the fold starts at the neutral element (consuming every
// argument) or at the first argument (iterating from the second).
func execAccumulator(env *Environment, f *Function, combined []*Value) (*Value, error) {
	if len(combined) == 1 {
		acc := Copy(f.Neutral)
		if err := f.AccCallback(env, combined[0], acc); err != nil {
			return nil, err
		}

		return acc, nil
	}

	var acc *Value
	start := 0
	if f.InitNeutral {
		acc = Copy(f.Neutral)
	} else {
		acc = Copy(combined[0])
		start = 1
	}
	for i := start; i < len(combined); i++ {
		if err := f.AccCallback(env, combined[i], acc); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
