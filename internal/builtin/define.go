package builtin

import (
	"github.com/hipparcos/dialecte/internal/lerr"
	"github.com/hipparcos/dialecte/internal/value"
)

// registerDefine installs def/=/fun/lambda. lambda is registered under
// both its word spelling and the backslash spelling `\` from §4.6.
func registerDefine(env *value.Environment) {
	symlistGuard := []value.Guard{arg(1, value.KindIs(value.QExpr))}

	registerFunc(env, "def", 2, value.Unbounded, symlistGuard, bindSymlist(func(e *value.Environment, sym string, v *value.Value) {
		e.PutGlobal(sym, v)
	}))

	registerFunc(env, "=", 2, value.Unbounded, symlistGuard, bindSymlist(func(e *value.Environment, sym string, v *value.Value) {
		e.PutLocal(sym, v)
	}))

	lambdaGuards := []value.Guard{arg(1, value.KindIs(value.QExpr)), arg(2, value.KindIs(value.QExpr))}

	lambda := func(env *value.Environment, args []*value.Value) (*value.Value, error) {
		return value.NewFunction(buildFunction("", args[0], args[1], env.Clone())), nil
	}
	registerFunc(env, "lambda", 2, 2, lambdaGuards, lambda)
	registerFunc(env, `\`, 2, 2, lambdaGuards, lambda)

	registerFunc(env, "fun", 2, 2, []value.Guard{arg(1, value.NonEmptyQExpr), arg(2, value.KindIs(value.QExpr))},
		func(env *value.Environment, args []*value.Value) (*value.Value, error) {
			header := args[0].Children()
			if header[0].Kind != value.Symbol {
				return nil, lerr.New(lerr.BadOperand, "fun: expected a symbol name, got %s", header[0].Kind)
			}
			name := header[0].Symbol()
			formals := value.NewQExpr(copyAll(header[1:])...)
			fn := buildFunction(name, formals, args[1], env.Clone())
			env.PutGlobal(name, value.NewFunction(fn))

			return value.NewNil(), nil
		})
}

// bindSymlist builds the shared def/= callback: args[0] is a Q-expression
// of symbols, args[1:] the values bound to them in order, with `put` set
// to either PutGlobal (def) or PutLocal (=).
func bindSymlist(put func(*value.Environment, string, *value.Value)) value.FuncMode {
	return func(env *value.Environment, args []*value.Value) (*value.Value, error) {
		symlist := args[0]
		vals := args[1:]
		if symlist.Len() != len(vals) {
			return nil, lerr.New(lerr.BadOperand, "expected %d value(s) for %d symbol(s)", symlist.Len(), symlist.Len())
		}
		for i, sym := range symlist.Children() {
			if sym.Kind != value.Symbol {
				return nil, lerr.New(lerr.BadOperand, "expected a symbol, got %s", sym.Kind)
			}
			put(env, sym.Symbol(), value.Copy(vals[i]))
		}

		return value.NewNil(), nil
	}
}

// buildFunction constructs a user-defined Function from its formals and
// body Q-expressions, mirroring original_source/lfunc.c's lfunc_copy
// mutating the stored body from Q-expression to S-expression so Dispatch
// can execute it directly.
func buildFunction(name string, formalsQ, bodyQ *value.Value, scope *value.Environment) *value.Function {
	formals := value.Copy(formalsQ)
	min, max := formalArity(formals)

	body := value.Copy(bodyQ)
	children := body.Children()
	body.SetSExpr(children)

	return &value.Function{
		Name:    name,
		MinArgc: min,
		MaxArgc: max,
		Formals: formals,
		Body:    body,
		Scope:   scope,
	}
}

// formalArity counts required formals up to a `&` rest marker, after which
// the arity is unbounded.
func formalArity(formals *value.Value) (min, max int) {
	children := formals.Children()
	for i, c := range children {
		if c.Kind == value.Symbol && c.Symbol() == "&" {
			return i, value.Unbounded
		}
	}

	return len(children), len(children)
}
