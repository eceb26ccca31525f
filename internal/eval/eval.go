// Package eval walks the AST internal/parser produces and drives
// internal/value's Dispatch core, implementing §4.7's tree-walking
// evaluator. It is also the one package that wires internal/value's
// Evaluator interface, closing the loop builtins need to recurse back into
// evaluation (eval, if, loop, map, filter, fold) without an import cycle.
package eval

import (
	"strconv"

	"github.com/hipparcos/dialecte/internal/ast"
	"github.com/hipparcos/dialecte/internal/bignum"
	"github.com/hipparcos/dialecte/internal/builtin"
	"github.com/hipparcos/dialecte/internal/diag"
	"github.com/hipparcos/dialecte/internal/lerr"
	"github.com/hipparcos/dialecte/internal/parser"
	"github.com/hipparcos/dialecte/internal/value"
)

// Walker implements value.Evaluator over internal/ast's uniform node type,
// grounded on the teacher's pkg/eval/evaluator.go evalExpr dispatch style
// (one case per node kind, delegating compound forms to helpers) adapted
// from a type-switch on Go types to a switch on ast.Tag.
type Walker struct{}

// New returns a Walker. It carries no state: all mutable state lives in the
// Environment passed to every call, per §5's single-threaded, no-reentrancy
// model.
func New() *Walker { return &Walker{} }

// EvalValue implements value.Evaluator: it evaluates an already-built
// Value tree (a function body, or the eval/if/loop builtins' branches)
// rather than an ast.Node. A QExpr is inert and evaluates to itself; an
// SExpr evaluates its head then applies to the evaluated tail, matching
// §4.7's "Application" rule directly on values instead of nodes.
func (w *Walker) EvalValue(env *value.Environment, v *value.Value) (*value.Value, error) {
	switch v.Kind {
	case value.Symbol:
		bound, ok := env.Get(v.Symbol())
		if !ok {
			return nil, lerr.New(lerr.BadSymbol, "unbound symbol '%s'", v.Symbol())
		}

		return bound, nil
	case value.SExpr:
		return w.apply(env, v.Children())
	default:
		return v, nil
	}
}

// apply implements §4.7's Application rule given an already-built (head,
// operand...) slice of values: evaluate head, evaluate each operand
// left-to-right, short-circuit on the first error, then dispatch.
func (w *Walker) apply(env *value.Environment, children []*value.Value) (*value.Value, error) {
	if len(children) == 0 {
		return value.NewNil(), nil
	}
	head, err := w.EvalValue(env, children[0])
	if err != nil {
		return nil, err
	}
	if len(children) == 1 {
		return head, nil
	}
	args := make([]*value.Value, len(children)-1)
	for i, c := range children[1:] {
		a, err := w.EvalValue(env, c)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}

	return value.Dispatch(w, env, head, args)
}

// Eval walks an ast.Node produced by internal/parser and returns its
// value, implementing §4.7's AST-to-value translation and application in
// one pass.
func (w *Walker) Eval(env *value.Environment, n *ast.Node) (*value.Value, error) {
	switch n.Tag {
	case ast.Program:
		return w.evalProgram(env, n)
	case ast.Sexpr:
		return w.Eval(env, n.Children[0])
	case ast.Expr:
		return w.evalExpr(env, n)
	case ast.Num:
		return evalNum(n)
	case ast.Double:
		return evalDouble(n)
	case ast.String:
		return value.NewString(n.Content), nil
	case ast.Sym:
		bound, ok := env.Get(n.Content)
		if !ok {
			return nil, lerr.NewAt(lerr.BadSymbol, pos(n), "unbound symbol '%s'", n.Content)
		}

		return bound, nil
	case ast.Qexpr:
		return w.buildInert(n), nil
	case ast.Error:
		// All parse failures surface through the public boundary as a
		// generic Eval error, matching original_source/lparser.c: parse
		// errors carry free-text messages with no dedicated code.
		return nil, lerr.NewAt(lerr.Eval, pos(n), "%s", n.Content)
	default:
		return nil, lerr.NewAt(lerr.Eval, pos(n), "cannot evaluate node of kind %s", n.Tag)
	}
}

// evalProgram folds §4.7's "Program → evaluate each top-level
// S-expression in order; the result is the last non-nil result, or nil."
func (w *Walker) evalProgram(env *value.Environment, n *ast.Node) (*value.Value, error) {
	result := value.NewNil()
	for _, child := range n.Children {
		v, err := w.Eval(env, child)
		if err != nil {
			return nil, err
		}
		if !v.IsNil() {
			result = v
		}
	}

	return result, nil
}

// evalExpr implements Application on an Expr node: head is always Children[0]
// (a Sym leaf); with no operands this is a bare symbol reference, so the
// looked-up value is returned directly without going through Dispatch
// (it need not be a function at all).
func (w *Walker) evalExpr(env *value.Environment, n *ast.Node) (*value.Value, error) {
	head, err := w.Eval(env, n.Children[0])
	if err != nil {
		return nil, err
	}
	operands := n.Children[1:]
	if len(operands) == 0 {
		return head, nil
	}

	args := make([]*value.Value, len(operands))
	for i, on := range operands {
		a, err := w.Eval(env, on)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}

	return value.Dispatch(w, env, head, args)
}

// buildInert translates a Qexpr node into a QExpr value without evaluating
// any symbol it contains, per §4.7: nested Sexpr/Qexpr children stay
// inert too, so a lambda or fun body built this way can later be mutated
// to SExpr and executed by the dispatch core.
func (w *Walker) buildInert(n *ast.Node) *value.Value {
	return value.NewQExpr(w.buildInertChildren(n.Children)...)
}

func (w *Walker) buildInertChildren(nodes []*ast.Node) []*value.Value {
	out := make([]*value.Value, len(nodes))
	for i, c := range nodes {
		out[i] = w.buildInertNode(c)
	}

	return out
}

// buildInertNode is the non-evaluating counterpart to Eval/evalExpr: a
// Qexpr stays a QExpr, a Sexpr/Expr becomes an SExpr wrapping its
// untranslated children, and literals/symbols become their literal Value
// form without any lookup.
func (w *Walker) buildInertNode(n *ast.Node) *value.Value {
	switch n.Tag {
	case ast.Qexpr:
		return w.buildInert(n)
	case ast.Sexpr:
		return w.buildInertNode(n.Children[0])
	case ast.Expr:
		return value.NewSExpr(w.buildInertChildren(n.Children)...)
	case ast.Num:
		v, err := evalNum(n)
		if err != nil {
			return value.NewNil()
		}

		return v
	case ast.Double:
		v, err := evalDouble(n)
		if err != nil {
			return value.NewNil()
		}

		return v
	case ast.String:
		return value.NewString(n.Content)
	case ast.Sym:
		return value.NewSymbol(n.Content)
	default:
		return value.NewNil()
	}
}

func pos(n *ast.Node) lerr.Pos { return lerr.Pos{Line: n.Line, Col: n.Col} }

// evalNum parses an integer literal, promoting to BigInt on overflow of
// the machine word, mirroring §4.5's Int/BigInt promotion.
func evalNum(n *ast.Node) (*value.Value, error) {
	if i, err := strconv.ParseInt(n.Content, 10, 64); err == nil {
		return value.NewInt(i), nil
	}
	big, ok := bignum.FromString(n.Content)
	if !ok {
		return nil, lerr.NewAt(lerr.BadNum, pos(n), "malformed numeric literal '%s'", n.Content)
	}

	return value.NewBigInt(big), nil
}

func evalDouble(n *ast.Node) (*value.Value, error) {
	f, err := strconv.ParseFloat(n.Content, 64)
	if err != nil {
		return nil, lerr.NewAt(lerr.BadNum, pos(n), "malformed numeric literal '%s'", n.Content)
	}

	return value.NewDouble(f), nil
}

// DefaultEnv allocates a root environment with every builtin installed and
// this package's Walker registered as its evaluator, implementing §6's
// `env_default() → env`.
func DefaultEnv() *value.Environment {
	env := value.NewEnvironment()
	env.SetEvaluator(New())
	builtin.Register(env)

	return env
}

// EvalFromString implements §6's `eval_from_string(env, input) →
// (result_value, error?)`: lex → parse → walk, in one call. If env has no
// evaluator registered yet (a hand-built environment rather than one from
// DefaultEnv), one is created and attached so recursive builtins keep
// working.
func EvalFromString(env *value.Environment, input string) (*value.Value, error) {
	w, _ := env.Evaluator().(*Walker)
	if w == nil {
		w = New()
		env.SetEvaluator(w)
	}
	prog := parser.Parse(input)

	return w.Eval(env, prog)
}

// EvalFromStringTraced behaves like EvalFromString but logs each top-level
// form through t before evaluating it and its outcome after, for the CLI's
// --verbose flag (§10.2). t may be a no-op Tracer (diag.New(w, false)).
func EvalFromStringTraced(env *value.Environment, input string, t *diag.Tracer) (*value.Value, error) {
	w, _ := env.Evaluator().(*Walker)
	if w == nil {
		w = New()
		env.SetEvaluator(w)
	}
	prog := parser.Parse(input)

	result := value.NewNil()
	for _, child := range prog.Children {
		t.Form(child)
		v, err := w.Eval(env, child)
		t.Result(v, err)
		if err != nil {
			return nil, err
		}
		if !v.IsNil() {
			result = v
		}
	}

	return result, nil
}

// PrintValue renders v in the canonical form §6 specifies.
func PrintValue(v *value.Value) string {
	if v == nil {
		return "nil"
	}

	return v.String()
}
