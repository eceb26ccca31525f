// Package lerr defines the closed error-code enumeration used throughout
// dialecte's runtime and the Error type that carries a code, a message, an
// optional source position, and an optional wrapped cause.
package lerr

import "fmt"

// Code is a member of the closed enumeration of runtime error kinds.
type Code int

const (
	// DivZero signals division (or modulo) by zero.
	DivZero Code = iota
	// BadOp signals an operator applied to operand kinds it does not support.
	BadOp
	// BadNum signals a malformed numeric literal.
	BadNum
	// BadOperand signals an operand in a position that expects a different kind.
	BadOperand
	// BadSymbol signals lookup of an unbound symbol.
	BadSymbol
	// TooManyArgs signals a call exceeding a function's maximum arity.
	TooManyArgs
	// TooFewArgs signals a call below a function's minimum arity. No code
	// path raises it: under-application instead produces a
	// partially-applied function value.
	TooFewArgs
	// Eval signals an attempt to apply a non-function, or any other
	// evaluation-time structural error.
	Eval
	// AlreadyDefined signals redefinition where the language forbids it.
	AlreadyDefined
	// NilFuncCall signals application of a nil function pointer.
	NilFuncCall

	// ParserMissingOPar signals a parse site that required '(' but didn't find it.
	ParserMissingOPar
	// ParserMissingCPar signals a missing ')'.
	ParserMissingCPar
	// ParserMissingCBrc signals a missing '}'.
	ParserMissingCBrc
	// ParserBadOperand signals a token in operand position matching no production.
	ParserBadOperand
	// ParserBadExpr signals a token that cannot start an expression.
	ParserBadExpr
)

var names = [...]string{
	"DivZero", "BadOp", "BadNum", "BadOperand", "BadSymbol",
	"TooManyArgs", "TooFewArgs", "Eval", "AlreadyDefined", "NilFuncCall",
	"ParserMissingOPar", "ParserMissingCPar", "ParserMissingCBrc",
	"ParserBadOperand", "ParserBadExpr",
}

// String returns the code's enumeration name, e.g. "DivZero".
func (c Code) String() string {
	if int(c) < 0 || int(c) >= len(names) {
		return fmt.Sprintf("Code(%d)", int(c))
	}

	return names[c]
}

// Pos is a source line/column, 1-based. A zero Pos means "no position".
type Pos struct {
	Line int
	Col  int
}

// Valid reports whether p names an actual source position.
func (p Pos) Valid() bool { return p.Line > 0 }

// Error is a structured runtime error: a code, a message, an optional
// source position, and an optional wrapped predecessor forming a cause
// chain. Two Errors compare equal by code only; see Equal.
type Error struct {
	Code    Code
	Message string
	Pos     Pos
	cause   error
}

// New constructs an Error with no position and no cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewAt constructs an Error carrying a source position.
func NewAt(code Code, pos Pos, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Wrap builds a new Error whose cause is err, prefixing the message. If err
// is itself an *Error its Code is NOT inherited — callers pick the
// wrapping error's own code, matching the guard-context wrapping in
// lfunc_check_guards where a generic code is paired with positional
// context.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.Valid() {
		return fmt.Sprintf("Error: %s at %d:%d", e.Message, e.Pos.Line, e.Pos.Col)
	}

	return fmt.Sprintf("Error: %s", e.Message)
}

// Unwrap exposes the wrapped predecessor, if any, to errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// Equal reports whether two errors carry the same code. Messages,
// positions and causes are ignored, per §3's "Errors compare equal by
// code" invariant.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.Code == other.Code
}

// WrapArgument wraps cause with the "argument N of 'name'" context used by
// guard failures, mirroring original_source/lfunc.c's
// lfunc_check_guards argument-indexed wrap format.
func WrapArgument(cause error, index int, name string) *Error {
	return Wrap(codeOf(cause), cause, "argument %d of '%s'", index, name)
}

// WrapFunction wraps cause with the bare "'name'" context used by
// whole-arglist guard failures.
func WrapFunction(cause error, name string) *Error {
	return Wrap(codeOf(cause), cause, "'%s'", name)
}

func codeOf(err error) Code {
	if e, ok := err.(*Error); ok {
		return e.Code
	}

	return Eval
}
