// Package parser turns a internal/lexer token list into an internal/ast
// tree. The grammar is prefix-only (§4.2) so, unlike the teacher's
// Pratt/precedence-climbing pkg/parser, there is no infix operator table:
// parsing is straightforward recursive descent grounded on
// original_source/lparser.c's lparse_expr/lparse_sexpr/lparse_qexpr.
package parser

import (
	"github.com/hipparcos/dialecte/internal/ast"
	"github.com/hipparcos/dialecte/internal/lexer"
)

// Parser holds a two-token lookahead window over a token list, mirroring
// the teacher's Parser{l, cur, peek} shape.
type Parser struct {
	cur  *lexer.Token
	peek *lexer.Token
}

// New builds a Parser positioned at the first token of the list.
func New(first *lexer.Token) *Parser {
	p := &Parser{cur: first}
	if first != nil {
		p.peek = first.Next
	}

	return p
}

// Parse consumes the whole token stream and returns the Program node. On
// the first parse error, parsing stops immediately and the error node is
// the program's last child (§4.2).
func Parse(src string) *ast.Node {
	return New(lexer.Lex(src)).Parse()
}

// Parse runs the Program production: Sexpr* EOF.
func (p *Parser) Parse() *ast.Node {
	prog := ast.NewParent(ast.Program, p.line(), p.col())
	for !p.curIs(lexer.EOF) {
		expr := p.parseExpr()
		prog.Attach(expr)
		if expr.IsError() {
			break
		}
	}

	return prog
}

func (p *Parser) advance() {
	p.cur = p.peek
	if p.cur != nil {
		p.peek = p.cur.Next
	} else {
		p.peek = nil
	}
}

func (p *Parser) curIs(k lexer.Kind) bool {
	return p.cur != nil && p.cur.Kind == k
}

func (p *Parser) line() int {
	if p.cur == nil {
		return 0
	}

	return p.cur.Line
}

func (p *Parser) col() int {
	if p.cur == nil {
		return 0
	}

	return p.cur.Col
}

func errNode(msg string, line, col int) *ast.Node {
	return ast.New(ast.Error, msg, line, col)
}

// parseExpr implements `Expr := Symbol Operand* | Sexpr`, yielding a
// BadExpr node for anything else.
func (p *Parser) parseExpr() *ast.Node {
	if p.cur == nil {
		return errNode("unexpected end of input", 0, 0)
	}

	switch p.cur.Kind {
	case lexer.OPar, lexer.Doll:
		return p.parseSexpr()
	case lexer.Sym:
		return p.parseSymbolExpr()
	default:
		msg := "an expression must start with a symbol or a '('."
		n := errNode(msg, p.cur.Line, p.cur.Col)
		p.advance()

		return n
	}
}

// parseSexpr implements `Sexpr := '(' Expr ')' | '$' Expr`. The '$' form
// (DOLL) has no closing delimiter of its own: it wraps everything up to
// where the enclosing construct's own close would fall, supporting piped
// invocation like `eval $ head {+ -}`.
func (p *Parser) parseSexpr() *ast.Node {
	line, col := p.line(), p.col()
	if p.curIs(lexer.Doll) {
		p.advance()
		inner := p.parseExpr()
		if inner.IsError() {
			return inner
		}

		return ast.NewParent(ast.Sexpr, line, col, inner)
	}

	// '('
	p.advance()
	inner := p.parseExpr()
	if inner.IsError() {
		return inner
	}
	if !p.curIs(lexer.CPar) {
		l, c := line, col
		if p.cur != nil {
			l, c = p.cur.Line, p.cur.Col
		}

		return errNode("a s-expression must end with a ')'.", l, c)
	}
	p.advance()

	return ast.NewParent(ast.Sexpr, line, col, inner)
}

// parseSymbolExpr consumes the leading Symbol then greedily consumes
// Operand* tokens, matching lparse_expr's symbol-led branch.
func (p *Parser) parseSymbolExpr() *ast.Node {
	line, col := p.line(), p.col()
	head := ast.New(ast.Sym, p.cur.Literal, line, col)
	expr := ast.NewParent(ast.Expr, line, col, head)
	p.advance()

	for p.isOperandStart() {
		operand := p.parseOperand()
		if operand.IsError() {
			return operand
		}
		expr.Attach(operand)
	}

	return expr
}

func (p *Parser) isOperandStart() bool {
	if p.cur == nil {
		return false
	}
	switch p.cur.Kind {
	case lexer.Num, lexer.Dbl, lexer.Str, lexer.Sym, lexer.OPar, lexer.Doll, lexer.OBrc:
		return true
	default:
		return false
	}
}

// parseOperand implements `Operand := Atom | List`.
func (p *Parser) parseOperand() *ast.Node {
	switch p.cur.Kind {
	case lexer.Num:
		n := ast.New(ast.Num, p.cur.Literal, p.cur.Line, p.cur.Col)
		p.advance()

		return n
	case lexer.Dbl:
		n := ast.New(ast.Double, p.cur.Literal, p.cur.Line, p.cur.Col)
		p.advance()

		return n
	case lexer.Str:
		n := ast.New(ast.String, unescapeString(p.cur.Literal), p.cur.Line, p.cur.Col)
		p.advance()

		return n
	case lexer.Sym:
		n := ast.New(ast.Sym, p.cur.Literal, p.cur.Line, p.cur.Col)
		p.advance()

		return n
	case lexer.OPar, lexer.Doll:
		return p.parseSexpr()
	case lexer.OBrc:
		return p.parseQexpr()
	default:
		l, c := 0, 0
		if p.cur != nil {
			l, c = p.cur.Line, p.cur.Col
		}

		return errNode("an operand must be a literal, a symbol or a list.", l, c)
	}
}

// parseQexpr implements `Qexpr := '{' (Atom | List)* '}'`.
func (p *Parser) parseQexpr() *ast.Node {
	line, col := p.line(), p.col()
	p.advance() // '{'
	q := ast.NewParent(ast.Qexpr, line, col)
	for !p.curIs(lexer.CBrc) {
		if p.cur == nil || p.curIs(lexer.EOF) {
			return errNode("a q-expression must end with a '}'.", line, col)
		}
		elem := p.parseOperand()
		if elem.IsError() {
			return elem
		}
		q.Attach(elem)
	}
	p.advance() // '}'

	return q
}

// unescapeString strips the surrounding quotes and replaces `\"` with
// `"`, the one escape the lexer retains verbatim for the parser to
// resolve (§4.1, §9).
func unescapeString(lit string) string {
	if len(lit) < 2 {
		return lit
	}
	inner := lit[1 : len(lit)-1]
	out := make([]byte, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) && inner[i+1] == '"' {
			out = append(out, '"')
			i++

			continue
		}
		out = append(out, inner[i])
	}

	return string(out)
}
