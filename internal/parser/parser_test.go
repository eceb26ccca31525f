package parser_test

import (
	"testing"

	"github.com/hipparcos/dialecte/internal/ast"
	"github.com/hipparcos/dialecte/internal/parser"
)

func TestParseSimpleExpr(t *testing.T) {
	prog := parser.Parse("+ 1 1")
	if prog.Tag != ast.Program {
		t.Fatalf("root tag = %s, want Program", prog.Tag)
	}
	if len(prog.Children) != 1 {
		t.Fatalf("program has %d children, want 1", len(prog.Children))
	}
	expr := prog.Children[0]
	if expr.Tag != ast.Expr {
		t.Fatalf("child tag = %s, want Expr", expr.Tag)
	}
	if len(expr.Children) != 3 {
		t.Fatalf("expr has %d children, want 3 (head + 2 operands)", len(expr.Children))
	}
	if expr.Children[0].Content != "+" {
		t.Errorf("head = %q, want %q", expr.Children[0].Content, "+")
	}
}

func TestParseSexprWrapsExpr(t *testing.T) {
	prog := parser.Parse("(+ 1 1)")
	if len(prog.Children) != 1 {
		t.Fatalf("program has %d children, want 1", len(prog.Children))
	}
	sexpr := prog.Children[0]
	if sexpr.Tag != ast.Sexpr {
		t.Fatalf("tag = %s, want Sexpr", sexpr.Tag)
	}
	if len(sexpr.Children) != 1 || sexpr.Children[0].Tag != ast.Expr {
		t.Fatalf("sexpr should wrap a single Expr child, got %+v", sexpr.Children)
	}
}

func TestParseMultipleTopLevelExprs(t *testing.T) {
	prog := parser.Parse("(+ 1 1)(+ 2 2)")
	if len(prog.Children) != 2 {
		t.Fatalf("program has %d children, want 2", len(prog.Children))
	}
}

func TestParseQexpr(t *testing.T) {
	// a Q-expression cannot start a top-level expression, so it is parsed
	// here in operand position.
	prog := parser.Parse("head {1 2 3}")
	q := prog.Children[0].Children[1]
	if q.Tag != ast.Qexpr {
		t.Fatalf("tag = %s, want Qexpr", q.Tag)
	}
	if len(q.Children) != 3 {
		t.Fatalf("qexpr has %d children, want 3", len(q.Children))
	}
}

func TestParseDollarPipesIntoSexpr(t *testing.T) {
	prog := parser.Parse("eval $ head {+ -}")
	if len(prog.Children) != 1 {
		t.Fatalf("program has %d children, want 1", len(prog.Children))
	}
	expr := prog.Children[0]
	if expr.Tag != ast.Expr || expr.Children[0].Content != "eval" {
		t.Fatalf("expected top-level Expr headed by eval, got %s", expr)
	}
	if len(expr.Children) != 2 {
		t.Fatalf("eval should take one $-wrapped operand, got %d children", len(expr.Children))
	}
	wrapped := expr.Children[1]
	if wrapped.Tag != ast.Sexpr {
		t.Fatalf("operand after $ should be an Sexpr, got %s", wrapped.Tag)
	}
}

func TestParseStringUnescapesQuote(t *testing.T) {
	prog := parser.Parse(`+ "a \"b\" c"`)
	str := prog.Children[0].Children[1]
	if str.Tag != ast.String {
		t.Fatalf("tag = %s, want String", str.Tag)
	}
	want := `a "b" c`
	if str.Content != want {
		t.Errorf("content = %q, want %q", str.Content, want)
	}
}

func TestParseMissingCParIsError(t *testing.T) {
	prog := parser.Parse("(+ 1 1")
	if !prog.IsError() {
		t.Fatalf("expected program to end in an error node, got %s", prog)
	}
}

func TestParseBadExprStopsAtFirstError(t *testing.T) {
	prog := parser.Parse("(+ 1 1) 1 + 1")
	if !prog.IsError() {
		t.Fatalf("expected program to end in an error node, got %s", prog)
	}
	// parsing halts at the failing position: only the first top-level
	// expression plus the error node are attached.
	if len(prog.Children) != 2 {
		t.Fatalf("program has %d children, want 2 (ok expr + error)", len(prog.Children))
	}
}

func TestParseBadOperand(t *testing.T) {
	prog := parser.Parse("+ 1 +")
	// "+" in operand position is itself a valid Symbol token, so this
	// parses fine structurally; BadOperand is a runtime (evaluator) kind
	// mismatch, not a parse error, matching §8's scenario table pairing
	// `+ 1 +` with a BadOperand *evaluation* error rather than a parse
	// failure.
	if prog.IsError() {
		t.Fatalf("did not expect a parse error for %q, got %s", "+ 1 +", prog)
	}
}
