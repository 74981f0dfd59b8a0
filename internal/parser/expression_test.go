package parser

import (
	"testing"

	"ripple/internal/ast"
	"ripple/internal/diag"
)

// parseExprFrom разбирает выражение через 'let x = <expr>;' и возвращает
// инициализатор.
func parseExprFrom(t *testing.T, exprSrc string) (*ast.Builder, ast.ExprID) {
	t.Helper()

	builder, fileID, bag := parseSource(t, "let probe = "+exprSrc+";")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors in %q: %s", exprSrc, diagnosticsSummary(bag))
	}

	file := builder.Files.Get(fileID)
	if len(file.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(file.Items))
	}
	letItem, ok := builder.Items.Let(file.Items[0])
	if !ok {
		t.Fatalf("expected let item")
	}
	if letItem.Value == ast.NoExprID {
		t.Fatalf("let item has no value")
	}
	return builder, letItem.Value
}

func requireBinary(t *testing.T, builder *ast.Builder, id ast.ExprID, wantOp ast.ExprBinaryOp) *ast.ExprBinaryData {
	t.Helper()
	bin, ok := builder.Exprs.Binary(id)
	if !ok {
		t.Fatalf("expected binary expression, got kind %v", builder.Exprs.Get(id).Kind)
	}
	if bin.Op != wantOp {
		t.Fatalf("operator: got %s, want %s", bin.Op, wantOp)
	}
	return bin
}

func requireIdent(t *testing.T, builder *ast.Builder, id ast.ExprID, want string) {
	t.Helper()
	ident, ok := builder.Exprs.Ident(id)
	if !ok {
		t.Fatalf("expected identifier, got kind %v", builder.Exprs.Get(id).Kind)
	}
	if got := lookupNameOr(builder, ident.Name, "<missing>"); got != want {
		t.Errorf("identifier: got %q, want %q", got, want)
	}
}

func requireIntLit(t *testing.T, builder *ast.Builder, id ast.ExprID, want string) {
	t.Helper()
	lit, ok := builder.Exprs.Literal(id)
	if !ok {
		t.Fatalf("expected literal, got kind %v", builder.Exprs.Get(id).Kind)
	}
	if lit.Kind != ast.ExprLitInt {
		t.Fatalf("literal kind: got %v, want int", lit.Kind)
	}
	if got := lookupNameOr(builder, lit.Value, "<missing>"); got != want {
		t.Errorf("literal value: got %q, want %q", got, want)
	}
}

func TestParseExpr_Precedence(t *testing.T) {
	t.Run("mul binds tighter than add", func(t *testing.T) {
		builder, id := parseExprFrom(t, "1 + 2 * 3")
		add := requireBinary(t, builder, id, ast.ExprBinaryAdd)
		requireIntLit(t, builder, add.Left, "1")
		mul := requireBinary(t, builder, add.Right, ast.ExprBinaryMul)
		requireIntLit(t, builder, mul.Left, "2")
		requireIntLit(t, builder, mul.Right, "3")
	})

	t.Run("and binds tighter than or", func(t *testing.T) {
		builder, id := parseExprFrom(t, "a || b && c")
		or := requireBinary(t, builder, id, ast.ExprBinaryLogicalOr)
		requireIdent(t, builder, or.Left, "a")
		and := requireBinary(t, builder, or.Right, ast.ExprBinaryLogicalAnd)
		requireIdent(t, builder, and.Left, "b")
		requireIdent(t, builder, and.Right, "c")
	})

	t.Run("comparison above range", func(t *testing.T) {
		builder, id := parseExprFrom(t, "i < lo .. hi")
		less := requireBinary(t, builder, id, ast.ExprBinaryLess)
		requireIdent(t, builder, less.Left, "i")
		rng := requireBinary(t, builder, less.Right, ast.ExprBinaryRange)
		requireIdent(t, builder, rng.Left, "lo")
		requireIdent(t, builder, rng.Right, "hi")
	})

	t.Run("left associativity", func(t *testing.T) {
		builder, id := parseExprFrom(t, "a - b - c")
		outer := requireBinary(t, builder, id, ast.ExprBinarySub)
		requireIdent(t, builder, outer.Right, "c")
		inner := requireBinary(t, builder, outer.Left, ast.ExprBinarySub)
		requireIdent(t, builder, inner.Left, "a")
		requireIdent(t, builder, inner.Right, "b")
	})

	t.Run("group overrides precedence", func(t *testing.T) {
		builder, id := parseExprFrom(t, "(1 + 2) * 3")
		mul := requireBinary(t, builder, id, ast.ExprBinaryMul)
		group, ok := builder.Exprs.Group(mul.Left)
		if !ok {
			t.Fatalf("expected group on the left")
		}
		add := requireBinary(t, builder, group.Inner, ast.ExprBinaryAdd)
		requireIntLit(t, builder, add.Left, "1")
		requireIntLit(t, builder, add.Right, "2")
		requireIntLit(t, builder, mul.Right, "3")
	})
}

func TestParseExpr_Unary(t *testing.T) {
	t.Run("negation", func(t *testing.T) {
		builder, id := parseExprFrom(t, "-x")
		unary, ok := builder.Exprs.Unary(id)
		if !ok {
			t.Fatalf("expected unary expression")
		}
		if unary.Op != ast.ExprUnaryMinus {
			t.Errorf("operator: got %s, want -", unary.Op)
		}
		requireIdent(t, builder, unary.Operand, "x")
	})

	t.Run("not binds tighter than and", func(t *testing.T) {
		builder, id := parseExprFrom(t, "!a && b")
		and := requireBinary(t, builder, id, ast.ExprBinaryLogicalAnd)
		unary, ok := builder.Exprs.Unary(and.Left)
		if !ok {
			t.Fatalf("expected unary on the left")
		}
		if unary.Op != ast.ExprUnaryNot {
			t.Errorf("operator: got %s, want !", unary.Op)
		}
	})

	t.Run("nested prefixes apply right to left", func(t *testing.T) {
		builder, id := parseExprFrom(t, "-&x")
		outer, ok := builder.Exprs.Unary(id)
		if !ok {
			t.Fatalf("expected unary expression")
		}
		if outer.Op != ast.ExprUnaryMinus {
			t.Errorf("outer operator: got %s, want -", outer.Op)
		}
		inner, ok := builder.Exprs.Unary(outer.Operand)
		if !ok {
			t.Fatalf("expected nested unary")
		}
		if inner.Op != ast.ExprUnaryRef {
			t.Errorf("inner operator: got %s, want &", inner.Op)
		}
	})
}

func TestParseExpr_Postfix(t *testing.T) {
	t.Run("call with arguments", func(t *testing.T) {
		builder, id := parseExprFrom(t, "f(1, 2)")
		call, ok := builder.Exprs.Call(id)
		if !ok {
			t.Fatalf("expected call expression")
		}
		requireIdent(t, builder, call.Target, "f")
		if len(call.Args) != 2 {
			t.Fatalf("args: got %d, want 2", len(call.Args))
		}
		requireIntLit(t, builder, call.Args[0], "1")
		requireIntLit(t, builder, call.Args[1], "2")
	})

	t.Run("trailing comma in call", func(t *testing.T) {
		builder, id := parseExprFrom(t, "f(1,)")
		call, ok := builder.Exprs.Call(id)
		if !ok {
			t.Fatalf("expected call expression")
		}
		if !call.HasTrailingComma {
			t.Errorf("expected trailing comma flag")
		}
	})

	t.Run("index", func(t *testing.T) {
		builder, id := parseExprFrom(t, "xs[0]")
		index, ok := builder.Exprs.Index(id)
		if !ok {
			t.Fatalf("expected index expression")
		}
		requireIdent(t, builder, index.Target, "xs")
		requireIntLit(t, builder, index.Index, "0")
	})

	t.Run("member access", func(t *testing.T) {
		builder, id := parseExprFrom(t, "user.name")
		member, ok := builder.Exprs.Member(id)
		if !ok {
			t.Fatalf("expected member expression")
		}
		requireIdent(t, builder, member.Target, "user")
		if got := lookupNameOr(builder, member.Field, "<missing>"); got != "name" {
			t.Errorf("field: got %q, want %q", got, "name")
		}
	})

	t.Run("postfix chain", func(t *testing.T) {
		builder, id := parseExprFrom(t, "obj.items[0](x)")
		call, ok := builder.Exprs.Call(id)
		if !ok {
			t.Fatalf("expected outermost call")
		}
		index, ok := builder.Exprs.Index(call.Target)
		if !ok {
			t.Fatalf("expected index under call")
		}
		member, ok := builder.Exprs.Member(index.Target)
		if !ok {
			t.Fatalf("expected member under index")
		}
		requireIdent(t, builder, member.Target, "obj")
	})
}

func TestParseExpr_Literals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind ast.ExprLitKind
	}{
		{"int", "42", ast.ExprLitInt},
		{"float", "3.14", ast.ExprLitFloat},
		{"string", `"hello"`, ast.ExprLitString},
		{"true", "true", ast.ExprLitTrue},
		{"false", "false", ast.ExprLitFalse},
		{"nothing", "nothing", ast.ExprLitNothing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, id := parseExprFrom(t, tt.input)
			lit, ok := builder.Exprs.Literal(id)
			if !ok {
				t.Fatalf("expected literal, got kind %v", builder.Exprs.Get(id).Kind)
			}
			if lit.Kind != tt.wantKind {
				t.Errorf("literal kind: got %v, want %v", lit.Kind, tt.wantKind)
			}
		})
	}
}

func TestParseExpr_If(t *testing.T) {
	t.Run("if else as value", func(t *testing.T) {
		builder, id := parseExprFrom(t, "if c { 1 } else { 2 }")
		ifData, ok := builder.Exprs.If(id)
		if !ok {
			t.Fatalf("expected if expression")
		}
		requireIdent(t, builder, ifData.Cond, "c")

		then, ok := builder.Exprs.Block(ifData.Then)
		if !ok {
			t.Fatalf("expected block in then arm")
		}
		requireIntLit(t, builder, then.Tail, "1")

		els, ok := builder.Exprs.Block(ifData.Else)
		if !ok {
			t.Fatalf("expected block in else arm")
		}
		requireIntLit(t, builder, els.Tail, "2")
	})

	t.Run("else if chain", func(t *testing.T) {
		builder, id := parseExprFrom(t, "if a { 1 } else if b { 2 } else { 3 }")
		outer, ok := builder.Exprs.If(id)
		if !ok {
			t.Fatalf("expected if expression")
		}
		inner, ok := builder.Exprs.If(outer.Else)
		if !ok {
			t.Fatalf("expected nested if in else arm")
		}
		requireIdent(t, builder, inner.Cond, "b")
		if inner.Else == ast.NoExprID {
			t.Errorf("expected final else arm")
		}
	})

	t.Run("if without else", func(t *testing.T) {
		builder, id := parseExprFrom(t, "if c { 1 }")
		ifData, ok := builder.Exprs.If(id)
		if !ok {
			t.Fatalf("expected if expression")
		}
		if ifData.Else != ast.NoExprID {
			t.Errorf("expected no else arm")
		}
	})
}

func TestParseExpr_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
	}{
		{
			name:     "missing operand",
			input:    "let x = ;",
			wantCode: diag.SynExpectExpr,
		},
		{
			name:     "unclosed paren",
			input:    "let x = (1 + 2;",
			wantCode: diag.SynUnclosedParen,
		},
		{
			name:     "unclosed bracket",
			input:    "let x = xs[0;",
			wantCode: diag.SynUnclosedBracket,
		},
		{
			name:     "operator without right side",
			input:    "let x = 1 + ;",
			wantCode: diag.SynExpectExpr,
		},
		{
			name:     "member without field",
			input:    "let x = obj.;",
			wantCode: diag.SynExpectIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag := parseSource(t, tt.input)
			if !bag.HasErrors() {
				t.Fatalf("expected errors, got none")
			}
			if !hasDiagnostic(bag, tt.wantCode) {
				t.Errorf("expected %s, got: %s", tt.wantCode.ID(), diagnosticsSummary(bag))
			}
		})
	}
}
