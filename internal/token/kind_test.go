package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Ident, "Ident"},
		{KwFail, "fail"},
		{Semicolon, ";"},
		{Arrow, "->"},
		{DotDotEq, "..="},
		{kindCount, "Kind(?)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind         Kind
		isKeyword    bool
		canEndExpr   bool
		canStartStmt bool
	}{
		{Ident, false, true, true},
		{IntLit, false, true, true},
		{RParen, false, true, false},
		{RBrace, false, true, false},
		{KwElse, true, false, false},
		{KwMut, true, false, false},
		{KwReturn, true, true, true},
		{KwFail, true, false, true},
		{LBrace, false, false, false},
		{LBracket, false, false, false},
		{LParen, false, false, true},
		{Plus, false, false, false},
		{Minus, false, false, true}, // валиден как префиксный минус
		{Bang, false, false, true},
		{Amp, false, false, true},
		{OrOr, false, false, false},
		{Assign, false, false, false},
		{Dot, false, false, false},
		{EOF, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.kind.IsKeyword(); got != tt.isKeyword {
			t.Errorf("%s.IsKeyword() = %v, want %v", tt.kind, got, tt.isKeyword)
		}
		if got := tt.kind.CanEndExpr(); got != tt.canEndExpr {
			t.Errorf("%s.CanEndExpr() = %v, want %v", tt.kind, got, tt.canEndExpr)
		}
		if got := tt.kind.CanStartStmt(); got != tt.canStartStmt {
			t.Errorf("%s.CanStartStmt() = %v, want %v", tt.kind, got, tt.canStartStmt)
		}
	}
}

func TestBinaryAndAssignOps(t *testing.T) {
	for _, k := range []Kind{Plus, Minus, Star, OrOr, Shl, DotDot} {
		if !k.IsBinaryOp() {
			t.Errorf("%s.IsBinaryOp() = false, want true", k)
		}
	}
	for _, k := range []Kind{Assign, PlusAssign, SlashAssign, PercentAssign} {
		if !k.IsAssignOp() {
			t.Errorf("%s.IsAssignOp() = false, want true", k)
		}
		if k.IsBinaryOp() {
			t.Errorf("%s.IsBinaryOp() = true, want false", k)
		}
	}
	if Bang.IsBinaryOp() {
		t.Error("Bang.IsBinaryOp() = true, want false")
	}
}
