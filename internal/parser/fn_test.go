package parser

import (
	"testing"

	"ripple/internal/ast"
	"ripple/internal/diag"
)

func TestParseFnItem_Signatures(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantParams int
		wantRet    bool
	}{
		{
			name:       "no params no return",
			input:      "fn main() {}",
			wantName:   "main",
			wantParams: 0,
			wantRet:    false,
		},
		{
			name:       "one param",
			input:      "fn inc(x: int) -> int { return x + 1; }",
			wantName:   "inc",
			wantParams: 1,
			wantRet:    true,
		},
		{
			name:       "two params",
			input:      "fn add(a: int, b: int) -> int { return a + b; }",
			wantName:   "add",
			wantParams: 2,
			wantRet:    true,
		},
		{
			name:       "trailing comma",
			input:      "fn add(a: int, b: int,) -> int { return a + b; }",
			wantName:   "add",
			wantParams: 2,
			wantRet:    true,
		},
		{
			name:       "reference param",
			input:      "fn read(p: &text) {}",
			wantName:   "read",
			wantParams: 1,
			wantRet:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, fileID, bag := parseSource(t, tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}

			file := builder.Files.Get(fileID)
			if len(file.Items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(file.Items))
			}
			fn, ok := builder.Items.Fn(file.Items[0])
			if !ok {
				t.Fatalf("expected fn item")
			}

			if got := lookupNameOr(builder, fn.Name, "<missing>"); got != tt.wantName {
				t.Errorf("name: got %q, want %q", got, tt.wantName)
			}

			params := builder.Items.CollectParams(fn)
			if len(params) != tt.wantParams {
				t.Errorf("params: got %d, want %d", len(params), tt.wantParams)
			}

			hasRet := fn.ReturnType != ast.NoTypeID
			if hasRet != tt.wantRet {
				t.Errorf("has return type: got %v, want %v", hasRet, tt.wantRet)
			}

			if fn.Body == ast.NoExprID {
				t.Errorf("fn body missing")
			}
		})
	}
}

func TestParseFnItem_ParamNamesAndTypes(t *testing.T) {
	builder, fileID, bag := parseSource(t, "fn scale(value: int, by: float) -> float {}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}

	file := builder.Files.Get(fileID)
	fn, ok := builder.Items.Fn(file.Items[0])
	if !ok {
		t.Fatalf("expected fn item")
	}

	params := builder.Items.CollectParams(fn)
	if len(params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(params))
	}

	wantNames := []string{"value", "by"}
	wantTypes := []string{"int", "float"}
	for i, param := range params {
		if got := lookupNameOr(builder, param.Name, "<missing>"); got != wantNames[i] {
			t.Errorf("param %d name: got %q, want %q", i, got, wantNames[i])
		}
		typ := builder.Types.Get(param.Type)
		if typ == nil || typ.Kind != ast.TypeExprName {
			t.Fatalf("param %d: expected named type", i)
		}
		if got := lookupNameOr(builder, typ.Name, "<missing>"); got != wantTypes[i] {
			t.Errorf("param %d type: got %q, want %q", i, got, wantTypes[i])
		}
	}
}

func TestParseFnItem_PubVisibility(t *testing.T) {
	builder, fileID, bag := parseSource(t, "pub fn api() {}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}

	file := builder.Files.Get(fileID)
	fn, ok := builder.Items.Fn(file.Items[0])
	if !ok {
		t.Fatalf("expected fn item")
	}
	if fn.Visibility != ast.VisPublic {
		t.Errorf("visibility: got %v, want %v", fn.Visibility, ast.VisPublic)
	}
}

func TestParseFnItem_NoTerminatorNeeded(t *testing.T) {
	builder, fileID, bag := parseSource(t, "fn a() {}\nfn b() {}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}

	file := builder.Files.Get(fileID)
	if len(file.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(file.Items))
	}
}

func TestParseFnItem_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
	}{
		{
			name:     "missing paren",
			input:    "fn broken {}",
			wantCode: diag.SynUnexpectedToken,
		},
		{
			name:     "missing param type",
			input:    "fn f(x) {}",
			wantCode: diag.SynUnexpectedToken,
		},
		{
			name:     "unclosed param list",
			input:    "fn f(x: int {}",
			wantCode: diag.SynUnclosedParen,
		},
		{
			name:     "missing body brace",
			input:    "fn f() return;",
			wantCode: diag.SynExpectBlock,
		},
		{
			name:     "missing return type after arrow",
			input:    "fn f() -> {}",
			wantCode: diag.SynExpectType,
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
