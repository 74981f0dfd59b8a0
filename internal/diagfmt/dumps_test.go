package diagfmt

import (
	"strings"
	"testing"

	"ripple/internal/asi"
	"ripple/internal/ast"
	"ripple/internal/lexer"
	"ripple/internal/parser"
	"ripple/internal/source"
)

// frontend прогоняет вход через лексер, терминацию и парсер.
func frontend(t *testing.T, input string) (*source.FileSet, asi.Result, *ast.Builder, ast.FileID) {
	t.Helper()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rp", []byte(input)))

	toks := lexer.New(file, lexer.Options{}).Tokens()
	oracle := parser.NewProbe(parser.DefaultProbeOptions())
	result := asi.Run(file, toks, oracle, nil, asi.DefaultConfig())

	builder := ast.NewBuilder(ast.Hints{})
	parsed := parser.ParseTokens(fs, result.Tokens, builder, parser.Options{MaxErrors: 100})
	return fs, result, builder, parsed.File
}

func TestFormatTokensPrettyMarksSynthetic(t *testing.T) {
	input := "fn main() {\n\treturn\n\tvalue()\n}\n"
	fs, result, _, _ := frontend(t, input)

	var sb strings.Builder
	if err := FormatTokensPretty(&sb, result.Tokens, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "(auto)") {
		t.Errorf("synthetic terminator not marked:\n%s", out)
	}
	if !strings.Contains(out, "return") {
		t.Errorf("return token missing:\n%s", out)
	}
}

func TestFormatTokensJSONSynthetic(t *testing.T) {
	input := "fn main() {\n\treturn\n\tvalue()\n}\n"
	_, result, _, _ := frontend(t, input)

	var sb strings.Builder
	if err := FormatTokensJSON(&sb, result.Tokens); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	if !strings.Contains(sb.String(), `"synthetic": true`) {
		t.Errorf("synthetic flag missing:\n%s", sb.String())
	}
}

func TestFormatDecisionsPretty(t *testing.T) {
	input := "fn main() {\n\tlet x = 1\n\tx\n}\n"
	fs, result, _, _ := frontend(t, input)

	var sb strings.Builder
	if err := FormatDecisionsPretty(&sb, result.Decisions, fs); err != nil {
		t.Fatalf("FormatDecisionsPretty: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "insert") {
		t.Errorf("expected an insert decision after the let:\n%s", out)
	}
	if !strings.Contains(out, "implicit-return") {
		t.Errorf("expected implicit-return suppression for the tail:\n%s", out)
	}
}

func TestFormatDecisionsJSON(t *testing.T) {
	input := "fn main() {\n\tlet x = 1\n\tx\n}\n"
	fs, result, _, _ := frontend(t, input)

	var sb strings.Builder
	if err := FormatDecisionsJSON(&sb, result.Decisions, fs); err != nil {
		t.Fatalf("FormatDecisionsJSON: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `"action": "insert"`) {
		t.Errorf("insert action missing:\n%s", out)
	}
	if !strings.Contains(out, `"reason": "implicit-return"`) {
		t.Errorf("implicit-return reason missing:\n%s", out)
	}
}

func TestFormatASTTree(t *testing.T) {
	input := "fn add(a: int, b: int) -> int {\n\ta + b\n}\n"
	fs, _, builder, fileID := frontend(t, input)

	var sb strings.Builder
	if err := FormatASTTree(&sb, builder, fileID, fs); err != nil {
		t.Fatalf("FormatASTTree: %v", err)
	}
	out := sb.String()

	for _, want := range []string{"File", "Fn add", "Param a", "Tail", "Binary +"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}
}
