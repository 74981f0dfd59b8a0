package asi_test

import (
	"testing"

	"ripple/internal/asi"
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/lexer"
	"ripple/internal/parser"
	"ripple/internal/source"
	"ripple/internal/token"
)

// terminate прогоняет вход через лексер и проход терминации с настоящим
// оракулом-зондом.
func terminate(t *testing.T, input string) (asi.Result, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rp", []byte(input)))
	bag := diag.NewBag(100)
	rep := &diag.BagReporter{Bag: bag}

	toks := lexer.New(file, lexer.Options{Reporter: rep}).Tokens()
	if bag.HasErrors() {
		t.Fatalf("lex errors: %d", bag.Len())
	}

	oracle := parser.NewProbe(parser.DefaultProbeOptions())
	result := asi.Run(file, toks, oracle, rep, asi.DefaultConfig())
	return result, bag
}

// parseTerminated добавляет к terminate полный разбор результата.
func parseTerminated(t *testing.T, input string) (*ast.Builder, ast.FileID, asi.Result, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rp", []byte(input)))
	bag := diag.NewBag(100)
	rep := &diag.BagReporter{Bag: bag}

	toks := lexer.New(file, lexer.Options{Reporter: rep}).Tokens()
	if bag.HasErrors() {
		t.Fatalf("lex errors: %d", bag.Len())
	}

	oracle := parser.NewProbe(parser.DefaultProbeOptions())
	result := asi.Run(file, toks, oracle, rep, asi.DefaultConfig())

	builder := ast.NewBuilder(ast.Hints{})
	parsed := parser.ParseTokens(fs, result.Tokens, builder, parser.Options{
		MaxErrors: 100,
		Reporter:  rep,
	})
	return builder, parsed.File, result, bag
}

func syntheticCount(toks []token.Token) int {
	n := 0
	for _, tok := range toks {
		if tok.IsSynthetic() {
			n++
		}
	}
	return n
}

// mainBody достаёт блок тела первой функции файла.
func mainBody(t *testing.T, builder *ast.Builder, fileID ast.FileID) *ast.ExprBlockData {
	t.Helper()

	file := builder.Files.Get(fileID)
	if len(file.Items) == 0 {
		t.Fatalf("no items parsed")
	}
	fn, ok := builder.Items.Fn(file.Items[0])
	if !ok {
		t.Fatalf("expected fn item")
	}
	block, ok := builder.Exprs.Block(fn.Body)
	if !ok {
		t.Fatalf("expected block body")
	}
	return block
}

func TestTermination_IndentedOperandJoinsStatement(t *testing.T) {
	builder, fileID, result, bag := parseTerminated(t, "let x = 1\n  + 1")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	if n := syntheticCount(result.Tokens); n != 0 {
		t.Fatalf("synthetic terminators: got %d, want 0", n)
	}

	file := builder.Files.Get(fileID)
	if len(file.Items) != 1 {
		t.Fatalf("items: got %d, want 1", len(file.Items))
	}
	letData, ok := builder.Items.Let(file.Items[0])
	if !ok {
		t.Fatalf("expected let item")
	}
	bin, ok := builder.Exprs.Binary(letData.Value)
	if !ok || bin.Op != ast.ExprBinaryAdd {
		t.Errorf("expected the two lines to parse as one addition")
	}
}

func TestTermination_EqualIndentSplitsStatements(t *testing.T) {
	result, _ := terminate(t, "return\nvalue()")

	if n := syntheticCount(result.Tokens); n != 1 {
		t.Fatalf("synthetic terminators: got %d, want 1", n)
	}
	// Терминатор встаёт сразу после 'return', перед 'value'.
	if !result.Tokens[1].IsSynthetic() {
		t.Errorf("expected the terminator right after 'return'")
	}
	if result.Tokens[2].Kind != token.Ident {
		t.Errorf("token after terminator: got %s, want Ident", result.Tokens[2].Kind)
	}
}

func TestTermination_RerunIsIdempotent(t *testing.T) {
	inputs := []string{
		"return\nvalue()",
		"fn main() {\n    let mut x = 1\n    x\n}",
		"let a = 1\nlet b = a\nlet c = b + a",
	}

	for _, input := range inputs {
		first, _ := terminate(t, input)

		// Второй проход над уже переписанным потоком. Файл тот же:
		// спаны синтетических токенов указывают в исходный текст.
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("test.rp", []byte(input)))
		bag := diag.NewBag(100)
		oracle := parser.NewProbe(parser.DefaultProbeOptions())
		second := asi.Run(file, first.Tokens, oracle, &diag.BagReporter{Bag: bag}, asi.DefaultConfig())

		if len(second.Tokens) != len(first.Tokens) {
			t.Errorf("%q: rerun changed token count from %d to %d",
				input, len(first.Tokens), len(second.Tokens))
			continue
		}
		for i := range first.Tokens {
			if second.Tokens[i].Kind != first.Tokens[i].Kind ||
				second.Tokens[i].Span != first.Tokens[i].Span {
				t.Errorf("%q: rerun disturbed token %d", input, i)
				break
			}
		}
	}
}

func TestTermination_ContinuationMarkerSuppresses(t *testing.T) {
	builder, fileID, result, bag := parseTerminated(t,
		"fn main() {\n    a()\n    \\\n    + b()\n}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	if n := syntheticCount(result.Tokens); n != 0 {
		t.Fatalf("synthetic terminators: got %d, want 0", n)
	}

	block := mainBody(t, builder, fileID)
	if len(block.Stmts) != 0 || block.Tail == ast.NoExprID {
		t.Fatalf("expected a lone tail expression")
	}
	bin, ok := builder.Exprs.Binary(block.Tail)
	if !ok || bin.Op != ast.ExprBinaryAdd {
		t.Fatalf("expected 'a() + b()' as one expression")
	}
	if _, ok := builder.Exprs.Call(bin.Left); !ok {
		t.Errorf("left operand: expected call")
	}
	if _, ok := builder.Exprs.Call(bin.Right); !ok {
		t.Errorf("right operand: expected call")
	}
}

func TestTermination_ImplicitReturnPreserved(t *testing.T) {
	builder, fileID, result, bag := parseTerminated(t,
		"fn main() {\n    let mut x = 1\n    x\n}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	if n := syntheticCount(result.Tokens); n != 1 {
		t.Fatalf("synthetic terminators: got %d, want 1 (after the let)", n)
	}

	block := mainBody(t, builder, fileID)
	if len(block.Stmts) != 1 {
		t.Fatalf("statements: got %d, want 1", len(block.Stmts))
	}
	if _, ok := builder.Stmts.Let(block.Stmts[0]); !ok {
		t.Errorf("expected let statement")
	}
	if block.Tail == ast.NoExprID {
		t.Fatalf("trailing 'x' must stay the block tail")
	}
	if _, ok := builder.Exprs.Ident(block.Tail); !ok {
		t.Errorf("expected identifier tail")
	}
}

func TestTermination_IndentationBias(t *testing.T) {
	t.Run("deeper line reads as continuation", func(t *testing.T) {
		builder, fileID, _, bag := parseTerminated(t,
			"fn main() {\n    return\n        value()\n}")
		if bag.HasErrors() {
			t.Fatalf("unexpected errors: %d", bag.Len())
		}

		block := mainBody(t, builder, fileID)
		if len(block.Stmts) != 1 {
			t.Fatalf("statements: got %d, want 1", len(block.Stmts))
		}
		ret, ok := builder.Stmts.Return(block.Stmts[0])
		if !ok {
			t.Fatalf("expected return statement")
		}
		if ret.Value == ast.NoExprID {
			t.Errorf("deeper 'value()' must belong to the return")
		}
	})

	t.Run("equal line reads as new statement", func(t *testing.T) {
		builder, fileID, _, bag := parseTerminated(t,
			"fn main() {\n    return\n    value()\n}")
		if bag.HasErrors() {
			t.Fatalf("unexpected errors: %d", bag.Len())
		}

		block := mainBody(t, builder, fileID)
		if len(block.Stmts) != 1 {
			t.Fatalf("statements: got %d, want 1", len(block.Stmts))
		}
		ret, ok := builder.Stmts.Return(block.Stmts[0])
		if !ok {
			t.Fatalf("expected return statement")
		}
		if ret.Value != ast.NoExprID {
			t.Errorf("equal-indent 'value()' must not belong to the return")
		}
		if block.Tail == ast.NoExprID {
			t.Errorf("'value()' should survive as the block tail")
		}
	})
}

func TestTermination_AllmanBraceStaysAttached(t *testing.T) {
	builder, fileID, result, bag := parseTerminated(t,
		"fn main() {\n    while ready()\n    {\n        step()\n    }\n}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	if n := syntheticCount(result.Tokens); n != 0 {
		t.Fatalf("synthetic terminators: got %d, want 0", n)
	}

	block := mainBody(t, builder, fileID)
	if len(block.Stmts) != 1 {
		t.Fatalf("statements: got %d, want 1", len(block.Stmts))
	}
	while, ok := builder.Stmts.While(block.Stmts[0])
	if !ok {
		t.Fatalf("expected while statement")
	}
	body, ok := builder.Exprs.Block(while.Body)
	if !ok {
		t.Fatalf("expected while body")
	}
	if body.Tail == ast.NoExprID {
		t.Errorf("expected 'step()' as the loop body tail")
	}
}

func TestTermination_ElseStaysAttached(t *testing.T) {
	builder, fileID, result, bag := parseTerminated(t,
		"fn main() {\n    let r = if c { 1 }\n    else { 2 }\n    r\n}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	if n := syntheticCount(result.Tokens); n != 1 {
		t.Fatalf("synthetic terminators: got %d, want 1 (after the else block)", n)
	}

	block := mainBody(t, builder, fileID)
	if len(block.Stmts) != 1 {
		t.Fatalf("statements: got %d, want 1", len(block.Stmts))
	}
	letData, ok := builder.Stmts.Let(block.Stmts[0])
	if !ok {
		t.Fatalf("expected let statement")
	}
	ifData, ok := builder.Exprs.If(letData.Init)
	if !ok {
		t.Fatalf("expected if initializer")
	}
	if ifData.Else == ast.NoExprID {
		t.Errorf("else branch lost at the line boundary")
	}
	if block.Tail == ast.NoExprID {
		t.Errorf("expected 'r' as the block tail")
	}
}

func TestTermination_OperatorChainAcrossLines(t *testing.T) {
	// Консервативная стратегия: цепочка операторов на своих строках
	// держится на невалидности вставки, отступ не важен.
	builder, fileID, result, bag := parseTerminated(t,
		"let sum = base\n+ extra\n+ more")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", bag.Len())
	}
	if n := syntheticCount(result.Tokens); n != 0 {
		t.Fatalf("synthetic terminators: got %d, want 0", n)
	}

	file := builder.Files.Get(fileID)
	if len(file.Items) != 1 {
		t.Fatalf("items: got %d, want 1", len(file.Items))
	}
	letData, ok := builder.Items.Let(file.Items[0])
	if !ok {
		t.Fatalf("expected let item")
	}
	outer, ok := builder.Exprs.Binary(letData.Value)
	if !ok || outer.Op != ast.ExprBinaryAdd {
		t.Fatalf("expected chained addition")
	}
	if _, ok := builder.Exprs.Binary(outer.Left); !ok {
		t.Errorf("chain must associate left")
	}
}

func TestTermination_MixedIndentAdvisory(t *testing.T) {
	result, bag := terminate(t, "fn main() {\n\t  let x = 1\n\t  x\n}")

	if bag.HasErrors() {
		t.Fatalf("advisory must not be an error: %d diagnostics", bag.Len())
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.AsiMixedIndent {
			found = true
		}
	}
	if !found {
		t.Errorf("expected AsiMixedIndent advisory")
	}
	// Смешанный отступ не мешает самой терминации.
	if n := syntheticCount(result.Tokens); n != 1 {
		t.Errorf("synthetic terminators: got %d, want 1", n)
	}
}

func TestTermination_Deterministic(t *testing.T) {
	input := "fn main() {\n    let mut x = 1\n    x += step()\n    x\n}"

	first, _ := terminate(t, input)
	for run := 0; run < 3; run++ {
		next, _ := terminate(t, input)
		if len(next.Tokens) != len(first.Tokens) {
			t.Fatalf("run %d: token count %d, want %d", run, len(next.Tokens), len(first.Tokens))
		}
		for i := range first.Tokens {
			if next.Tokens[i].Kind != first.Tokens[i].Kind ||
				next.Tokens[i].Span != first.Tokens[i].Span {
				t.Fatalf("run %d: token %d differs", run, i)
			}
		}
		if len(next.Decisions) != len(first.Decisions) {
			t.Fatalf("run %d: decision count %d, want %d", run, len(next.Decisions), len(first.Decisions))
		}
		for i := range first.Decisions {
			if next.Decisions[i] != first.Decisions[i] {
				t.Fatalf("run %d: decision %d differs: %+v vs %+v",
					run, i, next.Decisions[i], first.Decisions[i])
			}
		}
	}
}

func TestTermination_DisabledLeavesStreamAlone(t *testing.T) {
	fs := source.NewFileSet()
	input := "return\nvalue()"
	file := fs.Get(fs.AddVirtual("test.rp", []byte(input)))
	bag := diag.NewBag(100)
	rep := &diag.BagReporter{Bag: bag}
	toks := lexer.New(file, lexer.Options{Reporter: rep}).Tokens()

	oracle := parser.NewProbe(parser.DefaultProbeOptions())
	result := asi.Run(file, toks, oracle, rep, asi.Config{Enabled: false})

	if n := syntheticCount(result.Tokens); n != 0 {
		t.Errorf("disabled pass inserted %d terminators", n)
	}
	if result.Decisions != nil {
		t.Errorf("disabled pass recorded decisions")
	}
}
