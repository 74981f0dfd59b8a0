package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"ripple/internal/diag"
	"ripple/internal/lexer"
	"ripple/internal/source"
	"ripple/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

// HasErrors возвращает true, если были зарегистрированы ошибки
func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// Codes возвращает список кодов в порядке поступления
func (r *testReporter) Codes() []diag.Code {
	codes := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}

// ErrorMessages возвращает список сообщений об ошибках
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rp", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	opts := lexer.Options{Reporter: reporter}
	lx := lexer.New(file, opts)

	return lx, reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность токенов
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// убираем EOF из сравнения
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== Тесты для scan_ident.go ======

func TestIdentifiersASCII(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"foo", token.Ident, "foo"},
		{"_bar", token.Ident, "_bar"},
		{"__test", token.Ident, "__test"},
		{"x123", token.Ident, "x123"},
		{"camelCase", token.Ident, "camelCase"},
		{"UPPER", token.Ident, "UPPER"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.text)
		})
	}
}

func TestIdentifiersUnicode(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"число", "число"},
		{"café", "café"},
		{"naméx", "naméx"}, // e + combining acute -> NFC é
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, reporter := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.Ident {
				t.Fatalf("kind = %v, want Ident (errors: %v)", tok.Kind, reporter.ErrorMessages())
			}
			if tok.Text != tt.text {
				t.Errorf("Text = %q, want %q", tok.Text, tt.text)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"let", token.KwLet},
		{"mut", token.KwMut},
		{"fn", token.KwFn},
		{"return", token.KwReturn},
		{"fail", token.KwFail},
		{"while", token.KwWhile},
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"true", token.KwTrue},
		{"nothing", token.KwNothing},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

// ====== Тесты для scan_number.go ======

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"123", token.IntLit},
		{"1_000_000", token.IntLit},
		{"0b1010", token.IntLit},
		{"0o755", token.IntLit},
		{"0xFF_EC", token.IntLit},
		{"1.5", token.FloatLit},
		{".5", token.FloatLit},
		{"1e10", token.FloatLit},
		{"1.5e-3", token.FloatLit},
		{"2E+8", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestBadNumbers(t *testing.T) {
	tests := []string{"0b", "0o9", "0xG", "1e", "1e+"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("kind = %v, want Invalid", tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("expected LexBadNumber diagnostic")
			}
		})
	}
}

func TestNumberBeforeRange(t *testing.T) {
	// "1..5" — число, диапазон, число
	expectTokens(t, "1..5", []token.Kind{token.IntLit, token.DotDot, token.IntLit})
	expectTokens(t, "1..=5", []token.Kind{token.IntLit, token.DotDotEq, token.IntLit})
}

func TestNumberThenDotIsFieldAccess(t *testing.T) {
	expectTokens(t, "1.len", []token.Kind{token.IntLit, token.Dot, token.Ident})
}

// ====== Тесты для scan_string.go ======

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  token.Kind
		errs  bool
	}{
		{"simple", `"hello"`, token.StringLit, false},
		{"escapes", `"a\nb\t\"q\\"`, token.StringLit, false},
		{"bad escape", `"a\qb"`, token.StringLit, true},
		{"unterminated", `"abc`, token.Invalid, true},
		{"newline inside", "\"abc\ndef\"", token.Invalid, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, reporter := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", tok.Kind, tt.kind)
			}
			if reporter.HasErrors() != tt.errs {
				t.Errorf("HasErrors = %v, want %v (msgs: %v)",
					reporter.HasErrors(), tt.errs, reporter.ErrorMessages())
			}
		})
	}
}

// ====== Тесты для scan_ops.go ======

func TestOperators(t *testing.T) {
	expectTokens(t, "a = b + c * 2", []token.Kind{
		token.Ident, token.Assign, token.Ident, token.Plus,
		token.Ident, token.Star, token.IntLit,
	})
	expectTokens(t, "x <= y && z != w", []token.Kind{
		token.Ident, token.LtEq, token.Ident, token.AndAnd,
		token.Ident, token.BangEq, token.Ident,
	})
	expectTokens(t, "fn f(a: i32) -> i32 { a << 1 }", []token.Kind{
		token.KwFn, token.Ident, token.LParen, token.Ident, token.Colon,
		token.Ident, token.RParen, token.Arrow, token.Ident, token.LBrace,
		token.Ident, token.Shl, token.IntLit, token.RBrace,
	})
	expectTokens(t, "x += 1", []token.Kind{token.Ident, token.PlusAssign, token.IntLit})
	expectTokens(t, "x %= 2", []token.Kind{token.Ident, token.PercentAssign, token.IntLit})
	// '%' без '=' остаётся бинарным оператором
	expectTokens(t, "x % = 2", []token.Kind{token.Ident, token.Percent, token.Assign, token.IntLit})
}

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("a @ b")
	tokens := collectAllTokens(lx)
	if tokens[1].Kind != token.Invalid {
		t.Errorf("middle token = %v, want Invalid", tokens[1].Kind)
	}
	if !reporter.HasErrors() {
		t.Error("expected LexUnknownChar diagnostic")
	}
}

// ====== Trivia ======

func TestLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("  // comment\n\n\tfoo")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "foo" {
		t.Fatalf("token = %v(%q)", tok.Kind, tok.Text)
	}

	kinds := make([]token.TriviaKind, len(tok.Leading))
	for i, tr := range tok.Leading {
		kinds[i] = tr.Kind
	}
	want := []token.TriviaKind{
		token.TriviaSpace,
		token.TriviaLineComment,
		token.TriviaNewline,
		token.TriviaSpace,
	}
	if len(kinds) != len(want) {
		t.Fatalf("trivia kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("trivia[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
	// два '\n' коалесцированы в один run
	if tok.Leading[2].Span.Len() != 2 {
		t.Errorf("newline run len = %d, want 2", tok.Leading[2].Span.Len())
	}
}

func TestBlockCommentNesting(t *testing.T) {
	lx, reporter := makeTestLexer("/* a /* b */ c */ x")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("token = %v(%q), errors: %v", tok.Kind, tok.Text, reporter.ErrorMessages())
	}
	if reporter.HasErrors() {
		t.Errorf("unexpected errors: %v", reporter.ErrorMessages())
	}

	lx2, reporter2 := makeTestLexer("/* never closed")
	tok2 := lx2.Next()
	if tok2.Kind != token.EOF {
		t.Fatalf("token = %v, want EOF", tok2.Kind)
	}
	if !reporter2.HasErrors() {
		t.Error("expected LexUnterminatedBlockComment")
	}
}

func TestEOFCarriesTrailingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("foo\n")
	_ = lx.Next() // foo
	eof := lx.Next()
	if eof.Kind != token.EOF {
		t.Fatalf("kind = %v, want EOF", eof.Kind)
	}
	if !token.HasNewline(eof.Leading) {
		t.Error("EOF must carry the trailing newline trivia")
	}
}

// ====== Continuation marker ======

func TestContinuationTrailing(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain", "a \\\nb"},
		{"spaces after marker", "a \\ \t\nb"},
		{"marker before eof", "a \\"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, reporter := makeTestLexer(tt.input)
			tokens := collectAllTokens(lx)
			if reporter.HasErrors() {
				t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
			}
			// маркер должен попасть в trivia следующего токена
			last := tokens[len(tokens)-1]
			var seen bool
			for _, tok := range tokens[1:] {
				if token.HasContinuation(tok.Leading) {
					seen = true
				}
			}
			if !seen {
				t.Errorf("no continuation trivia found; last token %v", last)
			}
		})
	}
}

func TestContinuationOnOwnLine(t *testing.T) {
	// маркер на отдельной строке между двумя строками кода
	lx, reporter := makeTestLexer("a\n\\\nb")
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.ErrorMessages())
	}
	if len(tokens) != 3 { // a, b, EOF
		t.Fatalf("tokens = %v", tokensToString(tokens))
	}
	if !token.HasContinuation(tokens[1].Leading) {
		t.Error("b must carry the continuation trivia")
	}
}

func TestStrayContinuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"mid line", "a \\ b"},
		{"before comment", "a \\ // c\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, reporter := makeTestLexer(tt.input)
			tokens := collectAllTokens(lx)
			var invalid bool
			for _, tok := range tokens {
				if tok.Kind == token.Invalid {
					invalid = true
				}
			}
			if !invalid {
				t.Errorf("expected Invalid token, got %v", tokensToString(tokens))
			}
			found := false
			for _, code := range reporter.Codes() {
				if code == diag.LexStrayContinuation {
					found = true
				}
			}
			if !found {
				t.Errorf("expected LexStrayContinuation, got %v", reporter.ErrorMessages())
			}
		})
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("let x")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Errorf("Peek %v != Next %v", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Error("second Next must produce the ident")
	}
}
