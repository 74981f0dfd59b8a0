package token

// keywords maps reserved spellings to their kinds.
// Ключевые слова регистрозависимые (только lowercase).
var keywords = map[string]Kind{
	"import":   KwImport,
	"pub":      KwPub,
	"let":      KwLet,
	"mut":      KwMut,
	"fn":       KwFn,
	"return":   KwReturn,
	"fail":     KwFail,
	"break":    KwBreak,
	"continue": KwContinue,
	"while":    KwWhile,
	"if":       KwIf,
	"else":     KwElse,
	"true":     KwTrue,
	"false":    KwFalse,
	"nothing":  KwNothing,
}

// LookupKeyword reports whether ident is a reserved word and returns its kind.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// RequiresOperand reports whether the keyword kind must be followed by an
// expression on the same logical line. `return` is deliberately absent:
// a bare `return` is a complete statement, so a newline after it
// terminates it. `fail` always takes an operand, so a newline after it
// never terminates it.
func RequiresOperand(k Kind) bool {
	return k == KwFail
}
