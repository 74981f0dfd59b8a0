package token

// Kind enumerates every terminal the ripple lexer can produce.
type Kind uint8

const (
	// Служебные
	EOF Kind = iota
	Invalid

	// Литералы и имена
	Ident
	IntLit
	FloatLit
	StringLit

	// Ключевые слова
	KwImport
	KwPub
	KwLet
	KwMut
	KwFn
	KwReturn
	KwFail
	KwBreak
	KwContinue
	KwWhile
	KwIf
	KwElse
	KwTrue
	KwFalse
	KwNothing

	// Разделители
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Semicolon
	Colon
	Arrow // ->
	Dot

	// Операторы
	Assign        // =
	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	EqEq          // ==
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Bang          // !
	AndAnd        // &&
	OrOr          // ||
	Amp           // &
	Pipe          // |
	Caret         // ^
	Shl           // <<
	Shr           // >>
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	DotDot        // ..
	DotDotEq      // ..=

	kindCount
)

var kindNames = [...]string{
	EOF:     "EOF",
	Invalid: "Invalid",

	Ident:     "Ident",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",

	KwImport:   "import",
	KwPub:      "pub",
	KwLet:      "let",
	KwMut:      "mut",
	KwFn:       "fn",
	KwReturn:   "return",
	KwFail:     "fail",
	KwBreak:    "break",
	KwContinue: "continue",
	KwWhile:    "while",
	KwIf:       "if",
	KwElse:     "else",
	KwTrue:     "true",
	KwFalse:    "false",
	KwNothing:  "nothing",

	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	Comma:     ",",
	Semicolon: ";",
	Colon:     ":",
	Arrow:     "->",
	Dot:       ".",

	Assign:        "=",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	EqEq:          "==",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Bang:          "!",
	AndAnd:        "&&",
	OrOr:          "||",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Shl:           "<<",
	Shr:           ">>",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	DotDot:        "..",
	DotDotEq:      "..=",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwImport && k <= KwNothing
}

// IsLiteral reports whether k is a literal or identifier token.
func (k Kind) IsLiteral() bool {
	switch k {
	case Ident, IntLit, FloatLit, StringLit, KwTrue, KwFalse, KwNothing:
		return true
	default:
		return false
	}
}

// IsBinaryOp reports whether k can appear as an infix operator.
func (k Kind) IsBinaryOp() bool {
	switch k {
	case Plus, Minus, Star, Slash, Percent,
		EqEq, BangEq, Lt, LtEq, Gt, GtEq,
		AndAnd, OrOr, Amp, Pipe, Caret, Shl, Shr,
		DotDot, DotDotEq:
		return true
	default:
		return false
	}
}

// IsAssignOp reports whether k is an assignment operator (= += -= *= /= %=).
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}

// CanEndExpr reports whether a token of this kind can be the last token of
// a complete expression. Statement termination uses this as a cheap
// prefilter before consulting the parser.
func (k Kind) CanEndExpr() bool {
	switch k {
	case Ident, IntLit, FloatLit, StringLit,
		KwTrue, KwFalse, KwNothing,
		RParen, RBracket, RBrace,
		KwBreak, KwContinue, KwReturn:
		return true
	default:
		return false
	}
}

// CanStartStmt reports whether a token of this kind can be the first token
// of a statement. else, closing brackets and infix-only operators cannot;
// neither can '{' (blocks only appear as fn/while/if bodies) nor 'mut'
// (only valid after 'let').
func (k Kind) CanStartStmt() bool {
	switch k {
	case KwElse, KwMut, RParen, RBracket, RBrace, LBrace, LBracket,
		Comma, Semicolon, Colon, Arrow, Dot,
		Assign, Plus, Star, Slash, Percent,
		EqEq, BangEq, Lt, LtEq, Gt, GtEq,
		AndAnd, OrOr, Pipe, Caret, Shl, Shr,
		PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		DotDot, DotDotEq,
		EOF, Invalid:
		return false
	default:
		// Minus, Bang, Amp валидны как префиксные операторы
		return true
	}
}
