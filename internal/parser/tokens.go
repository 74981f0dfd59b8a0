package parser

import (
	"ripple/internal/ast"
	"ripple/internal/lexer"
	"ripple/internal/source"
	"ripple/internal/token"
)

// TokenSource — источник токенов для парсера. Обычно это SliceSource
// поверх уже терминированного потока, но живой лексер тоже подходит.
type TokenSource interface {
	Next() token.Token
	Peek() token.Token
}

var _ TokenSource = (*lexer.Lexer)(nil)

// SliceSource ходит по готовому слайсу токенов. После конца всегда
// возвращает EOF.
type SliceSource struct {
	toks []token.Token
	pos  int
	eof  token.Token
}

// NewSliceSource оборачивает слайс. Если слайс не кончается EOF,
// синтезируем его сразу за последним токеном.
func NewSliceSource(toks []token.Token) *SliceSource {
	eof := token.Token{Kind: token.EOF}
	if n := len(toks); n > 0 {
		if last := toks[n-1]; last.Kind == token.EOF {
			eof = last
			toks = toks[:n-1]
		} else {
			eof = token.Token{Kind: token.EOF, Span: last.Span.ZeroideToEnd()}
		}
	}
	return &SliceSource{toks: toks, eof: eof}
}

func (s *SliceSource) Next() token.Token {
	if s.pos < len(s.toks) {
		t := s.toks[s.pos]
		s.pos++
		return t
	}
	return s.eof
}

func (s *SliceSource) Peek() token.Token {
	if s.pos < len(s.toks) {
		return s.toks[s.pos]
	}
	return s.eof
}

// ParseTokens — разбор готового слайса токенов (после прохода терминации).
func ParseTokens(fs *source.FileSet, toks []token.Token, arenas *ast.Builder, opts Options) Result {
	return ParseFile(fs, NewSliceSource(toks), arenas, opts)
}
