package parser

import (
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/token"
)

// parseType парсит типовое выражение: имя или ссылка '&T'.
func (p *Parser) parseType() (ast.TypeID, bool) {
	switch p.src.Peek().Kind {
	case token.Amp:
		ampTok := p.advance()
		inner, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		span := ampTok.Span.Cover(p.arenas.Types.Get(inner).Span)
		return p.arenas.Types.NewRef(span, inner), true
	case token.Ident:
		tok := p.advance()
		name := p.arenas.Strings.Intern(tok.Text)
		return p.arenas.Types.NewName(tok.Span, name), true
	case token.KwNothing:
		tok := p.advance()
		name := p.arenas.Strings.Intern(tok.Text)
		return p.arenas.Types.NewName(tok.Span, name), true
	default:
		p.err(diag.SynExpectType, "expected type, got '"+p.src.Peek().Text+"'")
		return ast.NoTypeID, false
	}
}
