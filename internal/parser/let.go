package parser

import (
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/source"
	"ripple/internal/token"
)

// parseLetItem парсит 'pub? let [mut] name (: Type)? (= expr)?;'.
// Элементу достаточно аннотации типа ИЛИ инициализатора.
func (p *Parser) parseLetItem(vis ast.Visibility, visSpan source.Span) (ast.ItemID, bool) {
	letTok := p.advance() // съедаем 'let'

	data := ast.LetItem{
		Type:       ast.NoTypeID,
		Value:      ast.NoExprID,
		Visibility: vis,
		LetSpan:    letTok.Span,
	}

	startSpan := letTok.Span
	if visSpan.End > visSpan.Start {
		startSpan = visSpan.Cover(letTok.Span)
	}

	if p.at(token.KwMut) {
		mutTok := p.advance()
		data.IsMut = true
		data.MutSpan = mutTok.Span
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}
	data.Name = name
	data.NameSpan = nameSpan

	if p.at(token.Colon) {
		colonTok := p.advance()
		data.ColonSpan = colonTok.Span
		typeID, ok := p.parseType()
		if !ok {
			p.resyncTop()
			return ast.NoItemID, false
		}
		data.Type = typeID
	}

	if p.at(token.Assign) {
		eqTok := p.advance()
		data.EqSpan = eqTok.Span
		value, ok := p.parseExpr()
		if !ok {
			p.resyncTop()
			return ast.NoItemID, false
		}
		data.Value = value
	}

	if !data.Type.IsValid() && !data.Value.IsValid() {
		p.err(diag.SynLetMissingInit, "let item requires a type annotation or an initializer")
		p.resyncTop()
		return ast.NoItemID, false
	}

	semiSpan, ok := p.expectTerminator("let item")
	if !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}
	data.SemiSpan = semiSpan

	data.Span = coverOptional(startSpan.Cover(p.lastSpan), semiSpan)
	return p.arenas.Items.NewLet(data), true
}
