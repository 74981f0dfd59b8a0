package parser

import (
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/fix"
	"ripple/internal/source"
	"ripple/internal/token"
)

// parseFnItem парсит 'pub? fn name(params) (-> Type)? block'.
// Терминатор не нужен: тело-блок закрывает объявление само.
func (p *Parser) parseFnItem(vis ast.Visibility, visSpan source.Span) (ast.ItemID, bool) {
	fnTok := p.advance() // съедаем 'fn'

	data := ast.FnItem{
		ReturnType: ast.NoTypeID,
		Visibility: vis,
		FnSpan:     fnTok.Span,
	}

	startSpan := fnTok.Span
	if visSpan.End > visSpan.Start {
		startSpan = visSpan.Cover(fnTok.Span)
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		p.resyncTop()
		return ast.NoItemID, false
	}
	data.Name = name
	data.NameSpan = nameSpan

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		p.resyncUntil(token.LBrace, token.Semicolon, token.KwFn, token.KwImport, token.KwLet)
		return ast.NoItemID, false
	}

	params, ok := p.parseFnParams()
	if !ok {
		return ast.NoItemID, false
	}

	if p.at(token.Arrow) {
		arrowTok := p.advance()
		data.ArrowSpan = arrowTok.Span
		retType, ok := p.parseType()
		if !ok {
			p.resyncUntil(token.LBrace, token.Semicolon, token.KwFn, token.KwImport, token.KwLet)
			return ast.NoItemID, false
		}
		data.ReturnType = retType
	}

	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoItemID, false
	}
	data.Body = body

	data.Span = startSpan.Cover(p.lastSpan)
	return p.arenas.Items.NewFn(data, params), true
}

// parseFnParams парсит список параметров до закрывающей ')'.
// Открывающую '(' съедает вызывающий.
func (p *Parser) parseFnParams() ([]ast.FnParam, bool) {
	expectClosing := func() bool {
		_, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list", func(b *diag.ReportBuilder) {
			if b == nil {
				return
			}
			insertSpan := p.lastSpan.ZeroideToEnd()
			fixID := fix.MakeFixID(diag.SynUnclosedParen, insertSpan)
			suggestion := fix.InsertText(
				"insert ')' to close parameter list",
				insertSpan,
				")",
				"",
				fix.WithID(fixID),
			)
			b.WithFixSuggestion(suggestion)
			b.WithNote(insertSpan, "insert missing closing parenthesis")
		})
		return ok
	}

	if p.at(token.RParen) {
		p.advance()
		return nil, true
	}

	var params []ast.FnParam
	for {
		param, ok := p.parseFnParam()
		if !ok {
			p.resyncUntil(token.RParen, token.LBrace, token.Semicolon)
			if p.at(token.RParen) {
				p.advance()
			}
			return nil, false
		}
		params = append(params, param)

		if p.at(token.Comma) {
			p.advance()
			// Висячая запятая перед ')' допустима.
			if p.at(token.RParen) {
				p.advance()
				return params, true
			}
			continue
		}
		if !expectClosing() {
			p.resyncUntil(token.RParen, token.LBrace, token.Semicolon)
			if p.at(token.RParen) {
				p.advance()
			}
			return nil, false
		}
		return params, true
	}
}

// parseFnParam парсит один параметр 'name: Type'.
func (p *Parser) parseFnParam() (ast.FnParam, bool) {
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.FnParam{}, false
	}

	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after parameter name"); !ok {
		p.resyncUntil(token.Comma, token.RParen, token.Semicolon)
		return ast.FnParam{}, false
	}

	typeID, ok := p.parseType()
	if !ok {
		return ast.FnParam{}, false
	}

	return ast.FnParam{
		Name:     name,
		Type:     typeID,
		NameSpan: nameSpan,
		Span:     nameSpan.Cover(p.lastSpan),
	}, true
}
