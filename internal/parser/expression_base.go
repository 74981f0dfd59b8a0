package parser

import (
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/source"
	"ripple/internal/token"
)

// parseIdentExpr парсит выражение-идентификатор
func (p *Parser) parseIdentExpr() (ast.ExprID, bool) {
	tok := p.advance()
	if tok.Kind != token.Ident {
		p.err(diag.SynExpectIdentifier, "expected identifier")
		return ast.NoExprID, false
	}
	nameID := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewIdent(tok.Span, nameID), true
}

// parseNumericLiteral парсит числовые литералы
func (p *Parser) parseNumericLiteral() (ast.ExprID, bool) {
	tok := p.advance()

	var kind ast.ExprLitKind
	switch tok.Kind {
	case token.IntLit:
		kind = ast.ExprLitInt
	case token.FloatLit:
		kind = ast.ExprLitFloat
	default:
		p.err(diag.SynUnexpectedToken, "expected numeric literal")
		return ast.NoExprID, false
	}

	// Сохраняем сырое значение для sema
	valueID := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewLiteral(tok.Span, kind, valueID), true
}

// parseStringLiteral парсит строковые литералы
func (p *Parser) parseStringLiteral() (ast.ExprID, bool) {
	tok := p.advance()
	if tok.Kind != token.StringLit {
		p.err(diag.SynUnexpectedToken, "expected string literal")
		return ast.NoExprID, false
	}

	valueID := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitString, valueID), true
}

// parseBoolLiteral парсит булевы литералы
func (p *Parser) parseBoolLiteral() (ast.ExprID, bool) {
	tok := p.advance()

	var kind ast.ExprLitKind
	switch tok.Kind {
	case token.KwTrue:
		kind = ast.ExprLitTrue
	case token.KwFalse:
		kind = ast.ExprLitFalse
	default:
		p.err(diag.SynUnexpectedToken, "expected boolean literal")
		return ast.NoExprID, false
	}

	valueID := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewLiteral(tok.Span, kind, valueID), true
}

// parseNothingLiteral парсит nothing литерал
func (p *Parser) parseNothingLiteral() (ast.ExprID, bool) {
	tok := p.advance()
	if tok.Kind != token.KwNothing {
		p.err(diag.SynUnexpectedToken, "expected 'nothing'")
		return ast.NoExprID, false
	}

	valueID := p.arenas.Strings.Intern(tok.Text)
	return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitNothing, valueID), true
}

// parseParenExpr парсит группировку (expr)
func (p *Parser) parseParenExpr() (ast.ExprID, bool) {
	openTok := p.advance() // съедаем '('

	inner, ok := p.parseExpr()
	if !ok {
		p.resyncUntil(token.RParen, token.Semicolon, token.RBrace)
		if p.at(token.RParen) {
			p.advance()
		}
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after expression")
	if !ok {
		return ast.NoExprID, false
	}

	finalSpan := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewGroup(finalSpan, inner), true
}

// parseCallExpr парсит вызов функции: expr(args...)
func (p *Parser) parseCallExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // съедаем '('

	var args []ast.ExprID
	var commas []source.Span
	var trailing bool

	// Парсим аргументы
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				// Ошибка парсинга аргумента - восстанавливаемся
				p.resyncUntil(token.RParen, token.Comma, token.Semicolon, token.RBrace)
				if p.at(token.RParen) {
					p.advance()
				}
				return ast.NoExprID, false
			}
			args = append(args, arg)

			if !p.at(token.Comma) {
				break
			}
			commaTok := p.advance() // съедаем ','
			commas = append(commas, commaTok.Span)

			// Разрешаем завершающую запятую
			if p.at(token.RParen) {
				trailing = true
				break
			}
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments")
	if !ok {
		p.resyncUntil(token.Semicolon, token.RBrace)
		return ast.NoExprID, false
	}

	// Вычисляем общий span
	targetSpan := p.arenas.Exprs.Get(target).Span
	finalSpan := targetSpan.Cover(closeTok.Span)

	return p.arenas.Exprs.NewCall(finalSpan, target, args, commas, trailing), true
}

// parseIndexExpr парсит индексацию: expr[index]
func (p *Parser) parseIndexExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // съедаем '['

	index, ok := p.parseExpr()
	if !ok {
		p.resyncUntil(token.RBracket, token.Semicolon, token.RBrace)
		if p.at(token.RBracket) {
			p.advance()
		}
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index")
	if !ok {
		return ast.NoExprID, false
	}

	// Вычисляем общий span
	targetSpan := p.arenas.Exprs.Get(target).Span
	finalSpan := targetSpan.Cover(closeTok.Span)

	return p.arenas.Exprs.NewIndex(finalSpan, target, index), true
}

// parseMemberExpr парсит доступ к полю: expr.field
func (p *Parser) parseMemberExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // съедаем '.'

	if !p.at(token.Ident) {
		p.err(diag.SynExpectIdentifier, "expected field name after '.'")
		return ast.NoExprID, false
	}
	fieldTok := p.advance()
	fieldNameID := p.arenas.Strings.Intern(fieldTok.Text)

	targetSpan := p.arenas.Exprs.Get(target).Span
	finalSpan := targetSpan.Cover(fieldTok.Span)

	return p.arenas.Exprs.NewMember(finalSpan, target, fieldNameID), true
}
