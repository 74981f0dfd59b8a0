package parser

import (
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/fix"
	"ripple/internal/token"
)

// parseBlockExpr парсит блок-выражение '{ stmt* tail? }'.
// Незавершённое выражение перед '}' становится tail-значением блока.
func (p *Parser) parseBlockExpr() (ast.ExprID, bool) {
	openTok, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{' to open block")
	if !ok {
		return ast.NoExprID, false
	}

	var stmts []ast.StmtID
	tail := ast.NoExprID

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		// Лишние ';' пропускаем как пустые statement.
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}

		// Защита от бесконечного цикла: запоминаем позицию до парсинга
		before := p.src.Peek()

		stmtID, tailExpr, entryOK := p.parseBlockEntry()
		if !entryOK {
			p.resyncStatement()
			if p.at(token.Semicolon) {
				p.advance()
			}
			// Гарантируем прогресс: если токен не сдвинулся, принудительно продвигаемся
			if !p.at(token.EOF) && !p.at(token.RBrace) {
				after := p.src.Peek()
				if after.Kind == before.Kind && after.Span == before.Span {
					p.advance()
				}
			}
			continue
		}
		if tailExpr.IsValid() {
			tail = tailExpr
			break
		}
		stmts = append(stmts, stmtID)
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block", func(b *diag.ReportBuilder) {
		if b == nil {
			return
		}
		insertSpan := p.lastSpan.ZeroideToEnd()
		fixID := fix.MakeFixID(diag.SynUnclosedBrace, insertSpan)
		suggestion := fix.InsertText(
			"insert '}' to close block",
			insertSpan,
			"}",
			"",
			fix.WithID(fixID),
		)
		b.WithFixSuggestion(suggestion)
		b.WithNote(insertSpan, "insert missing closing brace")
	})
	if !ok {
		return ast.NoExprID, false
	}

	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewBlock(span, stmts, tail), true
}

// parseBlockEntry разбирает одну запись блока. Если выражение перед '}'
// не терминировано, это tail: блок возвращает его значение.
func (p *Parser) parseBlockEntry() (ast.StmtID, ast.ExprID, bool) {
	switch p.src.Peek().Kind {
	case token.KwLet, token.KwReturn, token.KwFail,
		token.KwBreak, token.KwContinue, token.KwWhile:
		id, ok := p.parseStmt()
		return id, ast.NoExprID, ok
	}

	// Выражение, присваивание или tail.
	exprID, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, ast.NoExprID, false
	}

	if op, isAssign := tokenKindToAssignOp(p.src.Peek().Kind); isAssign {
		id, ok := p.parseAssignRest(exprID, op)
		return id, ast.NoExprID, ok
	}

	if p.at(token.RBrace) {
		return ast.NoStmtID, exprID, true
	}

	id, ok := p.finishExprStmt(exprID)
	return id, ast.NoExprID, ok
}

// parseIfExpr парсит if-выражение: if cond block (else (if | block))?
func (p *Parser) parseIfExpr() (ast.ExprID, bool) {
	ifTok := p.advance() // съедаем KwIf

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	then, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoExprID, false
	}

	els := ast.NoExprID
	if p.at(token.KwElse) {
		p.advance() // съедаем 'else'
		if p.at(token.KwIf) {
			els, ok = p.parseIfExpr()
		} else {
			els, ok = p.parseBlockExpr()
		}
		if !ok {
			return ast.NoExprID, false
		}
	}

	span := ifTok.Span.Cover(p.arenas.Exprs.Get(then).Span)
	if els.IsValid() {
		span = span.Cover(p.arenas.Exprs.Get(els).Span)
	}
	return p.arenas.Exprs.NewIf(span, cond, then, els), true
}
