package parser

import (
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/fix"
	"ripple/internal/source"
	"ripple/internal/token"
)

// parseStmt парсит один statement внутри блока.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.src.Peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwFail:
		return p.parseFailStmt()
	case token.KwBreak:
		return p.parseBreakStmt()
	case token.KwContinue:
		return p.parseContinueStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	}

	exprID, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if op, isAssign := tokenKindToAssignOp(p.src.Peek().Kind); isAssign {
		return p.parseAssignRest(exprID, op)
	}
	return p.finishExprStmt(exprID)
}

// parseLetStmt парсит 'let [mut] name (: Type)? = expr;'.
// В отличие от let-элемента, statement требует инициализатор.
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	letTok := p.advance() // съедаем 'let'

	data := ast.StmtLetData{
		Init:    ast.NoExprID,
		Type:    ast.NoTypeID,
		LetSpan: letTok.Span,
	}

	if p.at(token.KwMut) {
		mutTok := p.advance()
		data.Mut = true
		data.MutSpan = mutTok.Span
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	data.Name = name
	data.NameSpan = nameSpan

	if p.at(token.Colon) {
		colonTok := p.advance()
		data.ColonSpan = colonTok.Span
		typeID, ok := p.parseType()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Type = typeID
	}

	if !p.at(token.Assign) {
		p.err(diag.SynLetMissingInit, "let statement requires an initializer")
		return ast.NoStmtID, false
	}
	eqTok := p.advance()
	data.EqSpan = eqTok.Span

	init, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	data.Init = init

	semiSpan, ok := p.expectTerminator("let statement")
	if !ok {
		return ast.NoStmtID, false
	}
	data.SemiSpan = semiSpan

	span := coverOptional(letTok.Span.Cover(p.lastSpan), semiSpan)
	return p.arenas.Stmts.NewLet(span, data), true
}

// parseReturnStmt парсит 'return expr?;'. Значение опционально.
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	kwTok := p.advance() // съедаем 'return'

	value := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = expr
	}

	semiSpan, ok := p.expectTerminator("return statement")
	if !ok {
		return ast.NoStmtID, false
	}

	span := coverOptional(kwTok.Span.Cover(p.lastSpan), semiSpan)
	return p.arenas.Stmts.NewReturn(span, value, kwTok.Span, semiSpan), true
}

// parseFailStmt парсит 'fail expr;'. Операнд обязателен, но при его
// отсутствии statement всё равно строится, чтобы сохранить дерево.
func (p *Parser) parseFailStmt() (ast.StmtID, bool) {
	kwTok := p.advance() // съедаем 'fail'

	value := ast.NoExprID
	if p.at(token.Semicolon) || p.at(token.RBrace) || p.at(token.EOF) {
		p.err(diag.SynFailMissingOperand, "fail requires an operand")
	} else {
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = expr
	}

	semiSpan, ok := p.expectTerminator("fail statement")
	if !ok {
		return ast.NoStmtID, false
	}

	span := coverOptional(kwTok.Span.Cover(p.lastSpan), semiSpan)
	return p.arenas.Stmts.NewFail(span, value, kwTok.Span, semiSpan), true
}

// parseBreakStmt парсит 'break;'.
func (p *Parser) parseBreakStmt() (ast.StmtID, bool) {
	kwTok := p.advance()
	semiSpan, ok := p.expectTerminator("break statement")
	if !ok {
		return ast.NoStmtID, false
	}
	span := coverOptional(kwTok.Span, semiSpan)
	return p.arenas.Stmts.NewBreak(span, kwTok.Span, semiSpan), true
}

// parseContinueStmt парсит 'continue;'.
func (p *Parser) parseContinueStmt() (ast.StmtID, bool) {
	kwTok := p.advance()
	semiSpan, ok := p.expectTerminator("continue statement")
	if !ok {
		return ast.NoStmtID, false
	}
	span := coverOptional(kwTok.Span, semiSpan)
	return p.arenas.Stmts.NewContinue(span, kwTok.Span, semiSpan), true
}

// parseWhileStmt парсит 'while cond block'. Терминатор не нужен:
// тело-блок закрывает statement само.
func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	kwTok := p.advance() // съедаем 'while'

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	span := kwTok.Span.Cover(p.arenas.Exprs.Get(body).Span)
	return p.arenas.Stmts.NewWhile(span, cond, body, kwTok.Span), true
}

// parseAssignRest дособирает присваивание, когда цель уже разобрана.
func (p *Parser) parseAssignRest(target ast.ExprID, op ast.AssignOp) (ast.StmtID, bool) {
	opTok := p.advance() // съедаем оператор присваивания

	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	semiSpan, ok := p.expectTerminator("assignment")
	if !ok {
		return ast.NoStmtID, false
	}

	targetSpan := p.arenas.Exprs.Get(target).Span
	span := coverOptional(targetSpan.Cover(p.lastSpan), semiSpan)
	return p.arenas.Stmts.NewAssign(span, op, target, value, opTok.Span, semiSpan), true
}

// finishExprStmt завершает expression statement терминатором.
func (p *Parser) finishExprStmt(expr ast.ExprID) (ast.StmtID, bool) {
	semiSpan, ok := p.expectTerminator("expression statement")
	if !ok {
		return ast.NoStmtID, false
	}
	exprSpan := p.arenas.Exprs.Get(expr).Span
	span := coverOptional(exprSpan, semiSpan)
	return p.arenas.Stmts.NewExprStmt(span, expr, semiSpan), true
}

// tokenKindToAssignOp сопоставляет токен с операцией присваивания.
func tokenKindToAssignOp(kind token.Kind) (ast.AssignOp, bool) {
	switch kind {
	case token.Assign:
		return ast.AssignPlain, true
	case token.PlusAssign:
		return ast.AssignAdd, true
	case token.MinusAssign:
		return ast.AssignSub, true
	case token.StarAssign:
		return ast.AssignMul, true
	case token.SlashAssign:
		return ast.AssignDiv, true
	case token.PercentAssign:
		return ast.AssignMod, true
	default:
		return ast.AssignPlain, false
	}
}

// expectTerminator съедает ';' после конструкции. Перед '}' и в конце
// файла точку с запятой можно опустить: терминатор тогда пустой.
func (p *Parser) expectTerminator(what string) (source.Span, bool) {
	switch p.src.Peek().Kind {
	case token.Semicolon:
		tok := p.advance()
		return tok.Span, true
	case token.RBrace, token.EOF:
		return source.Span{}, true
	}

	diagSpan := p.getDiagnosticSpan()
	insertSpan := p.lastSpan.ZeroideToEnd()
	p.report(diag.SynExpectSemicolon, diag.SevError, diagSpan,
		"expected ';' after "+what+", got '"+p.src.Peek().Text+"'",
		func(b *diag.ReportBuilder) {
			if b == nil {
				return
			}
			fixID := fix.MakeFixID(diag.SynExpectSemicolon, insertSpan)
			suggestion := fix.InsertText(
				"insert ';' after "+what,
				insertSpan,
				";",
				"",
				fix.WithID(fixID),
				fix.Preferred(),
			)
			b.WithFixSuggestion(suggestion)
			b.WithNote(insertSpan, "insert missing semicolon")
		})
	return source.Span{}, false
}

// coverOptional расширяет base спаном other, если other не пустой.
// Нулевой спан указывает на файл 0, поэтому слепой Cover его бы исказил.
func coverOptional(base, other source.Span) source.Span {
	if other.File == 0 && other.Start == 0 && other.End == 0 {
		return base
	}
	return base.Cover(other)
}
