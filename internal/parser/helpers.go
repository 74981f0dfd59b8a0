package parser

import (
	"ripple/internal/diag"
	"ripple/internal/source"
	"ripple/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.src.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// Для EOF или Invalid с пустым span берём позицию сразу за lastSpan.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.src.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return p.lastSpan.ZeroideToEnd()
		}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
// Необязательный build дополняет диагностику заметками и фиксами.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string, build ...func(*diag.ReportBuilder)) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg, build...)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.src.Peek().Text}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

// репортует warning и передает текущий спан
func (p *Parser) warn(code diag.Code, msg string) bool {
	return p.report(code, diag.SevWarning, p.getDiagnosticSpan(), msg)
}

// report — общий путь всех диагностик парсера: считает ошибки и уважает MaxErrors.
func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, build ...func(*diag.ReportBuilder)) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if p.opts.Enough() {
		return false // достигли максимального количества ошибок
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	b := diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg)
	for _, fn := range build {
		if fn != nil {
			fn(b)
		}
	}
	b.Emit()
	return true
}

// resyncUntil — прокручивает вход до одного из kinds или EOF.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}

// resyncStatement — восстановление внутри блока: крутим до границы statement.
// Точку с запятой съедает вызывающий, '}' оставляем закрытию блока.
func (p *Parser) resyncStatement() {
	for !p.at(token.EOF) {
		switch p.src.Peek().Kind {
		case token.Semicolon, token.RBrace,
			token.KwLet, token.KwReturn, token.KwFail,
			token.KwBreak, token.KwContinue, token.KwWhile:
			return
		}
		p.advance()
	}
}
