package lexer

import (
	"ripple/internal/diag"
	"ripple/internal/source"
)

// maxTokenLength bounds a single token. Longer runs are cut off with
// LexTokenTooLong and the lexer fast-forwards to EOF.
const maxTokenLength = 1 << 16

type Options struct {
	// Reporter может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
