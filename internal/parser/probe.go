package parser

import (
	"ripple/internal/asi"
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/source"
	"ripple/internal/token"
)

// ProbeOptions bound the speculative parses of the termination probe.
type ProbeOptions struct {
	// MaxPending is the longest open statement the probe will judge.
	// Anything longer gets VerdictUnknown for both readings.
	MaxPending int
	// MaxFollowing is how far past the boundary the continuation trial
	// reads. Errors beyond the window never count against a reading, so
	// truncation cannot flip a verdict.
	MaxFollowing int
}

// DefaultProbeOptions: 512 токенов хватает на любой рукописный statement,
// 64 токенов после границы — на любой хвост, способный её оправдать.
func DefaultProbeOptions() ProbeOptions {
	return ProbeOptions{MaxPending: 512, MaxFollowing: 64}
}

// Probe answers the termination engine's validity queries with trial
// parses over throwaway arenas. It holds no state between calls, so one
// probe may serve any number of files concurrently.
type Probe struct {
	opts ProbeOptions
}

var _ asi.Oracle = (*Probe)(nil)

func NewProbe(opts ProbeOptions) *Probe {
	def := DefaultProbeOptions()
	if opts.MaxPending <= 0 {
		opts.MaxPending = def.MaxPending
	}
	if opts.MaxFollowing <= 0 {
		opts.MaxFollowing = def.MaxFollowing
	}
	return &Probe{opts: opts}
}

// JudgeBoundary judges both readings of one line boundary. pending is
// the open statement so far, following starts with the first token after
// the break.
func (pr *Probe) JudgeBoundary(pending, following []token.Token) asi.Judgment {
	if len(pending) > pr.opts.MaxPending {
		return asi.Judgment{Insert: asi.VerdictUnknown, Suppress: asi.VerdictUnknown}
	}
	judgment := asi.Judgment{
		Insert:   pr.judgeInsert(pending, following),
		Suppress: pr.judgeSuppress(pending, following),
	}
	if len(following) > 0 && following[0].Kind == token.RBrace {
		judgment.BareExpr = pr.parsesAsExpr(pending)
	}
	return judgment
}

// judgeInsert reports whether terminating right here leaves a complete
// declaration or statement, with a token after the break that may follow
// a terminator.
func (pr *Probe) judgeInsert(pending, following []token.Token) asi.Verdict {
	if len(following) > 0 && !canFollowTerminator(following[0].Kind) {
		return asi.VerdictInvalid
	}

	last := pending[len(pending)-1]
	trial := make([]token.Token, 0, len(pending)+1)
	trial = append(trial, pending...)
	trial = append(trial, token.Token{
		Kind: token.Semicolon,
		Span: last.Span.ZeroideToEnd(),
	})

	p, sink := newTrialParser(trial)
	if !p.parseDeclOrStmt() {
		return asi.VerdictInvalid
	}
	if sink.errored || !p.at(token.EOF) {
		return asi.VerdictInvalid
	}
	return asi.VerdictValid
}

// judgeSuppress reports whether reading across the boundary still parses.
// Only errors at or before the first following token count: a complaint
// deeper in the window belongs to a later boundary's judgment or to the
// real parse.
func (pr *Probe) judgeSuppress(pending, following []token.Token) asi.Verdict {
	if len(following) == 0 {
		return asi.VerdictInvalid
	}
	window := following
	if len(window) > pr.opts.MaxFollowing {
		window = window[:pr.opts.MaxFollowing]
	}

	trial := make([]token.Token, 0, len(pending)+len(window))
	trial = append(trial, pending...)
	trial = append(trial, window...)

	p, sink := newTrialParser(trial)
	p.parseTrialSequence()
	if sink.errored && sink.first.Start <= following[0].Span.Start {
		return asi.VerdictInvalid
	}
	return asi.VerdictValid
}

// parsesAsExpr reports whether pending alone is one complete expression.
// Перед '}' это и есть хвост блока.
func (pr *Probe) parsesAsExpr(pending []token.Token) bool {
	p, sink := newTrialParser(pending)
	if _, ok := p.parseExpr(); !ok {
		return false
	}
	return !sink.errored && p.at(token.EOF)
}

// canFollowTerminator reports whether kind may open what comes after a
// terminator: a new statement or declaration, a block close, or the end
// of the file.
func canFollowTerminator(k token.Kind) bool {
	return k.CanStartStmt() || k == token.RBrace || k == token.EOF
}

// newTrialParser builds a parser over throwaway arenas. Nothing is shared
// with the real parse, so a failed trial needs no rollback.
// todo: переиспользовать арены между зондами через sync.Pool
func newTrialParser(toks []token.Token) (*Parser, *spanSink) {
	sink := &spanSink{}
	src := NewSliceSource(toks)
	start := src.Peek().Span
	p := &Parser{
		src:    src,
		arenas: ast.NewBuilder(ast.Hints{Files: 1, Items: 8, Stmts: 16, Exprs: 32, Types: 4}),
		opts:   Options{Reporter: sink},
		lastSpan: source.Span{
			File:  start.File,
			Start: start.Start,
			End:   start.Start,
		},
	}
	return p, sink
}

// spanSink records the position of the earliest error a trial produced.
// Warnings and infos do not affect verdicts.
type spanSink struct {
	errored bool
	first   source.Span
}

func (s *spanSink) Report(_ diag.Code, sev diag.Severity, primary source.Span, _ string, _ []diag.Note, _ []diag.Fix) {
	if sev < diag.SevError {
		return
	}
	if !s.errored || primary.Start < s.first.Start {
		s.errored = true
		s.first = primary
	}
}

// parseTrialSequence consumes declarations and statements until EOF, an
// unmatched '}' or the first failure. The suppress trial cuts the source
// mid-file, so an unmatched '}' is a block opened before the boundary,
// not an error.
func (p *Parser) parseTrialSequence() {
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		if p.at(token.RBrace) {
			return
		}
		if !p.parseDeclOrStmt() {
			return
		}
	}
}

// parseDeclOrStmt parses one declaration or statement using the union of
// the top-level and block grammars. The probe has no context to tell
// which level the boundary sits at, so it accepts either.
func (p *Parser) parseDeclOrStmt() bool {
	switch p.src.Peek().Kind {
	case token.KwImport:
		_, ok := p.parseImportItem()
		return ok
	case token.KwFn:
		_, ok := p.parseFnItem(ast.VisPrivate, source.Span{})
		return ok
	case token.KwPub:
		p.advance()
		switch p.src.Peek().Kind {
		case token.KwLet:
			_, ok := p.parseLetItem(ast.VisPublic, source.Span{})
			return ok
		case token.KwFn:
			_, ok := p.parseFnItem(ast.VisPublic, source.Span{})
			return ok
		default:
			p.err(diag.SynUnexpectedToken, "expected 'let' or 'fn' after 'pub', got '"+p.src.Peek().Text+"'")
			return false
		}
	case token.KwLet:
		// Let-элемент принимает строгое надмножество let-statement:
		// достаточно одной аннотации типа. Пробуем как элемент.
		_, ok := p.parseLetItem(ast.VisPrivate, source.Span{})
		return ok
	default:
		_, ok := p.parseStmt()
		return ok
	}
}
