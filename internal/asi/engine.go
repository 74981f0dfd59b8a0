// Package asi decides, for every line boundary in a token stream, whether
// a statement terminator should be synthesized there.
//
// Решение принимается только по лексике и вёрстке: отступы, маркеры
// переноса и пробный разбор через Oracle. Никакой семантики — пасс
// отрабатывает до неё и своих решений не пересматривает.
//
// The engine walks the stream once. At each gap that crosses a physical
// line it applies, in order: the continuation escape, the implicit-return
// guard, the block-close rule, and the indentation preference, consulting
// the oracle wherever the rules admit both readings.
package asi

import (
	"ripple/internal/diag"
	"ripple/internal/layout"
	"ripple/internal/source"
	"ripple/internal/token"
)

// closesGroup reports whether kind closes a brace, bracket or paren group.
func closesGroup(k token.Kind) bool {
	switch k {
	case token.RBrace, token.RParen, token.RBracket:
		return true
	default:
		return false
	}
}

// frame запоминает statement, открытый снаружи '{', чтобы вернуться к
// нему на соответствующей '}'.
type frame struct {
	pendingStart int
	depth        int
}

type engine struct {
	toks    []token.Token
	tracker *layout.Tracker
	oracle  Oracle
	rep     diag.Reporter

	pendingStart int // index of the first token of the open statement
	depth        int // unclosed '(' and '[' inside the open statement
	stack        []frame

	decisions []Decision
}

// run walks the stream once. Каждая граница оценивается до того, как её
// первый токен повлияет на структурное состояние.
func (e *engine) run() {
	for j := range e.toks {
		tok := e.toks[j]
		if j > 0 && token.HasNewline(tok.Leading) {
			e.decide(j)
		}
		switch tok.Kind {
		case token.Semicolon:
			e.pendingStart = j + 1
			e.depth = 0
		case token.LBrace:
			e.stack = append(e.stack, frame{e.pendingStart, e.depth})
			e.pendingStart = j + 1
			e.depth = 0
		case token.RBrace:
			if n := len(e.stack); n > 0 {
				top := e.stack[n-1]
				e.stack = e.stack[:n-1]
				e.pendingStart = top.pendingStart
				e.depth = top.depth
			}
		case token.LParen, token.LBracket:
			e.depth++
		case token.RParen, token.RBracket:
			if e.depth > 0 {
				e.depth--
			}
		}
	}
}

// decide resolves the boundary right before token j.
func (e *engine) decide(j int) {
	next := e.toks[j]
	prev := e.toks[j-1]

	d := Decision{
		Pos:        prev.Span.ZeroideToEnd(),
		Before:     j,
		Pending:    j - e.pendingStart,
		PrevIndent: e.tracker.Info(prev).Indent.Width,
		NextIndent: e.tracker.Info(next).Indent.Width,
	}

	if e.pendingStart == j {
		// Нечего терминировать: после ';', '{' или уже принятой вставки.
		d.Action = ActionSuppress
		d.Reason = ReasonEmptyPending
		e.decisions = append(e.decisions, d)
		return
	}

	if token.HasContinuation(next.Leading) {
		d.Action = ActionSuppress
		d.Reason = ReasonContinuation
		e.decisions = append(e.decisions, d)
		return
	}

	judgment := e.oracle.JudgeBoundary(e.toks[e.pendingStart:j], e.toks[j:])
	d.Insert = judgment.Insert
	d.Suppress = judgment.Suppress

	switch {
	case next.Kind == token.RBrace && judgment.BareExpr:
		// Хвост блока: его значение живёт, пока нет терминатора.
		d.Action = ActionSuppress
		d.Reason = ReasonImplicitReturn

	case judgment.Insert == VerdictUnknown || judgment.Suppress == VerdictUnknown:
		d.Action = ActionSuppress
		d.Reason = ReasonUndecided
		e.reportUndecided(d.Pos)

	case closesGroup(prev.Kind) && e.depth == 0:
		// Statement кончается закрывающей скобкой: отступ не смотрим.
		e.resolveBlockClose(&d, judgment)

	case d.NextIndent > d.PrevIndent:
		// Глубже — читаем как продолжение, если грамматика не против.
		switch {
		case judgment.Suppress == VerdictValid:
			d.Action = ActionSuppress
			d.Reason = ReasonIndent
		case judgment.Insert == VerdictValid:
			d.Action = ActionInsert
			d.Reason = ReasonValidity
		default:
			d.Action = ActionSuppress
			d.Reason = ReasonAmbiguous
			e.reportAmbiguous(d.Pos)
		}

	default:
		// Та же глубина или мельче — читаем как новый statement.
		switch {
		case judgment.Insert == VerdictValid:
			d.Action = ActionInsert
			d.Reason = ReasonIndent
		case judgment.Suppress == VerdictValid:
			d.Action = ActionSuppress
			d.Reason = ReasonValidity
		default:
			d.Action = ActionSuppress
			d.Reason = ReasonAmbiguous
			e.reportAmbiguous(d.Pos)
		}
	}

	if d.Action == ActionInsert {
		// Вставка закрывает statement: дальше копится новый.
		e.pendingStart = j
		e.depth = 0
	}

	e.decisions = append(e.decisions, d)
}

// resolveBlockClose settles a boundary after a closing bracket. The
// oracle alone decides; when it accepts both readings the tie goes to
// Insert, terminating being the more common intent.
func (e *engine) resolveBlockClose(d *Decision, judgment Judgment) {
	switch {
	case judgment.Insert == VerdictValid:
		d.Action = ActionInsert
		d.Reason = ReasonBlockClose
	case judgment.Suppress == VerdictValid:
		d.Action = ActionSuppress
		d.Reason = ReasonBlockClose
	default:
		d.Action = ActionSuppress
		d.Reason = ReasonAmbiguous
		e.reportAmbiguous(d.Pos)
	}
}

func (e *engine) reportAmbiguous(pos source.Span) {
	if e.rep == nil {
		return
	}
	diag.ReportWarning(e.rep, diag.AsiAmbiguousBoundary, pos,
		"statement boundary is ambiguous: neither reading parses").
		WithNote(pos, "terminating the statement here does not parse").
		WithNote(pos, "reading across the line break does not parse either").
		Emit()
}

func (e *engine) reportUndecided(pos source.Span) {
	if e.rep == nil {
		return
	}
	diag.ReportInfo(e.rep, diag.AsiUndecidedBoundary, pos,
		"statement too long to probe, boundary left to the parser").
		Emit()
}
