// Package layout tracks physical lines and indentation of tokens.
//
// Statement termination is indentation-aware: a statement that continues
// deeper than it started usually keeps going, a line back at the same or
// shallower depth usually starts something new. This package answers the
// two questions the termination engine asks about any token: which line
// does it start, and how is that line indented.
package layout

import (
	"fmt"

	"fortio.org/safecast"

	"ripple/internal/diag"
	"ripple/internal/source"
	"ripple/internal/token"
)

// Indent describes the leading whitespace of one physical line.
//
// Width — это сырое количество символов: таб считается за один, как и
// пробел. Сравнивать ширины строк, где перемешаны табы и пробелы,
// ненадёжно — на это и существует предупреждение AsiMixedIndent.
type Indent struct {
	Width  uint32
	Tabs   bool
	Spaces bool
}

// Mixed reports whether the line indents with both tabs and spaces.
func (i Indent) Mixed() bool {
	return i.Tabs && i.Spaces
}

// LineInfo is the layout of one token: the line it sits on, that line's
// indentation, and whether the token is the first significant thing on it.
type LineInfo struct {
	Line        uint32 // 1-based
	Indent      Indent
	FirstOnLine bool
}

// Tracker derives LineInfo from file content on demand. Lookups are
// O(log lines); mixed-indent warnings fire once per line.
type Tracker struct {
	file   *source.File
	rep    diag.Reporter
	warned map[uint32]struct{}
}

func NewTracker(file *source.File, rep diag.Reporter) *Tracker {
	return &Tracker{
		file:   file,
		rep:    rep,
		warned: make(map[uint32]struct{}),
	}
}

// Info returns the layout of the line tok starts on. A synthetic token
// (zero-width span) reports the layout of the position it was anchored to.
func (t *Tracker) Info(tok token.Token) LineInfo {
	return t.InfoAt(tok.Span.Start)
}

// InfoAt is Info for a raw byte offset.
func (t *Tracker) InfoAt(offset uint32) LineInfo {
	lc := t.file.LineColAt(offset)
	lineStart := offset - (lc.Col - 1)

	limit, err := safecast.Conv[uint32](len(t.file.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var ind Indent
	off := lineStart
scan:
	for off < limit {
		switch t.file.Content[off] {
		case ' ':
			ind.Spaces = true
			ind.Width++
			off++
		case '\t':
			ind.Tabs = true
			ind.Width++
			off++
		default:
			break scan
		}
	}

	if ind.Mixed() {
		t.warnMixed(lc.Line, lineStart, off)
	}

	return LineInfo{
		Line:        lc.Line,
		Indent:      ind,
		FirstOnLine: off == offset,
	}
}

func (t *Tracker) warnMixed(line, start, end uint32) {
	if t.rep == nil {
		return
	}
	if _, done := t.warned[line]; done {
		return
	}
	t.warned[line] = struct{}{}
	sp := source.Span{File: t.file.ID, Start: start, End: end}
	diag.ReportWarning(t.rep, diag.AsiMixedIndent, sp,
		"line mixes tabs and spaces in indentation").
		WithNote(sp, "indent width counts each character as one").
		Emit()
}
