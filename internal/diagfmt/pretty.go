package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ripple/internal/diag"
	"ripple/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид. Идёт по
// bag.Items() (ожидается bag.Sort() заранее). Для каждой печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// затем строку-контекст с подчёркиванием ^~~~ по спану, затем notes в
// том же формате. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for i := range bag.Items() {
		p.printDiagnostic(&bag.Items()[i])
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) sprintf(c *color.Color, format string, args ...any) string {
	if p.opts.Color {
		return c.Sprintf(format, args...)
	}
	return fmt.Sprintf(format, args...)
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	gutterColor  = color.New(color.FgBlue)
	caretColor   = color.New(color.FgRed, color.Bold)
	noteColor    = color.New(color.FgCyan)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func (p *prettyPrinter) printDiagnostic(d *diag.Diagnostic) {
	p.printHeader(d.Severity, d.Code, d.Primary, d.Message)
	p.printContext(d.Primary, d.Severity)

	if p.opts.ShowNotes {
		for _, note := range d.Notes {
			p.printNote(note)
		}
	}
	if p.opts.ShowFixes {
		for _, fix := range d.Fixes {
			marker := "fix"
			if fix.IsPreferred {
				marker = "fix (preferred)"
			}
			fmt.Fprintf(p.w, "  %s: %s", p.sprintf(noteColor, "%s", marker), fix.Title)
			if fix.ID != "" {
				fmt.Fprintf(p.w, " [%s]", fix.ID)
			}
			fmt.Fprintln(p.w)
		}
	}
}

func (p *prettyPrinter) printHeader(sev diag.Severity, code diag.Code, sp source.Span, msg string) {
	start, _ := p.fs.Resolve(sp)
	path := p.formatPath(sp.File)
	label := p.sprintf(severityColor(sev), "%s %s", sev, code.ID())
	fmt.Fprintf(p.w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, msg)
}

// printContext prints the source line of the span's start with a caret
// underline. Spans crossing a line break are underlined to the end of the
// first line only; the header already carries the full extent.
func (p *prettyPrinter) printContext(sp source.Span, sev diag.Severity) {
	file := p.fs.Get(sp.File)
	if file == nil || len(file.Content) == 0 {
		return
	}
	start, end := p.fs.Resolve(sp)

	first := start.Line
	if ctx := uint32(max(int(p.opts.Context), 0)); ctx > 0 && first > ctx {
		first -= ctx
	} else if ctx > 0 {
		first = 1
	}
	for line := first; line < start.Line; line++ {
		p.printGutterLine(line, file.GetLine(line))
	}

	lineText := file.GetLine(start.Line)
	p.printGutterLine(start.Line, lineText)

	// Подчёркивание: ^ на первом символе, ~ дальше по ширине спана.
	prefix := sliceCols(lineText, 0, start.Col-1)
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = runewidth.StringWidth(sliceCols(lineText, start.Col-1, end.Col-1))
	} else if end.Line > start.Line {
		width = runewidth.StringWidth(sliceCols(lineText, start.Col-1, uint32(len(lineText))))
	}
	if width < 1 {
		width = 1
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(expandTabs(prefix)))
	underline := "^" + strings.Repeat("~", width-1)
	c := caretColor
	if sev < diag.SevError {
		c = severityColor(sev)
	}
	fmt.Fprintf(p.w, "  %s %s%s\n", p.sprintf(gutterColor, "%s", "|"), pad, p.sprintf(c, "%s", underline))
}

func (p *prettyPrinter) printGutterLine(line uint32, text string) {
	gutter := p.sprintf(gutterColor, "%4d |", line)
	fmt.Fprintf(p.w, "%s %s\n", gutter, expandTabs(text))
}

func (p *prettyPrinter) printNote(note diag.Note) {
	start, _ := p.fs.Resolve(note.Span)
	path := p.formatPath(note.Span.File)
	fmt.Fprintf(p.w, "  %s: %s:%d:%d: %s\n",
		p.sprintf(noteColor, "note"), path, start.Line, start.Col, note.Msg)
}

func (p *prettyPrinter) formatPath(id source.FileID) string {
	file := p.fs.Get(id)
	switch p.opts.PathMode {
	case PathModeAbsolute:
		return file.FormatPath("absolute", "")
	case PathModeRelative:
		return file.FormatPath("relative", p.fs.BaseDir())
	case PathModeBasename:
		return file.FormatPath("basename", "")
	default:
		return file.FormatPath("auto", "")
	}
}

// sliceCols returns the substring of line between byte columns [from, to),
// 0-based. Колонки в LineCol байтовые, ширину для подчёркивания считает
// уже runewidth.
func sliceCols(line string, from, to uint32) string {
	if int(from) >= len(line) {
		return ""
	}
	if int(to) > len(line) {
		to = uint32(len(line))
	}
	if to <= from {
		return ""
	}
	return line[from:to]
}

// expandTabs keeps caret alignment stable: табы в выводе заменяются
// четырьмя пробелами и в строке, и в вычислении отступа.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
