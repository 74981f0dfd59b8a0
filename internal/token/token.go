package token

import (
	"fmt"

	"ripple/internal/source"
)

// Token is one terminal with its span and leading trivia.
//
// Text — ровно исходный срез. Synthetic semicolons inserted by the
// termination pass carry Kind == Semicolon with empty Text and a
// zero-width span; explicit semicolons carry Text ";".
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsSynthetic reports whether t was inserted by the termination pass
// rather than read from the source text.
func (t Token) IsSynthetic() bool {
	return t.Kind == Semicolon && t.Text == "" && t.Span.Empty()
}

// FirstOnLine reports whether t is preceded by a newline in its leading
// trivia.
func (t Token) FirstOnLine() bool {
	return HasNewline(t.Leading)
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, IntLit, FloatLit, StringLit, Invalid:
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Span)
	case Semicolon:
		if t.IsSynthetic() {
			return fmt.Sprintf(";(auto)@%s", t.Span)
		}
		return fmt.Sprintf(";@%s", t.Span)
	default:
		return fmt.Sprintf("%s@%s", t.Kind, t.Span)
	}
}
