package fix

import (
	"fmt"

	"ripple/internal/diag"
	"ripple/internal/source"
)

// Option mutates fix during construction.
type Option func(*diag.Fix)

// WithID sets stable identifier for fix.
func WithID(id string) Option {
	return func(f *diag.Fix) {
		f.ID = id
	}
}

// Preferred marks fix as preferred suggestion.
func Preferred() Option {
	return func(f *diag.Fix) {
		f.IsPreferred = true
	}
}

func applyOptions(f diag.Fix, opts []Option) diag.Fix {
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

// MakeFixID derives a stable fix identifier from the diagnostic code and the
// edit position. The same defect at the same offset always gets the same ID,
// so `ripple fix --id` stays usable across runs.
func MakeFixID(code diag.Code, at source.Span) string {
	return fmt.Sprintf("%s-%d-%d", code.ID(), at.File, at.Start)
}

// InsertText creates fix that inserts text at span (Span.Start == Span.End).
// guard, if non-empty, must match the current content at span for the fix
// to apply.
func InsertText(title string, at source.Span, text string, guard string, opts ...Option) diag.Fix {
	edit := diag.FixEdit{
		Span:    at,
		NewText: text,
		OldText: guard,
	}
	fix := diag.Fix{
		Title: title,
		Edits: []diag.FixEdit{edit},
	}
	return applyOptions(fix, opts)
}

// DeleteSpan removes text covered by span.
func DeleteSpan(title string, span source.Span, expect string, opts ...Option) diag.Fix {
	edit := diag.FixEdit{
		Span:    span,
		NewText: "",
		OldText: expect,
	}
	fix := diag.Fix{
		Title: title,
		Edits: []diag.FixEdit{edit},
	}
	return applyOptions(fix, opts)
}

// ReplaceSpan replaces text covered by span with newText.
func ReplaceSpan(title string, span source.Span, newText, expect string, opts ...Option) diag.Fix {
	edit := diag.FixEdit{
		Span:    span,
		NewText: newText,
		OldText: expect,
	}
	fix := diag.Fix{
		Title: title,
		Edits: []diag.FixEdit{edit},
	}
	return applyOptions(fix, opts)
}
