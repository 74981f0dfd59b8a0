package diag

import (
	"ripple/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit описывает одну текстовую правку. OldText — опциональный guard:
// если задан и не совпадает с текущим содержимым Span, правка не применяется.
type FixEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

type Fix struct {
	ID          string // stable identifier, used by `fix --id`
	Title       string
	IsPreferred bool
	Edits       []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// WithFix returns a copy of d with an additional fix built from edits.
func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	return d.WithFixSuggestion(Fix{Title: title, Edits: edits})
}

// WithFixSuggestion returns a copy of d with the given fix appended.
func (d Diagnostic) WithFixSuggestion(fix Fix) Diagnostic {
	fixes := make([]Fix, 0, len(d.Fixes)+1)
	fixes = append(fixes, d.Fixes...)
	fixes = append(fixes, fix)
	d.Fixes = fixes
	return d
}
