package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ripple/internal/asi"
	"ripple/internal/source"
)

// DecisionOutput is the JSON shape of one boundary decision.
type DecisionOutput struct {
	Line       uint32 `json:"line"`
	Offset     uint32 `json:"offset"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
	PrevIndent uint32 `json:"prev_indent"`
	NextIndent uint32 `json:"next_indent"`
	Insert     string `json:"insert_verdict,omitempty"`
	Suppress   string `json:"suppress_verdict,omitempty"`
}

// FormatDecisionsPretty renders the termination pass's per-boundary trace:
// строка, решение, правило и отступы по обе стороны границы. Это вывод
// `ripple terminate --explain`.
func FormatDecisionsPretty(w io.Writer, decisions []asi.Decision, fs *source.FileSet) error {
	if len(decisions) == 0 {
		fmt.Fprintln(w, "no line boundaries")
		return nil
	}
	for _, d := range decisions {
		pos, _ := fs.Resolve(d.Pos)
		fmt.Fprintf(w, "line %3d: %-8s  %-15s indent %d -> %d",
			pos.Line, d.Action, d.Reason, d.PrevIndent, d.NextIndent)
		if d.Insert != asi.VerdictUnknown || d.Suppress != asi.VerdictUnknown {
			fmt.Fprintf(w, "  (insert %s, suppress %s)", d.Insert, d.Suppress)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// FormatDecisionsJSON renders the decision trace as JSON.
func FormatDecisionsJSON(w io.Writer, decisions []asi.Decision, fs *source.FileSet) error {
	output := make([]DecisionOutput, 0, len(decisions))
	for _, d := range decisions {
		pos, _ := fs.Resolve(d.Pos)
		out := DecisionOutput{
			Line:       pos.Line,
			Offset:     d.Pos.Start,
			Action:     d.Action.String(),
			Reason:     d.Reason.String(),
			PrevIndent: d.PrevIndent,
			NextIndent: d.NextIndent,
		}
		if d.Insert != asi.VerdictUnknown || d.Suppress != asi.VerdictUnknown {
			out.Insert = d.Insert.String()
			out.Suppress = d.Suppress.String()
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
