package asi

import "ripple/internal/token"

// Verdict is the oracle's answer about one reading of a boundary.
type Verdict uint8

const (
	// VerdictUnknown means the oracle could not decide within its
	// lookahead budget. The engine reads it as "defer to the parser".
	VerdictUnknown Verdict = iota
	VerdictValid
	VerdictInvalid
)

var verdictNames = [...]string{
	VerdictUnknown: "unknown",
	VerdictValid:   "valid",
	VerdictInvalid: "invalid",
}

func (v Verdict) String() string {
	if int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return "Verdict(?)"
}

// Judgment carries the oracle's verdicts for both readings of one
// boundary. BareExpr сообщает, что открытый statement — это одно целое
// выражение; поле имеет смысл только перед '}'.
type Judgment struct {
	Insert   Verdict
	Suppress Verdict
	BareExpr bool
}

// Oracle judges whether terminating the open statement at a boundary
// keeps the program parseable. Implementations must be side-effect-free:
// the engine calls JudgeBoundary speculatively and discards the attempt
// on its own terms, no rollback protocol exists.
type Oracle interface {
	// JudgeBoundary inspects the tokens of the open statement and the
	// tokens after the boundary. pending never includes the terminator
	// under question; following starts with the first token after the
	// line break and runs to the end of the stream.
	JudgeBoundary(pending, following []token.Token) Judgment
}
