package asi

import "ripple/internal/source"

// Action is the final resolution of one line boundary.
type Action uint8

const (
	ActionSuppress Action = iota
	ActionInsert
)

var actionNames = [...]string{
	ActionSuppress: "suppress",
	ActionInsert:   "insert",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Action(?)"
}

// Reason names the rule that settled a decision.
type Reason uint8

const (
	// ReasonEmptyPending: no statement is open at the boundary, there is
	// nothing to terminate.
	ReasonEmptyPending Reason = iota
	// ReasonContinuation: the gap carries an explicit continuation marker.
	ReasonContinuation
	// ReasonImplicitReturn: the open statement is the tail expression of
	// its block and keeps its value only while unterminated.
	ReasonImplicitReturn
	// ReasonBlockClose: the statement ends in a closing bracket, the
	// oracle alone resolved the boundary.
	ReasonBlockClose
	// ReasonIndent: the indentation preference stood.
	ReasonIndent
	// ReasonValidity: the oracle overrode the indentation preference.
	ReasonValidity
	// ReasonAmbiguous: both readings failed to parse.
	ReasonAmbiguous
	// ReasonUndecided: the oracle ran out of lookahead budget.
	ReasonUndecided
)

var reasonNames = [...]string{
	ReasonEmptyPending:   "empty-pending",
	ReasonContinuation:   "continuation",
	ReasonImplicitReturn: "implicit-return",
	ReasonBlockClose:     "block-close",
	ReasonIndent:         "indent",
	ReasonValidity:       "validity",
	ReasonAmbiguous:      "ambiguous",
	ReasonUndecided:      "undecided",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "Reason(?)"
}

// Decision records how one line boundary was resolved. The slice of all
// decisions in stream order is the pass's explainable trace.
type Decision struct {
	Pos        source.Span // zero-width, right after the last pending token
	Before     int         // index of the first token after the boundary
	Action     Action
	Reason     Reason
	Pending    int     // length of the open statement, in tokens
	PrevIndent uint32  // indent width of the line ending at the boundary
	NextIndent uint32  // indent width of the line starting after it
	Insert     Verdict // oracle's verdict for terminating here
	Suppress   Verdict // oracle's verdict for reading across
}
