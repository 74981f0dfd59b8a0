package token

import "ripple/internal/source"

// TriviaKind classifies non-token material between tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota // пробелы и табы
	TriviaNewline
	TriviaLineComment  // // ...
	TriviaBlockComment // /* ... */
	TriviaContinuation // обратный слэш в конце строки
)

var triviaNames = [...]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
	TriviaContinuation: "Continuation",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "TriviaKind(?)"
}

// Trivia is one run of whitespace, one comment, or one continuation marker.
// Text — ровно исходный срез, нужен трекеру отступов и форматтеру.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// HasNewline reports whether any trivia in the slice is a newline run.
func HasNewline(trivia []Trivia) bool {
	for _, tr := range trivia {
		if tr.Kind == TriviaNewline {
			return true
		}
	}
	return false
}

// HasContinuation reports whether any trivia in the slice is a line
// continuation marker. One marker suppresses termination across the whole
// inter-token gap, even when blank lines follow it.
func HasContinuation(trivia []Trivia) bool {
	for _, tr := range trivia {
		if tr.Kind == TriviaContinuation {
			return true
		}
	}
	return false
}

// CountNewlines returns the number of '\n' covered by newline trivia in
// the slice. Newline runs are coalesced, so the span length is the count.
func CountNewlines(trivia []Trivia) int {
	n := 0
	for _, tr := range trivia {
		if tr.Kind == TriviaNewline {
			n += int(tr.Span.Len())
		}
	}
	return n
}
