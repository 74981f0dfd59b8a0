package asi

import (
	"ripple/internal/diag"
	"ripple/internal/layout"
	"ripple/internal/source"
	"ripple/internal/token"
)

// Result of one termination pass.
type Result struct {
	// Tokens is the rewritten stream, ready for the parser. When the
	// pass is disabled or made no insertions it aliases the input.
	Tokens []token.Token
	// Decisions is the resolution of every line boundary, in stream
	// order. Nil when the pass is disabled.
	Decisions []Decision
}

// Run resolves every line boundary of toks and splices in the synthetic
// terminators. file must be the file the tokens were lexed from: line
// and indent data comes from its content. rep receives the advisory
// diagnostics and may be nil.
func Run(file *source.File, toks []token.Token, oracle Oracle, rep diag.Reporter, cfg Config) Result {
	if !cfg.Enabled {
		return Result{Tokens: toks}
	}

	e := engine{
		toks:    toks,
		tracker: layout.NewTracker(file, rep),
		oracle:  oracle,
		rep:     rep,
	}
	e.run()

	return Result{
		Tokens:    Emit(toks, e.decisions),
		Decisions: e.decisions,
	}
}
