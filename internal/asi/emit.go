package asi

import "ripple/internal/token"

// Emit splices a synthetic terminator before every token an Insert
// decision points at. Original tokens pass through untouched and in
// order; each insertion allocates exactly one token. decisions must be
// sorted by Before, which is how the engine produces them.
func Emit(toks []token.Token, decisions []Decision) []token.Token {
	inserts := 0
	for _, d := range decisions {
		if d.Action == ActionInsert {
			inserts++
		}
	}
	if inserts == 0 {
		return toks
	}

	out := make([]token.Token, 0, len(toks)+inserts)
	next := 0
	for j, tok := range toks {
		if next < len(decisions) && decisions[next].Before == j {
			if decisions[next].Action == ActionInsert {
				out = append(out, token.Token{
					Kind: token.Semicolon,
					Span: decisions[next].Pos,
				})
			}
			next++
		}
		out = append(out, tok)
	}
	return out
}
