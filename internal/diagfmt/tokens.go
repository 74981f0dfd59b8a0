package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ripple/internal/source"
	"ripple/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind      string      `json:"kind"`
	Text      string      `json:"text,omitempty"`
	Span      source.Span `json:"span"`
	Synthetic bool        `json:"synthetic,omitempty"`
	Leading   []string    `json:"leading,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
// Синтетические терминаторы помечаются `(auto)` — так в дампе видно
// работу пасса терминации.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())

		switch {
		case tok.IsSynthetic():
			fmt.Fprintf(w, " (auto)")
		case tok.Text != "":
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		output = append(output, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			Span:      tok.Span,
			Synthetic: tok.IsSynthetic(),
			Leading:   leading,
		})

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
