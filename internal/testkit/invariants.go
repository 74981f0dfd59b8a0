// Package testkit holds invariant checks shared by tests and fuzz
// harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"ripple/internal/ast"
	"ripple/internal/source"
	"ripple/internal/token"
)

// CheckStreamInvariants runs the structural invariants every terminated
// token stream must hold:
// 1) spans are ordered and non-overlapping
// 2) synthetic tokens are zero-width terminators with no text
// 3) the stream ends with exactly one EOF
func CheckStreamInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty stream: want at least EOF")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Start > sp.End {
			return fmt.Errorf("token %d has inverted span: %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d overlaps its predecessor: start=%d prev end=%d", i, sp.Start, prevEnd)
		}
		prevEnd = sp.End

		if tok.IsSynthetic() {
			if tok.Kind != token.Semicolon {
				return fmt.Errorf("token %d is synthetic but not a terminator: %v", i, tok.Kind)
			}
			if !sp.Empty() {
				return fmt.Errorf("synthetic token %d has non-empty span: %v", i, sp)
			}
		}

		if tok.Kind == token.EOF && i != len(toks)-1 {
			return fmt.Errorf("EOF at position %d of %d", i, len(toks))
		}
	}
	if last := toks[len(toks)-1]; last.Kind != token.EOF {
		return fmt.Errorf("stream does not end with EOF: %v", last.Kind)
	}
	return nil
}

// CheckSpanInvariants runs a minimal set of span invariants on a parsed
// file:
// 1) file.Span is non-empty and within file content bounds
// 2) every item span is non-empty and fully contained in file.Span
// 3) file.Span covers the union of item spans (if any items exist)
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	if f.Span.End < f.Span.Start {
		return fmt.Errorf("file span is inverted: %v", f.Span)
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	var union source.Span
	var haveItem bool
	for _, it := range f.Items {
		item := b.Items.Get(it)
		if item == nil {
			return fmt.Errorf("nil item for id=%d", it)
		}
		sp := item.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty item span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("item span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("item span %v is outside file span %v", sp, f.Span)
		}
		if !haveItem {
			union = sp
			haveItem = true
		} else {
			union = union.Cover(sp)
		}
	}

	if haveItem {
		if union.Start < f.Span.Start || union.End > f.Span.End {
			return fmt.Errorf("file span %v does not cover union of items %v", f.Span, union)
		}
	}
	return nil
}
