package ast

import "ripple/internal/source"

// ImportItem represents an import declaration `import path.seg;`.
type ImportItem struct {
	Segments []source.StringID
	PathSpan source.Span
	SemiSpan source.Span
}

// Import returns the ImportItem for the given ItemID, or nil/false if invalid.
func (i *Items) Import(id ItemID) (*ImportItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemImport {
		return nil, false
	}
	return i.Imports.Get(uint32(item.Payload)), true
}

func (i *Items) newImportPayload(segments []source.StringID, pathSpan, semiSpan source.Span) PayloadID {
	payload := i.Imports.Allocate(ImportItem{
		Segments: append([]source.StringID(nil), segments...),
		PathSpan: pathSpan,
		SemiSpan: semiSpan,
	})
	return PayloadID(payload)
}

// NewImport creates a new import item.
func (i *Items) NewImport(span source.Span, segments []source.StringID, pathSpan, semiSpan source.Span) ItemID {
	payloadID := i.newImportPayload(segments, pathSpan, semiSpan)
	return i.New(ItemImport, span, payloadID)
}
