package ast

import (
	"ripple/internal/source"
)

type LetItem struct {
	Name       source.StringID
	Type       TypeID // NoTypeID if type is inferred
	Value      ExprID // NoExprID if no initialization
	IsMut      bool   // mut modifier
	Visibility Visibility
	LetSpan    source.Span
	MutSpan    source.Span
	NameSpan   source.Span
	ColonSpan  source.Span
	EqSpan     source.Span
	SemiSpan   source.Span
	Span       source.Span
}

func (i *Items) Let(id ItemID) (*LetItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemLet {
		return nil, false
	}
	return i.Lets.Get(uint32(item.Payload)), true
}

func (i *Items) newLetPayload(data LetItem) PayloadID {
	payload := i.Lets.Allocate(data)
	return PayloadID(payload)
}

// NewLet creates a new top-level let item.
func (i *Items) NewLet(data LetItem) ItemID {
	payloadID := i.newLetPayload(data)
	return i.New(ItemLet, data.Span, payloadID)
}
