package ast

import (
	"ripple/internal/source"
)

type ItemKind uint8

const (
	ItemImport ItemKind = iota
	ItemLet
	ItemFn
)

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

type Items struct {
	Arena    *Arena[Item]
	Imports  *Arena[ImportItem]
	Lets     *Arena[LetItem]
	Fns      *Arena[FnItem]
	FnParams *Arena[FnParam]
}

// NewItems creates and returns an *Items with per-kind arenas initialized
// to capHint. If capHint is 0, NewItems uses a default initial capacity of 1<<7.
func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Items{
		Arena:    NewArena[Item](capHint),
		Imports:  NewArena[ImportItem](capHint),
		Lets:     NewArena[LetItem](capHint),
		Fns:      NewArena[FnItem](capHint),
		FnParams: NewArena[FnParam](capHint),
	}
}

func (i *Items) New(kind ItemKind, span source.Span, payloadID PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payloadID,
	}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}
