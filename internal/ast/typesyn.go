package ast

import (
	"ripple/internal/source"
)

type TypeExprKind uint8

const (
	// TypeExprName is a plain named type such as `int` or `text`.
	TypeExprName TypeExprKind = iota
	// TypeExprRef is a reference type `&T`.
	TypeExprRef
)

type TypeExpr struct {
	Kind  TypeExprKind
	Span  source.Span
	Name  source.StringID // for TypeExprName
	Inner TypeID          // for TypeExprRef
}

type TypeExprs struct {
	Arena *Arena[TypeExpr]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	return &TypeExprs{
		Arena: NewArena[TypeExpr](capHint),
	}
}

// NewName allocates a named type expression.
func (t *TypeExprs) NewName(span source.Span, name source.StringID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{
		Kind: TypeExprName,
		Span: span,
		Name: name,
	}))
}

// NewRef allocates a reference type expression `&inner`.
func (t *TypeExprs) NewRef(span source.Span, inner TypeID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{
		Kind:  TypeExprRef,
		Span:  span,
		Inner: inner,
	}))
}

func (t *TypeExprs) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}
