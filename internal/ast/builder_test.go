package ast

import (
	"testing"

	"ripple/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder(Hints{})

	interner := source.NewInterner()
	nameMain := interner.Intern("main")
	nameX := interner.Intern("x")
	nameInt := interner.Intern("int")
	lit1 := interner.Intern("1")

	file := b.NewFile(sp(0, 64))

	// let x = 1;
	initExpr := b.Exprs.NewLiteral(sp(20, 21), ExprLitInt, lit1)
	letStmt := b.Stmts.NewLet(sp(12, 22), StmtLetData{
		Name:     nameX,
		Init:     initExpr,
		LetSpan:  sp(12, 15),
		NameSpan: sp(16, 17),
		EqSpan:   sp(18, 19),
		SemiSpan: sp(21, 22),
	})

	// return x;
	retValue := b.Exprs.NewIdent(sp(30, 31), nameX)
	retStmt := b.Stmts.NewReturn(sp(23, 32), retValue, sp(23, 29), sp(31, 32))

	body := b.Exprs.NewBlock(sp(10, 34), []StmtID{letStmt, retStmt}, NoExprID)
	retType := b.Types.NewName(sp(7, 10), nameInt)

	fn := b.Items.NewFn(FnItem{
		Name:       nameMain,
		ReturnType: retType,
		Body:       body,
		FnSpan:     sp(0, 2),
		NameSpan:   sp(3, 7),
		Span:       sp(0, 34),
	}, nil)
	b.PushItem(file, fn)

	fileNode := b.Files.Get(file)
	if fileNode == nil {
		t.Fatalf("file node missing")
	}
	if len(fileNode.Items) != 1 || fileNode.Items[0] != fn {
		t.Fatalf("file items = %v, want [%v]", fileNode.Items, fn)
	}

	fnData, ok := b.Items.Fn(fn)
	if !ok {
		t.Fatalf("Fn accessor failed")
	}
	if fnData.Name != nameMain {
		t.Errorf("fn name = %v, want %v", fnData.Name, nameMain)
	}
	if fnData.ParamCount != 0 {
		t.Errorf("fn param count = %d, want 0", fnData.ParamCount)
	}
	if got := b.Items.CollectParams(fnData); got != nil {
		t.Errorf("CollectParams = %v, want nil", got)
	}

	blockData, ok := b.Exprs.Block(fnData.Body)
	if !ok {
		t.Fatalf("Block accessor failed")
	}
	if len(blockData.Stmts) != 2 {
		t.Fatalf("block stmts = %d, want 2", len(blockData.Stmts))
	}
	if blockData.Tail.IsValid() {
		t.Errorf("block tail = %v, want invalid", blockData.Tail)
	}

	letData, ok := b.Stmts.Let(blockData.Stmts[0])
	if !ok {
		t.Fatalf("Let accessor failed")
	}
	if letData.Name != nameX || letData.Mut {
		t.Errorf("let data = %+v", letData)
	}
	litData, ok := b.Exprs.Literal(letData.Init)
	if !ok || litData.Kind != ExprLitInt {
		t.Errorf("literal data = %+v, ok=%v", litData, ok)
	}

	retData, ok := b.Stmts.Return(blockData.Stmts[1])
	if !ok {
		t.Fatalf("Return accessor failed")
	}
	if retData.Value != retValue {
		t.Errorf("return value = %v, want %v", retData.Value, retValue)
	}
}

func TestAccessorKindMismatch(t *testing.T) {
	b := NewBuilder(Hints{})
	interner := source.NewInterner()

	identExpr := b.Exprs.NewIdent(sp(0, 1), interner.Intern("a"))
	if _, ok := b.Exprs.Literal(identExpr); ok {
		t.Errorf("Literal accessor accepted an ident expression")
	}
	if _, ok := b.Exprs.Binary(identExpr); ok {
		t.Errorf("Binary accessor accepted an ident expression")
	}
	if _, ok := b.Exprs.Ident(NoExprID); ok {
		t.Errorf("Ident accessor accepted NoExprID")
	}

	breakStmt := b.Stmts.NewBreak(sp(0, 6), sp(0, 5), sp(5, 6))
	if _, ok := b.Stmts.Return(breakStmt); ok {
		t.Errorf("Return accessor accepted a break statement")
	}
	if _, ok := b.Stmts.Break(breakStmt); !ok {
		t.Errorf("Break accessor rejected a break statement")
	}
}

func TestCollectParamsOrder(t *testing.T) {
	b := NewBuilder(Hints{})
	interner := source.NewInterner()
	tInt := b.Types.NewName(sp(0, 3), interner.Intern("int"))

	params := []FnParam{
		{Name: interner.Intern("a"), Type: tInt, Span: sp(10, 16)},
		{Name: interner.Intern("b"), Type: tInt, Span: sp(18, 24)},
		{Name: interner.Intern("c"), Type: tInt, Span: sp(26, 32)},
	}
	fn := b.Items.NewFn(FnItem{
		Name: interner.Intern("f"),
		Body: b.Exprs.NewBlock(sp(40, 42), nil, NoExprID),
		Span: sp(0, 42),
	}, params)

	fnData, ok := b.Items.Fn(fn)
	if !ok {
		t.Fatalf("Fn accessor failed")
	}
	got := b.Items.CollectParams(fnData)
	if len(got) != len(params) {
		t.Fatalf("collected %d params, want %d", len(got), len(params))
	}
	for i := range params {
		if got[i].Name != params[i].Name {
			t.Errorf("param %d name = %v, want %v", i, got[i].Name, params[i].Name)
		}
	}
}

func TestArenaOneBased(t *testing.T) {
	arena := NewArena[int](4)
	if got := arena.Get(0); got != nil {
		t.Fatalf("Get(0) = %v, want nil", got)
	}
	first := arena.Allocate(10)
	second := arena.Allocate(20)
	if first != 1 || second != 2 {
		t.Fatalf("indices = %d, %d; want 1, 2", first, second)
	}
	if *arena.Get(first) != 10 || *arena.Get(second) != 20 {
		t.Fatalf("values = %d, %d", *arena.Get(first), *arena.Get(second))
	}
	if arena.Len() != 2 {
		t.Fatalf("len = %d, want 2", arena.Len())
	}
}
