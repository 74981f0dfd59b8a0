package ast

import (
	"ripple/internal/source"
)

type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtReturn
	StmtFail
	StmtBreak
	StmtContinue
	StmtWhile
	StmtExpr
	StmtAssign
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// AssignOp enumerates assignment operator kinds.
type AssignOp uint8

const (
	// AssignPlain represents the plain assignment operator (=).
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
)

// String returns the symbol representation of an assignment operator.
func (op AssignOp) String() string {
	switch op {
	case AssignPlain:
		return "="
	case AssignAdd:
		return "+="
	case AssignSub:
		return "-="
	case AssignMul:
		return "*="
	case AssignDiv:
		return "/="
	case AssignMod:
		return "%="
	default:
		return "?"
	}
}

// StmtLetData holds local let binding details.
// SemiSpan is empty when the terminator was synthesized or omitted.
type StmtLetData struct {
	Name      source.StringID
	Mut       bool
	Type      TypeID // NoTypeID if inferred
	Init      ExprID
	LetSpan   source.Span
	MutSpan   source.Span
	NameSpan  source.Span
	ColonSpan source.Span
	EqSpan    source.Span
	SemiSpan  source.Span
}

// StmtReturnData holds return statement details.
// Value is NoExprID for a bare `return;`.
type StmtReturnData struct {
	Value    ExprID
	KwSpan   source.Span
	SemiSpan source.Span
}

// StmtFailData holds fail statement details. The operand is required;
// the parser reports a diagnostic and leaves Value as NoExprID when
// it is missing.
type StmtFailData struct {
	Value    ExprID
	KwSpan   source.Span
	SemiSpan source.Span
}

// StmtBreakData holds break statement details.
type StmtBreakData struct {
	KwSpan   source.Span
	SemiSpan source.Span
}

// StmtContinueData holds continue statement details.
type StmtContinueData struct {
	KwSpan   source.Span
	SemiSpan source.Span
}

// StmtWhileData holds while loop details. Body is a block expression.
type StmtWhileData struct {
	Cond   ExprID
	Body   ExprID
	KwSpan source.Span
}

// StmtExprData holds expression statement details.
type StmtExprData struct {
	Expr     ExprID
	SemiSpan source.Span
}

// StmtAssignData holds assignment statement details.
type StmtAssignData struct {
	Op       AssignOp
	Target   ExprID
	Value    ExprID
	OpSpan   source.Span
	SemiSpan source.Span
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena     *Arena[Stmt]
	Lets      *Arena[StmtLetData]
	Returns   *Arena[StmtReturnData]
	Fails     *Arena[StmtFailData]
	Breaks    *Arena[StmtBreakData]
	Continues *Arena[StmtContinueData]
	Whiles    *Arena[StmtWhileData]
	Exprs     *Arena[StmtExprData]
	Assigns   *Arena[StmtAssignData]
}

// NewStmts creates a new Stmts with per-kind arenas preallocated using capHint
// as the initial capacity. If capHint is 0, a default capacity of 1<<8 is used.
func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Lets:      NewArena[StmtLetData](capHint),
		Returns:   NewArena[StmtReturnData](capHint),
		Fails:     NewArena[StmtFailData](capHint),
		Breaks:    NewArena[StmtBreakData](capHint),
		Continues: NewArena[StmtContinueData](capHint),
		Whiles:    NewArena[StmtWhileData](capHint),
		Exprs:     NewArena[StmtExprData](capHint),
		Assigns:   NewArena[StmtAssignData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewLet creates a new local let binding statement.
func (s *Stmts) NewLet(span source.Span, data StmtLetData) StmtID {
	payload := s.Lets.Allocate(data)
	return s.new(StmtLet, span, PayloadID(payload))
}

// Let returns the let data for the given statement ID.
func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a new return statement.
func (s *Stmts) NewReturn(span source.Span, value ExprID, kwSpan, semiSpan source.Span) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value, KwSpan: kwSpan, SemiSpan: semiSpan})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return data for the given statement ID.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewFail creates a new fail statement.
func (s *Stmts) NewFail(span source.Span, value ExprID, kwSpan, semiSpan source.Span) StmtID {
	payload := s.Fails.Allocate(StmtFailData{Value: value, KwSpan: kwSpan, SemiSpan: semiSpan})
	return s.new(StmtFail, span, PayloadID(payload))
}

// Fail returns the fail data for the given statement ID.
func (s *Stmts) Fail(id StmtID) (*StmtFailData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFail {
		return nil, false
	}
	return s.Fails.Get(uint32(stmt.Payload)), true
}

// NewBreak creates a new break statement.
func (s *Stmts) NewBreak(span source.Span, kwSpan, semiSpan source.Span) StmtID {
	payload := s.Breaks.Allocate(StmtBreakData{KwSpan: kwSpan, SemiSpan: semiSpan})
	return s.new(StmtBreak, span, PayloadID(payload))
}

// Break returns the break data for the given statement ID.
func (s *Stmts) Break(id StmtID) (*StmtBreakData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBreak {
		return nil, false
	}
	return s.Breaks.Get(uint32(stmt.Payload)), true
}

// NewContinue creates a new continue statement.
func (s *Stmts) NewContinue(span source.Span, kwSpan, semiSpan source.Span) StmtID {
	payload := s.Continues.Allocate(StmtContinueData{KwSpan: kwSpan, SemiSpan: semiSpan})
	return s.new(StmtContinue, span, PayloadID(payload))
}

// Continue returns the continue data for the given statement ID.
func (s *Stmts) Continue(id StmtID) (*StmtContinueData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtContinue {
		return nil, false
	}
	return s.Continues.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a new while loop statement.
func (s *Stmts) NewWhile(span source.Span, cond, body ExprID, kwSpan source.Span) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body, KwSpan: kwSpan})
	return s.new(StmtWhile, span, PayloadID(payload))
}

// While returns the while data for the given statement ID.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewExprStmt creates a new expression statement.
func (s *Stmts) NewExprStmt(span source.Span, expr ExprID, semiSpan source.Span) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr, SemiSpan: semiSpan})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// ExprStmt returns the expression statement data for the given statement ID.
func (s *Stmts) ExprStmt(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewAssign creates a new assignment statement.
func (s *Stmts) NewAssign(span source.Span, op AssignOp, target, value ExprID, opSpan, semiSpan source.Span) StmtID {
	payload := s.Assigns.Allocate(StmtAssignData{
		Op:       op,
		Target:   target,
		Value:    value,
		OpSpan:   opSpan,
		SemiSpan: semiSpan,
	})
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment data for the given statement ID.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}
