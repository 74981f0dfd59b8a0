package ast

import (
	"ripple/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprLit represents a literal expression.
	ExprLit
	// ExprUnary represents a prefix unary expression.
	ExprUnary
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprCall represents a function call expression.
	ExprCall
	// ExprIndex represents an index expression.
	ExprIndex
	// ExprMember represents a member access expression.
	ExprMember
	// ExprGroup represents a parenthesized expression.
	ExprGroup
	// ExprBlock represents a block expression `{ stmts; tail }`.
	ExprBlock
	// ExprIf represents an if expression with an optional else arm.
	ExprIf
)

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// Арифметические

	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod

	// Битовые

	ExprBinaryBitAnd
	ExprBinaryBitOr
	ExprBinaryBitXor
	ExprBinaryShiftLeft
	ExprBinaryShiftRight

	// Логические

	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr

	// Сравнения

	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq

	// Диапазоны

	ExprBinaryRange          // ..
	ExprBinaryRangeInclusive // ..=
)

// String returns the symbol representation of a binary operator.
func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryMod:
		return "%"
	case ExprBinaryBitAnd:
		return "&"
	case ExprBinaryBitOr:
		return "|"
	case ExprBinaryBitXor:
		return "^"
	case ExprBinaryShiftLeft:
		return "<<"
	case ExprBinaryShiftRight:
		return ">>"
	case ExprBinaryLogicalAnd:
		return "&&"
	case ExprBinaryLogicalOr:
		return "||"
	case ExprBinaryEq:
		return "=="
	case ExprBinaryNotEq:
		return "!="
	case ExprBinaryLess:
		return "<"
	case ExprBinaryLessEq:
		return "<="
	case ExprBinaryGreater:
		return ">"
	case ExprBinaryGreaterEq:
		return ">="
	case ExprBinaryRange:
		return ".."
	case ExprBinaryRangeInclusive:
		return "..="
	default:
		return "?"
	}
}

// ExprUnaryOp enumerates unary operator kinds.
type ExprUnaryOp uint8

const (
	// ExprUnaryMinus represents the arithmetic negation operator (-).
	ExprUnaryMinus ExprUnaryOp = iota
	// ExprUnaryNot represents the logical NOT operator (!).
	ExprUnaryNot
	// ExprUnaryRef represents the reference operator (&).
	ExprUnaryRef
)

// String returns the symbol representation of a unary operator.
func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryMinus:
		return "-"
	case ExprUnaryNot:
		return "!"
	case ExprUnaryRef:
		return "&"
	default:
		return "?"
	}
}

// ExprLitKind enumerates literal kinds.
type ExprLitKind uint8

const (
	// ExprLitInt represents an integer literal.
	ExprLitInt ExprLitKind = iota
	// ExprLitFloat represents a floating-point literal.
	ExprLitFloat
	// ExprLitString represents a string literal.
	ExprLitString
	// ExprLitTrue represents a true boolean literal.
	ExprLitTrue
	// ExprLitFalse represents a false boolean literal.
	ExprLitFalse
	// ExprLitNothing represents a nothing literal.
	ExprLitNothing
)

// ExprIdentData holds identifier expression details.
type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData holds literal expression details.
type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID // сырое значение для sema
}

// ExprUnaryData holds unary operation expression details.
type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprBinaryData holds binary operation expression details.
type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// ExprCallData holds function call expression details.
type ExprCallData struct {
	Target           ExprID
	Args             []ExprID
	ArgCommas        []source.Span
	HasTrailingComma bool
}

// ExprIndexData holds index expression details.
type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprMemberData holds member access expression details.
type ExprMemberData struct {
	Target ExprID
	Field  source.StringID
}

// ExprGroupData holds parenthesized group expression details.
type ExprGroupData struct {
	Inner ExprID
}

// ExprBlockData represents a block expression `{ stmts; tail }`.
// Tail is the trailing expression that gives the block its value;
// NoExprID when the block ends with a terminated statement.
type ExprBlockData struct {
	Stmts []StmtID
	Tail  ExprID
}

// ExprIfData represents an if expression.
// Then is always a block expression. Else is NoExprID, a block
// expression, or another if expression (else-if chain).
type ExprIfData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}
