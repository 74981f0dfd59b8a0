package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexLoneCarriageReturn       Code = 1006
	LexStrayContinuation        Code = 1007
	LexBadEscape                Code = 1008

	// Терминация операторов (вставка точек с запятой)
	AsiInfo              Code = 1500
	AsiMixedIndent       Code = 1501
	AsiAmbiguousBoundary Code = 1502
	AsiUndecidedBoundary Code = 1503

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectExpr         Code = 2004
	SynUnclosedParen      Code = 2005
	SynUnclosedBrace      Code = 2006
	SynUnclosedBracket    Code = 2007
	SynUnexpectedTopLevel Code = 2008
	SynLetMissingInit     Code = 2009
	SynFailMissingOperand Code = 2010
	SynExpectBlock        Code = 2011
	SynExpectType         Code = 2012

	// Ввод-вывод
	IOLoadFileError  Code = 4000
	IOWriteFileError Code = 4001

	// Проект и манифест
	ProjInfo             Code = 5000
	ProjManifestNotFound Code = 5001
	ProjManifestInvalid  Code = 5002
	ProjBadSourceDir     Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:                     "Lexical information",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	LexTokenTooLong:             "token exceeds maximum length",
	LexLoneCarriageReturn:       "lone carriage return",
	LexStrayContinuation:        "line continuation not at end of line",
	LexBadEscape:                "invalid escape sequence",

	AsiInfo:              "Statement termination information",
	AsiMixedIndent:       "line mixes tabs and spaces in indentation",
	AsiAmbiguousBoundary: "statement boundary is ambiguous",
	AsiUndecidedBoundary: "statement boundary left to the parser",

	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "unexpected token",
	SynExpectSemicolon:    "expected ';'",
	SynExpectIdentifier:   "expected identifier",
	SynExpectExpr:         "expected expression",
	SynUnclosedParen:      "expected ')'",
	SynUnclosedBrace:      "expected '}'",
	SynUnclosedBracket:    "expected ']'",
	SynUnexpectedTopLevel: "unexpected top-level construct",
	SynLetMissingInit:     "let binding requires an initializer",
	SynFailMissingOperand: "fail requires an operand",
	SynExpectBlock:        "expected block",
	SynExpectType:         "expected type",

	IOLoadFileError:  "I/O load file error",
	IOWriteFileError: "I/O write file error",

	ProjInfo:             "Project information",
	ProjManifestNotFound: "manifest not found",
	ProjManifestInvalid:  "manifest is invalid",
	ProjBadSourceDir:     "source directory is invalid",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 1500:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 1500 && ic < 2000:
		return fmt.Sprintf("ASI%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
