package driver

import (
	"fmt"

	"fortio.org/safecast"

	"ripple/internal/asi"
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/lexer"
	"ripple/internal/parser"
	"ripple/internal/source"
	"ripple/internal/token"
)

// ParseResult carries one file's full front-end output.
type ParseResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Builder   *ast.Builder
	FileID    ast.FileID
	Tokens    []token.Token // терминированный поток, скормленный парсеру
	Decisions []asi.Decision
	Bag       *diag.Bag
}

// Parse runs the whole front end over one file: lex, terminate, parse.
// When cfg disables the pass the parser sees the raw stream and reports
// missing ';' itself.
func Parse(path string, cfg asi.Config, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	rep := &diag.BagReporter{Bag: bag}

	raw := lexer.New(file, lexer.Options{Reporter: rep}).Tokens()

	oracle := parser.NewProbe(parser.DefaultProbeOptions())
	terminated := asi.Run(file, raw, oracle, rep, cfg)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, fmt.Errorf("maxDiagnostics overflow: %w", err)
	}

	builder := ast.NewBuilder(ast.Hints{})
	parsed := parser.ParseTokens(fs, terminated.Tokens, builder, parser.Options{
		Reporter:  rep,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet:   fs,
		File:      file,
		Builder:   builder,
		FileID:    parsed.File,
		Tokens:    terminated.Tokens,
		Decisions: terminated.Decisions,
		Bag:       bag,
	}, nil
}
