package driver

import (
	"path/filepath"

	"ripple/internal/asi"
	"ripple/internal/diag"
	"ripple/internal/lexer"
	"ripple/internal/parser"
	"ripple/internal/source"
	"ripple/internal/token"
)

// TerminateResult carries one file's stream before and after the
// termination pass, plus the per-boundary decision trace.
type TerminateResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Raw       []token.Token // как вышло из лексера
	Tokens    []token.Token // после вставки терминаторов
	Decisions []asi.Decision
	Bag       *diag.Bag
}

// Insertions counts the synthetic terminators the pass produced.
func (r *TerminateResult) Insertions() int {
	n := 0
	for _, d := range r.Decisions {
		if d.Action == asi.ActionInsert {
			n++
		}
	}
	return n
}

// Terminate lexes one file and runs the termination pass over it.
func Terminate(path string, cfg asi.Config, maxDiagnostics int) (*TerminateResult, error) {
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
	result := asi.Run(file, raw, oracle, rep, cfg)

	return &TerminateResult{
		FileSet:   fs,
		File:      file,
		Raw:       raw,
		Tokens:    result.Tokens,
		Decisions: result.Decisions,
		Bag:       bag,
	}, nil
}

func dirOf(path string) string {
	if dir := filepath.Dir(path); dir != "" {
		return dir
	}
	return "."
}
