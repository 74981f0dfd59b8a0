// Package driver wires the front-end phases into per-file and
// per-directory pipelines consumed by the CLI.
package driver

import (
	"ripple/internal/asi"
	"ripple/internal/diag"
	"ripple/internal/lexer"
	"ripple/internal/project"
	"ripple/internal/source"
	"ripple/internal/token"
)

// TokenizeResult carries the raw token stream of one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes one file without running the termination pass.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.Tokens(),
		Bag:     bag,
	}, nil
}

// ResolveTermination resolves the termination gate for a file: the
// nearest ripple.toml [syntax] section, overridden by the CLI flag.
// Отсутствие манифеста — не ошибка: действует умолчание (включено).
func ResolveTermination(path string, explicitTerminators bool) asi.Config {
	if explicitTerminators {
		return asi.Config{Enabled: false}
	}
	manifest, err := project.FindManifest(dirOf(path))
	if err != nil {
		return asi.DefaultConfig()
	}
	return asi.Config{Enabled: manifest.NewlineTermination()}
}
