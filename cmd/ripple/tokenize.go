package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ripple/internal/diagfmt"
	"ripple/internal/driver"
	"ripple/internal/source"
	"ripple/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rp",
	Short: "Tokenize a ripple source file",
	Long: `Tokenize breaks down a ripple source file into its tokens. By default
the stream is shown after statement termination, with synthetic
terminators marked; --raw shows the lexer output as is.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("raw", false, "skip the termination pass")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return fmt.Errorf("failed to get raw flag: %w", err)
	}

	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	var fs *source.FileSet
	var toks []token.Token
	if raw {
		result, err := driver.Tokenize(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
			return err
		}
		fs, toks = result.FileSet, result.Tokens
	} else {
		cfg, err := terminationConfig(cmd, filePath)
		if err != nil {
			return err
		}
		result, err := driver.Terminate(filePath, cfg, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
			return err
		}
		fs, toks = result.FileSet, result.Tokens
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, toks, fs)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, toks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
