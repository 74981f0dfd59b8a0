package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ripple/internal/diagfmt"
	"ripple/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rp",
	Short: "Parse a ripple source file and output its AST",
	Long:  `Parse runs the whole front end over one file and prints the resulting tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	cfg, err := terminationConfig(cmd, filePath)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, cfg, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	switch format {
	case "tree":
		return diagfmt.FormatASTTree(os.Stdout, result.Builder, result.FileID, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Builder, result.FileID, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
