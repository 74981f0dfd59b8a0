package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ripple/internal/diagfmt"
	"ripple/internal/driver"
)

var terminateCmd = &cobra.Command{
	Use:   "terminate [flags] file.rp",
	Short: "Run the statement-termination pass over a ripple source file",
	Long: `Terminate lexes a ripple source file, decides every line boundary and
prints the rewritten token stream. Synthetic terminators are marked.`,
	Args: cobra.ExactArgs(1),
	RunE: runTerminate,
}

func init() {
	terminateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	terminateCmd.Flags().Bool("explain", false, "print the per-boundary decision trace instead of the stream")
}

func runTerminate(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	explain, err := cmd.Flags().GetBool("explain")
	if err != nil {
		return fmt.Errorf("failed to get explain flag: %w", err)
	}

	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	cfg, err := terminationConfig(cmd, filePath)
	if err != nil {
		return err
	}

	result, err := driver.Terminate(filePath, cfg, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("termination failed: %w", err)
	}

	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	if explain {
		switch format {
		case "pretty":
			return diagfmt.FormatDecisionsPretty(os.Stdout, result.Decisions, result.FileSet)
		case "json":
			return diagfmt.FormatDecisionsJSON(os.Stdout, result.Decisions, result.FileSet)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
