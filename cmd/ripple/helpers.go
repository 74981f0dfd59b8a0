package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ripple/internal/asi"
	"ripple/internal/diag"
	"ripple/internal/diagfmt"
	"ripple/internal/driver"
	"ripple/internal/source"
)

// useColor resolves the --color flag against the output terminal.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("unknown color mode: %s (must be auto, on or off)", colorFlag)
	}
}

// printDiagnostics renders a bag to stderr if it has anything to say.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || (!bag.HasErrors() && !bag.HasWarnings()) {
		return nil
	}
	color, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     color,
		Context:   2,
		ShowNotes: true,
		ShowFixes: true,
	})
	return nil
}

func maxDiagnosticsFlag(cmd *cobra.Command) (int, error) {
	return cmd.Root().PersistentFlags().GetInt("max-diagnostics")
}

// terminationConfig resolves the gate for a path: манифест или флаг.
func terminationConfig(cmd *cobra.Command, path string) (asi.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetBool("explicit-terminators")
	if err != nil {
		return asi.Config{}, err
	}
	return driver.ResolveTermination(path, explicit), nil
}
