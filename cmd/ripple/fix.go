package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ripple/internal/asi"
	"ripple/internal/diag"
	"ripple/internal/driver"
	"ripple/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.rp|directory>",
	Short: "Apply available fixes to a source file or directory",
	Long:  "Run diagnostics, surface available fixes, and apply them according to the chosen strategy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply all safe fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply fix with a specific identifier")
	fixCmd.Flags().Bool("backup", false, "write a .bak copy before modifying a file")
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnceFlag, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	backup, err := cmd.Flags().GetBool("backup")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if targetID != "" && (applyAll || applyOnceFlag) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnceFlag {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}

	mode := fix.ApplyModeOnce
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyAll {
		mode = fix.ApplyModeAll
	}
	opts := fix.ApplyOptions{
		Mode:     mode,
		TargetID: targetID,
		Backup:   backup,
		DryRun:   dryRun,
	}

	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}

	cfg, err := terminationConfig(cmd, targetPath)
	if err != nil {
		return err
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	// если это директория, но передан id, то ошибка
	// так как id уникален только для одного файла
	if info.IsDir() && targetID != "" {
		return fmt.Errorf("fix: id can only be used with a single file")
	}

	if !info.IsDir() {
		return runFixFile(targetPath, cfg, maxDiagnostics, opts)
	}
	return runFixDir(cmd.Context(), targetPath, cfg, maxDiagnostics, opts)
}

func runFixFile(path string, cfg asi.Config, maxDiagnostics int, opts fix.ApplyOptions) error {
	result, err := driver.Parse(path, cfg, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("fix: diagnose failed: %w", err)
	}
	result.Bag.Sort()
	res, applyErr := fix.Apply(result.FileSet, result.Bag.Items(), opts)
	return handleApplyResult(res, applyErr)
}

func runFixDir(ctx context.Context, path string, cfg asi.Config, maxDiagnostics int, opts fix.ApplyOptions) error {
	fileSet, results, err := driver.CheckDir(ctx, path, driver.CheckOptions{
		MaxDiagnostics: maxDiagnostics,
		Termination:    cfg,
	})
	if err != nil {
		return fmt.Errorf("fix: check dir failed: %w", err)
	}

	var diagnostics []diag.Diagnostic
	for _, r := range results {
		if r.Bag == nil {
			continue
		}
		r.Bag.Sort()
		diagnostics = append(diagnostics, r.Bag.Items()...)
	}
	res, applyErr := fix.Apply(fileSet, diagnostics, opts)
	return handleApplyResult(res, applyErr)
}

func handleApplyResult(res *fix.ApplyResult, err error) error {
	if err != nil {
		if errors.Is(err, fix.ErrNoFixes) {
			fmt.Fprintln(os.Stdout, "no applicable fixes found")
			return nil
		}
		return fmt.Errorf("fix: %w", err)
	}
	for _, applied := range res.Applied {
		fmt.Fprintf(os.Stdout, "applied %s: %s\n", applied.ID, applied.Title)
	}
	for _, skipped := range res.Skipped {
		fmt.Fprintf(os.Stdout, "skipped %s: %s\n", skipped.ID, skipped.Reason)
	}
	for _, change := range res.FileChanges {
		fmt.Fprintf(os.Stdout, "%s: %d edit(s)\n", change.Path, change.EditCount)
	}
	return nil
}
