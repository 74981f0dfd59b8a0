package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ripple/internal/driver"
	"ripple/internal/observ"
	"ripple/internal/pipeline"
	"ripple/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.rp|directory>",
	Short: "Check ripple sources for lexical, termination and syntax errors",
	Long: `Check runs the front end over a file or over every *.rp file in a
directory and reports diagnostics. Clean files are cached on disk and
skipped on the next run.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	checkCmd.Flags().Bool("clear-cache", false, "drop the on-disk result cache before checking")
	checkCmd.Flags().Bool("ui", false, "render interactive progress while checking")
}

func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return err
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return err
	}
	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	cfg, err := terminationConfig(cmd, targetPath)
	if err != nil {
		return err
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	timer := observ.NewTimer()
	phase := timer.Begin("check")

	if !st.IsDir() {
		result, err := driver.Parse(targetPath, cfg, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		timer.End(phase, targetPath)
		if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
			return err
		}
		if showTimings {
			fmt.Fprint(os.Stderr, timer.Summary())
		}
		if result.Bag.HasErrors() {
			return fmt.Errorf("check found errors in %s", targetPath)
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "%s: ok\n", targetPath)
		}
		return nil
	}

	opts := driver.CheckOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Termination:    cfg,
	}
	if !noCache {
		cache, err := driver.OpenDiskCache("ripple")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		opts.Cache = cache
	}

	if withUI && isTerminal(os.Stdout) {
		fileSet, results, err := runCheckWithUI(cmd.Context(), targetPath, opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		timer.End(phase, targetPath)
		return reportCheckResults(cmd, fileSet, results, timer, showTimings, quiet)
	}

	fileSet, results, err := driver.CheckDir(cmd.Context(), targetPath, opts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	timer.End(phase, targetPath)
	return reportCheckResults(cmd, fileSet, results, timer, showTimings, quiet)
}

func reportCheckResults(cmd *cobra.Command, fileSet *source.FileSet, results []driver.CheckFileResult, timer *observ.Timer, showTimings, quiet bool) error {
	failed := 0
	cached := 0
	for _, r := range results {
		if r.Cached {
			cached++
		}
		if r.Bag != nil && r.Bag.HasErrors() {
			failed++
		}
		if err := printDiagnostics(cmd, r.Bag, fileSet); err != nil {
			return err
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if failed > 0 {
		return fmt.Errorf("check found errors in %d of %d files", failed, len(results))
	}
	if !quiet {
		if cached > 0 {
			fmt.Fprintf(os.Stdout, "checked %d files (%d cached): ok\n", len(results), cached)
		} else {
			fmt.Fprintf(os.Stdout, "checked %d files: ok\n", len(results))
		}
	}
	return nil
}

// checkOutcome carries the result of a background check run back to the
// UI goroutine.
type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.CheckFileResult
	err     error
}

func runCheckWithUI(ctx context.Context, dir string, opts driver.CheckOptions) (*source.FileSet, []driver.CheckFileResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = pipeline.ChannelSink{Ch: events}
		fs, results, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- checkOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	uiErr := runProgressUI("checking "+dir, files, events)
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
