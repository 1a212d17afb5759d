package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rcl/internal/driver"
	"rcl/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path...",
	Short: "Parse many RCL files and report a verdict per file",
	Long: `Check parses every given file (directories are walked for *.rcl) in
parallel and prints one line per file. Files whose content is unchanged
since the last run are answered from the on-disk cache`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	checkCmd.Flags().Bool("no-progress", false, "disable the interactive progress view")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	noProgress, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return fmt.Errorf("failed to get no-progress flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	parseOpts, err := parseOptsFor(cmd, args[0])
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if !noCache {
		// A broken cache dir degrades to uncached checks.
		cache, _ = driver.OpenDiskCache("rcl")
	}

	opts := driver.CheckOpts{
		MaxDepth:       parseOpts.MaxDepth,
		MaxDiagnostics: parseOpts.MaxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	}

	files, err := driver.ListFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Println("no .rcl files found")
		}
		return nil
	}

	showProgress := !noProgress && !quiet && isTerminal(os.Stdout)

	var results []driver.CheckFileResult
	if showProgress {
		results, err = runCheckWithProgress(cmd.Context(), files, opts)
	} else {
		results, err = driver.CheckMany(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	return reportCheckResults(cmd, results, quiet)
}

// runCheckWithProgress runs the batch under a Bubble Tea progress view.
// Events flow from the worker callback into the model; closing the
// channel ends the program.
func runCheckWithProgress(ctx context.Context, files []string, opts driver.CheckOpts) ([]driver.CheckFileResult, error) {
	events := make(chan ui.CheckEvent, len(files))
	opts.OnFile = func(r driver.CheckFileResult) {
		events <- ui.CheckEvent{Path: r.Path, OK: r.OK, FromCache: r.FromCache}
	}

	var results []driver.CheckFileResult
	var checkErr error
	go func() {
		defer close(events)
		results, checkErr = driver.CheckMany(ctx, files, opts)
	}()

	model := ui.NewProgressModel("checking", files, events)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return nil, err
	}
	return results, checkErr
}

func reportCheckResults(cmd *cobra.Command, results []driver.CheckFileResult, quiet bool) error {
	useColor := colorEnabled(cmd, os.Stdout)
	okMark := "ok"
	errMark := "error"
	if useColor {
		okMark = color.GreenString(okMark)
		errMark = color.RedString(errMark)
	}

	failed := 0
	for _, r := range results {
		if r.OK {
			if !quiet {
				note := ""
				if r.FromCache {
					note = " (cached)"
				}
				fmt.Fprintf(os.Stdout, "%-5s %s%s\n", okMark, r.Path, note)
			}
			continue
		}
		failed++
		fmt.Fprintf(os.Stdout, "%-5s %s:%d:%d: %s: %s\n",
			errMark, r.Path, r.Pos.Line, r.Pos.Col, r.Code.ID(), r.Message)
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "%d file(s) checked, %d failed\n", len(results), failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}
