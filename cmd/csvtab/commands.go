package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/csvtab/csvtab/pkg/export"
	"github.com/csvtab/csvtab/pkg/tui"
	"github.com/csvtab/csvtab/pkg/watch"
)

// Additional CLI flags
var (
	// Export flags
	outputFile string
	sheetName  string

	// Watch flags
	watchDebounce time.Duration

	// Batch flags
	batchColumn     int
	parallelWorkers int
	failFast        bool
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the parsed table to an XLSX workbook",
	Long: `Parse a CSV file and write the table to an XLSX workbook, one
record per sheet row.

Examples:
  csvtab export biostats.csv -o biostats.xlsx
  csvtab export biostats.csv -o biostats.xlsx --sheet biostats`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-parse and re-print a CSV file whenever it changes",
	Long: `Watch a CSV file and re-render the table after every write.
Rapid successive writes are debounced.

Examples:
  csvtab watch biostats.csv
  csvtab watch --debounce 2s biostats.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Sum one column across many CSV files in parallel",
	Long: `Parse multiple CSV files concurrently and sum the same column in
each. Accepts glob patterns and multiple file paths.

Examples:
  csvtab batch data/*.csv --column 2
  csvtab batch jan.csv feb.csv mar.csv --column 4 --workers 8
  csvtab batch data/*.csv --column 2 --fail-fast`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	// Export command flags
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output XLSX path (required)")
	exportCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name")
	exportCmd.MarkFlagRequired("output")

	// Watch command flags
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period after a write before re-rendering")

	// Batch command flags
	batchCmd.Flags().IntVar(&batchColumn, "column", 0, "Column to sum (0-based, required)")
	batchCmd.Flags().IntVarP(&parallelWorkers, "workers", "w", runtime.NumCPU(), "Number of parallel workers")
	batchCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop on first error")
	batchCmd.MarkFlagRequired("column")

	// Register commands
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(batchCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	tbl, _, err := loadTable(args[0])
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("sheet") {
		sheetName = cfg.Export.Sheet
	}

	if err := export.WriteXLSX(tbl, outputFile, sheetName); err != nil {
		return err
	}

	fmt.Printf("%s %s %s\n",
		tui.Success("✓"),
		tui.Title(fmt.Sprintf("%d records exported to", len(tbl))),
		tui.Accent(outputFile))
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("debounce") {
		watchDebounce = cfg.Watch.Debounce
	}

	render := func(path string) error {
		tbl, _, err := loadTable(path)
		if err != nil {
			return err
		}
		fmt.Println(tui.Muted(fmt.Sprintf("── %s ── %s", filepath.Base(path), time.Now().Format("15:04:05"))))
		return tui.PrintTable(os.Stdout, tbl, plainOutput)
	}

	w, err := watch.New(args[0], watchDebounce)
	if err != nil {
		return err
	}
	w.OnChange = render
	w.OnError = func(path string, err error) {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", tui.Accent("!"), filepath.Base(path), err)
	}

	// Initial render before waiting for changes.
	if err := render(w.Path()); err != nil {
		return err
	}
	fmt.Println(tui.Muted("watching for changes, Ctrl-C to stop"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// batchResult is one file's outcome in a batch run.
type batchResult struct {
	Path string
	Sum  int
	Err  error
}

func runBatch(cmd *cobra.Command, args []string) error {
	// Expand glob patterns and collect all input files
	var inputFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			// Try as literal path
			if _, err := os.Stat(pattern); err == nil {
				inputFiles = append(inputFiles, pattern)
			} else {
				fmt.Fprintf(os.Stderr, "Warning: no files match pattern %q\n", pattern)
			}
		} else {
			inputFiles = append(inputFiles, matches...)
		}
	}

	if len(inputFiles) == 0 {
		return fmt.Errorf("no input files found")
	}

	if !cmd.Flags().Changed("workers") && cfg.Batch.Workers > 0 {
		parallelWorkers = cfg.Batch.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results := make(chan batchResult, len(inputFiles))
	bar := tui.ShowProgress(int64(len(inputFiles)), fmt.Sprintf("summing column %d", batchColumn))

	var succeeded, failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelWorkers)

	startTime := time.Now()

	for _, inputPath := range inputFiles {
		inputPath := inputPath
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := batchResult{Path: inputPath}
			tbl, _, err := loadTable(inputPath)
			if err != nil {
				result.Err = err
			} else {
				result.Sum, result.Err = tbl.SumColumn(batchColumn)
			}
			results <- result
			bar.Add(1)

			if result.Err != nil {
				failed.Add(1)
				if failFast {
					return fmt.Errorf("%s: %w", inputPath, result.Err)
				}
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}

	err := g.Wait()
	close(results)
	bar.Finish()

	var all []batchResult
	total := 0
	for r := range results {
		all = append(all, r)
		if r.Err == nil {
			total += r.Sum
		}
	}

	fmt.Println()
	for _, r := range all {
		if r.Err != nil {
			fmt.Printf("  %s %s: %v\n", tui.Accent("✗"), filepath.Base(r.Path), r.Err)
			continue
		}
		fmt.Printf("  %s %s: %s\n", tui.Success("✓"), filepath.Base(r.Path), tui.Title(fmt.Sprintf("%d", r.Sum)))
	}

	fmt.Println()
	fmt.Printf("  %s %s of %d files summed, %s failed, total %s, %v\n",
		tui.Muted("Done:"),
		tui.Title(fmt.Sprintf("%d", succeeded.Load())),
		len(inputFiles),
		tui.Title(fmt.Sprintf("%d", failed.Load())),
		tui.Success(fmt.Sprintf("%d", total)),
		time.Since(startTime).Round(time.Millisecond))

	return err
}
