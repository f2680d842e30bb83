// csvtab - slice, sum, and pretty-print CSV tables.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/csvtab/csvtab/pkg/config"
	"github.com/csvtab/csvtab/pkg/parser"
	"github.com/csvtab/csvtab/pkg/table"
	"github.com/csvtab/csvtab/pkg/tui"
	"github.com/csvtab/csvtab/pkg/util"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// CLI flags
var (
	verbose       bool
	plainOutput   bool
	delimiterFlag string
	skipHeader    bool
)

var cfg = config.Default()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "csvtab",
	Short: "csvtab - slice, sum, and pretty-print CSV tables",
	Long: `csvtab parses CSV text into an in-memory table and offers small
derived operations on it: row and column extraction, column summation,
and aligned pretty-printing.

Fields are reduced to their alphanumeric content: quotes, punctuation
and surrounding whitespace are stripped rather than interpreted.`,
	Version: fmt.Sprintf("%s (%s)", version, commit),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mgr := config.NewManager()
		if err := mgr.Load(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = mgr.Get()

		// Flags win over config files and environment.
		if !cmd.Flags().Changed("plain") {
			plainOutput = cfg.Output.Plain
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Parse a CSV file and pretty-print it",
	Long: `Parse a CSV file and print it with aligned columns.

Supports reading from stdin using "-" as the input path, and
transparently decompresses .gz sources.

Examples:
  csvtab show biostats.csv
  csvtab show --plain biostats.csv
  cat biostats.csv | csvtab show -`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var lineCmd = &cobra.Command{
	Use:   "line <file> <n>",
	Short: "Print record n (0-based) as comma-joined fields",
	Long: `Print one record of the parsed table, rendered as
comma-space-joined fields.

Examples:
  csvtab line biostats.csv 1`,
	Args: cobra.ExactArgs(2),
	RunE: runLine,
}

var columnCmd = &cobra.Command{
	Use:   "column <file> <n>",
	Short: "Print column n (0-based) from every record",
	Long: `Print one column of the parsed table, one value per line.
Fails if any record lacks the column.

Examples:
  csvtab column biostats.csv 0`,
	Args: cobra.ExactArgs(2),
	RunE: runColumn,
}

var sumCmd = &cobra.Command{
	Use:   "sum <file> <n>",
	Short: "Sum column n (0-based) as signed integers",
	Long: `Parse every value of one column as a signed integer and print
the sum. A single non-integer cell fails the whole operation.

Examples:
  csvtab sum biostats.csv 2
  csvtab sum --skip-header biostats.csv 2`,
	Args: cobra.ExactArgs(2),
	RunE: runSum,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Disable styled output")
	rootCmd.PersistentFlags().StringVar(&delimiterFlag, "delimiter", ",", "Field delimiter")

	// Sum command flags
	sumCmd.Flags().BoolVar(&skipHeader, "skip-header", false, "Treat the first record as a header row")

	// Add commands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(columnCmd)
	rootCmd.AddCommand(sumCmd)
}

// loadTable reads and parses one CSV source.
func loadTable(path string) (table.Table, int64, error) {
	content, err := util.ReadInput(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read input: %w", err)
	}

	opts := parser.DefaultOptions()
	if delimiterFlag != "" {
		opts.Delimiter = delimiterFlag[0]
	}

	tbl, err := parser.ParseWith(content, opts)
	if err != nil {
		return nil, 0, err
	}
	return tbl, int64(len(content)), nil
}

func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	return n, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	start := time.Now()

	tbl, size, err := loadTable(args[0])
	if err != nil {
		return err
	}

	if err := tui.PrintTable(os.Stdout, tbl, plainOutput); err != nil {
		return err
	}

	if verbose {
		tui.PrintParseSummary(os.Stdout, args[0], tbl, size, time.Since(start))
	}
	return nil
}

func runLine(cmd *cobra.Command, args []string) error {
	n, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	tbl, _, err := loadTable(args[0])
	if err != nil {
		return err
	}

	line, err := tbl.Line(n)
	if err != nil {
		return err
	}
	fmt.Println(line)
	return nil
}

func runColumn(cmd *cobra.Command, args []string) error {
	n, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	tbl, _, err := loadTable(args[0])
	if err != nil {
		return err
	}

	values, err := tbl.Column(n)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Println(v)
	}
	return nil
}

func runSum(cmd *cobra.Command, args []string) error {
	n, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	tbl, _, err := loadTable(args[0])
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("skip-header") {
		skipHeader = cfg.Sum.SkipHeader
	}
	if skipHeader && len(tbl) > 0 {
		tbl = tbl[1:]
	}

	sum, err := tbl.SumColumn(n)
	if err != nil {
		return err
	}
	fmt.Println(sum)
	return nil
}
