// Package parser implements the CSV grammar as a small recursive-descent
// parser: records separated by newlines, fields separated by commas,
// fields reduced to their alphanumeric content.
//
// Parsing is pure and re-entrant. Each call works on its own input
// string and stack-local cursor, so concurrent callers need no
// coordination.
package parser

import "github.com/csvtab/csvtab/pkg/table"

// Options holds the grammar's separator configuration.
type Options struct {
	// Delimiter separates fields within a record. Defaults to ','.
	Delimiter byte
}

// DefaultOptions returns the standard comma-separated grammar.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

// Parse parses a whole CSV document into a table.
//
// Trailing input after the last recognized record is silently ignored.
// An input that does not contain at least one record with at least one
// field fails with ErrInvalidCSV; no partial table is returned and no
// positional detail is reported.
func Parse(input string) (table.Table, error) {
	return ParseWith(input, DefaultOptions())
}

// ParseWith parses input using a custom field delimiter.
func ParseWith(input string, opts Options) (table.Table, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	tbl, _, err := parseTable(input, 0, opts.Delimiter)
	if err != nil {
		return nil, ErrInvalidCSV
	}
	return tbl, nil
}
