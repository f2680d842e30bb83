// Package table defines the in-memory representation of a parsed CSV
// document and read-only accessors over it.
package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Record is one line's worth of fields, in left-to-right source order.
type Record []string

// Table is the full parsed document, in top-to-bottom source order.
type Table []Record

// Line returns record i rendered as comma-space-joined fields.
func (t Table) Line(i int) (string, error) {
	if i < 0 || i >= len(t) {
		return "", ErrIndexOutOfRange
	}
	return strings.Join(t[i], ", "), nil
}

// Column returns field col from every record, in record order.
// It fails if any record lacks that column.
func (t Table) Column(col int) ([]string, error) {
	if col < 0 {
		return nil, ErrIndexOutOfRange
	}
	values := make([]string, 0, len(t))
	for _, rec := range t {
		if col >= len(rec) {
			return nil, ErrIndexOutOfRange
		}
		values = append(values, rec[col])
	}
	return values, nil
}

// SumColumn parses field col of every record as a signed integer and
// returns the sum. A single non-integer cell fails the whole call.
func (t Table) SumColumn(col int) (int, error) {
	values, err := t.Column(col)
	if err != nil {
		return 0, err
	}

	sum := 0
	for i, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %q (row %d)", ErrNotInteger, v, i)
		}
		sum += n
	}
	return sum, nil
}

// Widths returns the widest cell width per column, in runes: cleaned
// fields may contain non-ASCII letters. Ragged records are allowed; a
// column's width covers only the records that have it.
func (t Table) Widths() []int {
	var widths []int
	for _, rec := range t {
		for i, cell := range rec {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render writes the table as column-aligned plain text, one record per
// line with two spaces between columns.
func (t Table) Render(w io.Writer) error {
	widths := t.Widths()
	for _, rec := range t {
		for i, cell := range rec {
			pad := ""
			if i < len(rec)-1 {
				pad = strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)+2)
			}
			if _, err := fmt.Fprintf(w, "%s%s", cell, pad); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// String renders the table into a string.
func (t Table) String() string {
	var b strings.Builder
	_ = t.Render(&b) // strings.Builder never errors
	return b.String()
}
