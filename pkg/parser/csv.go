package parser

import (
	"errors"
	"strings"
	"unicode"

	"github.com/csvtab/csvtab/pkg/table"
)

// errNoField signals that the character scan found no field content at
// the cursor. It never escapes the package; the public entry point
// collapses it into ErrInvalidCSV.
var errNoField = errors.New("parser: no field at cursor")

// cleanField strips every rune that is not a letter or digit. Quote
// marks, surrounding whitespace and punctuation are removed outright,
// which is how quoted-field support is approximated: quotes are
// discarded here rather than interpreted by the grammar.
func cleanField(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseField consumes the longest run of bytes at pos that are neither
// the delimiter nor a newline, and cleans it. A zero-length run is a
// scan failure: the grammar requires at least one byte of field content.
func parseField(input string, pos int, delim byte) (string, int, error) {
	end := pos
	for end < len(input) && input[end] != delim && input[end] != '\n' {
		end++
	}
	if end == pos {
		return "", pos, errNoField
	}
	return cleanField(input[pos:end]), end, nil
}

// parseRecord recognizes field (delim field)*. A delimiter whose
// following field fails to scan is left unconsumed, so the caller sees
// the cursor stopped just past the last complete field.
func parseRecord(input string, pos int, delim byte) (table.Record, int, error) {
	field, next, err := parseField(input, pos, delim)
	if err != nil {
		return nil, pos, err
	}
	rec := table.Record{field}
	pos = next

	for pos < len(input) && input[pos] == delim {
		field, next, err = parseField(input, pos+1, delim)
		if err != nil {
			break
		}
		rec = append(rec, field)
		pos = next
	}
	return rec, pos, nil
}

// parseTable recognizes record ('\n' record)*, with the same put-back
// rule for a newline whose following record fails.
func parseTable(input string, pos int, delim byte) (table.Table, int, error) {
	rec, next, err := parseRecord(input, pos, delim)
	if err != nil {
		return nil, pos, err
	}
	tbl := table.Table{rec}
	pos = next

	for pos < len(input) && input[pos] == '\n' {
		rec, next, err = parseRecord(input, pos+1, delim)
		if err != nil {
			break
		}
		tbl = append(tbl, rec)
		pos = next
	}
	return tbl, pos, nil
}
