package parser

import "errors"

// ErrInvalidCSV is returned when the input cannot be decomposed into at
// least one record with at least one field. It carries no positional
// detail: a structural failure is terminal for the whole call.
var ErrInvalidCSV = errors.New("parser: invalid CSV format")
