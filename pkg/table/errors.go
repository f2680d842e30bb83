package table

import "errors"

var (
	// ErrIndexOutOfRange is returned when a requested line or column
	// exceeds the table's bounds.
	ErrIndexOutOfRange = errors.New("table: index out of range")

	// ErrNotInteger is returned when a field cannot be parsed as a
	// signed integer.
	ErrNotInteger = errors.New("table: field is not an integer")
)
