// Package util provides helpers for loading CSV sources.
package util

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// ReadInput loads the entire content of a CSV source into memory.
// "-" reads from stdin. Files ending in .gz are decompressed
// transparently.
func ReadInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	r, cleanup, err := OpenFile(path)
	if err != nil {
		return "", err
	}
	defer cleanup()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// OpenFile opens a file, automatically decompressing if it is
// gzip-compressed. Returns the reader, a cleanup function, and any
// error. The caller must call the cleanup function when done reading.
func OpenFile(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	if IsGzipFile(path) {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		cleanup := func() error {
			gzReader.Close()
			return file.Close()
		}
		return gzReader, cleanup, nil
	}

	cleanup := func() error {
		return file.Close()
	}
	return file, cleanup, nil
}

// IsGzipFile returns true if the file path indicates gzip compression.
func IsGzipFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}
