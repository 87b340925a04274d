// Package source loads text to be counted from files or standard input.
package source

import (
	"fmt"
	"io"
	"os"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// Source is a named piece of text.
type Source struct {
	Name string
	Text string
}

// Read loads the whole file at path. The path "-" reads stdin instead.
func Read(path string, stdin io.Reader) (Source, error) {
	if path == StdinName {
		return ReadAll(StdinName, stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	return ReadAll(path, file)
}

// ReadAll loads all of r as a Source with the given name.
func ReadAll(name string, r io.Reader) (Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return Source{Name: name, Text: string(data)}, nil
}

// ReadPaths loads every path in order, stopping at the first error.
func ReadPaths(paths []string, stdin io.Reader) ([]Source, error) {
	out := make([]Source, 0, len(paths))
	for _, path := range paths {
		src, err := Read(path, stdin)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}
