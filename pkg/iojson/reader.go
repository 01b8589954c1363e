package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes JSON documents from files matched by glob patterns, or
// from stdin when no pattern is given.
type FileReader[T any] struct {
	patterns []string
	stdin    io.Reader
	isTTY    func() bool
}

// NewFileReader creates a reader over the given glob patterns
// (doublestar syntax, e.g. "data/**/*.json").
func NewFileReader[T any](patterns ...string) *FileReader[T] {
	return &FileReader[T]{
		patterns: patterns,
		stdin:    os.Stdin,
		isTTY:    func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Flag returns a repeatable --file flag that appends to the reader's patterns.
func (fr *FileReader[T]) Flag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path or glob of JSON files (reads from stdin if not provided)",
		Destination: &fr.patterns,
	}
}

// Read decodes every matched file in pattern order. Files matched by more
// than one pattern are decoded once.
func (fr *FileReader[T]) Read() ([]T, error) {
	if len(fr.patterns) == 0 {
		if fr.isTTY() {
			return nil, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		v, err := decode[T](fr.stdin)
		if err != nil {
			return nil, err
		}
		return []T{v}, nil
	}

	var (
		out  []T
		seen = map[string]bool{}
	)
	for _, pattern := range fr.patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}

		for _, path := range matches {
			abs, _ := filepath.Abs(path)
			if seen[abs] {
				continue
			}
			seen[abs] = true

			v, err := decodeFile[T](path)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}

func decodeFile[T any](path string) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	v, err := decode[T](f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func decode[T any](r io.Reader) (T, error) {
	var input T
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}
	return input, nil
}
