// Package lines provides the single-pass line source every puzzle reads from.
//
// A Source trims each record before handing it out and numbers lines from 0.
// It is not restartable: once Next reports false it keeps doing so.
package lines

import (
	"bufio"
	"io"
	"os"
	"strings"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
)

// Reader is the read side of a line source.
type Reader interface {
	Next() bool
	Line() string
	Index() int
	Err() error
}

// maxLineSize bounds a single record.
const maxLineSize = 1 << 20

// Source yields trimmed lines from an io.Reader.
type Source struct {
	scanner *bufio.Scanner
	name    string
	line    string
	index   int
	done    bool
	err     error
}

// New creates a Source reading from r. The name is used in error messages.
func New(r io.Reader, name string) *Source {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &Source{
		scanner: scanner,
		name:    name,
		index:   -1,
	}
}

// FromString creates a Source over an in-memory buffer.
func FromString(s string) *Source {
	return New(strings.NewReader(s), "buffer")
}

// FromLines creates a Source over already split lines. Every line,
// including a trailing empty one, is produced.
func FromLines(lines ...string) *Source {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return FromString(b.String())
}

// Next advances to the next line.
func (s *Source) Next() bool {
	if s.done {
		return false
	}
	if !s.scanner.Scan() {
		s.done = true
		s.line = ""
		if err := s.scanner.Err(); err != nil {
			s.err = perrors.WrapInput(err, perrors.ErrCodeSourceRead, "read "+s.name).
				WithLocation(s.name, s.index+1)
		}
		return false
	}
	s.index++
	s.line = strings.TrimSpace(s.scanner.Text())
	return true
}

// Line returns the current trimmed line.
func (s *Source) Line() string {
	return s.line
}

// Index returns the 0-based index of the current line, -1 before the first call to Next.
func (s *Source) Index() int {
	return s.index
}

// Err returns the first read error, if any.
func (s *Source) Err() error {
	return s.err
}

// Name returns the name of the underlying input.
func (s *Source) Name() string {
	return s.name
}

// File is a Source backed by an open file.
type File struct {
	*Source
	file *os.File
}

// Open opens path as a line source. A path of "-" reads standard input.
func Open(path string) (*File, error) {
	if path == "-" {
		return &File{Source: New(os.Stdin, "stdin")}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, perrors.ErrSourceNotOpened(path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, perrors.ErrSourceNotOpened(path, err)
	}
	if info.IsDir() {
		file.Close()
		return nil, perrors.NewInputError(perrors.ErrCodeSourceUnavailable, "input is a directory", nil).
			WithContext("path", path)
	}

	return &File{Source: New(file, path), file: file}, nil
}

// Close closes the underlying file. Standard input is left open.
func (f *File) Close() error {
	if f.file == nil {
		return nil
	}
	return f.file.Close()
}

// Collect drains r into a slice. Intended for tests and small inputs.
func Collect(r Reader) ([]string, error) {
	var out []string
	for r.Next() {
		out = append(out, r.Line())
	}
	return out, r.Err()
}
