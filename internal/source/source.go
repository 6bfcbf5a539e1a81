// Package source reads the input file as a forward-only stream of
// trimmed, non-empty lines numbered by their physical position.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var errIsDirectory = errors.New("is a directory")

// Line is one usable input line. Number is 1-based and counts every
// physical line of the file, blank and unreadable ones included.
type Line struct {
	Number int    `json:"line" yaml:"line"`
	Raw    string `json:"-" yaml:"-"`
	Text   string `json:"value" yaml:"value"`
}

// OpenError is returned by Open when the input cannot be used at all.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("error opening file '%s': %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// LineReadError reports a single line that could not be read or decoded.
// The stream stays usable after it unless the underlying reader failed.
type LineReadError struct {
	Line int
	Err  error
}

func (e *LineReadError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineReadError) Unwrap() error {
	return e.Err
}

// Source yields the lines of one file in order.
type Source struct {
	file   *os.File
	reader *bufio.Reader
	number int
	broken bool
}

// Open opens path for reading. Directories are rejected up front.
func Open(path string) (*Source, error) {
	cleanPath := filepath.Clean(path)

	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		f.Close()
		return nil, &OpenError{Path: path, Err: errIsDirectory}
	}

	return &Source{
		file:   f,
		reader: bufio.NewReader(f),
	}, nil
}

// Next returns the next non-blank line. Blank lines are skipped silently.
// A *LineReadError is returned for a line that cannot be decoded; callers
// may keep calling Next afterwards. io.EOF marks the end of the stream.
func (s *Source) Next() (Line, error) {
	for {
		if s.broken {
			return Line{}, io.EOF
		}

		raw, err := s.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			// A failing reader would fail forever; report it once and stop.
			s.number++
			s.broken = true
			return Line{}, &LineReadError{Line: s.number, Err: err}
		}
		if raw == "" && errors.Is(err, io.EOF) {
			return Line{}, io.EOF
		}

		s.number++
		raw = trimNewline(raw)

		if _, _, verr := transform.String(encoding.UTF8Validator, raw); verr != nil {
			return Line{}, &LineReadError{Line: s.number, Err: verr}
		}

		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		return Line{Number: s.number, Raw: raw, Text: text}, nil
	}
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.file.Close()
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
