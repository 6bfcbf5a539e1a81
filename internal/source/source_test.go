package source

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func drain(t *testing.T, src *Source) ([]Line, []*LineReadError) {
	t.Helper()
	var lines []Line
	var failures []*LineReadError
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			return lines, failures
		}
		var lerr *LineReadError
		if errors.As(err, &lerr) {
			failures = append(failures, lerr)
			continue
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
}

func TestSource_SkipsBlankLinesAndKeepsPhysicalNumbers(t *testing.T) {
	path := writeInput(t, "a\n\n   \n  b  \r\n\tc\n")

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	lines, failures := drain(t, src)

	assert.Empty(t, failures)
	require.Len(t, lines, 3)
	assert.Equal(t, Line{Number: 1, Raw: "a", Text: "a"}, lines[0])
	assert.Equal(t, 4, lines[1].Number)
	assert.Equal(t, "b", lines[1].Text)
	assert.Equal(t, "  b  ", lines[1].Raw)
	assert.Equal(t, 5, lines[2].Number)
	assert.Equal(t, "c", lines[2].Text)
}

func TestSource_LastLineWithoutNewline(t *testing.T) {
	src, err := Open(writeInput(t, "first\nsecond"))
	require.NoError(t, err)
	defer src.Close()

	lines, _ := drain(t, src)

	require.Len(t, lines, 2)
	assert.Equal(t, "second", lines[1].Text)
	assert.Equal(t, 2, lines[1].Number)
}

func TestSource_EmptyFile(t *testing.T) {
	src, err := Open(writeInput(t, ""))
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_InvalidUTF8IsPerLineFailure(t *testing.T) {
	src, err := Open(writeInput(t, "a\n\xff\xfe\nb\n"))
	require.NoError(t, err)
	defer src.Close()

	lines, failures := drain(t, src)

	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].Text)
	assert.Equal(t, 3, lines[1].Number)
	require.Len(t, failures, 1)
	assert.Equal(t, 2, failures[0].Line)
	assert.ErrorIs(t, failures[0], encoding.ErrInvalidUTF8)
}

func TestSource_ReaderFailureEndsStream(t *testing.T) {
	errBoom := errors.New("boom")
	src := &Source{reader: bufio.NewReader(iotest.ErrReader(errBoom))}

	_, err := src.Next()

	var lerr *LineReadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 1, lerr.Line)
	assert.ErrorIs(t, err, errBoom)

	for i := 0; i < 3; i++ {
		_, err = src.Next()
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestOpen_Directory(t *testing.T) {
	_, err := Open(t.TempDir())

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Contains(t, err.Error(), "is a directory")
}
