package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// LineReader yields the lines of a source in order, without line endings.
// Lines have no length limit. "\n" and "\r\n" terminate a line; a lone "\r"
// is kept as text, including at the end of input.
type LineReader struct {
	reader *bufio.Reader
	text   string
	number int
	err    error
	done   bool
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// Next advances to the next line. It returns false at end of input or on the
// first error, which Err then reports.
func (r *LineReader) Next() bool {
	if r.err != nil || r.done {
		return false
	}

	line, err := r.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		r.err = fmt.Errorf("%w: line %d: %w", ErrReadInput, r.number+1, err)
		return false
	}
	if err != nil {
		// EOF: a final unterminated line is still a line.
		r.done = true
		if line == "" {
			return false
		}
	} else {
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
	}

	r.number++
	if !utf8.ValidString(line) {
		r.err = fmt.Errorf("%w: line %d", ErrLineDecode, r.number)
		r.text = ""
		return false
	}
	r.text = line
	return true
}

// Text returns the current line.
func (r *LineReader) Text() string {
	return r.text
}

// Number returns the 1-based number of the current line.
func (r *LineReader) Number() int {
	return r.number
}

// Err returns the first read or decode error.
func (r *LineReader) Err() error {
	return r.err
}
