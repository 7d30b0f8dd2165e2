package ui

import (
	"bufio"
	"io"
)

// LineReader hands out at most one line per Read. Each accessible huh prompt
// scans its own answer with a fresh buffered scanner, so without this a piped
// stdin would be swallowed by the first prompt's read-ahead.
type LineReader struct {
	br      *bufio.Reader
	pending []byte
}

// NewLineReader wraps r. Share one LineReader across every prompt that reads r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

func (l *LineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		line, err := l.br.ReadBytes('\n')
		if len(line) == 0 {
			return 0, err
		}
		l.pending = line
	}

	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}
