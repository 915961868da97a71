package raster

import (
	"bufio"
	"io"
)

// LineWriter appends newline-terminated directives to an output. The
// first write error is sticky; later writes are dropped and Flush
// returns it.
type LineWriter struct {
	w     *bufio.Writer
	lines int
	err   error
}

func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// WriteLine appends parts followed by a newline.
func (lw *LineWriter) WriteLine(parts ...[]byte) error {
	if lw.err != nil {
		return lw.err
	}
	for _, part := range parts {
		if _, err := lw.w.Write(part); err != nil {
			lw.err = err
			return err
		}
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		lw.err = err
		return err
	}
	lw.lines++
	return nil
}

func (lw *LineWriter) WriteString(s string) error {
	return lw.WriteLine([]byte(s))
}

// Lines returns the number of complete lines written.
func (lw *LineWriter) Lines() int {
	return lw.lines
}

func (lw *LineWriter) Flush() error {
	if lw.err != nil {
		return lw.err
	}
	lw.err = lw.w.Flush()
	return lw.err
}
