package tsvdict

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/acsearch"
)

// Header is the first line written by Writer.WriteHeader.
var Header = []string{"source", "start", "end", "keyword", "value"}

// Writer writes matches as tab separated values, one match per line.
// Tabs and line breaks within fields are replaced by blanks.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter creates a buffered Writer. Clients must call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the column names.
func (w *Writer) WriteHeader() error {
	return w.writeRecord(Header...)
}

// Write writes a single match found in the text named source.
func (w *Writer) Write(source string, m acsearch.Match[string]) error {
	return w.writeRecord(source, strconv.Itoa(m.Start), strconv.Itoa(m.End), m.Keyword, m.Value)
}

// WriteAll writes a list of matches found in the text named source.
func (w *Writer) WriteAll(source string, matches []acsearch.Match[string]) error {
	for _, m := range matches {
		if err := w.Write(source, m); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes buffered data to the underlying io.Writer and returns the
// first error that occurred.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

var fieldCleaner = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

func (w *Writer) writeRecord(fields ...string) error {
	if w.err != nil {
		return w.err
	}
	for i, f := range fields {
		if i > 0 {
			w.w.WriteByte('\t')
		}
		w.w.WriteString(fieldCleaner.Replace(f))
	}
	_, w.err = w.w.WriteString("\n")
	return w.err
}
