/*
Package tsvdict reads keyword dictionaries from tab separated text and writes
search results as tab separated values.

A dictionary file holds one entry per line:

	pattern<TAB>label

Both fields are trimmed. If the label is missing, the pattern is used as its
own label. Blank lines are skipped; further fields are ignored.
*/
package tsvdict

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/acsearch"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tsvdict'
func tracer() tracing.Trace {
	return tracing.Select("tsvdict")
}

// Reader streams dictionary entries from TSV data.
// It implements acsearch.EntryReader[string].
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader on top of an io.Reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the number of the line read last, starting with 1.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next entry as (pattern, label).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		pattern, label, found := strings.Cut(line, "\t")
		pattern = strings.TrimSpace(pattern)
		if found {
			label, _, _ = strings.Cut(label, "\t")
			label = strings.TrimSpace(label)
		}
		if label == "" {
			label = pattern
		}
		return pattern, label, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", fmt.Errorf("reading dictionary, line %d: %w", r.line+1, err)
	}
	return "", "", io.EOF
}

// Load parses TSV dictionary data and returns a ready-to-use automaton.
// Errors name the offending line.
func Load(reader io.Reader, opts ...acsearch.Option) (*acsearch.Automaton[string], error) {
	r := NewReader(reader)
	a, err := acsearch.Build(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", r.Line(), err)
	}
	tracer().Debugf("loaded %d keywords from %d lines", a.KeywordCount(), r.Line())
	return a, nil
}
