package tsvdict

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/acsearch"
	"github.com/stretchr/testify/require"
)

func TestReaderEntries(t *testing.T) {
	src := "ab\tAB\n" +
		"  abc \t  Alphabet  \n" +
		"\n" +
		"cd\n" +
		"de\t\n" +
		"ef\tEF\textra\n"
	r := NewReader(strings.NewReader(src))
	type entry struct{ pattern, label string }
	var got []entry
	for {
		p, l, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, entry{p, l})
	}
	require.Equal(t, []entry{
		{"ab", "AB"},
		{"abc", "Alphabet"},
		{"cd", "cd"},
		{"de", "de"},
		{"ef", "EF"},
	}, got)
	require.Equal(t, 6, r.Line())
}

func TestLoad(t *testing.T) {
	src := "ab\tAB\nabc\tABC\ncd\n"
	a, err := Load(strings.NewReader(src), acsearch.IgnoreBounds())
	require.NoError(t, err)
	require.Equal(t, 3, a.KeywordCount())

	matches, err := a.FindAll("xabcd")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	require.Equal(t, "AB", matches[0].Value)
	require.Equal(t, "ABC", matches[1].Value)
	require.Equal(t, "cd", matches[2].Value)
}

func TestLoadEmptyPattern(t *testing.T) {
	src := "ab\tAB\n\tlabel without pattern\n"
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	require.True(t, errors.Is(err, acsearch.ErrEmptyKeyword))
	require.Contains(t, err.Error(), "line 2")
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write("a.txt", acsearch.Match[string]{
		Keyword: "abc", Value: "ABC", Start: 1, End: 4,
	}))
	require.NoError(t, w.WriteAll("b\tc.txt", []acsearch.Match[string]{
		{Keyword: "x", Value: "two\nlines", Start: 0, End: 1},
	}))
	require.NoError(t, w.Flush())
	want := "source\tstart\tend\tkeyword\tvalue\n" +
		"a.txt\t1\t4\tabc\tABC\n" +
		"b c.txt\t0\t1\tx\ttwo lines\n"
	require.Equal(t, want, buf.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriterError(t *testing.T) {
	w := NewWriter(failWriter{})
	require.NoError(t, w.WriteHeader()) // buffered
	require.Error(t, w.Flush())
	require.Error(t, w.WriteHeader())
}
