/*
Package acsearch finds every occurrence of any keyword from a fixed dictionary
inside a body of text, in a single pass over the text, regardless of how many
keywords are registered.

It implements the algorithm described by Alfred V. Aho and Margaret J. Corasick
("Efficient string matching: an aid to bibliographic search", CACM 18(6), 1975).
A dictionary of keywords is compiled into a trie; failure links and output links
are computed breadth-first, and the goto function is frozen into a double-array
trie (DAT) indexed by state IDs. The resulting Automaton is immutable and may be
shared by any number of concurrent searches.

Keywords and texts are handled as sequences of Unicode code points. All match
offsets are rune offsets, not byte offsets:

	dict := acsearch.NewDictionary[string]()
	dict.Add("he", "HE")
	dict.Add("she", "SHE")
	dict.Add("hers", "HERS")
	a, _ := acsearch.Compile(dict, acsearch.IgnoreBounds())
	matches, _ := a.FindAll("ushers")
	// she [1,4), he [2,4), hers [2,6)

Matches sharing the same end offset are reported longest keyword first.

Further Reading

	https://dl.acm.org/doi/10.1145/360825.360855
	https://en.wikipedia.org/wiki/Aho%E2%80%93Corasick_algorithm
	https://linux.thai.net/~thep/datrie/datrie.html   (double-array tries)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package acsearch

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'acsearch'
func tracer() tracing.Trace {
	return tracing.Select("acsearch")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// Errors returned by Build and Search. Callers should test with errors.Is, as
// errors are usually wrapped with context.
var (
	// ErrEmptyKeyword is returned by Build for a dictionary entry with an empty key.
	ErrEmptyKeyword = errors.New("empty keyword")

	// ErrInvalidKeyword is returned by Build for a key which is not valid UTF-8.
	ErrInvalidKeyword = errors.New("keyword is not valid UTF-8")

	// ErrInvalidInput is returned by Search for text which cannot be
	// interpreted as a sequence of Unicode code points.
	ErrInvalidInput = errors.New("invalid input text")
)
