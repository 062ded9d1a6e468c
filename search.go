package acsearch

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// Match is an occurrence of a keyword in a text.
//
// Start and End are rune offsets into the text, describing the half-open
// range [Start, End). Keyword is the key of the dictionary entry as given to
// Build, which may differ in case from the text for case insensitive automata.
type Match[V any] struct {
	Value   V
	Keyword string
	Start   int
	End     int
}

// Len returns the length of the match in runes.
func (m Match[V]) Len() int {
	return m.End - m.Start
}

func (m Match[V]) String() string {
	return fmt.Sprintf("%q[%d,%d)=%v", m.Keyword, m.Start, m.End, m.Value)
}

// runeSource delivers the runes of a text one-by-one, with a look-ahead of
// one rune.
type runeSource interface {
	next() (rune, bool)
	peek() (rune, bool)
}

type stringSource struct {
	text string
	pos  int // byte position
}

func (s *stringSource) next() (rune, bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.text[s.pos:])
	s.pos += size
	return r, true
}

func (s *stringSource) peek() (rune, bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.pos:])
	return r, true
}

type sliceSource struct {
	runes []rune
	pos   int
}

func (s *sliceSource) next() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	s.pos++
	return s.runes[s.pos-1], true
}

func (s *sliceSource) peek() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	return s.runes[s.pos], true
}

// Iterator is a lazy sequence of matches, produced by a single forward pass
// over a text. Matches are ordered by end offset; matches sharing an end
// offset are ordered longest first.
//
// An Iterator is not safe for concurrent use. Clients may stop iterating at
// any time; no resources have to be released.
type Iterator[V any] struct {
	a       *Automaton[V]
	src     runeSource
	state   StateID
	pos     int         // number of runes consumed
	history *ring[rune] // last runes consumed, for word bound checks
	pending StateID     // next state on the output chain to report; 0 = none
	done    bool
}

func (a *Automaton[V]) newIterator(src runeSource) *Iterator[V] {
	return &Iterator[V]{
		a:       a,
		src:     src,
		state:   RootState,
		history: newRing[rune](a.maxLen + 1),
	}
}

// Search returns an iterator over all matches of the automaton's keywords in
// text. Every call starts a new scan from the root state.
//
// If text is not valid UTF-8, Search returns ErrInvalidInput before scanning.
func (a *Automaton[V]) Search(text string) (*Iterator[V], error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidInput)
	}
	return a.newIterator(&stringSource{text: text}), nil
}

// SearchRunes is like Search for a text given as runes. It returns
// ErrInvalidInput if text contains a rune which is not a Unicode scalar value.
func (a *Automaton[V]) SearchRunes(text []rune) (*Iterator[V], error) {
	for i, r := range text {
		if !utf8.ValidRune(r) {
			return nil, fmt.Errorf("%w: invalid rune %#x at offset %d", ErrInvalidInput, r, i)
		}
	}
	return a.newIterator(&sliceSource{runes: text}), nil
}

// FindAll collects all matches of the automaton's keywords in text.
func (a *Automaton[V]) FindAll(text string) ([]Match[V], error) {
	it, err := a.Search(text)
	if err != nil {
		return nil, err
	}
	var matches []Match[V]
	for m := range it.All() {
		matches = append(matches, m)
	}
	return matches, nil
}

// Next returns the next match, or false if the text is exhausted.
func (it *Iterator[V]) Next() (Match[V], bool) {
	for {
		for it.pending != 0 {
			o := it.pending
			it.pending = it.a.outputs.Next(o)
			kwi, _ := it.a.outputs.Own(o)
			kw := &it.a.keywords[kwi]
			start := it.pos - kw.length
			if it.a.checkBounds && !it.atBounds(start, kw.length) {
				continue
			}
			return Match[V]{
				Value:   kw.value,
				Keyword: kw.key,
				Start:   start,
				End:     it.pos,
			}, true
		}
		if it.done {
			return Match[V]{}, false
		}
		r, ok := it.src.next()
		if !ok {
			it.done = true
			continue
		}
		it.history.push(r)
		it.pos++
		it.state = it.a.step(it.state, r)
		it.pending = it.a.outputs.First(it.state)
	}
}

// All returns the remaining matches as a sequence for range-over-func loops.
// Breaking out of the loop leaves the iterator positioned after the last
// match yielded.
func (it *Iterator[V]) All() iter.Seq[Match[V]] {
	return func(yield func(Match[V]) bool) {
		for {
			m, ok := it.Next()
			if !ok || !yield(m) {
				return
			}
		}
	}
}

// atBounds reports whether a match of length runes starting at rune offset
// start, and ending at the current position, is delimited by non-word runes
// or the text boundaries.
func (it *Iterator[V]) atBounds(start, length int) bool {
	if start > 0 {
		before, ok := it.history.back(length)
		assert(ok, "rune history shorter than longest keyword")
		if isWordRune(before) {
			return false
		}
	}
	if after, ok := it.src.peek(); ok && isWordRune(after) {
		return false
	}
	return true
}
