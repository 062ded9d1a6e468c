package acsearch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/acsearch/dat"
)

// StateID identifies a state of an Automaton. State IDs are slot indices of
// the underlying double-array, thus they are not contiguous.
// The zero value is not a valid state.
type StateID uint32

// RootState is the state ID of the root of every Automaton.
const RootState StateID = 1

type keyword[V any] struct {
	key    string // as given by the client
	length int    // in runes, after normalization
	value  V
}

// Automaton is a compiled keyword dictionary. It is immutable after Build
// and safe for concurrent use by multiple goroutines.
type Automaton[V any] struct {
	table         *dat.DAT
	fail          []StateID // failure function, indexed by state
	depth         []int32   // length of the path from the root, indexed by state
	outputs       *outputStore
	keywords      []keyword[V]
	maxLen        int // length of the longest keyword, in runes
	nodes         int // number of states
	caseSensitive bool
	checkBounds   bool
}

// CaseSensitive reports whether the automaton has been built for case
// sensitive matching.
func (a *Automaton[V]) CaseSensitive() bool {
	return a.caseSensitive
}

// CheckBounds reports whether matches are restricted to whole words.
func (a *Automaton[V]) CheckBounds() bool {
	return a.checkBounds
}

// NodeCount returns the number of states, including the root.
func (a *Automaton[V]) NodeCount() int {
	return a.nodes
}

// KeywordCount returns the number of distinct keywords.
func (a *Automaton[V]) KeywordCount() int {
	return len(a.keywords)
}

// MaxKeywordLength returns the length in runes of the longest keyword.
func (a *Automaton[V]) MaxKeywordLength() int {
	return a.maxLen
}

// Keywords returns the distinct keywords of the automaton in sorted order.
// For keys which collided during Build, the key which won is returned.
func (a *Automaton[V]) Keywords() []string {
	kk := make([]string, len(a.keywords))
	for i, kw := range a.keywords {
		kk[i] = kw.key
	}
	sort.Strings(kk)
	return kk
}

// Lookup returns the value stored for keyword key, if key is a keyword of
// the automaton. Case folding applies.
func (a *Automaton[V]) Lookup(key string) (V, bool) {
	var zero V
	s, ok := a.NodeByPath(key)
	if !ok {
		return zero, false
	}
	kw, ok := a.outputs.Own(s)
	if !ok {
		return zero, false
	}
	return a.keywords[kw].value, true
}

// NodeByPath returns the state reached from the root by following the goto
// transitions for the runes of path. The empty path is rejected.
func (a *Automaton[V]) NodeByPath(path string) (StateID, bool) {
	if path == "" {
		return 0, false
	}
	s := RootState
	for _, r := range path {
		next, ok := a.table.Transition(uint32(s), a.dense(r))
		if !ok {
			return 0, false
		}
		s = StateID(next)
	}
	return s, true
}

// Fail returns the failure target of state s. The root fails to itself.
func (a *Automaton[V]) Fail(s StateID) StateID {
	if !a.valid(s) {
		return 0
	}
	return a.fail[s]
}

// Depth returns the length in runes of the path from the root to s.
func (a *Automaton[V]) Depth(s StateID) int {
	if !a.valid(s) {
		return -1
	}
	return int(a.depth[s])
}

// Outputs returns the keywords recognized when reaching state s, longest
// keyword first.
func (a *Automaton[V]) Outputs(s StateID) []string {
	if !a.valid(s) {
		return nil
	}
	var out []string
	for _, kw := range a.outputs.Collect(s, nil) {
		out = append(out, a.keywords[kw].key)
	}
	return out
}

func (a *Automaton[V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Automaton{states=%d, keywords=%d, max-len=%d",
		a.nodes, len(a.keywords), a.maxLen)
	if !a.caseSensitive {
		b.WriteString(", case-insensitive")
	}
	if a.checkBounds {
		b.WriteString(", word-bounds")
	}
	b.WriteByte('}')
	return b.String()
}

func (a *Automaton[V]) valid(s StateID) bool {
	return s == RootState || a.table.Used(int(s))
}

// dense maps a text rune to its alphabet ID, applying case folding.
func (a *Automaton[V]) dense(r rune) uint32 {
	if !a.caseSensitive {
		r = foldRune(r)
	}
	return a.table.Dense(r)
}

// step computes the successor of state s for rune r, following failure links
// where s has no goto transition for r.
func (a *Automaton[V]) step(s StateID, r rune) StateID {
	c := a.dense(r)
	if c == 0 { // no keyword contains r
		return RootState
	}
	for {
		if next, ok := a.table.Transition(uint32(s), c); ok {
			return StateID(next)
		}
		if s == RootState {
			return RootState
		}
		s = a.fail[s]
	}
}
