package acsearch

import (
	"cmp"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// otherFind runs a second, independent Aho-Corasick implementation in
// overlapping mode. For ASCII texts its byte offsets are rune offsets.
func otherFind(patterns []string, text string) []span {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.StandardMatch,
		DFA:       true,
	})
	ac := builder.Build(patterns)
	found := []span{}
	iter := ac.IterOverlapping(text)
	for m := iter.Next(); m != nil; m = iter.Next() {
		found = append(found, span{kw: patterns[m.Pattern()], start: m.Start(), end: m.End()})
	}
	return found
}

func sortSpans(ss []span) {
	slices.SortFunc(ss, func(x, y span) int {
		if c := cmp.Compare(x.end, y.end); c != 0 {
			return c
		}
		return cmp.Compare(x.start, y.start)
	})
}

func TestDifferentialOverlapping(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		dict := NewDictionary[string]()
		seen := make(map[string]bool)
		n := 1 + rng.IntN(30)
		for i := 0; i < n; i++ {
			w := randomString(rng, 1+rng.IntN(6), "abcde")
			if !seen[w] {
				seen[w] = true
				dict.Add(w, w)
			}
		}
		a, err := Compile(dict, IgnoreBounds())
		if err != nil {
			t.Fatal(err)
		}
		var patterns []string
		for _, e := range dict.Entries() {
			patterns = append(patterns, e.Key)
		}
		text := randomString(rng, 1000, "abcdef")
		got := spans(findAll(t, a, text))
		want := otherFind(patterns, text)
		sortSpans(want)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round %d: got %d matches, other implementation found %d", round, len(got), len(want))
		}
	}
}

var benchWords = []string{
	"he", "she", "his", "hers", "her", "here", "there", "where", "the",
	"search", "searcher", "arch", "char", "chart", "art", "tar",
}

func benchText() string {
	rng := rand.New(rand.NewPCG(9, 9))
	return randomString(rng, 1<<16, "abcdehrst ")
}

func BenchmarkAutomatonSearch(b *testing.B) {
	a, err := Compile(FromWords(benchWords), IgnoreBounds())
	if err != nil {
		b.Fatal(err)
	}
	text := benchText()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, _ := a.Search(text)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

func BenchmarkOtherSearch(b *testing.B) {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.StandardMatch,
		DFA:       true,
	})
	ac := builder.Build(benchWords)
	text := benchText()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iter := ac.IterOverlapping(text)
		for m := iter.Next(); m != nil; m = iter.Next() {
		}
	}
}
