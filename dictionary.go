package acsearch

import (
	"io"
	"sort"
)

// Entry is a keyword together with an opaque value supplied by the client.
type Entry[V any] struct {
	Key   string
	Value V
}

// EntryReader yields dictionary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
//
// Build consumes entries in the order they are returned. If two keys are equal
// (after case folding, for case insensitive automata), the entry read last
// wins.
type EntryReader[V any] interface {
	Next() (key string, value V, err error)
}

// Dictionary is an ordered list of keyword entries.
// The zero value is an empty dictionary ready to use.
type Dictionary[V any] struct {
	entries []Entry[V]
}

// NewDictionary creates an empty dictionary.
func NewDictionary[V any]() *Dictionary[V] {
	return &Dictionary[V]{}
}

// FromWords creates a dictionary where every word is its own value.
// Duplicate words are collapsed.
func FromWords(words []string) *Dictionary[string] {
	dict := &Dictionary[string]{entries: make([]Entry[string], 0, len(words))}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		dict.Add(w, w)
	}
	return dict
}

// FromMap creates a dictionary from a map. As map iteration order is random,
// keys are added in sorted order. This makes the outcome of key collisions
// (for case insensitive automata) deterministic.
func FromMap[V any](m map[string]V) *Dictionary[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	dict := &Dictionary[V]{entries: make([]Entry[V], 0, len(m))}
	for _, k := range keys {
		dict.Add(k, m[k])
	}
	return dict
}

// Add appends an entry.
func (dict *Dictionary[V]) Add(key string, value V) {
	dict.entries = append(dict.entries, Entry[V]{Key: key, Value: value})
}

// Len returns the number of entries, including entries with duplicate keys.
func (dict *Dictionary[V]) Len() int {
	if dict == nil {
		return 0
	}
	return len(dict.entries)
}

// Entries returns a copy of all entries in insertion order.
func (dict *Dictionary[V]) Entries() []Entry[V] {
	if dict == nil {
		return nil
	}
	ee := make([]Entry[V], len(dict.entries))
	copy(ee, dict.entries)
	return ee
}

// Reader returns an EntryReader over the entries of dict.
func (dict *Dictionary[V]) Reader() EntryReader[V] {
	r := &sliceEntryReader[V]{}
	if dict != nil {
		r.entries = dict.entries
	}
	return r
}

type sliceEntryReader[V any] struct {
	entries []Entry[V]
	index   int
}

func (r *sliceEntryReader[V]) Next() (string, V, error) {
	if r.index >= len(r.entries) {
		var zero V
		return "", zero, io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.Key, e.Value, nil
}
