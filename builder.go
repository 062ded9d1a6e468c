package acsearch

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/acsearch/dat"
)

// buildNode is a trie node of the construction arena. Nodes are addressed by
// their index in the arena; index 0 is the root.
type buildNode struct {
	children map[rune]int32 // goto transitions, keyed by (folded) rune
	fail     int32          // arena index of the failure target
	keyword  int32          // own output, or noKeyword
	depth    int32
	state    StateID // double-array slot, assigned by freeze
}

type builder[V any] struct {
	settings settings
	nodes    []buildNode
	keywords []keyword[V]
	alphabet map[rune]uint32 // rune -> dense ID, in order of first appearance
	maxLen   int
}

func newBuilder[V any](s settings) *builder[V] {
	b := &builder[V]{
		settings: s,
		alphabet: make(map[rune]uint32),
	}
	b.nodes = append(b.nodes, buildNode{keyword: noKeyword})
	return b
}

// Build compiles the entries of a streaming source into an Automaton.
//
// Build returns ErrEmptyKeyword or ErrInvalidKeyword for invalid keys (wrapped
// with the position of the offending entry), or any error returned by reader
// other than io.EOF. No partially built automaton is ever returned.
//
// An empty source is valid and results in an automaton which never matches.
func Build[V any](reader EntryReader[V], opts ...Option) (*Automaton[V], error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	b := newBuilder[V](s)
	for n := 0; ; n++ {
		key, value, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err = b.insert(key, value); err != nil {
			return nil, fmt.Errorf("dictionary entry #%d: %w", n, err)
		}
	}
	a := b.compile()
	tracer().Infof("automaton: states=%d keywords=%d sigma=%d max-keyword-length=%d",
		a.NodeCount(), len(a.keywords), a.table.Sigma, a.maxLen)
	stats := a.Stats()
	tracer().Infof("automaton stats backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.FillRatio(), stats.MaxStateID)
	return a, nil
}

// Compile is a shortcut for Build(dict.Reader(), opts...).
func Compile[V any](dict *Dictionary[V], opts ...Option) (*Automaton[V], error) {
	return Build(dict.Reader(), opts...)
}

// insert walks and extends the trie along key and marks the terminal node.
func (b *builder[V]) insert(key string, value V) error {
	if !utf8.ValidString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKeyword, key)
	}
	pattern := key
	if b.settings.normalize {
		pattern = Normalize(key)
	}
	if pattern == "" {
		return ErrEmptyKeyword
	}
	n, length := int32(0), 0
	for _, r := range pattern {
		if !b.settings.caseSensitive {
			r = foldRune(r)
		}
		if _, ok := b.alphabet[r]; !ok {
			b.alphabet[r] = uint32(len(b.alphabet) + 1)
		}
		length++
		child, ok := b.nodes[n].children[r]
		if !ok {
			child = int32(len(b.nodes))
			b.nodes = append(b.nodes, buildNode{
				keyword: noKeyword,
				depth:   b.nodes[n].depth + 1,
			})
			if b.nodes[n].children == nil {
				b.nodes[n].children = make(map[rune]int32)
			}
			b.nodes[n].children[r] = child
		}
		n = child
	}
	kw := keyword[V]{key: key, length: length, value: value}
	if prev := b.nodes[n].keyword; prev != noKeyword {
		tracer().Debugf("keyword %q replaces %q", key, b.keywords[prev].key)
		b.keywords[prev] = kw
	} else {
		b.nodes[n].keyword = int32(len(b.keywords))
		b.keywords = append(b.keywords, kw)
	}
	if length > b.maxLen {
		b.maxLen = length
	}
	return nil
}

// compile freezes the trie, computes failure and output links and hands
// everything over to a new Automaton. The builder must not be used afterwards.
func (b *builder[V]) compile() *Automaton[V] {
	table, order := b.freeze()
	b.linkFailures(order)
	n := table.NStates()
	a := &Automaton[V]{
		table:         table,
		fail:          make([]StateID, n),
		depth:         make([]int32, n),
		outputs:       newOutputStore(n),
		keywords:      b.keywords,
		maxLen:        b.maxLen,
		nodes:         len(order),
		caseSensitive: b.settings.caseSensitive,
		checkBounds:   b.settings.checkBounds,
	}
	for _, i := range order { // breadth-first, as required by SetLink
		node := &b.nodes[i]
		s := node.state
		a.fail[s] = b.nodes[node.fail].state
		a.depth[s] = node.depth
		if node.keyword != noKeyword {
			err := a.outputs.Put(s, node.keyword)
			assert(err == nil, "output store rejected a state allocated by freeze")
		}
		if i != 0 {
			a.outputs.SetLink(s, a.fail[s])
		}
	}
	assert(a.fail[RootState] == RootState, "root must be its own failure target")
	b.nodes = nil
	b.alphabet = nil
	return a
}

// freeze lays out the trie as a double-array, breadth-first from the root.
// It returns the arena indices in breadth-first order.
func (b *builder[V]) freeze() (*dat.DAT, []int32) {
	d := dat.New()
	d.Sigma = uint32(len(b.alphabet))
	for r, dense := range b.alphabet {
		d.Map.Set(r, dense)
	}
	b.nodes[0].state = StateID(d.Root)
	free := int(d.Root) + 1 // lowest slot which may still be free
	queue := make([]int32, 1, len(b.nodes))
	for q := 0; q < len(queue); q++ {
		n := &b.nodes[queue[q]]
		if len(n.children) == 0 {
			continue
		}
		edges := b.sortedEdges(n.children)
		for d.Used(free) {
			free++
		}
		base := findDATBase(d.Check, edges, free)
		d.Grow(base + int(edges[len(edges)-1].label))
		d.Base[n.state] = int32(base)
		for _, e := range edges {
			t := base + int(e.label)
			assert(b.nodes[e.child].state == 0, "trie node visited twice during freeze")
			b.nodes[e.child].state = StateID(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, e.child)
		}
	}
	assert(len(queue) == len(b.nodes), "freeze did not reach every trie node")
	return d, queue
}

// linkFailures computes the failure links of the arena.
// order must be breadth-first, such that the failure target of a node (which
// is strictly shallower) is finished before the node itself.
func (b *builder[V]) linkFailures(order []int32) {
	for _, u := range order {
		for r, v := range b.nodes[u].children {
			fail := int32(0)
			if u != 0 {
				f := b.nodes[u].fail
				for {
					if w, ok := b.nodes[f].children[r]; ok {
						fail = w
						break
					}
					if f == 0 {
						break
					}
					f = b.nodes[f].fail
				}
			}
			b.nodes[v].fail = fail
		}
	}
}

// edge is an outgoing transition of a trie node, labeled by a dense ID.
type edge struct {
	label uint32
	child int32
}

func (b *builder[V]) sortedEdges(children map[rune]int32) []edge {
	edges := make([]edge, 0, len(children))
	for r, child := range children {
		edges = append(edges, edge{label: b.alphabet[r], child: child})
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].label < edges[j].label
	})
	return edges
}

// findDATBase finds the smallest base >= 1 such that all slots base+e.label
// are free. Slots below free are known to be occupied.
func findDATBase(check []int32, edges []edge, free int) int {
	base := free - int(edges[0].label)
	if base < 1 {
		base = 1
	}
	for ; ; base++ {
		ok := true
		for _, e := range edges {
			t := base + int(e.label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}
