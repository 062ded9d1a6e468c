/*
Package yamldict reads keyword dictionaries from YAML documents.

Two layouts are accepted. A mapping of keywords to values:

	Aho: scientist
	Corasick: scientist
	trie: data structure

or a sequence of entries, where a missing value defaults to the keyword:

	- keyword: Aho
	  value: scientist
	- keyword: trie

Entries of a mapping are added in sorted key order. Entries of a sequence are
added in document order, so for colliding keywords the entry listed last wins.
*/
package yamldict

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/acsearch"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'yamldict'
func tracer() tracing.Trace {
	return tracing.Select("yamldict")
}

// ErrLayout is returned for YAML documents which are neither a mapping nor a
// sequence of entries.
var ErrLayout = errors.New("dictionary must be a mapping or a sequence of entries")

// Entry is an element of the sequence layout.
type Entry struct {
	Keyword string `yaml:"keyword"`
	Value   string `yaml:"value,omitempty"`
}

// Read decodes a YAML dictionary document.
func Read(reader io.Reader) (*acsearch.Dictionary[string], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(reader).Decode(&doc); err != nil {
		if err == io.EOF { // empty document
			return acsearch.NewDictionary[string](), nil
		}
		return nil, fmt.Errorf("decoding YAML dictionary: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	dict := acsearch.NewDictionary[string]()
	switch root.Kind {
	case yaml.MappingNode:
		var m map[string]string
		if err := root.Decode(&m); err != nil {
			return nil, fmt.Errorf("decoding YAML dictionary: %w", err)
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dict.Add(k, m[k])
		}
	case yaml.SequenceNode:
		var entries []Entry
		if err := root.Decode(&entries); err != nil {
			return nil, fmt.Errorf("decoding YAML dictionary: %w", err)
		}
		for _, e := range entries {
			if e.Value == "" {
				e.Value = e.Keyword
			}
			dict.Add(e.Keyword, e.Value)
		}
	case yaml.DocumentNode: // document without content
	case yaml.ScalarNode:
		if root.Tag != "!!null" {
			return nil, fmt.Errorf("line %d: %w", root.Line, ErrLayout)
		}
	default:
		return nil, fmt.Errorf("line %d: %w", root.Line, ErrLayout)
	}
	tracer().Debugf("read %d YAML dictionary entries", dict.Len())
	return dict, nil
}

// Load decodes a YAML dictionary and builds an automaton from it.
func Load(reader io.Reader, opts ...acsearch.Option) (*acsearch.Automaton[string], error) {
	dict, err := Read(reader)
	if err != nil {
		return nil, err
	}
	return acsearch.Compile(dict, opts...)
}
