package repeat

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/aria-lang/seqscan/internal/kmer"
)

// Table maps each repeated substring to its occurrence offsets. Keys keep
// the order in which they were first inserted.
type Table struct {
	keys      []string
	positions map[string][]int
}

// Entry is one row of a Table.
type Entry struct {
	Repeat    string `json:"repeat" yaml:"repeat"`
	Positions []int  `json:"positions" yaml:"positions"`
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{positions: make(map[string][]int)}
}

// Set stores positions for key. Re-setting a key keeps its position.
func (t *Table) Set(key string, positions []int) {
	if _, ok := t.positions[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.positions[key] = positions
}

// Positions returns the offsets stored for key.
func (t *Table) Positions(key string) ([]int, bool) {
	p, ok := t.positions[key]
	return p, ok
}

// Len returns the number of distinct repeats.
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the repeats in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Entries returns the rows in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, Entry{Repeat: k, Positions: t.positions[k]})
	}
	return out
}

// Filter returns a new table holding only repeats of at least minLength
// characters.
func (t *Table) Filter(minLength int) *Table {
	out := NewTable()
	for _, k := range t.keys {
		if len(k) >= minLength {
			out.Set(k, t.positions[k])
		}
	}
	return out
}

// MarshalJSON encodes the table as a JSON object in insertion order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.positions[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the table as a YAML mapping in insertion order, with
// each offset list on one line.
func (t *Table) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range t.keys {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, p := range t.positions[k] {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p)})
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			seq,
		)
	}
	return node, nil
}

func sortByDiscovery(found []kmer.KMerPositions) {
	sort.Slice(found, func(i, j int) bool {
		pi, pj := found[i].Positions[0], found[j].Positions[0]
		if pi != pj {
			return pi < pj
		}
		return len(found[i].KMer) < len(found[j].KMer)
	})
}
