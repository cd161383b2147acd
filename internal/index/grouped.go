package index

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ListEntry is one list as it appears in the grouped structure.
type ListEntry struct {
	Title string   `json:"title"`
	List  []string `json:"list"`
}

// Grouped is the nested group → list key → entry structure. It remembers
// insertion order so serialization is stable and matches the order the
// loader produced, not Go's map iteration order.
type Grouped struct {
	entries    map[string]map[string]ListEntry
	groupOrder []string
	keyOrder   map[string][]string
}

// NewGrouped returns an empty grouped structure.
func NewGrouped() *Grouped {
	return &Grouped{
		entries:  make(map[string]map[string]ListEntry),
		keyOrder: make(map[string][]string),
	}
}

func (g *Grouped) add(group, key string, e ListEntry) {
	if _, ok := g.entries[group]; !ok {
		g.entries[group] = make(map[string]ListEntry)
		g.groupOrder = append(g.groupOrder, group)
	}
	if _, ok := g.entries[group][key]; !ok {
		g.keyOrder[group] = append(g.keyOrder[group], key)
	}
	g.entries[group][key] = e
}

// Groups returns group names in insertion order.
func (g *Grouped) Groups() []string {
	return g.groupOrder
}

// Keys returns the list keys of a group in insertion order.
func (g *Grouped) Keys(group string) []string {
	return g.keyOrder[group]
}

// Get returns the entry stored under group and key.
func (g *Grouped) Get(group, key string) (ListEntry, bool) {
	e, ok := g.entries[group][key]
	return e, ok
}

// Len returns the total number of lists across all groups.
func (g *Grouped) Len() int {
	n := 0
	for _, keys := range g.keyOrder {
		n += len(keys)
	}
	return n
}

// MarshalJSON serializes the structure as a nested JSON object with groups
// and keys in insertion order. encoding/json would sort map keys instead.
func (g *Grouped) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for gi, group := range g.groupOrder {
		if gi > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, group); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		buf.WriteByte('{')
		for ki, key := range g.keyOrder[group] {
			if ki > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, key); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			entry, err := marshalNoHTMLEscape(g.entries[group][key])
			if err != nil {
				return nil, fmt.Errorf("failed to marshal list %s/%s: %w", group, key, err)
			}
			buf.Write(entry)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := marshalNoHTMLEscape(s)
	if err != nil {
		return fmt.Errorf("failed to marshal key %q: %w", s, err)
	}
	buf.Write(b)
	return nil
}

// marshalNoHTMLEscape marshals without escaping <, > and & so emitted
// bundles keep item text readable.
func marshalNoHTMLEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
