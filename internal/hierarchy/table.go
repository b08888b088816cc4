package hierarchy

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Table maps a lookup key to the ordered item list of its submenu. The root
// list lives under RootKey. A Table is immutable once Normalize returns it.
type Table struct {
	entries   map[string][]string
	order     []string
	malformed []string
}

func newTable() *Table {
	return &Table{entries: make(map[string][]string)}
}

func (t *Table) set(key string, items []string) {
	if _, exists := t.entries[key]; !exists {
		t.order = append(t.order, key)
	}
	t.entries[key] = append([]string(nil), items...)
}

// Lookup returns a copy of the item list stored under key.
func (t *Table) Lookup(key string) ([]string, bool) {
	if t == nil {
		return nil, false
	}
	items, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), items...), true
}

// Has reports whether key has a submenu.
func (t *Table) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.entries[key]
	return ok
}

// Root returns the top-level item list.
func (t *Table) Root() []string {
	items, _ := t.Lookup(RootKey)
	return items
}

// Keys lists the table keys in the order they were first recorded.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.order...)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Malformed lists inner entries that had no items list and were treated as leaves.
func (t *Table) Malformed() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.malformed...)
}

// Equal reports whether both tables hold the same keys and item lists.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	if t == nil {
		return true
	}
	for key, items := range t.entries {
		theirs, ok := other.entries[key]
		if !ok || len(theirs) != len(items) {
			return false
		}
		for i := range items {
			if items[i] != theirs[i] {
				return false
			}
		}
	}
	return true
}

// Fingerprint hashes the table content independent of insertion order.
func (t *Table) Fingerprint() uint64 {
	d := xxhash.New()
	if t == nil {
		return d.Sum64()
	}
	keys := make([]string, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		_, _ = d.WriteString(key)
		_, _ = d.Write([]byte{0})
		for _, item := range t.entries[key] {
			_, _ = d.WriteString(item)
			_, _ = d.Write([]byte{1})
		}
		_, _ = d.Write([]byte{2})
	}
	return d.Sum64()
}
