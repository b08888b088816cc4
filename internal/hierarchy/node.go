package hierarchy

import (
	"fmt"
	"sort"
	"strconv"
)

const (
	// RootKey holds the top-level item list, both in raw input and in a Table.
	RootKey = "items"
	// InnerKey holds the submenu definitions of a level.
	InnerKey = "inner"
	// Separator marks a non-selectable spacer row inside an items list.
	Separator = "<br>"
)

// Node is one level of a raw menu hierarchy.
type Node struct {
	Items    []string
	HasItems bool
	// Inner is nil when the level has no "inner" section.
	Inner map[string]*Node
	// Siblings collects map-valued keys other than items/inner. Lookups fall
	// back to them when Inner is nil.
	Siblings map[string]*Node
}

// IsSeparator reports whether the item is the separator sentinel.
func IsSeparator(item string) bool {
	return item == Separator
}

// FromMap converts a loosely typed decoded document into a Node. Unknown or
// malformed values are dropped rather than rejected; the root check happens
// in Normalize.
func FromMap(m map[string]any) *Node {
	node := &Node{}
	if m == nil {
		return node
	}
	if raw, ok := m[RootKey]; ok {
		node.Items, node.HasItems = itemList(raw)
	}
	if raw, ok := m[InnerKey]; ok {
		if inner, ok := asMap(raw); ok {
			node.Inner = make(map[string]*Node, len(inner))
			for _, key := range sortedKeys(inner) {
				if child, ok := asMap(inner[key]); ok {
					node.Inner[key] = FromMap(child)
					continue
				}
				// kept without items so Normalize reports it as malformed
				node.Inner[key] = &Node{}
			}
		}
	}
	for _, key := range sortedKeys(m) {
		if key == RootKey || key == InnerKey {
			continue
		}
		child, ok := asMap(m[key])
		if !ok {
			continue
		}
		if node.Siblings == nil {
			node.Siblings = make(map[string]*Node)
		}
		node.Siblings[key] = FromMap(child)
	}
	return node
}

func itemList(raw any) ([]string, bool) {
	switch list := raw.(type) {
	case []string:
		return append([]string(nil), list...), true
	case []any:
		items := make([]string, 0, len(list))
		for _, v := range list {
			s, ok := scalarString(v)
			if !ok {
				return nil, false
			}
			items = append(items, s)
		}
		return items, true
	case []map[string]any:
		return nil, false
	}
	return nil, false
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case int:
		return strconv.Itoa(val), true
	case bool:
		return strconv.FormatBool(val), true
	case fmt.Stringer:
		return val.String(), true
	}
	return "", false
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string][]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
