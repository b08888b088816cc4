package hierarchy

// Normalize flattens a raw hierarchy into a Table keyed by item name.
//
// Submenus are looked up in the level's inner section, or in the level itself
// when it has none. The fallback only applies to the level passed in; deeper
// levels are always read from their inner section.
func Normalize(root *Node) (*Table, error) {
	if root == nil || !root.HasItems {
		return nil, &ConfigurationError{Err: ErrMissingItems}
	}
	t := newTable()
	t.set(RootKey, root.Items)
	scope := root.Inner
	if scope == nil {
		scope = root.Siblings
	}
	t.flatten(root.Items, scope)
	return t, nil
}

func (t *Table) flatten(items []string, scope map[string]*Node) {
	if len(scope) == 0 {
		return
	}
	for _, item := range items {
		if IsSeparator(item) || item == RootKey {
			continue
		}
		entry, ok := scope[item]
		if !ok || entry == nil {
			continue
		}
		if !entry.HasItems {
			t.malformed = appendUnique(t.malformed, item)
			continue
		}
		t.set(item, entry.Items)
		if entry.Inner != nil {
			t.flatten(entry.Items, entry.Inner)
		}
	}
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
