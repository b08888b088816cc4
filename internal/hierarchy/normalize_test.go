package hierarchy

import (
	"errors"
	"reflect"
	"testing"
)

func sampleNode(t *testing.T) *Node {
	t.Helper()
	node, err := LoadFile("testdata/menu.json")
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	return node
}

func TestNormalizeSingleLevel(t *testing.T) {
	root := FromMap(map[string]any{"items": []any{"X", "Y"}})
	table, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected only the root entry, got %v", table.Keys())
	}
	if got := table.Root(); !reflect.DeepEqual(got, []string{"X", "Y"}) {
		t.Fatalf("unexpected root items %v", got)
	}
	if table.Has("X") || table.Has("Y") {
		t.Fatalf("expected X and Y to be leaves")
	}
}

func TestNormalizeSeparatorAndInner(t *testing.T) {
	root := FromMap(map[string]any{
		"items": []any{"A", "<br>", "B"},
		"inner": map[string]any{
			"A": map[string]any{"items": []any{"A1", "A2"}},
		},
	})
	table, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got := table.Root(); !reflect.DeepEqual(got, []string{"A", "<br>", "B"}) {
		t.Fatalf("root order not preserved: %v", got)
	}
	if got, ok := table.Lookup("A"); !ok || !reflect.DeepEqual(got, []string{"A1", "A2"}) {
		t.Fatalf("unexpected submenu for A: %v (%v)", got, ok)
	}
	if table.Has(Separator) {
		t.Fatalf("separator must never become a key")
	}
}

func TestNormalizeThreeLevels(t *testing.T) {
	table, err := Normalize(sampleNode(t))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := map[string][]string{
		"items":      {"Home", "Profile", "<br>", "Contact Us", "<br>", "About Us"},
		"Home":       {"Home Sub 1", "Home Sub 2", "<br>", "Home Sub 3", "Home Sub 4"},
		"Contact Us": {"Send Email", "Call Us"},
		"Send Email": {"info@menu.com", "care@menu.com"},
		"Call Us":    {"245678734", "<br>", "76876876898"},
	}
	if table.Len() != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), table.Keys())
	}
	for key, items := range want {
		got, ok := table.Lookup(key)
		if !ok {
			t.Fatalf("missing key %q", key)
		}
		if !reflect.DeepEqual(got, items) {
			t.Fatalf("key %q: expected %v, got %v", key, items, got)
		}
	}
	if keys := table.Keys(); keys[0] != RootKey {
		t.Fatalf("expected root key first, got %v", keys)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	root := sampleNode(t)
	first, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	second, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize again: %v", err)
	}
	if !first.Equal(second) {
		t.Fatalf("expected identical tables")
	}
	if first.Fingerprint() != second.Fingerprint() {
		t.Fatalf("expected identical fingerprints")
	}
	if !reflect.DeepEqual(first.Keys(), second.Keys()) {
		t.Fatalf("expected identical key order")
	}
}

func TestNormalizeKeysComeFromItemLists(t *testing.T) {
	root := sampleNode(t)
	table, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	seen := map[string]bool{}
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, item := range n.Items {
			seen[item] = true
		}
		for _, child := range n.Inner {
			walk(child)
		}
		for _, child := range n.Siblings {
			walk(child)
		}
	}
	walk(root)
	for _, key := range table.Keys() {
		if key == RootKey {
			continue
		}
		if !seen[key] {
			t.Fatalf("key %q does not appear in any items list", key)
		}
	}
}

func TestNormalizeMissingRootItems(t *testing.T) {
	cases := []struct {
		name string
		doc  map[string]any
	}{
		{"empty", map[string]any{}},
		{"inner only", map[string]any{"inner": map[string]any{}}},
		{"items not a list", map[string]any{"items": "Home"}},
		{"nested list element", map[string]any{"items": []any{"A", []any{"B"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(FromMap(tc.doc))
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if !errors.Is(err, ErrMissingItems) {
				t.Fatalf("expected ErrMissingItems, got %v", err)
			}
		})
	}
	if _, err := Normalize(nil); err == nil {
		t.Fatalf("expected error for nil root")
	}
}

func TestNormalizeMalformedInnerEntryIsLeaf(t *testing.T) {
	root := FromMap(map[string]any{
		"items": []any{"A", "B"},
		"inner": map[string]any{
			"A": map[string]any{"inner": map[string]any{}},
			"B": map[string]any{"items": []any{"B1"}},
		},
	})
	table, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if table.Has("A") {
		t.Fatalf("expected A to degrade to a leaf")
	}
	if !table.Has("B") {
		t.Fatalf("expected B to keep its submenu")
	}
	if got := table.Malformed(); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("expected A reported as malformed, got %v", got)
	}
}

func TestNormalizeFallsBackToCurrentLevelWithoutInner(t *testing.T) {
	root := FromMap(map[string]any{
		"items": []any{"A", "B"},
		"A":     map[string]any{"items": []any{"A1"}},
	})
	table, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got, ok := table.Lookup("A"); !ok || !reflect.DeepEqual(got, []string{"A1"}) {
		t.Fatalf("expected sibling lookup for A, got %v (%v)", got, ok)
	}

	// With an inner section present the sibling keys are not consulted.
	root = FromMap(map[string]any{
		"items": []any{"A", "B"},
		"A":     map[string]any{"items": []any{"A1"}},
		"inner": map[string]any{"B": map[string]any{"items": []any{"B1"}}},
	})
	table, err = Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if table.Has("A") {
		t.Fatalf("expected A to be a leaf when inner is present")
	}
	if !table.Has("B") {
		t.Fatalf("expected B from inner")
	}
}

func TestNormalizeDeeperLevelsNeedInner(t *testing.T) {
	root := FromMap(map[string]any{
		"items": []any{"A"},
		"inner": map[string]any{
			"A": map[string]any{
				"items": []any{"A1"},
				"A1":    map[string]any{"items": []any{"deep"}},
			},
		},
	})
	table, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if table.Has("A1") {
		t.Fatalf("expected nested entries outside inner to be ignored")
	}
}

func TestNormalizeReservedRootName(t *testing.T) {
	root := FromMap(map[string]any{
		"items": []any{"items", "B"},
		"inner": map[string]any{
			"items": map[string]any{"items": []any{"x"}},
		},
	})
	table, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got := table.Root(); !reflect.DeepEqual(got, []string{"items", "B"}) {
		t.Fatalf("root list must not be overwritten, got %v", got)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	table, err := Normalize(FromMap(map[string]any{"items": []any{"X"}}))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	items, _ := table.Lookup(RootKey)
	items[0] = "mutated"
	if table.Root()[0] != "X" {
		t.Fatalf("table must stay immutable")
	}
}

func TestFingerprintDiffersOnContent(t *testing.T) {
	a, _ := Normalize(FromMap(map[string]any{"items": []any{"X", "Y"}}))
	b, _ := Normalize(FromMap(map[string]any{"items": []any{"Y", "X"}}))
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("expected order to change the fingerprint")
	}
	if a.Equal(b) {
		t.Fatalf("expected tables to differ")
	}
}

func TestNormalizeReportsNonMapInnerValues(t *testing.T) {
	root := FromMap(map[string]any{
		"items": []any{"A", "B", "C"},
		"inner": map[string]any{
			"A": []any{"x"},
			"B": "text",
			"C": map[string]any{"items": []any{"C1"}},
			"D": 42,
		},
	})
	table, err := Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if table.Has("A") || table.Has("B") {
		t.Fatalf("expected A and B to degrade to leaves")
	}
	if got := table.Malformed(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("expected A and B reported as malformed, got %v", got)
	}
}
