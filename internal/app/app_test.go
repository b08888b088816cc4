package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/cascade-menu/internal/hierarchy"
	"github.com/atomicstack/cascade-menu/internal/testutil"
	"github.com/atomicstack/cascade-menu/internal/ui/command"
)

func TestDumpSampleMenu(t *testing.T) {
	var b strings.Builder
	if err := run(Config{Dump: true}, &b); err != nil {
		t.Fatalf("dump: %v", err)
	}
	testutil.AssertGolden(t, "dump_sample.golden", b.String())
}

func TestDumpReportsMalformedEntries(t *testing.T) {
	root := hierarchy.FromMap(map[string]any{
		"items": []any{"A", "B"},
		"inner": map[string]any{"A": map[string]any{"title": "no items"}},
	})
	var b strings.Builder
	if err := Dump(&b, root); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(b.String(), "malformed: A has no items") {
		t.Fatalf("expected malformed note, got:\n%s", b.String())
	}
}

func TestLoadMenuFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.toml")
	data := "items = [\"One\", \"Two\"]\n\n[inner.One]\nitems = [\"Nested\"]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	root, err := LoadMenu(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	table, err := hierarchy.Normalize(root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if items, ok := table.Lookup("One"); !ok || len(items) != 1 || items[0] != "Nested" {
		t.Fatalf("unexpected submenu %v (%v)", items, ok)
	}
}

func TestRunWrapsLoadErrors(t *testing.T) {
	err := run(Config{MenuPath: filepath.Join(t.TempDir(), "missing.json"), Dump: true}, &strings.Builder{})
	if err == nil || !strings.Contains(err.Error(), "load menu") {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestRunRejectsMenuWithoutItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	if err := os.WriteFile(path, []byte(`{"inner": {}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := run(Config{MenuPath: path, Dump: true}, &strings.Builder{})
	if !errors.Is(err, hierarchy.ErrMissingItems) {
		t.Fatalf("expected missing items error, got %v", err)
	}
}

func TestFormatSelection(t *testing.T) {
	sel := command.Selection{Item: "Call Us", Path: []string{"Contact Us", "Call Us"}}
	if got := FormatSelection(sel, false); got != "Call Us" {
		t.Fatalf("unexpected item output %q", got)
	}
	if got := FormatSelection(sel, true); got != "Contact Us\tCall Us" {
		t.Fatalf("unexpected path output %q", got)
	}
}
