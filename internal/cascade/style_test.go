package cascade

import "testing"

type colorStyler struct {
	NoOverrides
}

func (colorStyler) SelectionColor() (Color, bool)  { return "#ff8800", true }
func (colorStyler) UnselectedColor() (Color, bool) { return "#ffffff", true }
func (colorStyler) FontColorFor(item string) (Color, bool) {
	if item == "teal" {
		return "37", true
	}
	return "", false
}
func (colorStyler) SelectedFontColorFor(string) (Color, bool) { return "16", true }
func (colorStyler) FontFor(item string) (Font, bool) {
	return Font{Bold: item == "bold"}, item == "bold"
}

func TestResolveRowStyleDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name     string
		style    SelectionStyle
		selected bool
		bg, fg   Color
	}{
		{"unselected", SelectionBoth, false, cfg.Colors.Unselected, cfg.Colors.Text},
		{"background only", SelectionBackground, true, cfg.Colors.Selected, cfg.Colors.Text},
		{"font only", SelectionFontColor, true, cfg.Colors.Unselected, cfg.Colors.SelectedText},
		{"both", SelectionBoth, true, cfg.Colors.Selected, cfg.Colors.SelectedText},
		{"unknown style keeps unselected look", SelectionStyle(9), true, cfg.Colors.Unselected, cfg.Colors.Text},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := cfg
			c.SelectionStyle = tc.style
			got := ResolveRowStyle("item", tc.selected, c, nil)
			if got.Background != tc.bg || got.Foreground != tc.fg || got.Selected != tc.selected {
				t.Fatalf("expected bg %q fg %q, got %+v", tc.bg, tc.fg, got)
			}
		})
	}
}

func TestResolveRowStyleOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionStyle = SelectionBoth
	st := colorStyler{}

	got := ResolveRowStyle("teal", false, cfg, st)
	if got.Background != "#ffffff" || got.Foreground != "37" {
		t.Fatalf("unexpected unselected override %+v", got)
	}
	got = ResolveRowStyle("teal", true, cfg, st)
	if got.Background != "#ff8800" || got.Foreground != "16" {
		t.Fatalf("unexpected selected override %+v", got)
	}
	if got := ResolveRowStyle("bold", false, cfg, st); !got.Font.Bold {
		t.Fatalf("expected font override")
	}
	// Overrides for one item must not leak into the next.
	if got := ResolveRowStyle("plain", false, cfg, st); got.Foreground != cfg.Colors.Text || got.Font.Bold {
		t.Fatalf("override leaked into another row: %+v", got)
	}
}

func TestParseSelectionStyle(t *testing.T) {
	cases := map[string]SelectionStyle{
		"background": SelectionBackground,
		"BG":         SelectionBackground,
		"font":       SelectionFontColor,
		" both ":     SelectionBoth,
	}
	for in, want := range cases {
		got, err := ParseSelectionStyle(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %v, got %v (%v)", in, want, got, err)
		}
		if parsed, _ := ParseSelectionStyle(got.String()); parsed != got {
			t.Fatalf("String() must round trip for %v", got)
		}
	}
	if _, err := ParseSelectionStyle("sparkles"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}
