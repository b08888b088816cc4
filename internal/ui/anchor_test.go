package ui

import (
	"testing"

	"github.com/atomicstack/cascade-menu/internal/cascade"
)

func TestParseAnchor(t *testing.T) {
	got, err := ParseAnchor(" -3, 2 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != (AnchorPos{Col: -3, Row: 2}) {
		t.Fatalf("unexpected anchor %+v", got)
	}
	for _, bad := range []string{"", "1", "a,2", "1,b", "1,2,3"} {
		if _, err := ParseAnchor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestAnchorResolve(t *testing.T) {
	cases := []struct {
		name string
		spec AnchorPos
		want cascade.Rect
	}{
		{"top left", AnchorPos{Col: 2, Row: 1}, cascade.Rect{X: 2, Y: 1, Width: 6, Height: 1}},
		{"bottom right", AnchorPos{Col: -1, Row: -1}, cascade.Rect{X: 74, Y: 23, Width: 6, Height: 1}},
		{"clamped", AnchorPos{Col: 200, Row: 200}, cascade.Rect{X: 74, Y: 23, Width: 6, Height: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.spec.Resolve(80, 24, "Menu"); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
