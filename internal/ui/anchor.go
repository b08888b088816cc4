package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/cascade-menu/internal/cascade"
	"github.com/charmbracelet/x/ansi"
)

// AnchorPos places the trigger button. Negative values count from the
// right and bottom edges, so -1 is the last column or row.
type AnchorPos struct {
	Col int
	Row int
}

// ParseAnchor reads "col,row".
func ParseAnchor(value string) (AnchorPos, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return AnchorPos{}, fmt.Errorf("anchor must be col,row (got %q)", value)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return AnchorPos{}, fmt.Errorf("anchor column: %w", err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return AnchorPos{}, fmt.Errorf("anchor row: %w", err)
	}
	return AnchorPos{Col: col, Row: row}, nil
}

func (a AnchorPos) String() string {
	return fmt.Sprintf("%d,%d", a.Col, a.Row)
}

// Resolve computes the anchor rect for a screen, keeping the button on screen.
func (a AnchorPos) Resolve(width, height int, label string) cascade.Rect {
	w := anchorWidth(label)
	x := a.Col
	if x < 0 {
		x = width + x - w + 1
	}
	y := a.Row
	if y < 0 {
		y = height + y
	}
	x = clamp(x, 0, width-w)
	y = clamp(y, 0, height-1)
	return cascade.Rect{X: x, Y: y, Width: w, Height: 1}
}

func anchorWidth(label string) int {
	return ansi.StringWidth(anchorText(label))
}

func anchorText(label string) string {
	return " " + label + " "
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
