package cascade

import (
	"fmt"
	"strings"
	"time"
)

// SelectionStyle controls how a selected row is highlighted.
type SelectionStyle int

const (
	SelectionBackground SelectionStyle = iota
	SelectionFontColor
	SelectionBoth
)

func (s SelectionStyle) String() string {
	switch s {
	case SelectionBackground:
		return "background"
	case SelectionFontColor:
		return "font"
	case SelectionBoth:
		return "both"
	default:
		return fmt.Sprintf("SelectionStyle(%d)", int(s))
	}
}

// ParseSelectionStyle accepts background, font or both.
func ParseSelectionStyle(value string) (SelectionStyle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "background", "bg":
		return SelectionBackground, nil
	case "font", "fg", "text":
		return SelectionFontColor, nil
	case "both":
		return SelectionBoth, nil
	}
	return 0, fmt.Errorf("unknown selection style %q (want background, font or both)", value)
}

// Colors are the fallbacks used when the styler has no override.
type Colors struct {
	Unselected   Color
	Selected     Color
	Text         Color
	SelectedText Color
	Separator    Color
}

const minColumnWidth = 12

// Config holds the layout and styling defaults of a session.
type Config struct {
	Screen          Size
	RowHeight       int
	SeparatorHeight int
	// ColumnWidth of zero derives the width from the screen.
	ColumnWidth int
	Gap         int
	LeftMargin  int
	// SlideDistance of zero slides a new card in from one column width away.
	SlideDistance    int
	EntranceDuration time.Duration
	Colors           Colors
	Font             Font
	SelectionStyle   SelectionStyle
}

// DefaultConfig returns terminal friendly defaults.
func DefaultConfig() Config {
	return Config{
		RowHeight:        1,
		SeparatorHeight:  1,
		Gap:              1,
		EntranceDuration: 300 * time.Millisecond,
		Colors: Colors{
			Unselected:   "255",
			Selected:     "220",
			Text:         "0",
			SelectedText: "208",
			Separator:    "30",
		},
		SelectionStyle: SelectionFontColor,
	}
}

// columnWidth resolves the card width for the current screen.
func (c Config) columnWidth() int {
	if c.ColumnWidth > 0 {
		return c.ColumnWidth
	}
	w := c.Screen.Width * 3 / 10
	if w < minColumnWidth {
		w = minColumnWidth
	}
	return w
}

func (c Config) slideDistance() int {
	if c.SlideDistance > 0 {
		return c.SlideDistance
	}
	return c.columnWidth()
}

func (c Config) normalized() Config {
	if c.RowHeight < 1 {
		c.RowHeight = 1
	}
	if c.SeparatorHeight < 0 {
		c.SeparatorHeight = 0
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.EntranceDuration < 0 {
		c.EntranceDuration = 0
	}
	return c
}
