package ui

import (
	"strings"

	"github.com/atomicstack/cascade-menu/internal/cascade"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell holds one terminal column. An empty text marks the trailing half of a
// wide rune.
type cell struct {
	text  string
	style int
}

// canvas composites positioned, styled text into a fixed grid of cells.
type canvas struct {
	width  int
	height int
	cells  [][]cell
	styles []lipgloss.Style
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &canvas{width: width, height: height, styles: []lipgloss.Style{lipgloss.NewStyle()}}
	c.cells = make([][]cell, height)
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{text: " "}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) addStyle(style lipgloss.Style) int {
	c.styles = append(c.styles, style)
	return len(c.styles) - 1
}

// fill paints r with blanks in the given style, clipped to the canvas.
func (c *canvas) fill(r cascade.Rect, style int) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.put(x, y, " ", style)
		}
	}
}

// text writes s starting at (x, y), never past limit columns, and returns
// the number of columns used.
func (c *canvas) text(x, y int, s string, style, limit int) int {
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if used > 0 {
				c.appendTo(x+used-1, y, string(r))
			}
			continue
		}
		if used+w > limit {
			break
		}
		c.put(x+used, y, string(r), style)
		if w == 2 {
			c.put(x+used+1, y, "", style)
		}
		used += w
	}
	return used
}

func (c *canvas) inside(x, y int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

func (c *canvas) put(x, y int, text string, style int) {
	if !c.inside(x, y) {
		return
	}
	row := c.cells[y]
	// Breaking a wide rune leaves a blank in its other half.
	if row[x].text == "" && text != "" && x > 0 {
		row[x-1].text = " "
	}
	if text != "" && x+1 < c.width && row[x+1].text == "" {
		row[x+1].text = " "
	}
	row[x] = cell{text: text, style: style}
}

func (c *canvas) appendTo(x, y int, text string) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y][x].text += text
}

// String renders the canvas, grouping runs of equally styled cells.
func (c *canvas) String() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current <= 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(c.styles[current].Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.text == "" {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteString(cl.text)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
