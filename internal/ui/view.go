package ui

import (
	"strings"

	"github.com/atomicstack/cascade-menu/internal/cascade"
	"github.com/atomicstack/cascade-menu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// View renders the anchor button, the open cards and the status line.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 || m.quitting {
		return ""
	}
	status, hasStatus := m.statusLine()
	height := m.menuHeight()
	if hasStatus && !m.opts.ShowFooter {
		// errors borrow the bottom row when no footer is reserved
		height--
	}
	c := newCanvas(m.width, height)
	m.drawAnchor(c)
	cfg := m.session.Config()
	for _, card := range m.session.Cards() {
		m.drawCard(c, card, cfg)
	}
	out := c.String()
	if hasStatus {
		if height > 0 {
			out += "\n"
		}
		out += status
	}
	return out
}

func (m *Model) drawAnchor(c *canvas) {
	style := styles.Anchor
	if m.session.State() == cascade.StateDisplaying && m.session.Depth() > 0 {
		style = styles.AnchorOpen
	}
	idx := c.addStyle(*style)
	c.text(m.anchor.X, m.anchor.Y, anchorText(m.opts.Label), idx, m.anchor.Width)
}

func (m *Model) drawCard(c *canvas, card cascade.Card, cfg cascade.Config) {
	x := card.Rect.X + m.cardOffset(card)
	width := card.Rect.Width
	for _, row := range card.Rows {
		rect := cascade.Rect{X: x, Y: card.Rect.Y + row.Offset, Width: width, Height: row.Height}
		if row.Kind == cascade.RowSeparator {
			m.drawSeparator(c, rect, cfg)
			continue
		}
		resolved := cascade.ResolveRowStyle(row.Item, row.Selected, cfg, m.opts.Styler)
		idx := c.addStyle(rowStyle(resolved))
		c.fill(rect, idx)
		label := truncate.StringWithTail(row.Item, uint(max(width-2, 0)), ellipsis)
		c.text(rect.X+1, rect.Y+(rect.Height-1)/2, label, idx, width-2)
	}
}

func (m *Model) drawSeparator(c *canvas, rect cascade.Rect, cfg cascade.Config) {
	bg := cfg.Colors.Unselected
	if m.opts.Styler != nil {
		if col, ok := m.opts.Styler.UnselectedColor(); ok {
			bg = col
		}
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(string(bg))).
		Foreground(lipgloss.Color(string(cfg.Colors.Separator)))
	idx := c.addStyle(style)
	c.fill(rect, idx)
	line := strings.Repeat(theme.SeparatorGlyph, rect.Width)
	c.text(rect.X, rect.Y+(rect.Height-1)/2, line, idx, rect.Width)
}

// rowStyle converts a resolved row style into Lip Gloss.
func rowStyle(rs cascade.RowStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if rs.Background != "" {
		style = style.Background(lipgloss.Color(string(rs.Background)))
	}
	if rs.Foreground != "" {
		style = style.Foreground(lipgloss.Color(string(rs.Foreground)))
	}
	return style.
		Bold(rs.Font.Bold).
		Italic(rs.Font.Italic).
		Underline(rs.Font.Underline).
		Faint(rs.Font.Faint)
}

// statusLine shows the last error, or the key help when the footer is on.
func (m *Model) statusLine() (string, bool) {
	if m.errMsg != "" {
		return styles.Error.Render(ansi.Truncate(m.errMsg, m.width, ellipsis)), true
	}
	if !m.opts.ShowFooter {
		return "", false
	}
	help := m.help.ShortHelpView(m.keys.ShortHelp())
	return styles.Footer.Render(ansi.Truncate(help, m.width, ellipsis)), true
}
