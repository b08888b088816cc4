package cascade

import "github.com/atomicstack/cascade-menu/internal/hierarchy"

// RowKind distinguishes selectable rows from separators.
type RowKind int

const (
	RowItem RowKind = iota
	RowSeparator
)

// Row is one line group of a card. Offset is relative to the card top.
type Row struct {
	Kind     RowKind
	Item     string
	Offset   int
	Height   int
	Selected bool
}

// Card is one open level of the drill-down path.
type Card struct {
	ID    uint64
	Index int
	// Key is the table key the rows were built from.
	Key      string
	Rows     []Row
	Rect     Rect
	Selected string
	// HasSelection tells an unselected card from one whose selected item
	// is named "".
	HasSelection bool
}

func buildRows(items []string, cfg Config, styler Styler) ([]Row, int) {
	rows := make([]Row, 0, len(items))
	offset := 0
	for _, item := range items {
		row := Row{Item: item, Offset: offset}
		if hierarchy.IsSeparator(item) {
			row.Kind = RowSeparator
			row.Height = cfg.SeparatorHeight
		} else {
			row.Height = rowHeight(item, cfg, styler)
		}
		rows = append(rows, row)
		offset += row.Height
	}
	return rows, offset
}

// Items lists the selectable item names in row order.
func (c Card) Items() []string {
	items := make([]string, 0, len(c.Rows))
	for _, row := range c.Rows {
		if row.Kind == RowItem {
			items = append(items, row.Item)
		}
	}
	return items
}

// ItemIndex returns the position of name among the selectable rows, or -1.
func (c Card) ItemIndex(name string) int {
	idx := 0
	for _, row := range c.Rows {
		if row.Kind != RowItem {
			continue
		}
		if row.Item == name {
			return idx
		}
		idx++
	}
	return -1
}

// RowAt returns the row index covering the absolute screen row y.
func (c Card) RowAt(y int) (int, bool) {
	rel := y - c.Rect.Y
	if rel < 0 || rel >= c.Rect.Height {
		return -1, false
	}
	for i, row := range c.Rows {
		if rel >= row.Offset && rel < row.Offset+row.Height {
			return i, true
		}
	}
	return -1, false
}

func (c *Card) selectItem(name string) {
	c.Selected = name
	c.HasSelection = true
	for i := range c.Rows {
		c.Rows[i].Selected = c.Rows[i].Kind == RowItem && c.Rows[i].Item == name
	}
}

func (c Card) clone() Card {
	c.Rows = append([]Row(nil), c.Rows...)
	return c
}
