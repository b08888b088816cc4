package cascade

// RowStyle is the resolved look of one item row.
type RowStyle struct {
	Background Color
	Foreground Color
	Font       Font
	Selected   bool
}

// ResolveRowStyle computes the style of an item row from the configuration
// and the styler overrides. It keeps no state between calls.
func ResolveRowStyle(item string, selected bool, cfg Config, styler Styler) RowStyle {
	if styler == nil {
		styler = NoOverrides{}
	}
	style := RowStyle{
		Background: cfg.Colors.Unselected,
		Foreground: cfg.Colors.Text,
		Font:       cfg.Font,
		Selected:   selected,
	}
	if c, ok := styler.UnselectedColor(); ok {
		style.Background = c
	}
	if c, ok := styler.FontColorFor(item); ok {
		style.Foreground = c
	}
	if f, ok := styler.FontFor(item); ok {
		style.Font = f
	}
	if !selected {
		return style
	}
	background := cfg.Colors.Selected
	if c, ok := styler.SelectionColor(); ok {
		background = c
	}
	foreground := cfg.Colors.SelectedText
	if c, ok := styler.SelectedFontColorFor(item); ok {
		foreground = c
	}
	switch cfg.SelectionStyle {
	case SelectionBackground:
		style.Background = background
	case SelectionFontColor:
		style.Foreground = foreground
	case SelectionBoth:
		style.Background = background
		style.Foreground = foreground
	}
	return style
}

// rowHeight is the height of an item row, honouring a positive override.
func rowHeight(item string, cfg Config, styler Styler) int {
	if styler != nil {
		if h, ok := styler.RowHeightFor(item); ok && h > 0 {
			return h
		}
	}
	return cfg.RowHeight
}
