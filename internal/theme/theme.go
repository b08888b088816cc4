package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI. Card rows
// are styled per row from the session configuration instead.
type Styles struct {
	Anchor     *lipgloss.Style
	AnchorOpen *lipgloss.Style
	Error      *lipgloss.Style
	Footer     *lipgloss.Style
}

// SeparatorGlyph fills separator rows.
const SeparatorGlyph = "─"

var defaultStyles = Styles{
	Anchor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	AnchorOpen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
