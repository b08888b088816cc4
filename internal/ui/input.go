package ui

import (
	"errors"

	"github.com/atomicstack/cascade-menu/internal/cascade"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Dismiss: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		m.session.Dismiss()
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Dismiss):
		m.session.Dismiss()
	}
	return nil
}

// handleMouseMsg forwards left presses to the session as taps. Presses on a
// card that is still sliding in are dropped.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.session.State() != cascade.StateDisplaying {
		return nil
	}
	if m.entering(mouse.X, mouse.Y) {
		return nil
	}
	m.errMsg = ""
	if _, err := m.session.Tap(mouse.X, mouse.Y); err != nil && !errors.Is(err, cascade.ErrNotDisplaying) {
		m.errMsg = err.Error()
	}
	return nil
}

// entering reports whether (x, y) lies on a card that is still sliding in,
// either where it is drawn or where it will settle.
func (m *Model) entering(x, y int) bool {
	for _, card := range m.session.Cards() {
		a, ok := m.anims[card.ID]
		if !ok {
			continue
		}
		if card.Rect.Contains(x, y) || card.Rect.Offset(a.offset(), 0).Contains(x, y) {
			return true
		}
	}
	return false
}
