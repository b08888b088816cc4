package ui

import (
	"testing"
	"time"

	"github.com/atomicstack/cascade-menu/internal/cascade"
	tea "github.com/charmbracelet/bubbletea"
)

func TestEntranceSettlesOnTarget(t *testing.T) {
	start := time.Now()
	e := newEntrance(cascade.Transition{
		From:     cascade.Rect{X: -20, Width: 20},
		To:       cascade.Rect{X: 10, Width: 20},
		Duration: 300 * time.Millisecond,
	}, start)
	if e.offset() != -30 {
		t.Fatalf("expected initial offset -30, got %d", e.offset())
	}
	e.step(start.Add(16 * time.Millisecond))
	if e.offset() <= -30 {
		t.Fatalf("expected card to move toward target, offset %d", e.offset())
	}
	if done := e.step(start.Add(300 * time.Millisecond)); !done {
		t.Fatalf("expected entrance to finish at its duration")
	}
	if e.offset() != 0 {
		t.Fatalf("expected card on target, offset %d", e.offset())
	}
}

func TestAnimatedModelQueuesFrames(t *testing.T) {
	cfg := cascade.DefaultConfig()
	m, err := NewModel(sampleRoot(), cfg, Options{Width: 100, Height: 30})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected a frame command for the entrance")
	}
	card, _ := m.Session().Card(0)
	if off := m.cardOffset(card); off >= 0 {
		t.Fatalf("expected root card to start left of its place, offset %d", off)
	}
	m.handleFrameMsg(frameMsg{at: time.Now().Add(time.Second)})
	if off := m.cardOffset(card); off != 0 {
		t.Fatalf("expected card settled after its duration, offset %d", off)
	}
	if m.animating {
		t.Fatalf("expected frame loop to stop")
	}
}

func TestTapsOnEnteringCardAreDropped(t *testing.T) {
	m, err := NewModel(sampleRoot(), cascade.DefaultConfig(), Options{Width: 100, Height: 30})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.Init()
	press := tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.Update(press)
	s := m.Session()
	if s.State() != cascade.StateDisplaying || s.Depth() != 1 {
		t.Fatalf("expected tap during entrance to be ignored, state %v depth %d", s.State(), s.Depth())
	}
	m.handleFrameMsg(frameMsg{at: time.Now().Add(time.Second)})
	m.Update(press)
	if s.Depth() != 2 {
		t.Fatalf("expected tap after entrance to open Contact Us, depth %d", s.Depth())
	}
}
