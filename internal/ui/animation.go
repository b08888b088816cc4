package ui

import (
	"math"
	"time"

	"github.com/atomicstack/cascade-menu/internal/cascade"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	framesPerSecond = 60
	springDamping   = 0.5
)

type frameMsg struct {
	at time.Time
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

// entrance slides a card horizontally into place on a damped spring. It
// always lands on the target once its duration has elapsed.
type entrance struct {
	spring   harmonica.Spring
	x        float64
	velocity float64
	target   float64
	start    time.Time
	duration time.Duration
}

func newEntrance(tr cascade.Transition, now time.Time) *entrance {
	// Scale the spring so it settles within the transition.
	freq := 6.0 / tr.Duration.Seconds()
	return &entrance{
		spring:   harmonica.NewSpring(harmonica.FPS(framesPerSecond), freq, springDamping),
		x:        float64(tr.From.X),
		target:   float64(tr.To.X),
		start:    now,
		duration: tr.Duration,
	}
}

func (e *entrance) step(now time.Time) bool {
	if now.Sub(e.start) >= e.duration {
		e.x = e.target
		e.velocity = 0
		return true
	}
	e.x, e.velocity = e.spring.Update(e.x, e.velocity, e.target)
	return math.Abs(e.x-e.target) < 0.5 && math.Abs(e.velocity) < 0.5
}

func (e *entrance) retarget(x int) {
	e.target = float64(x)
}

// offset is the current horizontal displacement from the target.
func (e *entrance) offset() int {
	return int(math.Round(e.x - e.target))
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frame := msg.(frameMsg)
	for id, a := range m.anims {
		if a.step(frame.at) {
			delete(m.anims, id)
		}
	}
	if len(m.anims) == 0 {
		m.animating = false
		return nil
	}
	return frameTick()
}

func (m *Model) cardOffset(card cascade.Card) int {
	if a, ok := m.anims[card.ID]; ok {
		return a.offset()
	}
	return 0
}
