package cascade

import (
	"errors"
	"fmt"

	"github.com/atomicstack/cascade-menu/internal/hierarchy"
	"github.com/atomicstack/cascade-menu/internal/logging/events"
	"github.com/google/uuid"
)

// State is the lifecycle stage of a session.
type State int

const (
	StateIdle State = iota
	StateDisplaying
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDisplaying:
		return "displaying"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	ErrAlreadyStarted = errors.New("session already started")
	ErrNotDisplaying  = errors.New("session is not displaying")
	ErrCardOutOfRange = errors.New("card index out of range")
	ErrUnknownItem    = errors.New("item is not selectable in card")
)

// Session owns one display of a cascading menu: the flattened table and the
// open cards, one per level of the current drill-down path.
type Session struct {
	id       string
	cfg      Config
	table    *hierarchy.Table
	anchor   Rect
	cards    []*Card
	nextID   uint64
	state    State
	delegate Delegate
	styler   Styler
	surface  Surface
}

// Option customises a Session.
type Option func(*Session)

func WithDelegate(d Delegate) Option {
	return func(s *Session) { s.delegate = d }
}

func WithStyler(st Styler) Option {
	return func(s *Session) { s.styler = st }
}

func WithSurface(sf Surface) Option {
	return func(s *Session) { s.surface = sf }
}

// WithID replaces the generated session identifier.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New normalizes root and prepares an idle session anchored at anchor. A
// root without items yields a *hierarchy.ConfigurationError.
func New(root *hierarchy.Node, anchor Rect, cfg Config, opts ...Option) (*Session, error) {
	table, err := hierarchy.Normalize(root)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:     uuid.NewString(),
		cfg:    cfg.normalized(),
		table:  table,
		anchor: anchor,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.styler == nil {
		if st, ok := s.delegate.(Styler); ok {
			s.styler = st
		} else {
			s.styler = NoOverrides{}
		}
	}
	if s.surface == nil {
		s.surface = nopSurface{}
	}
	events.Menu.Normalized(s.id, table.Len(), table.Fingerprint())
	for _, name := range table.Malformed() {
		events.Menu.Malformed(s.id, name)
	}
	return s, nil
}

func (s *Session) ID() string              { return s.id }
func (s *Session) State() State            { return s.state }
func (s *Session) Table() *hierarchy.Table { return s.table }
func (s *Session) Config() Config          { return s.cfg }
func (s *Session) Anchor() Rect            { return s.anchor }
func (s *Session) Depth() int              { return len(s.cards) }

// Cards returns copies of the open cards, root first.
func (s *Session) Cards() []Card {
	out := make([]Card, len(s.cards))
	for i, c := range s.cards {
		out[i] = c.clone()
	}
	return out
}

// Card returns a copy of the card at index.
func (s *Session) Card(index int) (Card, bool) {
	if index < 0 || index >= len(s.cards) {
		return Card{}, false
	}
	return s.cards[index].clone(), true
}

// Path lists the selected item of every open card that has one.
func (s *Session) Path() []string {
	path := make([]string, 0, len(s.cards))
	for _, c := range s.cards {
		if !c.HasSelection {
			break
		}
		path = append(path, c.Selected)
	}
	return path
}

// Start shows the root card.
func (s *Session) Start() error {
	if s.state != StateIdle {
		return ErrAlreadyStarted
	}
	s.state = StateDisplaying
	items, _ := s.table.Lookup(hierarchy.RootKey)
	s.openCard(hierarchy.RootKey, items)
	return nil
}

// ShowCardFor opens the submenu of key and reports whether one existed. The
// delegate is notified in both cases. key must be the selected item of the
// last open card; anything else is refused and reports false.
func (s *Session) ShowCardFor(key string) bool {
	if s.state != StateDisplaying || len(s.cards) == 0 {
		return false
	}
	if last := s.cards[len(s.cards)-1]; !last.HasSelection || last.Selected != key {
		return false
	}
	return s.showCardFor(key)
}

func (s *Session) showCardFor(key string) bool {
	items, ok := s.table.Lookup(key)
	if !ok {
		events.Menu.Selected(s.id, len(s.cards)-1, key, false)
		s.notify(key, false)
		return false
	}
	events.Menu.Selected(s.id, len(s.cards)-1, key, true)
	s.notify(key, true)
	if s.state != StateDisplaying {
		// dismissed from inside the delegate
		return true
	}
	s.openCard(key, items)
	return true
}

// OnItemTapped collapses every card after cardIndex, marks item selected in
// that card and opens its submenu when there is one.
func (s *Session) OnItemTapped(cardIndex int, item string) error {
	if s.state != StateDisplaying {
		return ErrNotDisplaying
	}
	if cardIndex < 0 || cardIndex >= len(s.cards) {
		return fmt.Errorf("%w: %d (depth %d)", ErrCardOutOfRange, cardIndex, len(s.cards))
	}
	card := s.cards[cardIndex]
	if card.ItemIndex(item) < 0 {
		return fmt.Errorf("%w: %q in card %d", ErrUnknownItem, item, cardIndex)
	}
	s.pruneTo(cardIndex + 1)
	card.selectItem(item)
	s.surface.CardRestyled(card.clone())
	s.showCardFor(item)
	return nil
}

// Dismiss closes every card and ends the session.
func (s *Session) Dismiss() {
	if s.state == StateDismissed {
		return
	}
	s.pruneTo(0)
	s.state = StateDismissed
	events.Menu.Dismissed(s.id)
	s.surface.SessionDismissed()
}

// OpenPath taps through path starting at the root card.
func (s *Session) OpenPath(path []string) error {
	for i, item := range path {
		if err := s.OnItemTapped(i, item); err != nil {
			return fmt.Errorf("open %q: %w", item, err)
		}
		if s.state != StateDisplaying {
			return nil
		}
	}
	return nil
}

// Relayout repositions every open card for a new screen size and anchor.
func (s *Session) Relayout(screen Size, anchor Rect) {
	s.cfg.Screen = screen
	s.anchor = anchor
	for i, c := range s.cards {
		c.Rect = s.place(i, c.Rect.Height)
	}
}

func (s *Session) notify(item string, hasSubmenu bool) {
	if s.delegate != nil {
		s.delegate.ItemSelected(s, item, hasSubmenu)
	}
}

func (s *Session) openCard(key string, items []string) {
	rows, height := buildRows(items, s.cfg, s.styler)
	s.nextID++
	card := &Card{
		ID:    s.nextID,
		Index: len(s.cards),
		Key:   key,
		Rows:  rows,
	}
	card.Rect = s.place(card.Index, height)
	s.cards = append(s.cards, card)
	events.Menu.CardOpened(s.id, card.Index, key, card.Rect.X, card.Rect.Y, card.Rect.Width, card.Rect.Height)
	s.surface.CardOpened(card.clone(), Transition{
		From:     card.Rect.Offset(-s.cfg.slideDistance(), 0),
		To:       card.Rect,
		Duration: s.cfg.EntranceDuration,
	})
}

func (s *Session) pruneTo(depth int) {
	for len(s.cards) > depth {
		last := s.cards[len(s.cards)-1]
		s.cards = s.cards[:len(s.cards)-1]
		events.Menu.CardClosed(s.id, last.Index, last.Key)
		s.surface.CardClosed(last.clone())
	}
}

// place computes the rect of the card at index with the given height.
func (s *Session) place(index, height int) Rect {
	width := s.cfg.columnWidth()
	if index > 0 && index-1 < len(s.cards) {
		prev := s.cards[index-1].Rect
		return Rect{X: prev.Right() + s.cfg.Gap, Y: prev.Y, Width: width, Height: height}
	}
	screenH := s.cfg.Screen.Height
	below := screenH - s.anchor.Y
	y := s.anchor.Y - height
	if below*10 > screenH*6 {
		y = s.anchor.Bottom()
	}
	if y < 0 {
		y = 0
	}
	return Rect{X: s.anchor.X + s.cfg.LeftMargin, Y: y, Width: width, Height: height}
}
