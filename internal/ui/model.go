package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/cascade-menu/internal/cascade"
	"github.com/atomicstack/cascade-menu/internal/hierarchy"
	"github.com/atomicstack/cascade-menu/internal/theme"
	"github.com/atomicstack/cascade-menu/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultLabel = "Menu"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// SelectionMsg reports the leaf chosen by the user.
type SelectionMsg struct {
	command.Selection
}

// Options configures the host model.
type Options struct {
	// Width and Height pin the screen size; zero follows the terminal.
	Width  int
	Height int
	// Screen is the terminal size assumed until the first resize message.
	Screen cascade.Size
	Anchor AnchorPos
	Label  string
	// OpenPath is tapped through once the root card is shown.
	OpenPath   []string
	ShowFooter bool
	Styler     cascade.Styler
	// Leaf replaces the default action run for a chosen leaf.
	Leaf command.Action
}

// Model implements the Bubble Tea model hosting one cascade session. It acts
// as both the session delegate and the drawing surface.
type Model struct {
	session *cascade.Session
	opts    Options

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	started     bool
	anchor      cascade.Rect

	anims     map[uint64]*entrance
	animating bool

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
	keys     keyMap
	help     help.Model

	errMsg    string
	selection *command.Selection
	quitting  bool
	pending   []tea.Cmd
}

// NewModel normalizes root and prepares a session that starts once the screen
// size is known: at Init when fixed or assumed, else on the first resize.
func NewModel(root *hierarchy.Node, cfg cascade.Config, opts Options) (*Model, error) {
	if opts.Label == "" {
		opts.Label = defaultLabel
	}
	if opts.Leaf == nil {
		opts.Leaf = selectLeaf
	}
	m := &Model{
		opts:  opts,
		anims: map[uint64]*entrance{},
		bus:   command.New(),
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.width, m.height = opts.Screen.Width, opts.Screen.Height
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.help.Width = m.width
	sessionOpts := []cascade.Option{cascade.WithDelegate(m), cascade.WithSurface(m)}
	if opts.Styler != nil {
		sessionOpts = append(sessionOpts, cascade.WithStyler(opts.Styler))
	}
	session, err := cascade.New(root, cascade.Rect{}, cfg, sessionOpts...)
	if err != nil {
		return nil, err
	}
	m.session = session
	m.registerHandlers()
	return m, nil
}

func selectLeaf(sel command.Selection) tea.Msg {
	return SelectionMsg{Selection: sel}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.start()
	return m.finishUpdate(nil)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(SelectionMsg{}):      m.handleSelectionMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate merges the commands queued by session callbacks.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.pending...)
	m.pending = nil
	if len(m.anims) > 0 && !m.animating {
		m.animating = true
		cmds = append(cmds, frameTick())
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	if !m.started {
		m.start()
		return nil
	}
	if m.session.State() == cascade.StateDisplaying {
		m.relayout()
	}
	return nil
}

func (m *Model) handleSelectionMsg(msg tea.Msg) tea.Cmd {
	sel := msg.(SelectionMsg).Selection
	m.selection = &sel
	m.session.Dismiss()
	return nil
}

// start shows the root card and taps through the configured path.
func (m *Model) start() {
	if m.started || m.width <= 0 || m.height <= 0 {
		return
	}
	m.started = true
	m.relayout()
	if err := m.session.Start(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if len(m.opts.OpenPath) == 0 {
		return
	}
	path, err := m.session.Table().ResolvePath(m.opts.OpenPath)
	if err == nil {
		err = m.session.OpenPath(path)
	}
	if err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) relayout() {
	m.anchor = m.opts.Anchor.Resolve(m.width, m.menuHeight(), m.opts.Label)
	m.session.Relayout(cascade.Size{Width: m.width, Height: m.menuHeight()}, m.anchor)
	for _, card := range m.session.Cards() {
		if a, ok := m.anims[card.ID]; ok {
			a.retarget(card.Rect.X)
		}
	}
}

// menuHeight is the number of rows available to cards.
func (m *Model) menuHeight() int {
	h := m.height
	if m.opts.ShowFooter {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// ItemSelected queues the leaf action; submenus are opened by the session.
func (m *Model) ItemSelected(s *cascade.Session, item string, hasSubmenu bool) {
	if hasSubmenu {
		return
	}
	path := s.Path()
	// A tapped leaf is already marked selected in its card.
	if n := len(path); n == 0 || path[n-1] != item {
		path = append(path, item)
	}
	m.queue(m.bus.Execute(command.Request{
		ID:      s.ID(),
		Label:   item,
		Handler: m.opts.Leaf,
		Selection: command.Selection{
			Session: s.ID(),
			Item:    item,
			Path:    path,
		},
	}))
}

// CardOpened starts the entrance animation of a new card.
func (m *Model) CardOpened(card cascade.Card, tr cascade.Transition) {
	if tr.Duration <= 0 || tr.From == tr.To {
		return
	}
	m.anims[card.ID] = newEntrance(tr, time.Now())
}

func (m *Model) CardClosed(card cascade.Card) {
	delete(m.anims, card.ID)
}

func (m *Model) CardRestyled(cascade.Card) {}

func (m *Model) SessionDismissed() {
	m.anims = map[uint64]*entrance{}
	if !m.quitting {
		m.quitting = true
		m.queue(tea.Quit)
	}
}

// Session exposes the hosted menu session.
func (m *Model) Session() *cascade.Session {
	return m.session
}

// Selection returns the chosen leaf, if any.
func (m *Model) Selection() (command.Selection, bool) {
	if m.selection == nil {
		return command.Selection{}, false
	}
	return *m.selection, true
}

// Err returns the last error shown in the status line.
func (m *Model) Err() string {
	return m.errMsg
}
