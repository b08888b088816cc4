package cascade

import "time"

// Color is a terminal color: an ANSI index ("208") or a hex value ("#ff8800").
type Color string

// Font carries the text attributes a terminal can express.
type Font struct {
	Bold      bool
	Italic    bool
	Underline bool
	Faint     bool
}

// Delegate is told about every item selection.
//
// hasSubmenu is false for leaves; a host with nothing else to do usually
// calls Session.Dismiss from here.
type Delegate interface {
	ItemSelected(s *Session, item string, hasSubmenu bool)
}

// DelegateFunc adapts a function to Delegate.
type DelegateFunc func(s *Session, item string, hasSubmenu bool)

func (f DelegateFunc) ItemSelected(s *Session, item string, hasSubmenu bool) {
	f(s, item, hasSubmenu)
}

// Styler supplies optional per-item overrides. Returning false keeps the
// configured default.
type Styler interface {
	SelectionColor() (Color, bool)
	UnselectedColor() (Color, bool)
	FontColorFor(item string) (Color, bool)
	SelectedFontColorFor(item string) (Color, bool)
	FontFor(item string) (Font, bool)
	RowHeightFor(item string) (int, bool)
}

// NoOverrides is a Styler that never overrides anything. Embed it to
// implement only some of the hooks.
type NoOverrides struct{}

func (NoOverrides) SelectionColor() (Color, bool)             { return "", false }
func (NoOverrides) UnselectedColor() (Color, bool)            { return "", false }
func (NoOverrides) FontColorFor(string) (Color, bool)         { return "", false }
func (NoOverrides) SelectedFontColorFor(string) (Color, bool) { return "", false }
func (NoOverrides) FontFor(string) (Font, bool)               { return Font{}, false }
func (NoOverrides) RowHeightFor(string) (int, bool)           { return 0, false }

// Transition describes the entrance of a new card. The core does not wait
// for it to finish.
type Transition struct {
	From     Rect
	To       Rect
	Duration time.Duration
}

// Surface renders what the session decides.
type Surface interface {
	CardOpened(card Card, tr Transition)
	CardClosed(card Card)
	CardRestyled(card Card)
	SessionDismissed()
}

type nopSurface struct{}

func (nopSurface) CardOpened(Card, Transition) {}
func (nopSurface) CardClosed(Card)             {}
func (nopSurface) CardRestyled(Card)           {}
func (nopSurface) SessionDismissed()           {}
