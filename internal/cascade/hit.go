package cascade

// HitKind classifies a tap position.
type HitKind int

const (
	HitOutside HitKind = iota
	HitItem
	HitSeparator
)

// Hit is the result of hit testing a screen cell.
type Hit struct {
	Kind HitKind
	Card int
	Row  int
	Item string
}

// HitTest finds the card row under (x, y). Later cards are tested first.
func (s *Session) HitTest(x, y int) Hit {
	for i := len(s.cards) - 1; i >= 0; i-- {
		c := s.cards[i]
		if !c.Rect.Contains(x, y) {
			continue
		}
		row, ok := c.RowAt(y)
		if !ok {
			return Hit{Kind: HitSeparator, Card: i, Row: -1}
		}
		r := c.Rows[row]
		if r.Kind == RowSeparator {
			return Hit{Kind: HitSeparator, Card: i, Row: row}
		}
		return Hit{Kind: HitItem, Card: i, Row: row, Item: r.Item}
	}
	return Hit{Kind: HitOutside, Card: -1, Row: -1}
}

// Tap routes a tap at (x, y): items are selected, separators ignored and
// anything outside the cards dismisses the session.
func (s *Session) Tap(x, y int) (Hit, error) {
	if s.state != StateDisplaying {
		return Hit{Kind: HitOutside, Card: -1, Row: -1}, ErrNotDisplaying
	}
	hit := s.HitTest(x, y)
	switch hit.Kind {
	case HitItem:
		return hit, s.OnItemTapped(hit.Card, hit.Item)
	case HitOutside:
		s.Dismiss()
	}
	return hit, nil
}
