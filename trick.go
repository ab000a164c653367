package dds

// ActiveTrick is a trick in progress: the seat that led it, and the cards
// played to it so far, in play order starting from the leader.
type ActiveTrick struct {
	Lead  Seat
	Cards []Card
}

// SuitLed returns the suit of the trick's first card, and false if no card
// has been played yet.
func (t ActiveTrick) SuitLed() (Suit, bool) {
	if len(t.Cards) == 0 {
		return InvalidSuit, false
	}
	return t.Cards[0].Suit, true
}

// SeatToPlay returns the seat whose turn it is within the trick (the seat
// that will play t.Cards[len(t.Cards)]).
func (t ActiveTrick) SeatToPlay() Seat {
	seat := t.Lead
	for i := 0; i < len(t.Cards); i++ {
		seat = seat.Next()
	}
	return seat
}

// play returns a copy of t with card appended.
func (t ActiveTrick) play(card Card) ActiveTrick {
	cards := make([]Card, len(t.Cards)+1)
	copy(cards, t.Cards)
	cards[len(t.Cards)] = card
	return ActiveTrick{Lead: t.Lead, Cards: cards}
}

// winner determines who wins the (complete, 4-card) trick, given the trump
// suit (ok=false for no trump).
func (t ActiveTrick) winner(trumpSuit Suit, hasTrump bool) Seat {
	leadSuit := t.Cards[0].Suit
	bestSeat := t.Lead
	best := t.Cards[0]
	seat := t.Lead
	for i := 1; i < len(t.Cards); i++ {
		seat = seat.Next()
		c := t.Cards[i]
		switch {
		case hasTrump && c.Suit == trumpSuit && best.Suit != trumpSuit:
			bestSeat, best = seat, c
		case hasTrump && c.Suit == trumpSuit && best.Suit == trumpSuit && c.Rank > best.Rank:
			bestSeat, best = seat, c
		case c.Suit == leadSuit && best.Suit == leadSuit && c.Rank > best.Rank && !(hasTrump && best.Suit == trumpSuit):
			bestSeat, best = seat, c
		}
	}
	return bestSeat
}

// PlayedTrick is a completed trick: who led it, the four cards played (in
// play order from the leader), and who won it.
type PlayedTrick struct {
	Lead   Seat
	Cards  [4]Card
	Winner Seat
}

// IsWonBy reports whether axis won the trick.
func (t PlayedTrick) IsWonBy(axis Axis) bool {
	return t.Winner.Axis() == axis
}
