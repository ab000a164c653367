package dds

// PlayState is the mutable state of a double-dummy play-through: the four
// remaining hands, the cards played so far, the trick in progress, and the
// history of completed tricks. Play and Undo mutate a PlayState in place so
// the search driver can walk the game tree without reallocating per node.
type PlayState struct {
	n         int
	hands     [4]CardTracker
	played    CardTracker
	hasTrump  bool
	trumpSuit Suit
	current   ActiveTrick
	history   []PlayedTrick
	next      Seat
	wonNS     int
	wonEW     int
}

// NewPlayState builds a PlayState from an already-validated [Deal], an
// opening leader, and a strain. Constructing the Deal is where duplicate
// and wrong-size holdings are rejected (see [NewDeal]); a PlayState built
// from a valid Deal is always internally consistent.
func NewPlayState(deal Deal, leader Seat, strain Strain) *PlayState {
	ps := &PlayState{
		n:       deal.N(),
		current: ActiveTrick{Lead: leader},
		next:    leader,
	}
	for _, seat := range Seats {
		ps.hands[seat] = deal.Hands[seat].Tracker()
	}
	if suit, ok := strain.TrumpSuit(); ok {
		ps.hasTrump, ps.trumpSuit = true, suit
	}
	return ps
}

// NextToPlay returns the seat whose turn it is.
func (ps *PlayState) NextToPlay() Seat {
	return ps.next
}

// Trumps returns the trump suit and true, or (_, false) if the contract is
// no trump.
func (ps *PlayState) Trumps() (Suit, bool) {
	return ps.trumpSuit, ps.hasTrump
}

// CurrentTrick returns the trick in progress.
func (ps *PlayState) CurrentTrick() ActiveTrick {
	return ps.current
}

// TricksLeft returns the number of tricks remaining to be played, including
// the one in progress. Unlike a raw hand's remaining card count, this stays
// constant across the individual plays within a trick and only decrements
// once the trick completes, which is the frame the search driver reasons in.
func (ps *PlayState) TricksLeft() int {
	return ps.n - len(ps.history)
}

// TricksWonByAxis returns the number of tricks axis has won so far.
func (ps *PlayState) TricksWonByAxis(axis Axis) int {
	if axis == NorthSouth {
		return ps.wonNS
	}
	return ps.wonEW
}

// LastTrickWinner returns the winner of the most recently completed trick,
// and false if no trick has completed yet.
func (ps *PlayState) LastTrickWinner() (Seat, bool) {
	if len(ps.history) == 0 {
		return InvalidSeat, false
	}
	return ps.history[len(ps.history)-1].Winner, true
}

// HandOf returns seat's remaining cards.
func (ps *PlayState) HandOf(seat Seat) CardTracker {
	return ps.hands[seat]
}

// Played returns every card played so far, across all suits and seats.
func (ps *PlayState) Played() CardTracker {
	return ps.played
}

// AvailableCards returns the cards seat may legally play: if a suit has
// been led and seat holds a card in it, only cards in that suit; otherwise
// every remaining card in seat's hand.
func (ps *PlayState) AvailableCards(seat Seat) CardTracker {
	hand := ps.hands[seat]
	leadSuit, ok := ps.current.SuitLed()
	if !ok || hand.IsVoidIn(leadSuit) {
		return hand
	}
	var only CardTracker
	only[leadSuit] = hand.SuitField(leadSuit)
	return only
}

// Play plays card on behalf of [PlayState.NextToPlay]. Returns
// [ErrNotHoldingCard] if seat does not hold card, or [ErrMustFollowSuit] if
// seat must follow the suit led and card does not.
func (ps *PlayState) Play(card Card) error {
	seat := ps.next
	if !ps.hands[seat].Contains(card) {
		return ErrNotHoldingCard
	}
	if !ps.AvailableCards(seat).Contains(card) {
		return ErrMustFollowSuit
	}
	ps.play(card)
	return nil
}

// play plays card without legality checks, for use by the search driver
// where moves are always generated legal.
func (ps *PlayState) play(card Card) {
	seat := ps.next
	ps.hands[seat] = ps.hands[seat].Remove(card)
	ps.played = ps.played.Add(card)
	ps.current = ps.current.play(card)
	if len(ps.current.Cards) < 4 {
		ps.next = seat.Next()
		return
	}
	winner := ps.current.winner(ps.trumpSuit, ps.hasTrump)
	var cards [4]Card
	copy(cards[:], ps.current.Cards)
	ps.history = append(ps.history, PlayedTrick{Lead: ps.current.Lead, Cards: cards, Winner: winner})
	if winner.Axis() == NorthSouth {
		ps.wonNS++
	} else {
		ps.wonEW++
	}
	ps.current = ActiveTrick{Lead: winner}
	ps.next = winner
}

// Undo reverses the most recent [PlayState.Play] (or internal play) call.
func (ps *PlayState) Undo() {
	if len(ps.current.Cards) == 0 {
		ps.undoTrick()
		return
	}
	n := len(ps.current.Cards)
	card := ps.current.Cards[n-1]
	seat := seatAt(ps.current.Lead, n-1)
	ps.hands[seat] = ps.hands[seat].Add(card)
	ps.played = ps.played.Remove(card)
	ps.current = ActiveTrick{Lead: ps.current.Lead, Cards: ps.current.Cards[:n-1]}
	ps.next = seat
}

// undoTrick reverses a play that completed a trick.
func (ps *PlayState) undoTrick() {
	t := ps.history[len(ps.history)-1]
	ps.history = ps.history[:len(ps.history)-1]
	if t.Winner.Axis() == NorthSouth {
		ps.wonNS--
	} else {
		ps.wonEW--
	}
	for i, c := range t.Cards {
		seat := seatAt(t.Lead, i)
		ps.hands[seat] = ps.hands[seat].Add(c)
		ps.played = ps.played.Remove(c)
	}
	ps.current = ActiveTrick{Lead: t.Lead, Cards: append([]Card{}, t.Cards[:3]...)}
	ps.next = seatAt(t.Lead, 3)
}

// seatAt returns the seat that plays the (i+1)th card of a trick led by lead.
func seatAt(lead Seat, i int) Seat {
	seat := lead
	for ; i > 0; i-- {
		seat = seat.Next()
	}
	return seat
}
