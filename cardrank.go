// Package dds is a double-dummy solver for the card game Bridge: given four
// hands, an opening leader, and an optional trump suit, it computes — under
// the assumption that every player sees every hand and plays optimally — the
// exact number of tricks the declaring side can take, and can rank legal
// plays so a caller can identify an optimal move.
package dds

// Error is an error.
type Error string

// Error satisfies the [error] interface.
func (err Error) Error() string {
	return string(err)
}

// Error values.
const (
	// ErrWrongHandSize is returned when a hand does not contain exactly N cards.
	ErrWrongHandSize Error = "wrong hand size"
	// ErrDuplicateCard is returned when the same card appears more than once across the four hands.
	ErrDuplicateCard Error = "duplicate card"
	// ErrCardInPlayedSet is returned when a card offered to a constructor is already marked played.
	ErrCardInPlayedSet Error = "card already played"
	// ErrNotHoldingCard is returned when a player attempts to play a card not in their hand.
	ErrNotHoldingCard Error = "player is not holding that card"
	// ErrMustFollowSuit is returned when a player holds a card in the suit led but plays another suit.
	ErrMustFollowSuit Error = "must follow suit"
	// ErrInvalidCard is the invalid card error.
	ErrInvalidCard Error = "invalid card"
	// ErrInvalidSuit is the invalid suit error.
	ErrInvalidSuit Error = "invalid suit"
	// ErrInvalidRank is the invalid rank error.
	ErrInvalidRank Error = "invalid rank"
	// ErrInvalidSeat is the invalid seat error.
	ErrInvalidSeat Error = "invalid seat"
	// ErrInvalidStrain is the invalid strain error.
	ErrInvalidStrain Error = "invalid strain"
)
