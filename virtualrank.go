package dds

// VirtualRank is a rank expressed relative to the cards still in play in a
// suit: after the top N cards of a suit have been played, the (N+1)th
// highest remaining card behaves, for the rest of the play, exactly like an
// Ace did before any cards were played. VirtualRank carries that collapsed
// ordering. The discriminants intentionally mirror [Rank]'s (Two=0..Ace=12)
// with [OutOfPlay] set apart at 15, so a card that has already been played,
// or is not held by anyone still to act, maps to a single sentinel distinct
// from every real rank.
type VirtualRank uint8

// Virtual ranks.
const (
	VirtualTwo VirtualRank = iota
	VirtualThree
	VirtualFour
	VirtualFive
	VirtualSix
	VirtualSeven
	VirtualEight
	VirtualNine
	VirtualTen
	VirtualJack
	VirtualQueen
	VirtualKing
	VirtualAce
	// OutOfPlay marks a card that has already been played, or otherwise
	// carries no rank relative to the suit's remaining cards.
	OutOfPlay VirtualRank = 15
)

// Index returns the virtual rank's int index (0-12 for VirtualTwo-VirtualAce).
// Index is undefined for OutOfPlay.
func (vrank VirtualRank) Index() int {
	return int(vrank)
}

// Touches reports whether vrank and other are adjacent in the virtual
// ordering: no rank still in play lies strictly between them. Two ranks
// touch iff their indices differ by exactly one; [OutOfPlay] touches
// nothing.
func (vrank VirtualRank) Touches(other VirtualRank) bool {
	if vrank == OutOfPlay || other == OutOfPlay {
		return false
	}
	if vrank > other {
		vrank, other = other, vrank
	}
	return other-vrank == 1
}

// String satisfies the [fmt.Stringer] interface.
func (vrank VirtualRank) String() string {
	if vrank == OutOfPlay {
		return "-"
	}
	return Rank(vrank).String()
}
