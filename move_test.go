package dds

import "testing"

func TestGenerateMovesCollapsesTouchingSequence(t *testing.T) {
	deal := mustDeal(t, "AS KS QS 2H", "JS TS 9H 8H", "8S 7S 6H 5H", "6S 5S 4H 3H")
	ps := NewPlayState(deal, North, NoTrump)
	moves := GenerateMoves(ps, DefaultDdsConfig())
	if len(moves) != 2 {
		t.Fatalf("GenerateMoves() returned %d moves, want 2 (one per suit held)", len(moves))
	}
	spadeMove, heartMove := moves[0], moves[1]
	if spadeMove.Card.Suit != Spades {
		spadeMove, heartMove = moves[1], moves[0]
	}
	if spadeMove.Card.Rank != VirtualAce || spadeMove.SequenceLength != 3 {
		t.Errorf("spade move = %+v, want rank VirtualAce, sequence length 3", spadeMove)
	}
	if heartMove.Card.Rank != VirtualTwo || heartMove.SequenceLength != 1 {
		t.Errorf("heart move = %+v, want rank VirtualTwo, sequence length 1", heartMove)
	}
}

func TestGenerateMovesOrdersByPriorityWhenEnabled(t *testing.T) {
	deal := mustDeal(t, "AS KS QS 2H", "JS TS 9H 8H", "8S 7S 6H 5H", "6S 5S 4H 3H")
	ps := NewPlayState(deal, North, NoTrump)
	moves := GenerateMoves(ps, DefaultDdsConfig())
	if moves[0].Card.Suit != Spades {
		t.Errorf("with move ordering on, the 3-card spade sequence must be tried first, got %+v", moves[0])
	}
}

func TestGenerateMovesDisabledOrderingIsDiscoveryOrder(t *testing.T) {
	deal := mustDeal(t, "AS KS QS 2H", "JS TS 9H 8H", "8S 7S 6H 5H", "6S 5S 4H 3H")
	ps := NewPlayState(deal, North, NoTrump)
	cfg := DefaultDdsConfig()
	cfg.MoveOrdering = false
	moves := GenerateMoves(ps, cfg)
	if moves[0].Card.Suit != Spades {
		t.Errorf("discovery order iterates Suits (Clubs..Spades), so Spades follows Hearts here, got %+v first", moves[0])
	}
}

func TestBeatsTrump(t *testing.T) {
	if !beats(Card{Hearts, Two}, Card{Spades, Ace}, Spades, Hearts, true) {
		t.Error("any trump beats a non-trump, even the Ace")
	}
	if beats(Card{Hearts, Two}, Card{Hearts, Ace}, Spades, Hearts, true) {
		t.Error("a low trump must not beat a higher trump")
	}
	if !beats(Card{Spades, Ace}, Card{Spades, King}, Spades, Hearts, true) {
		t.Error("a higher card of the suit led must beat a lower one")
	}
	if beats(Card{Clubs, Ace}, Card{Spades, King}, Spades, Hearts, true) {
		t.Error("a discard off-suit, non-trump must never beat the suit led")
	}
}

func TestOpponentsHoldHigherInSuit(t *testing.T) {
	deal := mustDeal(t, "QS 2H 2D 2C", "AS 3H 3D 3C", "4S 4H 4D 4C", "5S 5H 5D 5C")
	ps := NewPlayState(deal, North, NoTrump)
	if !opponentsHoldHigherInSuit(ps, North, Spades) {
		t.Error("East holds the Ace of spades over North's Queen, must report true")
	}
	if opponentsHoldHigherInSuit(ps, East, Spades) {
		t.Error("East holds the top spade, no opponent holds higher")
	}
}
