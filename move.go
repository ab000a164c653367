package dds

import "sort"

// DdsMove is a candidate play: a representative [VirtualCard], the number
// of absolute cards it stands in for (touching cards collapse to their
// highest member), and a priority used to order moves for alpha-beta.
// Higher priority is tried first.
type DdsMove struct {
	Card           VirtualCard
	SequenceLength int
	Priority       int
}

// GenerateMoves enumerates the distinct moves available to
// ps.NextToPlay(), collapsing runs of touching cards within a suit to a
// single representative (the highest of the run), and assigns each a
// priority per cfg.MoveOrdering.
func GenerateMoves(ps *PlayState, cfg DdsConfig) []DdsMove {
	seat := ps.NextToPlay()
	avail := ps.AvailableCards(seat)
	position := len(ps.CurrentTrick().Cards)
	var moves []DdsMove
	for _, suit := range Suits {
		field := avail.SuitField(suit)
		if field.IsVoid() {
			continue
		}
		played := ps.Played().SuitField(suit)
		ranks := field.Ranks() // highest to lowest
		run := 1
		for i := 0; i < len(ranks); i++ {
			isStart := i == 0
			if !isStart {
				prevVRank := RelativeOf(ranks[i-1], played)
				curVRank := RelativeOf(ranks[i], played)
				if prevVRank.Touches(curVRank) {
					run++
					continue
				}
			}
			// close out any pending run at i-1 before starting a new one.
			if i > 0 {
				moves = append(moves, DdsMove{
					Card:           VirtualCard{Suit: suit, Rank: RelativeOf(ranks[i-run], played)},
					SequenceLength: run,
				})
				run = 1
			}
		}
		moves = append(moves, DdsMove{
			Card:           VirtualCard{Suit: suit, Rank: RelativeOf(ranks[len(ranks)-run], played)},
			SequenceLength: run,
		})
	}
	for i := range moves {
		moves[i].Priority = movePriority(ps, seat, position, moves[i], cfg)
	}
	if cfg.MoveOrdering {
		sort.SliceStable(moves, func(i, j int) bool {
			return moves[i].Priority > moves[j].Priority
		})
	}
	return moves
}

// movePriority scores a move for ordering purposes. It resolves spec.md's
// Open Question on move-ordering: leading hands favor long, high sequences;
// third hand favors the cheapest card that still beats the trick so far;
// second and fourth hand favor ducking low unless no higher remaining card
// can be established by the defense, in which case playing the certain
// winner is preferred.
func movePriority(ps *PlayState, seat Seat, position int, m DdsMove, cfg DdsConfig) int {
	if !cfg.MoveOrdering {
		return 0
	}
	rankIdx := m.Card.Rank.Index()
	switch position {
	case 0: // leading to the trick
		suitLength := ps.HandOf(seat).CountInSuit(m.Card.Suit)
		return m.SequenceLength*100 + rankIdx*10 + suitLength
	case 2: // third hand
		current := ps.CurrentTrick()
		trumpSuit, hasTrump := ps.Trumps()
		leadingSeat := current.winner(trumpSuit, hasTrump)
		incumbent := current.Cards[seatOffset(current.Lead, leadingSeat)]
		candidate := absoluteOrZero(ps, m.Card)
		if beats(candidate, incumbent, current.Cards[0].Suit, trumpSuit, hasTrump) {
			// playing m would overtake the trick so far: prefer the cheapest winner.
			return 500 - rankIdx
		}
		return -rankIdx
	default: // second or fourth hand
		if !opponentsHoldHigherInSuit(ps, seat, m.Card.Suit) {
			return rankIdx
		}
		return -rankIdx
	}
}

// seatOffset returns how many seats after lead the given seat is.
func seatOffset(lead, seat Seat) int {
	offset := 0
	for s := lead; s != seat; s = s.Next() {
		offset++
	}
	return offset
}

// beats reports whether candidate wins a head-to-head comparison against
// incumbent within a trick led in leadSuit, under the given trump.
func beats(candidate, incumbent Card, leadSuit Suit, trumpSuit Suit, hasTrump bool) bool {
	switch {
	case hasTrump && candidate.Suit == trumpSuit && incumbent.Suit != trumpSuit:
		return true
	case hasTrump && candidate.Suit == trumpSuit && incumbent.Suit == trumpSuit:
		return candidate.Rank > incumbent.Rank
	case candidate.Suit == leadSuit && incumbent.Suit == leadSuit && !(hasTrump && incumbent.Suit == trumpSuit):
		return candidate.Rank > incumbent.Rank
	}
	return false
}

// absoluteOrZero resolves a VirtualCard back to the absolute Card it
// represents right now, defaulting to the zero Card if the mapping is
// somehow unavailable (it is always available for a move just generated
// from the current position).
func absoluteOrZero(ps *PlayState, vc VirtualCard) Card {
	played := ps.Played().SuitField(vc.Suit)
	if r, ok := AbsoluteOf(vc.Rank, played); ok {
		return Card{Suit: vc.Suit, Rank: r}
	}
	return Card{}
}

// opponentsHoldHigherInSuit reports whether either opponent of seat holds a
// card in suit higher than every card seat holds in suit.
func opponentsHoldHigherInSuit(ps *PlayState, seat Seat, suit Suit) bool {
	lho := ps.HandOf(seat.Next())
	rho := ps.HandOf(seat.Next().Next().Next())
	return lho.HasHigherInSuit(suit, ps.HandOf(seat)) || rho.HasHigherInSuit(suit, ps.HandOf(seat))
}
