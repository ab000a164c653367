package dds

// QuickTricksForLeader returns a cheap lower bound on the number of tricks
// the axis on lead is guaranteed to win immediately, by cashing a run of
// consecutive top cards combined across both of that axis's hands. Per
// suit: if the combined holding contains the current highest remaining
// card, count the consecutive touching cards from the top that remain
// within the combined holding; in a trump contract, a suit where either
// defender is void contributes nothing (that defender can ruff the first
// card led).
func QuickTricksForLeader(ps *PlayState) int {
	return quickTricksForAxis(ps, ps.NextToPlay().Axis())
}

// QuickTricksForSecondHand is the symmetric estimate for the axis not on
// lead, used to bound how many tricks the defense can cash immediately.
func QuickTricksForSecondHand(ps *PlayState) int {
	return quickTricksForAxis(ps, ps.NextToPlay().Axis().Other())
}

func quickTricksForAxis(ps *PlayState, axis Axis) int {
	players := axis.Players()
	opponents := axis.Other().Players()
	trumpSuit, hasTrump := ps.Trumps()
	total := 0
	for _, suit := range Suits {
		if hasTrump && suit != trumpSuit {
			voidAndDangerous := false
			for _, opp := range opponents {
				if ps.HandOf(opp).IsVoidIn(suit) && !ps.HandOf(opp).IsVoidIn(trumpSuit) {
					voidAndDangerous = true
				}
			}
			if voidAndDangerous {
				continue
			}
		}
		played := ps.Played().SuitField(suit)
		combined := ps.HandOf(players[0]).SuitField(suit).Union(ps.HandOf(players[1]).SuitField(suit))
		total += consecutiveTopHonors(combined, played)
	}
	return total
}

// consecutiveTopHonors counts, from the current highest remaining rank in
// the suit downward, how many consecutive ranks field contains. If field
// does not contain the current highest remaining rank, the suit offers no
// quick tricks.
func consecutiveTopHonors(field, played SuitField) int {
	remaining := FullSuitField.Diff(played)
	count := 0
	for r := Ace; ; r-- {
		if !remaining.Contains(r) {
			if r == Two {
				break
			}
			continue
		}
		if !field.Contains(r) {
			break
		}
		count++
		if r == Two {
			break
		}
	}
	return count
}

// LosingTricksForLeader returns a cheap upper bound on the number of
// tricks the axis on lead can still be forced to lose, using the classic
// Losing Trick Count: per hand and suit, the first three cards of the suit
// that are not among the remaining top three honors (Ace, King, Queen) are
// each counted as a loser, capped by the suit's remaining length.
func LosingTricksForLeader(ps *PlayState) int {
	players := ps.NextToPlay().Axis().Players()
	losers := 0
	for _, seat := range players {
		hand := ps.HandOf(seat)
		for _, suit := range Suits {
			losers += losingTricksInSuit(hand.SuitField(suit), ps.Played().SuitField(suit))
		}
	}
	return losers
}

// losingTricksInSuit counts, among the first min(3, len) remaining cards of
// a hand's suit holding (from the top), how many are not the current
// virtual Ace/King/Queen.
func losingTricksInSuit(hand, played SuitField) int {
	n := hand.Count()
	if n == 0 {
		return 0
	}
	limit := 3
	if n < limit {
		limit = n
	}
	losers := 0
	remaining := hand
	for i := 0; i < limit; i++ {
		top, ok := remaining.Highest()
		if !ok {
			break
		}
		vrank := RelativeOf(top, played)
		if vrank.Index() < NumRanks-3 {
			losers++
		}
		remaining = remaining.Remove(top)
	}
	return losers
}
