package dds

import "sort"

// NewDdsSolver builds a solver (the "build solver" operation): a handle
// holding cfg plus the transposition table and statistics it accumulates
// across however many cells or move rankings are run through it.
func NewDdsSolver(cfg DdsConfig) *Solver {
	return NewSolver(cfg)
}

// SolveFullResult solves every (declarer seat, strain) cell of deal and
// returns the complete 4x5 [DoubleDummyResult] table. Each cell is solved
// from scratch against a fresh transposition table, since the cached bounds
// from one trump strain give another strain no useful information.
func (s *Solver) SolveFullResult(deal Deal) (DoubleDummyResult, error) {
	var result DoubleDummyResult
	for _, strain := range Strains {
		for _, declarer := range Seats {
			n, err := s.SolveCell(deal, declarer, strain)
			if err != nil {
				return DoubleDummyResult{}, err
			}
			result.Set(declarer, strain, n)
		}
	}
	return result, nil
}

// SolveCell solves a single declarer/strain cell: leader is the hand to the
// declarer's left, the opening leader against that contract. It returns the
// number of tricks declarer's axis takes under optimal defense, 0..=N.
//
// The opening leader is always on the defending axis (declarer's left-hand
// opponent), so Solve's own return value - tricks for the axis on lead - is
// the defense's count; declarer's count is what's left of the total.
func (s *Solver) SolveCell(deal Deal, declarer Seat, strain Strain) (int, error) {
	leader := declarer.Next()
	ps := NewPlayState(deal, leader, strain)
	total := ps.TricksLeft()
	s.Reset()
	defenseTricks := s.Solve(ps)
	return total - defenseTricks, nil
}

// RankedMove is one legal move from a position, annotated with the number
// of tricks its mover's axis takes by playing it, under optimal play
// thereafter.
type RankedMove struct {
	Card   VirtualCard
	Tricks int
}

// RankMoves returns every legal move available to ps.NextToPlay(), each
// annotated with the resulting trick count for the mover's axis, sorted
// best-first. It is the "rank moves" operation: a double-dummy analysis
// tool showing not just the best line but how every candidate compares.
func (s *Solver) RankMoves(ps *PlayState) []RankedMove {
	seat := ps.NextToPlay()
	myAxis := seat.Axis()
	totalAtEntry := ps.TricksLeft()
	completing := len(ps.CurrentTrick().Cards) == 3
	moves := GenerateMoves(ps, s.cfg)
	ranked := make([]RankedMove, 0, len(moves))
	for _, m := range moves {
		card := absoluteOrZero(ps, m.Card)
		ps.play(card)
		childSeat := ps.NextToPlay()
		childValue := s.Solve(ps)
		tricks := s.translate(childValue, completing, childSeat, myAxis, totalAtEntry)
		ps.Undo()
		ranked = append(ranked, RankedMove{Card: m.Card, Tricks: tricks})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Tricks > ranked[j].Tricks
	})
	return ranked
}
