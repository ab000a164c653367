package dds

// Solver runs an alpha-beta double-dummy search with a reusable
// transposition table and move-generation configuration.
type Solver struct {
	cfg   DdsConfig
	tt    *TranspositionTable
	stats SearchStats
}

// NewSolver creates a Solver with cfg. A fresh transposition table is
// created for the solver's lifetime; call [Solver.Reset] to start a new
// one (e.g. between unrelated positions where cached bounds would not
// help).
func NewSolver(cfg DdsConfig) *Solver {
	return &Solver{cfg: cfg, tt: NewTranspositionTable()}
}

// Reset clears the solver's transposition table and statistics.
func (s *Solver) Reset() {
	s.tt.Clear()
	s.stats = SearchStats{}
}

// Stats returns the statistics accumulated since the solver was created or
// last reset.
func (s *Solver) Stats() SearchStats {
	return s.stats
}

// Solve returns the number of tricks ps.NextToPlay()'s axis wins from the
// current position to the end, under optimal play by both sides.
func (s *Solver) Solve(ps *PlayState) int {
	total := ps.TricksLeft()
	return s.search(ps, 0, total)
}

// search returns, for the axis of ps.NextToPlay() at the time of this
// call, the number of the ps.TricksLeft() remaining tricks (including the
// trick in progress, whoever wins it) that axis takes under optimal play,
// bounded to lie in [alpha, beta] by the caller.
//
// The recursion never needs a separate minimizing branch: every node's
// return value is already expressed relative to the mover's own axis, so
// every node simply maximizes its own return value. When a child node's
// value is stated in terms of the other axis, it is converted via
// totalAtEntry - childValue before being compared, which mirrors a
// negamax sign flip without actually negating anything.
func (s *Solver) search(ps *PlayState, alpha, beta int) int {
	s.stats.NodeCount++
	totalAtEntry := ps.TricksLeft()
	if totalAtEntry == 0 {
		return 0
	}
	trickOpen := len(ps.CurrentTrick().Cards) == 0
	key := KeyFor(ps)
	if s.cfg.UseTranspositionTable {
		if v, ok := s.tt.Lookup(key); ok {
			if v.AtLeast >= beta {
				return v.AtLeast
			}
			if v.AtMost <= alpha {
				return v.AtMost
			}
			if v.AtLeast > alpha {
				alpha = v.AtLeast
			}
			if v.AtMost < beta {
				beta = v.AtMost
			}
		}
	}
	if trickOpen {
		if s.cfg.CheckQuickTricks {
			if q := QuickTricksForLeader(ps); q >= beta {
				if s.cfg.UseTranspositionTable {
					s.tt.UpdateLowerBound(key, q)
				}
				return beta
			}
		}
		if s.cfg.CheckLosingTricks {
			if l := LosingTricksForLeader(ps); totalAtEntry-l <= alpha {
				if s.cfg.UseTranspositionTable {
					s.tt.UpdateUpperBound(key, totalAtEntry-l)
				}
				return alpha
			}
		}
	}
	seat := ps.NextToPlay()
	myAxis := seat.Axis()
	moves := GenerateMoves(ps, s.cfg)
	best := -1
	for i, m := range moves {
		card := absoluteOrZero(ps, m.Card)
		completing := len(ps.CurrentTrick().Cards) == 3
		ps.play(card)
		childSeat := ps.NextToPlay()
		var childAlpha, childBeta int
		offset := 0
		if completing {
			offset = 1
		}
		if childSeat.Axis() == myAxis {
			childAlpha, childBeta = alpha-offset, beta-offset
		} else {
			childAlpha, childBeta = totalAtEntry-offset-beta, totalAtEntry-offset-alpha
		}
		childAlpha = clamp(childAlpha, 0, ps.TricksLeft())
		childBeta = clamp(childBeta, 0, ps.TricksLeft())
		childValue := s.search(ps, childAlpha, childBeta)
		value := s.translate(childValue, completing, childSeat, myAxis, totalAtEntry)
		ps.Undo()
		if i == 0 {
			s.stats.FirstMoveCount++
		}
		if value > best {
			best = value
			if i == 0 {
				s.stats.FirstMoveIsBestCount++
			}
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	if s.cfg.UseTranspositionTable {
		switch {
		case best <= alpha && best < beta:
			s.tt.UpdateUpperBound(key, best)
		case best >= beta:
			s.tt.UpdateLowerBound(key, best)
		default:
			s.tt.UpdateLowerBound(key, best)
			s.tt.UpdateUpperBound(key, best)
		}
	}
	return best
}

// translate converts a recursively-computed child value (tricks for
// childSeat's axis over the post-move frame) into tricks for myAxis over
// the pre-move frame of totalAtEntry tricks.
func (s *Solver) translate(childValue int, completing bool, childSeat Seat, myAxis Axis, totalAtEntry int) int {
	if childSeat.Axis() == myAxis {
		if completing {
			return childValue + 1
		}
		return childValue
	}
	if completing {
		return totalAtEntry - 1 - childValue
	}
	return totalAtEntry - childValue
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
