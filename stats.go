package dds

// SearchStats accumulates optional diagnostics over one or more searches.
// A caller interested in search performance reads these; nothing in the
// package logs them.
type SearchStats struct {
	NodeCount            int
	FirstMoveCount       int
	FirstMoveIsBestCount int
}

// Merge returns the pointwise sum of stats and other.
func (stats SearchStats) Merge(other SearchStats) SearchStats {
	return SearchStats{
		NodeCount:            stats.NodeCount + other.NodeCount,
		FirstMoveCount:       stats.FirstMoveCount + other.FirstMoveCount,
		FirstMoveIsBestCount: stats.FirstMoveIsBestCount + other.FirstMoveIsBestCount,
	}
}

// FirstMoveBestRatio returns the fraction of nodes at which the
// first-generated move turned out to be the best one, and false if no node
// recorded a first-move comparison. A ratio close to 1.0 indicates move
// ordering is doing its job.
func (stats SearchStats) FirstMoveBestRatio() (float64, bool) {
	if stats.FirstMoveCount == 0 {
		return 0, false
	}
	return float64(stats.FirstMoveIsBestCount) / float64(stats.FirstMoveCount), true
}
