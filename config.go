package dds

// DdsConfig toggles the search driver's optimizations. Every field
// defaults to enabled; disabling one never changes the computed trick
// count, only the time it takes to compute it (see the testable property
// exercised in TestSearchMoveOrderingInvariant).
type DdsConfig struct {
	// MoveOrdering enables the priority-based move ordering described in
	// the move generator; disabling it falls back to discovery order.
	MoveOrdering bool
	// UseTranspositionTable enables caching of position bounds across
	// subtrees reached by different move orders.
	UseTranspositionTable bool
	// CheckQuickTricks enables the quick-tricks-for-leader static cutoff.
	CheckQuickTricks bool
	// CheckLosingTricks enables the losing-tricks-for-leader static cutoff.
	CheckLosingTricks bool
	// PreEstimate enables computing both static estimators once per node
	// up front rather than lazily only when the alpha/beta window could
	// plausibly be satisfied by them.
	PreEstimate bool
}

// DefaultDdsConfig returns the all-enabled configuration.
func DefaultDdsConfig() DdsConfig {
	return DdsConfig{
		MoveOrdering:          true,
		UseTranspositionTable: true,
		CheckQuickTricks:      true,
		CheckLosingTricks:     true,
		PreEstimate:           true,
	}
}
