package dds

// OptionalSuit is a trump suit that may be absent (no trump). It exists
// because [TTKey] must be a plain comparable value usable as a map key, and
// a pointer or interface would defeat that.
type OptionalSuit struct {
	Suit    Suit
	Present bool
}

// NoTrumpSuit is the absent-trump value.
var NoTrumpSuit = OptionalSuit{}

// SomeSuit wraps suit as a present trump.
func SomeSuit(suit Suit) OptionalSuit {
	return OptionalSuit{Suit: suit, Present: true}
}

// TTKey identifies a double-dummy position up to the symmetry the solver
// cares about: how many tricks are left, the trump, whose turn it is, and
// the remaining cards of all four hands. Positions reached by different
// move orders but with the same TTKey always have the same outcome.
type TTKey struct {
	TricksLeft int
	Trumps     OptionalSuit
	Lead       Seat
	Hands      [4]CardTracker
}

// KeyFor builds the TTKey for ps's current position.
func KeyFor(ps *PlayState) TTKey {
	key := TTKey{
		TricksLeft: ps.TricksLeft(),
		Lead:       ps.next,
		Hands:      ps.hands,
	}
	if suit, ok := ps.Trumps(); ok {
		key.Trumps = SomeSuit(suit)
	}
	return key
}

// TTValue bounds the number of tricks the lead seat's axis can take from a
// position: at least AtLeast, at most AtMost.
type TTValue struct {
	AtLeast int
	AtMost  int
}

// TranspositionTable memoizes [TTValue] bounds by [TTKey], letting the
// search driver reuse work across subtrees reached via different move
// orders. It is an optimization only: a search run with no transposition
// table produces identical trick counts, only slower.
type TranspositionTable struct {
	table map[TTKey]TTValue
}

// NewTranspositionTable creates an empty transposition table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{table: make(map[TTKey]TTValue)}
}

// Lookup returns the bounds recorded for key, and false if none are recorded.
func (tt *TranspositionTable) Lookup(key TTKey) (TTValue, bool) {
	v, ok := tt.table[key]
	return v, ok
}

// UpdateUpperBound records that key's position is worth at most bound
// tricks, tightening any existing upper bound and widening the default
// lower bound of 0.
func (tt *TranspositionTable) UpdateUpperBound(key TTKey, bound int) {
	v, ok := tt.table[key]
	if !ok {
		v = TTValue{AtLeast: 0, AtMost: key.TricksLeft}
	}
	if bound < v.AtMost {
		v.AtMost = bound
	}
	tt.table[key] = v
}

// UpdateLowerBound records that key's position is worth at least bound
// tricks, tightening any existing lower bound and widening the default
// upper bound of key.TricksLeft.
func (tt *TranspositionTable) UpdateLowerBound(key TTKey, bound int) {
	v, ok := tt.table[key]
	if !ok {
		v = TTValue{AtLeast: 0, AtMost: key.TricksLeft}
	}
	if bound > v.AtLeast {
		v.AtLeast = bound
	}
	tt.table[key] = v
}

// Clear empties the table.
func (tt *TranspositionTable) Clear() {
	tt.table = make(map[TTKey]TTValue)
}

// Len returns the number of positions currently recorded.
func (tt *TranspositionTable) Len() int {
	return len(tt.table)
}
