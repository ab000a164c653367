package dds

import "math/bits"

// SuitField is a set of ranks within a single suit: bit i (0-12) set means
// rank i (Two=0 .. Ace=12) is present. It is the unit of storage for "the
// cards of suit X held by seat Y" and "the cards of suit X played so far".
type SuitField uint16

// EmptySuitField is the empty set of ranks.
const EmptySuitField SuitField = 0

// FullSuitField holds every rank of a suit.
const FullSuitField SuitField = (1 << NumRanks) - 1

// SuitFieldOf builds a SuitField from a list of ranks.
func SuitFieldOf(ranks ...Rank) SuitField {
	var f SuitField
	for _, r := range ranks {
		f = f.Add(r)
	}
	return f
}

// Add returns f with rank added.
func (f SuitField) Add(rank Rank) SuitField {
	return f | (1 << SuitField(rank))
}

// Remove returns f with rank removed.
func (f SuitField) Remove(rank Rank) SuitField {
	return f &^ (1 << SuitField(rank))
}

// Contains reports whether rank is present in f.
func (f SuitField) Contains(rank Rank) bool {
	return f&(1<<SuitField(rank)) != 0
}

// Count returns the number of ranks present in f.
func (f SuitField) Count() int {
	return bits.OnesCount16(uint16(f))
}

// IsVoid reports whether f holds no ranks.
func (f SuitField) IsVoid() bool {
	return f == 0
}

// Highest returns the highest rank in f, and false if f is void.
func (f SuitField) Highest() (Rank, bool) {
	if f == 0 {
		return InvalidRank, false
	}
	return Rank(bits.Len16(uint16(f)) - 1), true
}

// Lowest returns the lowest rank in f, and false if f is void.
func (f SuitField) Lowest() (Rank, bool) {
	if f == 0 {
		return InvalidRank, false
	}
	return Rank(bits.TrailingZeros16(uint16(f))), true
}

// Ranks returns the ranks present in f, from highest to lowest.
func (f SuitField) Ranks() []Rank {
	ranks := make([]Rank, 0, f.Count())
	for r := Ace; ; r-- {
		if f.Contains(r) {
			ranks = append(ranks, r)
		}
		if r == Two {
			break
		}
	}
	return ranks
}

// Union returns the set union of f and other.
func (f SuitField) Union(other SuitField) SuitField {
	return f | other
}

// Intersect returns the set intersection of f and other.
func (f SuitField) Intersect(other SuitField) SuitField {
	return f & other
}

// Diff returns the set difference f minus other.
func (f SuitField) Diff(other SuitField) SuitField {
	return f &^ other
}

// relativeTable[played][rank] is the VirtualRank of rank when played is the
// set of ranks of the suit already played by anyone, or OutOfPlay if rank
// itself is in played. Built once at init time: see SPEC_FULL.md §4.1.
var relativeTable [1 << NumRanks][NumRanks]VirtualRank

// absoluteTable[played][vrankIndex] is the inverse mapping: the absolute
// Rank that currently occupies virtual rank vrankIndex given played, or
// InvalidRank if no remaining rank maps there.
var absoluteTable [1 << NumRanks][NumRanks]Rank

func init() {
	for played := 0; played < 1<<NumRanks; played++ {
		pf := SuitField(played)
		for i := range absoluteTable[played] {
			absoluteTable[played][i] = InvalidRank
		}
		for r := Two; ; r++ {
			if pf.Contains(r) {
				relativeTable[played][r] = OutOfPlay
			} else {
				// relative_of(rank, played) = rank_index + popcount(played ranks above rank):
				// the top remaining card always lands on VirtualAce (12), whatever else
				// remains below it.
				vrankIdx := r.Index() + bits.OnesCount16(uint16(pf)>>uint(r.Index()))
				relativeTable[played][r] = VirtualRank(vrankIdx)
				absoluteTable[played][vrankIdx] = r
			}
			if r == Ace {
				break
			}
		}
	}
}

// RelativeOf returns the VirtualRank that rank currently occupies, given
// played (the set of ranks of this suit already played by anyone, absolute
// player irrelevant). Returns [OutOfPlay] if rank itself is in played.
func RelativeOf(rank Rank, played SuitField) VirtualRank {
	return relativeTable[played][rank]
}

// AbsoluteOf is the inverse of [RelativeOf]: it returns the absolute Rank
// that currently occupies vrank given played, and false if no remaining
// rank maps there (vrank is out of range of what remains).
func AbsoluteOf(vrank VirtualRank, played SuitField) (Rank, bool) {
	if vrank == OutOfPlay || int(vrank) >= NumRanks {
		return InvalidRank, false
	}
	r := absoluteTable[played][vrank]
	return r, r != InvalidRank
}
