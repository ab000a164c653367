package dds

import (
	"bytes"
	"fmt"
)

// DoubleDummyResult is the number of tricks each seat can take as declarer
// in each strain: 20 cells indexed 5*seat.Index()+strainColumn(strain).
//
// The column order matches the table's own rendering (NoTrump, Spades,
// Hearts, Diamonds, Clubs), so storage and display never disagree — see
// DESIGN.md for why this repository picked that single convention.
type DoubleDummyResult [20]int

// strainColumn returns s's column index in a DoubleDummyResult, matching
// the printed header order NT, S, H, D, C.
func strainColumn(s Strain) int {
	switch s {
	case NoTrump:
		return 0
	case StrainSpades:
		return 1
	case StrainHearts:
		return 2
	case StrainDiamonds:
		return 3
	default:
		return 4
	}
}

// Set records that seat can take n tricks as declarer in strain.
func (r *DoubleDummyResult) Set(seat Seat, strain Strain, n int) {
	r[5*seat.Index()+strainColumn(strain)] = n
}

// Get returns the number of tricks seat can take as declarer in strain.
func (r DoubleDummyResult) Get(seat Seat, strain Strain) int {
	return r[5*seat.Index()+strainColumn(strain)]
}

// String satisfies the [fmt.Stringer] interface, rendering the classic
// double-dummy table:
//
//	  NT ♠S ♥H ♦D ♣C
//	N  0  1  2  3  4
//	E  1  2  3  4  5
//	S  2  3  4  5  6
//	W  3  4  5  6  7
func (r DoubleDummyResult) String() string {
	var b bytes.Buffer
	b.WriteString("  NT ♠S ♥H ♦D ♣C\n")
	for _, seat := range Seats {
		b.WriteString(seat.String())
		for col := 0; col < 5; col++ {
			fmt.Fprintf(&b, "%3d", r[5*seat.Index()+col])
		}
		b.WriteString(" \n")
	}
	return b.String()
}
