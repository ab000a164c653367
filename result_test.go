package dds

import "testing"

func TestDoubleDummyResultSetGet(t *testing.T) {
	var r DoubleDummyResult
	r.Set(North, NoTrump, 7)
	r.Set(East, StrainSpades, 9)
	if got := r.Get(North, NoTrump); got != 7 {
		t.Errorf("Get(North, NoTrump) = %d, want 7", got)
	}
	if got := r.Get(East, StrainSpades); got != 9 {
		t.Errorf("Get(East, Spades) = %d, want 9", got)
	}
	if got := r.Get(South, NoTrump); got != 0 {
		t.Errorf("an unset cell must read back 0, got %d", got)
	}
}

func TestDoubleDummyResultStringMatchesClassicLayout(t *testing.T) {
	r := DoubleDummyResult{0, 1, 2, 3, 4, 1, 2, 3, 4, 5, 2, 3, 4, 5, 6, 3, 4, 5, 6, 7}
	want := "  NT ♠S ♥H ♦D ♣C\n" +
		"N  0  1  2  3  4 \n" +
		"E  1  2  3  4  5 \n" +
		"S  2  3  4  5  6 \n" +
		"W  3  4  5  6  7 \n"
	if got := r.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}
