package dds

import "testing"

func TestRankFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Rank
	}{
		{'2', Two}, {'9', Nine}, {'T', Ten}, {'t', Ten},
		{'J', Jack}, {'Q', Queen}, {'K', King}, {'A', Ace},
		{'z', InvalidRank},
	}
	for _, test := range tests {
		if got := RankFromRune(test.r); got != test.want {
			t.Errorf("RankFromRune(%q) = %v, want %v", test.r, got, test.want)
		}
	}
}

func TestRankByteRoundTrip(t *testing.T) {
	for r := Two; ; r++ {
		if got := RankFromRune(rune(r.Byte())); got != r {
			t.Errorf("RankFromRune(%c.Byte()) = %v, want %v", r.Byte(), got, r)
		}
		if r == Ace {
			break
		}
	}
}

func TestRankOrder(t *testing.T) {
	if !(Two < Three && Ten < Jack && King < Ace) {
		t.Fatal("ranks must be totally ordered Two < Three < ... < Ace")
	}
}
