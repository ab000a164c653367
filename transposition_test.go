package dds

import "testing"

func TestTranspositionTableBoundsNarrow(t *testing.T) {
	tt := NewTranspositionTable()
	key := TTKey{TricksLeft: 3, Trumps: NoTrumpSuit, Lead: North}
	if _, ok := tt.Lookup(key); ok {
		t.Fatal("a fresh table must report no entry for any key")
	}
	tt.UpdateUpperBound(key, 2)
	v, ok := tt.Lookup(key)
	if !ok || v.AtMost != 2 || v.AtLeast != 0 {
		t.Errorf("after UpdateUpperBound(2): %+v, %v", v, ok)
	}
	tt.UpdateLowerBound(key, 1)
	v, ok = tt.Lookup(key)
	if !ok || v.AtMost != 2 || v.AtLeast != 1 {
		t.Errorf("after UpdateLowerBound(1): %+v, %v", v, ok)
	}
	// A looser upper bound must never widen an existing tighter one.
	tt.UpdateUpperBound(key, 3)
	if v, _ := tt.Lookup(key); v.AtMost != 2 {
		t.Errorf("a looser UpdateUpperBound must not widen AtMost, got %d", v.AtMost)
	}
}

func TestTranspositionTableClear(t *testing.T) {
	tt := NewTranspositionTable()
	key := TTKey{TricksLeft: 1, Trumps: SomeSuit(Hearts), Lead: South}
	tt.UpdateLowerBound(key, 1)
	if tt.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tt.Len())
	}
	tt.Clear()
	if tt.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", tt.Len())
	}
}

func TestKeyForDistinguishesTrump(t *testing.T) {
	deal := mustDeal(t, "AS 2H", "KS KH", "QS QH", "JS JH")
	noTrump := NewPlayState(deal, North, NoTrump)
	trump := NewPlayState(deal, North, TrumpStrain(Hearts))
	if KeyFor(noTrump) == KeyFor(trump) {
		t.Error("positions differing only in trump suit must hash to different TTKeys")
	}
}
