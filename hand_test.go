package dds

import (
	"errors"
	"testing"
)

func TestNewHandValidation(t *testing.T) {
	cards := Must("AS KS QS")
	if _, err := NewHand(3, cards); err != nil {
		t.Fatalf("NewHand with matching size returned error: %v", err)
	}
	if _, err := NewHand(2, cards); !errors.Is(err, ErrWrongHandSize) {
		t.Errorf("NewHand with wrong size returned %v, want %v", err, ErrWrongHandSize)
	}
	dup := Must("AS AS QS")
	if _, err := NewHand(3, dup); !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("NewHand with a duplicate card returned %v, want %v", err, ErrDuplicateCard)
	}
}

func TestNewDealValidation(t *testing.T) {
	north, _ := NewHand(2, Must("AS KS"))
	east, _ := NewHand(2, Must("AH KH"))
	south, _ := NewHand(2, Must("AD KD"))
	west, _ := NewHand(2, Must("AC KC"))
	if _, err := NewDeal([4]Hand{north, east, south, west}); err != nil {
		t.Fatalf("NewDeal with four disjoint equal hands returned error: %v", err)
	}

	shortWest, _ := NewHand(1, Must("AC"))
	if _, err := NewDeal([4]Hand{north, east, south, shortWest}); !errors.Is(err, ErrWrongHandSize) {
		t.Errorf("NewDeal with mismatched hand sizes returned %v, want %v", err, ErrWrongHandSize)
	}

	dupWest, _ := NewHand(2, Must("AS KC"))
	if _, err := NewDeal([4]Hand{north, east, south, dupWest}); !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("NewDeal with a card held twice returned %v, want %v", err, ErrDuplicateCard)
	}
}

func TestHandCardsDescending(t *testing.T) {
	h, err := NewHand(3, Must("2S AS KS"))
	if err != nil {
		t.Fatalf("NewHand returned error: %v", err)
	}
	cards := h.Cards()
	want := Must("AS KS 2S")
	for i, c := range want {
		if cards[i] != c {
			t.Errorf("Cards()[%d] = %v, want %v", i, cards[i], c)
		}
	}
}
