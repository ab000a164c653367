package dds

import "testing"

func TestSeatCycle(t *testing.T) {
	seat := North
	for i := 0; i < 4; i++ {
		next := seat.Next()
		if next.Previous() != seat {
			t.Errorf("%s.Next().Previous() must equal %s", seat, seat)
		}
		seat = next
	}
	if seat != North {
		t.Errorf("four Next() calls from North must return to North, got %s", seat)
	}
}

func TestSeatPartnerAndAxis(t *testing.T) {
	tests := []struct {
		seat    Seat
		partner Seat
		axis    Axis
	}{
		{North, South, NorthSouth},
		{South, North, NorthSouth},
		{East, West, EastWest},
		{West, East, EastWest},
	}
	for _, test := range tests {
		if got := test.seat.Partner(); got != test.partner {
			t.Errorf("%s.Partner() = %s, want %s", test.seat, got, test.partner)
		}
		if got := test.seat.Axis(); got != test.axis {
			t.Errorf("%s.Axis() = %s, want %s", test.seat, got, test.axis)
		}
	}
}

func TestAxisPlayersAndOther(t *testing.T) {
	if p := NorthSouth.Players(); p != [2]Seat{North, South} {
		t.Errorf("NorthSouth.Players() = %v, want [North South]", p)
	}
	if NorthSouth.Other() != EastWest || EastWest.Other() != NorthSouth {
		t.Error("Other() must be involutive across the two axes")
	}
	if !NorthSouth.HasSeat(North) || NorthSouth.HasSeat(East) {
		t.Error("HasSeat must only match seats of that axis")
	}
}

func TestSeatFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Seat
	}{
		{'N', North}, {'e', East}, {'S', South}, {'w', West}, {'z', InvalidSeat},
	}
	for _, test := range tests {
		if got := SeatFromRune(test.r); got != test.want {
			t.Errorf("SeatFromRune(%q) = %v, want %v", test.r, got, test.want)
		}
	}
}
