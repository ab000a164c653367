package dds

import "fmt"

// Suit is a card suit. The four suits are totally ordered Clubs < Diamonds <
// Hearts < Spades, matching the rank of a suit as a trump in Bridge bidding.
type Suit uint8

// Card suits.
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// InvalidSuit is an invalid card suit.
const InvalidSuit = ^Suit(0)

// Suits is every suit, in ascending order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// SuitFromRune returns a rune's card suit, accepting both ASCII letters and
// the black unicode suit pips.
func SuitFromRune(r rune) Suit {
	switch r {
	case 'C', 'c', '♣':
		return Clubs
	case 'D', 'd', '♦':
		return Diamonds
	case 'H', 'h', '♥':
		return Hearts
	case 'S', 's', '♠':
		return Spades
	}
	return InvalidSuit
}

// Index returns the suit's index (0-3, Clubs to Spades).
func (suit Suit) Index() int {
	return int(suit)
}

// Next returns the next suit in the bidding-ladder cycle: Clubs < Diamonds <
// Hearts < Spades < Clubs.
func (suit Suit) Next() Suit {
	return Suit((int(suit) + 1) % 4)
}

// Previous returns the previous suit in the bidding-ladder cycle.
func (suit Suit) Previous() Suit {
	return Suit((int(suit) + 3) % 4)
}

// Byte returns the suit's ASCII letter.
func (suit Suit) Byte() byte {
	switch suit {
	case Clubs:
		return 'C'
	case Diamonds:
		return 'D'
	case Hearts:
		return 'H'
	case Spades:
		return 'S'
	}
	return '0'
}

// Name returns the suit name.
func (suit Suit) Name() string {
	switch suit {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	return ""
}

// Unicode returns the suit's black unicode pip rune.
func (suit Suit) Unicode() rune {
	switch suit {
	case Clubs:
		return '♣'
	case Diamonds:
		return '♦'
	case Hearts:
		return '♥'
	case Spades:
		return '♠'
	}
	return '?'
}

// String satisfies the [fmt.Stringer] interface, returning the suit's black
// unicode pip (ex: ♠).
func (suit Suit) String() string {
	return string(suit.Unicode())
}

// Format satisfies the [fmt.Formatter] interface.
//
// Supported verbs:
//
//	s, v - unicode pip (ex: ♠)
//	c    - ASCII letter (ex: S)
//	t    - lower-cased name (ex: spade)
//	T    - title-cased name (ex: Spade)
func (suit Suit) Format(f fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'v':
		buf = append(buf, string(suit.Unicode())...)
	case 'c':
		buf = append(buf, suit.Byte())
	case 't':
		buf = append(buf, []byte(suit.Name())...)
		for i, b := range buf {
			if b >= 'A' && b <= 'Z' {
				buf[i] = b + ('a' - 'A')
			}
		}
	case 'T':
		buf = append(buf, []byte(suit.Name())...)
	default:
		buf = append(buf, fmt.Sprintf("%%!%c(ERROR=unknown verb, suit: %s)", verb, suit)...)
	}
	_, _ = f.Write(buf)
}
