package dds

import (
	"bytes"
	"fmt"
	"strings"
)

// Card is a playing card: a [Suit] and a [Rank].
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card for the given suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// FromString creates a card from a two-character string such as "AS" or "Tc".
// Returns [ErrInvalidCard] if s does not describe a valid card.
func FromString(s string) (Card, error) {
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	r := []rune(s)
	if len(r) != 2 {
		return Card{}, ErrInvalidCard
	}
	rank := RankFromRune(r[0])
	suit := SuitFromRune(r[1])
	if rank == InvalidRank || suit == InvalidSuit {
		return Card{}, ErrInvalidCard
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Parse parses whitespace-separated two-character card strings, ignoring
// case, such as "AS KS QS JS TS".
func Parse(s string) ([]Card, error) {
	var cards []Card
	for _, f := range strings.Fields(s) {
		c, err := FromString(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Must parses card strings as [Parse] does, panicking on any error.
func Must(s string) []Card {
	cards, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// UnmarshalText satisfies the [encoding.TextUnmarshaler] interface.
func (c *Card) UnmarshalText(buf []byte) error {
	card, err := FromString(string(buf))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// MarshalText satisfies the [encoding.TextMarshaler] interface.
func (c Card) MarshalText() ([]byte, error) {
	return []byte{c.Rank.Byte(), c.Suit.Byte()}, nil
}

// String satisfies the [fmt.Stringer] interface (ex: "AS", "Tc").
func (c Card) String() string {
	return string(c.Rank.Byte()) + string(c.Suit.Byte())
}

// Format satisfies the [fmt.Formatter] interface.
//
// Supported verbs:
//
//	s, v - rank and ASCII suit letter (ex: AS)
//	q    - same as s, quoted (ex: "AS")
//	b    - rank and black unicode suit pip (ex: A♠)
func (c Card) Format(f fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'v':
		buf = append(buf, c.Rank.Byte(), c.Suit.Byte())
	case 'q':
		buf = append(buf, '"', c.Rank.Byte(), c.Suit.Byte(), '"')
	case 'b':
		buf = append(buf, c.Rank.Byte())
		buf = append(buf, string(c.Suit.Unicode())...)
	default:
		buf = append(buf, fmt.Sprintf("%%!%c(ERROR=unknown verb, card: %s)", verb, c)...)
	}
	_, _ = f.Write(buf)
}

// CardFormatter wraps formatting a set of cards. Allows `go vet` to accept
// the custom verbs used by [Card.Format].
type CardFormatter []Card

// Format satisfies the [fmt.Formatter] interface.
func (v CardFormatter) Format(f fmt.State, verb rune) {
	_, _ = f.Write([]byte{'['})
	for i, c := range v {
		if i != 0 {
			_, _ = f.Write([]byte{' '})
		}
		c.Format(f, verb)
	}
	_, _ = f.Write([]byte{']'})
}

// VirtualCard is a card expressed with a [VirtualRank] rather than an
// absolute [Rank]. Two touching virtual cards of the same suit are
// strategically interchangeable for the remainder of the play.
type VirtualCard struct {
	Suit Suit
	Rank VirtualRank
}

// Touches reports whether vc and other are adjacent in the same suit's
// virtual ordering.
func (vc VirtualCard) Touches(other VirtualCard) bool {
	return vc.Suit == other.Suit && vc.Rank.Touches(other.Rank)
}

// String satisfies the [fmt.Stringer] interface.
func (vc VirtualCard) String() string {
	b := bytes.Buffer{}
	b.WriteString(vc.Rank.String())
	b.WriteString(vc.Suit.String())
	return b.String()
}
