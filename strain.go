package dds

// Strain is what a contract is played in: a trump suit, or no trump. Strain
// is totally ordered Clubs < Diamonds < Hearts < Spades < NoTrump.
type Strain uint8

// Strains. The numeric values double as the column index used by
// [DoubleDummyResult]: see its doc comment.
const (
	StrainClubs Strain = iota
	StrainDiamonds
	StrainHearts
	StrainSpades
	NoTrump
)

// Strains is every strain, in ascending order.
var Strains = [5]Strain{StrainClubs, StrainDiamonds, StrainHearts, StrainSpades, NoTrump}

// TrumpStrain returns the Strain that plays suit as trumps.
func TrumpStrain(suit Suit) Strain {
	return Strain(suit)
}

// IsNoTrump reports whether s is the no-trump strain.
func (s Strain) IsNoTrump() bool {
	return s == NoTrump
}

// TrumpSuit returns the trump suit of s, and false if s is [NoTrump].
func (s Strain) TrumpSuit() (Suit, bool) {
	if s == NoTrump {
		return InvalidSuit, false
	}
	return Suit(s), true
}

// Next returns the next strain in the bidding ladder: a trump suit advances
// to the next suit, Spades advances to NoTrump, and NoTrump wraps to Clubs.
func (s Strain) Next() Strain {
	if s == NoTrump {
		return StrainClubs
	}
	if s == StrainSpades {
		return NoTrump
	}
	return Strain(Suit(s).Next())
}

// Previous is the inverse of [Strain.Next].
func (s Strain) Previous() Strain {
	if s == StrainClubs {
		return NoTrump
	}
	if s == NoTrump {
		return StrainSpades
	}
	return Strain(Suit(s).Previous())
}

// String satisfies the [fmt.Stringer] interface.
func (s Strain) String() string {
	if s == NoTrump {
		return "NT"
	}
	return Suit(s).String()
}

// StrainFromRune returns a rune's strain; 'N'/'n' maps to [NoTrump].
func StrainFromRune(r rune) Strain {
	if r == 'N' || r == 'n' {
		return NoTrump
	}
	suit := SuitFromRune(r)
	if suit == InvalidSuit {
		return InvalidStrain
	}
	return Strain(suit)
}

// InvalidStrain is an invalid strain.
const InvalidStrain = ^Strain(0)
