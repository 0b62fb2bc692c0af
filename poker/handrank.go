package poker

import "fmt"

// Category enumerates the classes of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories lists every category from weakest to strongest.
var Categories = [...]Category{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the strength of the best five card hand. Ranks are totally
// ordered: first by Category, then lexicographically by Tiebreak.
//
// Tiebreak holds rank values by significance, unused slots are zero:
//
//	StraightFlush, Straight  [high]  (the wheel A-2-3-4-5 has high Five)
//	FourOfAKind              [quads, kicker]
//	FullHouse                [trips, pair]
//	Flush, HighCard          [five ranks, descending]
//	ThreeOfAKind             [trips, kicker, kicker]
//	TwoPair                  [high pair, low pair, kicker]
//	Pair                     [pair, kicker, kicker, kicker]
type HandRank struct {
	Category Category
	Tiebreak [5]Rank
}

// Compare returns -1 if h is weaker than other, 0 if equal, 1 if h is stronger.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category < other.Category {
			return -1
		}
		return 1
	}
	for i := range h.Tiebreak {
		if h.Tiebreak[i] < other.Tiebreak[i] {
			return -1
		}
		if h.Tiebreak[i] > other.Tiebreak[i] {
			return 1
		}
	}
	return 0
}

// Less reports whether h is strictly weaker than other.
func (h HandRank) Less(other HandRank) bool {
	return h.Compare(other) < 0
}

// Equal reports whether the two hands tie.
func (h HandRank) Equal(other HandRank) bool {
	return h.Compare(other) == 0
}

// Beats reports whether h is strictly stronger than other.
func (h HandRank) Beats(other HandRank) bool {
	return h.Compare(other) > 0
}

// String returns a description such as "Full House, Kings over Twos".
func (h HandRank) String() string {
	t := h.Tiebreak
	switch h.Category {
	case StraightFlush:
		if t[0] == Ace {
			return "Royal Flush"
		}
		return fmt.Sprintf("Straight Flush, %s high", t[0].Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", t[0].Plural())
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", t[0].Plural(), t[1].Plural())
	case Flush:
		return fmt.Sprintf("Flush, %s high", t[0].Name())
	case Straight:
		return fmt.Sprintf("Straight, %s high", t[0].Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", t[0].Plural())
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", t[0].Plural(), t[1].Plural())
	case Pair:
		return fmt.Sprintf("Pair of %s", t[0].Plural())
	case HighCard:
		return fmt.Sprintf("High Card, %s", t[0].Name())
	default:
		return "Unknown"
	}
}
