package poker

import "fmt"

// HoleCards is a player's two private cards. Order is kept for display only;
// evaluation treats them as a set.
type HoleCards [2]Card

// NewHoleCards validates and builds hole cards.
func NewHoleCards(a, b Card) (HoleCards, error) {
	if !a.Valid() || !b.Valid() {
		return HoleCards{}, fmt.Errorf("%w: invalid card in %s%s", ErrInvalidHand, a, b)
	}
	if a == b {
		return HoleCards{}, fmt.Errorf("%w: hole cards must be distinct, got %s twice", ErrInvalidHand, a)
	}
	return HoleCards{a, b}, nil
}

// ParseHoleCards parses exactly two cards, e.g. "AsKd".
func ParseHoleCards(s string) (HoleCards, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return HoleCards{}, err
	}
	return HoleCardsFromSlice(cards)
}

// HoleCardsFromSlice converts a slice that must contain exactly two cards.
func HoleCardsFromSlice(cards []Card) (HoleCards, error) {
	if len(cards) != 2 {
		return HoleCards{}, fmt.Errorf("%w: need exactly 2 hole cards, got %d", ErrInvalidHand, len(cards))
	}
	return NewHoleCards(cards[0], cards[1])
}

// MustParseHoleCards parses hole cards and panics on error (for tests)
func MustParseHoleCards(s string) HoleCards {
	h, err := ParseHoleCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hole cards '%s': %v", s, err))
	}
	return h
}

// Cards returns the hole cards as a slice.
func (h HoleCards) Cards() []Card {
	return []Card{h[0], h[1]}
}

// Set returns the hole cards as a CardSet.
func (h HoleCards) Set() CardSet {
	return NewCardSet(h[0], h[1])
}

func (h HoleCards) String() string {
	return h[0].String() + h[1].String()
}

// Symbol returns the display form, e.g. "A♠ K♦".
func (h HoleCards) Symbol() string {
	return h[0].Symbol() + " " + h[1].Symbol()
}

// Class returns the starting hand class: "AA", "AKs" or "AKo".
func (h HoleCards) Class() string {
	hi, lo := h[0], h[1]
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}
	if hi.Rank == lo.Rank {
		return hi.Rank.String() + lo.Rank.String()
	}
	suffix := "o"
	if hi.Suit == lo.Suit {
		suffix = "s"
	}
	return hi.Rank.String() + lo.Rank.String() + suffix
}
