package poker

import (
	"fmt"
	"strings"
	"unicode"
)

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the one letter text token for the suit (s, h, d, c).
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol used for display.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank, 2 through 14 (Ace high)
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank token (2-9, T, J, Q, K, A)
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankTokens[r-Two])
}

// Name returns the English name of the rank, e.g. "Queen".
func (r Rank) Name() string {
	if r < Two || r > Ace {
		return "Unknown"
	}
	return rankNames[r-Two]
}

// Plural returns the plural rank name, e.g. "Sixes".
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

const rankTokens = "23456789TJQKA"

var rankNames = [...]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

// Card is an immutable playing card. Two cards are equal iff rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two character text form, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Symbol returns the display form, e.g. "A♠".
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Valid reports whether the card is one of the 52 standard cards.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit <= Clubs
}

// index maps a card to its bit position (0-51).
func (c Card) index() uint {
	return uint(c.Rank-Two)*4 + uint(c.Suit)
}

// ParseCard parses the two character card text form, e.g. "As", "Td", "2c".
// Ranks: 2-9, T, J, Q, K, A. Suits: s, h, d, c (lowercase).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, &ParseError{Input: s, Reason: fmt.Sprintf("card must be 2 characters, got %d", len(s))}
	}
	rank, ok := ParseRank(s[0])
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown rank '%c'", s[0])}
	}
	suit, ok := ParseSuit(s[1])
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown suit '%c'", s[1])}
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", s, err))
	}
	return c
}

// ParseRank converts a rank token to a Rank.
func ParseRank(c byte) (Rank, bool) {
	i := strings.IndexByte(rankTokens, c)
	if i < 0 {
		return 0, false
	}
	return Two + Rank(i), true
}

// ParseSuit converts a lowercase suit token to a Suit.
func ParseSuit(c byte) (Suit, bool) {
	switch c {
	case 's':
		return Spades, true
	case 'h':
		return Hearts, true
	case 'd':
		return Diamonds, true
	case 'c':
		return Clubs, true
	default:
		return 0, false
	}
}

// ParseCards parses a list of cards in concatenated ("QsJs2d") or whitespace or
// comma separated ("Qs Js 2d") form. The same card may not appear twice.
func ParseCards(s string) ([]Card, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, s)
	if len(compact)%2 != 0 {
		return nil, &ParseError{Input: s, Reason: fmt.Sprintf("invalid card string length: %d (must be even)", len(compact))}
	}

	cards := make([]Card, 0, len(compact)/2)
	var seen CardSet
	for i := 0; i < len(compact); i += 2 {
		card, err := ParseCard(compact[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i/2+1, err)
		}
		if seen.Contains(card) {
			return nil, fmt.Errorf("%w: %s appears twice", ErrConflict, card)
		}
		seen.Add(card)
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards renders cards in text form separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
