package poker

import (
	"fmt"
	rand "math/rand/v2"
)

var standardDeck = func() [52]Card {
	var cards [52]Card
	i := 0
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return cards
}()

// Standard returns the 52 card deck in a fixed order (suit-major, Two to Ace).
func Standard() []Card {
	cards := standardDeck
	return cards[:]
}

// Remaining returns the standard deck minus the excluded cards, preserving order.
func Remaining(excluded CardSet) []Card {
	cards := make([]Card, 0, 52-excluded.Len())
	for _, c := range standardDeck {
		if !excluded.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

// Shuffle shuffles cards in place using Fisher-Yates
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Partial shuffles only the first n positions of cards, which then hold a
// uniformly random n-card prefix of a random permutation.
func Partial(cards []Card, n int, rng *rand.Rand) {
	if n > len(cards) {
		n = len(cards)
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deck is a dealer's deck: a shuffled standard deck with a deal position.
// It is the only card container that tracks which cards have been used.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: standardDeck, rng: rng}
	d.Shuffle()
	return d
}

// Shuffle collects all cards and shuffles the deck
func (d *Deck) Shuffle() {
	d.cards = standardDeck
	d.next = 0
	Shuffle(d.cards[:], d.rng)
}

// Deal deals n cards from the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: cannot deal %d cards, %d remaining", ErrInvalidArgument, n, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Burn discards the top card.
func (d *Deck) Burn() error {
	_, err := d.Deal(1)
	return err
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Dealt returns every card that has left the deck, burns included.
func (d *Deck) Dealt() CardSet {
	return NewCardSet(d.cards[:d.next]...)
}

// NewStackedDeck returns a deck that deals the given cards first, in order,
// followed by the rest of the standard deck. Shuffling it restores a random
// order. It exists for replaying known deals.
func NewStackedDeck(top []Card) (*Deck, error) {
	if err := CheckDistinct(top); err != nil {
		return nil, err
	}
	d := &Deck{rng: rand.New(rand.NewPCG(0, 0))}
	n := copy(d.cards[:], top)
	copy(d.cards[n:], Remaining(NewCardSet(top...)))
	return d, nil
}
