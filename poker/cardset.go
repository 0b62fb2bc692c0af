package poker

import (
	"math/bits"
	"strings"
)

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to a bit: index = (rank-2)*4 + suit
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.index()
}

// AddAll adds every card to the set
func (cs *CardSet) AddAll(cards []Card) {
	for _, card := range cards {
		cs.Add(card)
	}
}

// Remove removes a card from the set
func (cs *CardSet) Remove(card Card) {
	*cs &^= 1 << card.index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.index()) != 0
}

// Union returns the cards in either set.
func (cs CardSet) Union(other CardSet) CardSet {
	return cs | other
}

// Intersects reports whether the sets share any card.
func (cs CardSet) Intersects(other CardSet) bool {
	return cs&other != 0
}

// Len returns the number of cards in the set
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Cards returns the cards in the set in deck order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Len())
	for _, c := range Standard() {
		if cs.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

func (cs CardSet) String() string {
	parts := make([]string, 0, cs.Len())
	for _, c := range cs.Cards() {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
