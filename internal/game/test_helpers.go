package game

import (
	"fmt"

	"github.com/lox/holdem/poker"
)

// StackDeal builds a deck that deals the given hole cards (indexed by seat)
// and board for a hand with the given button, following the dealing order
// used by NewHand. Burn cards are taken from the unused cards.
func StackDeal(button int, holes []string, board string) (*poker.Deck, error) {
	n := len(holes)
	hands := make([]poker.HoleCards, n)
	used := poker.CardSet(0)
	for seat, text := range holes {
		hole, err := poker.ParseHoleCards(text)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
		hands[seat] = hole
		used = used.Union(hole.Set())
	}
	boardCards, err := poker.ParseCards(board)
	if err != nil {
		return nil, err
	}
	if len(boardCards) != 5 {
		return nil, fmt.Errorf("%w: stacked board needs 5 cards, got %d", poker.ErrInvalidArgument, len(boardCards))
	}
	used.AddAll(boardCards)
	burns := poker.Remaining(used)

	top := make([]poker.Card, 0, 2*n+8)
	for round := 0; round < 2; round++ {
		for i := 1; i <= n; i++ {
			top = append(top, hands[(button+i)%n][round])
		}
	}
	top = append(top, burns[0])
	top = append(top, boardCards[:3]...)
	top = append(top, burns[1], boardCards[3], burns[2], boardCards[4])
	return poker.NewStackedDeck(top)
}
