package poker

import "fmt"

// Evaluate ranks the best five card hand that can be made from the hole cards
// and the board. The board may hold 0, 3, 4 or 5 cards; with an empty board the
// two hole cards are ranked on their own (pair or high card), which is only
// meaningful for display.
func Evaluate(hole HoleCards, board []Card) (HandRank, error) {
	if _, err := NewHoleCards(hole[0], hole[1]); err != nil {
		return HandRank{}, err
	}
	if err := ValidateBoard(board); err != nil {
		return HandRank{}, err
	}

	var cards [7]Card
	cards[0], cards[1] = hole[0], hole[1]
	n := 2 + copy(cards[2:], board)
	if err := CheckDistinct(cards[:n]); err != nil {
		return HandRank{}, err
	}
	return evaluateUnchecked(cards[:n]), nil
}

// MustEvaluate evaluates and panics on error (for tests)
func MustEvaluate(hole HoleCards, board []Card) HandRank {
	rank, err := Evaluate(hole, board)
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate %s on %s: %v", hole, FormatCards(board), err))
	}
	return rank
}

// EvaluateCards ranks the best five card hand from 5 to 7 distinct cards.
func EvaluateCards(cards []Card) (HandRank, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return HandRank{}, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, len(cards))
	}
	if err := CheckDistinct(cards); err != nil {
		return HandRank{}, err
	}
	return evaluateUnchecked(cards), nil
}

// ValidateBoard checks the community card count is one that can be evaluated.
func ValidateBoard(board []Card) error {
	switch len(board) {
	case 0, 3, 4, 5:
		return nil
	default:
		return fmt.Errorf("%w: board must have 0, 3, 4 or 5 cards, got %d", ErrInvalidHand, len(board))
	}
}

// CheckDistinct reports invalid cards (ErrInvalidHand) and repeated cards
// (ErrConflict).
func CheckDistinct(cards []Card) error {
	var seen CardSet
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: invalid card %s", ErrInvalidHand, c)
		}
		if seen.Contains(c) {
			return fmt.Errorf("%w: %s used twice", ErrConflict, c)
		}
		seen.Add(c)
	}
	return nil
}

// evaluateUnchecked takes the maximum over every five card subset. Inputs
// shorter than five cards are ranked on rank groups alone.
func evaluateUnchecked(cards []Card) HandRank {
	if len(cards) < 5 {
		return rankGroups(cards, false)
	}

	var best HandRank
	var hand [5]Card
	for i, combo := range fiveCardSubsets[len(cards)] {
		for j, idx := range combo {
			hand[j] = cards[idx]
		}
		rank := Evaluate5(hand)
		if i == 0 || rank.Beats(best) {
			best = rank
		}
	}
	return best
}

// Evaluate5 ranks exactly five cards.
func Evaluate5(cards [5]Card) HandRank {
	return rankGroups(cards[:], true)
}

// rankGroups computes category and tiebreak from rank multiplicities. Straights
// and flushes are only considered for complete five card hands.
func rankGroups(cards []Card, five bool) HandRank {
	var counts [Ace + 1]uint8
	var mask uint16
	flush := five
	for i, c := range cards {
		counts[c.Rank]++
		mask |= 1 << c.Rank
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	// Distinct ranks ordered by multiplicity, then rank, both descending.
	var groups [5]Rank
	var sizes [5]uint8
	n := 0
	for size := uint8(4); size >= 1; size-- {
		for r := Ace; r >= Two; r-- {
			if counts[r] == size && n < len(groups) {
				groups[n] = r
				sizes[n] = size
				n++
			}
		}
	}

	var high Rank
	if five && n == 5 {
		high = straightHigh(mask)
	}

	h := HandRank{Tiebreak: groups}
	switch {
	case high != 0 && flush:
		h.Category = StraightFlush
		h.Tiebreak = [5]Rank{high}
	case sizes[0] == 4:
		h.Category = FourOfAKind
	case sizes[0] == 3 && sizes[1] >= 2:
		h.Category = FullHouse
	case flush:
		h.Category = Flush
	case high != 0:
		h.Category = Straight
		h.Tiebreak = [5]Rank{high}
	case sizes[0] == 3:
		h.Category = ThreeOfAKind
	case sizes[0] == 2 && sizes[1] == 2:
		h.Category = TwoPair
	case sizes[0] == 2:
		h.Category = Pair
	default:
		h.Category = HighCard
	}
	return h
}

const wheelMask = 1<<Ace | 1<<Two | 1<<Three | 1<<Four | 1<<Five

// straightHigh returns the high card of a five rank straight, or 0. The wheel
// (A-2-3-4-5) plays the Ace low and is Five high.
func straightHigh(mask uint16) Rank {
	if mask == wheelMask {
		return Five
	}
	for high := Ace; high >= Six; high-- {
		run := uint16(0x1F) << (high - 4)
		if mask == run {
			return high
		}
	}
	return 0
}

// fiveCardSubsets[n] lists the index sets of every 5 card subset of n cards:
// C(5,5)=1, C(6,5)=6, C(7,5)=21.
var fiveCardSubsets = func() [8][][5]int {
	var table [8][][5]int
	for n := 5; n <= 7; n++ {
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				for c := b + 1; c < n; c++ {
					for d := c + 1; d < n; d++ {
						for e := d + 1; e < n; e++ {
							table[n] = append(table[n], [5]int{a, b, c, d, e})
						}
					}
				}
			}
		}
	}
	return table
}()
