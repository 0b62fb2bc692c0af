package game

import (
	"fmt"

	"github.com/lox/holdem/poker"
)

// Award records chips paid from one pot.
type Award struct {
	Pot     int   // Index into Pots()
	Amount  int   // Chips in the pot
	Winners []int // Seats sharing it, in payout order
	Shares  []int // Chips paid to each winner
	Rank    poker.HandRank
	Shown   bool // False when the pot was won without a showdown
}

// Rank evaluates a player's best hand with the current board.
func (h *Hand) Rank(p *Player) (poker.HandRank, error) {
	return poker.Evaluate(p.Hole, h.Board)
}

// Winners returns the players holding the best hand among those still in.
// With one player left it returns that player without a showdown.
func (h *Hand) Winners() ([]*Player, error) {
	if !h.Done() {
		return nil, fmt.Errorf("%w: hand is still in progress", ErrIllegalAction)
	}
	seats := make([]int, 0, len(h.Players))
	for _, p := range h.Players {
		if p.InHand() {
			seats = append(seats, p.Seat)
		}
	}
	best, _, err := h.bestHands(seats)
	if err != nil {
		return nil, err
	}
	winners := make([]*Player, len(best))
	for i, seat := range best {
		winners[i] = h.Players[seat]
	}
	return winners, nil
}

// bestHands returns the seats tied for the best hand, ordered clockwise from
// the seat left of the button.
func (h *Hand) bestHands(seats []int) ([]int, poker.HandRank, error) {
	ordered := h.buttonOrder(seats)
	if len(ordered) == 1 || h.Street != Showdown {
		return ordered, poker.HandRank{}, nil
	}

	var best []int
	var bestRank poker.HandRank
	for _, seat := range ordered {
		rank, err := h.Rank(h.Players[seat])
		if err != nil {
			return nil, poker.HandRank{}, err
		}
		switch cmp := rank.Compare(bestRank); {
		case len(best) == 0 || cmp > 0:
			best = []int{seat}
			bestRank = rank
		case cmp == 0:
			best = append(best, seat)
		}
	}
	return best, bestRank, nil
}

// buttonOrder sorts seats clockwise starting left of the button.
func (h *Hand) buttonOrder(seats []int) []int {
	ordered := make([]int, 0, len(seats))
	for i := 1; i <= len(h.Players); i++ {
		seat := h.seatAfter(h.cfg.Button, i)
		for _, s := range seats {
			if s == seat {
				ordered = append(ordered, seat)
				break
			}
		}
	}
	return ordered
}

// Settle pays out every pot once the hand is over. Split pots are divided
// evenly; odd chips go one at a time to the winners closest to the left of
// the button.
func (h *Hand) Settle() ([]Award, error) {
	if !h.Done() {
		return nil, fmt.Errorf("%w: hand is still in progress", ErrIllegalAction)
	}
	if h.settled {
		return nil, fmt.Errorf("%w: hand already settled", ErrIllegalAction)
	}

	h.pot.CollectBets(h.Players)
	pots := h.Pots()
	awards := make([]Award, 0, len(pots))
	for i, pot := range pots {
		winners, rank, err := h.bestHands(pot.Eligible)
		if err != nil {
			return nil, err
		}

		award := Award{
			Pot:     i,
			Amount:  pot.Amount,
			Winners: winners,
			Shares:  make([]int, len(winners)),
			Rank:    rank,
			Shown:   h.Street == Showdown && len(pot.Eligible) > 1,
		}
		share, odd := pot.Amount/len(winners), pot.Amount%len(winners)
		for j, seat := range winners {
			award.Shares[j] = share
			if j < odd {
				award.Shares[j]++
			}
			h.Players[seat].Stack += award.Shares[j]
		}
		awards = append(awards, award)
	}

	h.settled = true
	return awards, nil
}
