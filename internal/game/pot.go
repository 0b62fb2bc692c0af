package game

import "slices"

// Pot represents a pot (main or side)
type Pot struct {
	Amount   int
	Eligible []int // Seat numbers eligible for this pot
}

// PotManager tracks chips that have been collected from finished streets.
type PotManager struct {
	collected int
}

// Total returns the chips collected so far
func (pm *PotManager) Total() int {
	return pm.collected
}

// CollectBets collects street bets from players into the pot
func (pm *PotManager) CollectBets(players []*Player) {
	for _, player := range players {
		if player.Bet > 0 {
			pm.collected += player.Bet
			player.Bet = 0
		}
	}
}

// BuildPots splits everything the players committed into a main pot and side
// pots. Each all-in level among players still in the hand closes a pot that
// only players who matched it can win. Chips from folded players go into the
// pots they contributed to.
func BuildPots(players []*Player) []Pot {
	var levels []int
	for _, p := range players {
		if p.InHand() && p.Committed > 0 && !slices.Contains(levels, p.Committed) {
			levels = append(levels, p.Committed)
		}
	}
	slices.Sort(levels)

	var pots []Pot
	previous := 0
	for i, level := range levels {
		last := i == len(levels)-1
		var pot Pot
		for _, p := range players {
			contribution := min(p.Committed, level) - min(p.Committed, previous)
			if last {
				contribution = max(p.Committed-previous, 0)
			}
			pot.Amount += contribution
			if p.InHand() && p.Committed >= level {
				pot.Eligible = append(pot.Eligible, p.Seat)
			}
		}
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
		previous = level
	}
	return pots
}
