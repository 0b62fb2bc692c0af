package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectBets(t *testing.T) {
	t.Parallel()

	players := []*Player{
		{Seat: 0, Stack: 80, Bet: 20},
		{Seat: 1, Stack: 70, Bet: 30},
		{Seat: 2, Stack: 60, Bet: 40},
	}

	var pm PotManager
	pm.CollectBets(players)

	// Bets should be collected into pot
	if pm.Total() != 90 {
		t.Errorf("Pot should be 90 (20+30+40), got %d", pm.Total())
	}

	// Player bets should be cleared
	for i, p := range players {
		if p.Bet != 0 {
			t.Errorf("Player %d bet should be 0 after collection, got %d", i, p.Bet)
		}
	}
}

func TestBuildPots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		committed []int
		folded    []bool
		want      []Pot
	}{
		{
			name:      "no all-in",
			committed: []int{100, 100, 100},
			want:      []Pot{{Amount: 300, Eligible: []int{0, 1, 2}}},
		},
		{
			name:      "one short all-in",
			committed: []int{50, 200, 200},
			want: []Pot{
				{Amount: 150, Eligible: []int{0, 1, 2}},
				{Amount: 300, Eligible: []int{1, 2}},
			},
		},
		{
			name:      "two all-in levels",
			committed: []int{50, 120, 300, 300},
			want: []Pot{
				{Amount: 200, Eligible: []int{0, 1, 2, 3}},
				{Amount: 210, Eligible: []int{1, 2, 3}},
				{Amount: 360, Eligible: []int{2, 3}},
			},
		},
		{
			name:      "folded chips stay in the pot",
			committed: []int{400, 100, 400},
			folded:    []bool{false, true, false},
			want:      []Pot{{Amount: 900, Eligible: []int{0, 2}}},
		},
		{
			name:      "folded player above an all-in",
			committed: []int{100, 300, 300},
			folded:    []bool{false, true, false},
			want: []Pot{
				{Amount: 300, Eligible: []int{0, 2}},
				{Amount: 400, Eligible: []int{2}},
			},
		},
		{
			name:      "uncalled bet returns to the bettor",
			committed: []int{400, 1000},
			want: []Pot{
				{Amount: 800, Eligible: []int{0, 1}},
				{Amount: 600, Eligible: []int{1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := make([]*Player, len(tt.committed))
			for i, c := range tt.committed {
				players[i] = &Player{Seat: i, Committed: c}
				if tt.folded != nil && tt.folded[i] {
					players[i].Status = Folded
				}
			}
			pots := BuildPots(players)
			assert.Equal(t, tt.want, pots)

			total := 0
			for _, p := range pots {
				total += p.Amount
			}
			sum := 0
			for _, c := range tt.committed {
				sum += c
			}
			assert.Equal(t, sum, total, "chips are conserved")
		})
	}
}
