package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/poker"
)

func TestParseAction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		text    string
		amount  int
		want    Action
		wantErr error
	}{
		{text: "check", want: Action{Kind: Check}},
		{text: " Call ", amount: 500, want: Action{Kind: Call}},
		{text: "x", want: Action{Kind: Check}},
		{text: "f", want: Action{Kind: Fold}},
		{text: "bet", amount: 400, want: Action{Kind: Bet, Amount: 400}},
		{text: "r", amount: 1200, want: Action{Kind: Raise, Amount: 1200}},
		{text: "bet", amount: 0, wantErr: poker.ErrInvalidArgument},
		{text: "raise", amount: -1, wantErr: poker.ErrInvalidArgument},
		{text: "shove", wantErr: poker.ErrParse},
		{text: "", wantErr: poker.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseAction(tt.text, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "raise to 1200", Action{Kind: Raise, Amount: 1200}.String())
	assert.Equal(t, "bet 400", Action{Kind: Bet, Amount: 400}.String())
	assert.Equal(t, "fold", Action{Kind: Fold}.String())
	assert.Equal(t, "turn", Turn.String())
}

func TestLegalActionsRules(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		player     Player
		currentBet int
		minRaise   int
		want       Legal
	}{
		{
			name:       "open street",
			player:     Player{Stack: 1000},
			currentBet: 0, minRaise: 100,
			want: Legal{Kinds: []ActionKind{Check, Bet}, MinAmount: 100, MaxAmount: 1000},
		},
		{
			name:       "open street short stack",
			player:     Player{Stack: 60},
			currentBet: 0, minRaise: 100,
			want: Legal{Kinds: []ActionKind{Check, Bet}, MinAmount: 60, MaxAmount: 60},
		},
		{
			name:       "facing a bet",
			player:     Player{Stack: 1000},
			currentBet: 300, minRaise: 300,
			want: Legal{Kinds: []ActionKind{Call, Raise, Fold}, ToCall: 300, MinAmount: 600, MaxAmount: 1000},
		},
		{
			name:       "raise capped by stack",
			player:     Player{Stack: 500, Bet: 100},
			currentBet: 300, minRaise: 300,
			want: Legal{Kinds: []ActionKind{Call, Raise, Fold}, ToCall: 200, MinAmount: 600, MaxAmount: 600},
		},
		{
			name:       "all in to call",
			player:     Player{Stack: 250},
			currentBet: 300, minRaise: 300,
			want: Legal{Kinds: []ActionKind{Call, Fold}, ToCall: 250},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, legalActions(&tt.player, tt.currentBet, tt.minRaise, 100))
		})
	}
}
