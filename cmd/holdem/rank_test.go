package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/poker"
)

func TestRankCmd(t *testing.T) {
	tests := []struct {
		name     string
		hole     string
		board    string
		expected string
	}{
		{"set on the turn", "KsKh", "QsJs2dKd", "Three of a Kind, Kings"},
		{"wheel", "As2d", "3c4h5s9dTc", "Straight, Five high"},
		{"flush", "AsTs", "Qs7s2sKd3c", "Flush, Ace high"},
		{"pocket pair preflop", "7h7d", "", "Pair of Sevens"},
		{"full house", "QhQd", "Qs7h7d2c3c", "Full House, Queens over Sevens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, out := testEnv(t)
			cmd := &RankCmd{Hole: tt.hole, Board: tt.board}
			require.NoError(t, cmd.Run(e))
			assert.Contains(t, out.String(), tt.expected)
		})
	}
}

func TestRankCmdErrors(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
		err   error
	}{
		{"bad hole card", "KsXx", "", poker.ErrParse},
		{"three hole cards", "KsKhKd", "", poker.ErrInvalidHand},
		{"board of two", "KsKh", "2c3c", poker.ErrInvalidHand},
		{"shared card", "KsKh", "Ks7d2c", poker.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := testEnv(t)
			err := (&RankCmd{Hole: tt.hole, Board: tt.board}).Run(e)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
