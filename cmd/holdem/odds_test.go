package main

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/analysis"
	"github.com/lox/holdem/poker"
)

func TestOddsCmd(t *testing.T) {
	seed := int64(42)

	t.Run("exact hand", func(t *testing.T) {
		e, out := testEnv(t)
		cmd := &OddsCmd{Hero: "AsAh", Players: 2, Samples: 2000, Workers: 2, Seed: &seed}
		require.NoError(t, cmd.Run(e))

		text := out.String()
		assert.Contains(t, text, "AsAh")
		assert.Contains(t, text, "equity")
		assert.Contains(t, text, "2000/2000 samples in 0s")
		assert.NotContains(t, text, "class")
	})

	t.Run("board is shown", func(t *testing.T) {
		e, out := testEnv(t)
		cmd := &OddsCmd{Hero: "KsKh", Players: 3, Board: "QsJs2d", Samples: 500, Seed: &seed}
		require.NoError(t, cmd.Run(e))
		assert.Contains(t, out.String(), "board")
		assert.Contains(t, out.String(), "Qs")
	})

	t.Run("range shows class breakdown", func(t *testing.T) {
		e, out := testEnv(t)
		cmd := &OddsCmd{Hero: "AA,72o", Players: 2, Samples: 1000, Workers: 2, Seed: &seed}
		require.NoError(t, cmd.Run(e))

		text := out.String()
		assert.Contains(t, text, "class")
		assert.Contains(t, text, "AA")
		assert.Contains(t, text, "72o")
		classes := text[strings.Index(text, "class"):]
		assert.Less(t, strings.Index(classes, "AA"), strings.Index(classes, "72o"), "stronger class listed first")
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			cmd  OddsCmd
			err  error
		}{
			{"bad range", OddsCmd{Hero: "AZ", Players: 2, Samples: 10}, poker.ErrParse},
			{"bad board", OddsCmd{Hero: "AA", Board: "Qs7", Players: 2, Samples: 10}, poker.ErrParse},
			{"short board", OddsCmd{Hero: "AA", Board: "Qs7d", Players: 2, Samples: 10}, poker.ErrInvalidHand},
			{"hero on board", OddsCmd{Hero: "AsAh", Board: "As7d2c", Players: 2, Samples: 10}, poker.ErrConflict},
			{"one player", OddsCmd{Hero: "AA", Players: 1, Samples: 10}, poker.ErrInvalidArgument},
			{"no samples", OddsCmd{Hero: "AA", Players: 2}, poker.ErrInvalidArgument},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				e, _ := testEnv(t)
				err := tt.cmd.Run(e)
				assert.ErrorIs(t, err, tt.err)
			})
		}
	})
}

func TestOddsCancelledEstimateKeepsPartialResult(t *testing.T) {
	e, _ := testEnv(t)
	seed := int64(1)
	cmd := &OddsCmd{Hero: "QQ", Players: 4, Samples: 1000, Seed: &seed}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := cmd.estimate(ctx, e, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1000, result.Requested)
	assert.Equal(t, 0, result.Trials)
}

// stopAfter reports cancellation once Err has been called n times.
type stopAfter struct {
	context.Context
	remaining atomic.Int64
}

func (c *stopAfter) Err() error {
	if c.remaining.Add(-1) < 0 {
		return context.Canceled
	}
	return nil
}

func TestOddsInterruptedMidwayRendersPartialResult(t *testing.T) {
	e, out := testEnv(t)
	seed := int64(1)
	cmd := &OddsCmd{Hero: "QQ", Players: 4, Samples: 1000, Workers: 2, Seed: &seed}

	ctx := &stopAfter{Context: context.Background()}
	ctx.remaining.Store(250)
	result, err := cmd.estimate(ctx, e, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 250, result.Trials)
	assert.False(t, result.Complete())
	assert.InDelta(t, 1.0, result.WinRate()+result.TieRate()+result.LossRate(), 1e-9)

	renderOdds(e.out, "QQ", nil, result)
	assert.Contains(t, out.String(), "250/1000 samples")
}

func TestRenderOdds(t *testing.T) {
	result := analysis.EquityResult{
		Wins: 600, Ties: 100, Losses: 300, Trials: 1000, Requested: 1000,
		Duration: 1500 * time.Millisecond,
	}

	e, out := testEnv(t)
	renderOdds(e.out, "KK", poker.MustParseCards("QsJs2d"), result)

	text := out.String()
	assert.Contains(t, text, "60.0%")
	assert.Contains(t, text, "10.0%")
	assert.Contains(t, text, "30.0%")
	assert.Contains(t, text, "65.0%")
	assert.Contains(t, text, "1000/1000 samples in 1.5s")
}
