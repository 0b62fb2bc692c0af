package poker

import (
	rand "math/rand/v2"
	"testing"

	reference "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// toReference converts a card to the reference evaluator's encoding, where the
// Ace is rank 1.
func toReference(t *testing.T, c Card) reference.Card {
	t.Helper()
	rank := int(c.Rank)
	if c.Rank == Ace {
		rank = 1
	}
	rc, err := reference.MakeCard(reference.Suit(c.Suit), reference.Rank(rank))
	require.NoError(t, err)
	return rc
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// The subset evaluator must order random seven card hands exactly like an
// independent lookup-table evaluator.
func TestEvaluateMatchesReference(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(2024, 10))
	cards := Standard()

	draw := func() ([]Card, int16) {
		Partial(cards, 7, rng)
		seven := append([]Card(nil), cards[:7]...)
		var ref [7]reference.Card
		for i, c := range seven {
			ref[i] = toReference(t, c)
		}
		return seven, reference.Eval7(&ref)
	}

	for i := 0; i < 3000; i++ {
		a, refA := draw()
		b, refB := draw()

		rankA, err := EvaluateCards(a)
		require.NoError(t, err)
		rankB, err := EvaluateCards(b)
		require.NoError(t, err)

		want := sign(int(refA) - int(refB))
		require.Equal(t, want, rankA.Compare(rankB),
			"%s (%s) vs %s (%s)", FormatCards(a), rankA, FormatCards(b), rankB)
	}
}
