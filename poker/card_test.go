package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank)
	assert.Equal(t, Spades, aceSpades.Suit)
	assert.Equal(t, "As", aceSpades.String())
	assert.Equal(t, "A♠", aceSpades.Symbol())

	twoClubs := NewCard(Two, Clubs)
	assert.Equal(t, "2c", twoClubs.String())
	assert.True(t, NewCard(Ten, Hearts).Suit.IsRed())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten of clubs", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "nine of spades", input: "9s", wantCard: NewCard(Nine, Spades)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "uppercase suit", input: "AS", wantErr: true},
		{name: "numeric ten", input: "10s", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "one character", input: "A", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrParse)
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.input, perr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCard, card)
		})
	}
}

func TestCardTextRoundTrip(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, c := range Standard() {
		text := c.String()
		require.Len(t, text, 2)
		parsed, err := ParseCard(text)
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.Equal(t, text, parsed.String())
		seen[text] = true
	}
	assert.Len(t, seen, 52)
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	t.Run("concatenated", func(t *testing.T) {
		cards, err := ParseCards("QsJs2d")
		require.NoError(t, err)
		assert.Equal(t, []Card{NewCard(Queen, Spades), NewCard(Jack, Spades), NewCard(Two, Diamonds)}, cards)
	})

	t.Run("separated", func(t *testing.T) {
		cards, err := ParseCards(" Qs Js, 2d ")
		require.NoError(t, err)
		assert.Equal(t, "Qs Js 2d", FormatCards(cards))
	})

	t.Run("empty", func(t *testing.T) {
		cards, err := ParseCards("")
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("odd length", func(t *testing.T) {
		_, err := ParseCards("QsJ")
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := ParseCards("QsQs")
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestCardSet(t *testing.T) {
	t.Parallel()
	as := MustParseCard("As")
	kd := MustParseCard("Kd")

	var cs CardSet
	assert.False(t, cs.Contains(as))
	cs.Add(as)
	cs.Add(kd)
	cs.Add(as)
	assert.True(t, cs.Contains(as))
	assert.Equal(t, 2, cs.Len())
	assert.Equal(t, "{As Kd}", cs.String())

	cs.Remove(as)
	assert.False(t, cs.Contains(as))
	assert.True(t, cs.Intersects(NewCardSet(kd)))
	assert.False(t, cs.Intersects(NewCardSet(as)))

	all := NewCardSet(Standard()...)
	assert.Equal(t, 52, all.Len())
	assert.Equal(t, Standard(), all.Cards())
}

func TestHoleCards(t *testing.T) {
	t.Parallel()

	h, err := ParseHoleCards("KsAh")
	require.NoError(t, err)
	assert.Equal(t, "KsAh", h.String(), "input order is preserved")
	assert.Equal(t, "AKo", h.Class())

	_, err = ParseHoleCards("AsAs")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = ParseHoleCards("As")
	assert.ErrorIs(t, err, ErrInvalidHand)

	_, err = ParseHoleCards("AsKsQs")
	assert.ErrorIs(t, err, ErrInvalidHand)

	_, err = NewHoleCards(MustParseCard("7d"), MustParseCard("7d"))
	assert.ErrorIs(t, err, ErrInvalidHand)

	classes := map[string]string{
		"AsAh": "AA",
		"Ts9s": "T9s",
		"2c7d": "72o",
		"9h9c": "99",
	}
	for input, want := range classes {
		assert.Equal(t, want, MustParseHoleCards(input).Class(), input)
	}
}
