// Package game drives a single hand of no-limit Texas Hold'em.
//
// The main type is Hand, which owns the deck, the board, the betting state
// and the pots for one hand. Players carry their stacks between hands.
//
// # Basic Usage
//
//	players := []*game.Player{game.NewPlayer("You", 10000), game.NewPlayer("Bot", 10000)}
//	h, err := game.NewHand(game.HandConfig{SmallBlind: 200, BigBlind: 400}, players, poker.NewDeck(rng))
//	for !h.Done() {
//	    if _, ok := h.ToAct(); ok {
//	        err = h.Apply(game.Action{Kind: game.Call})
//	        continue
//	    }
//	    err = h.Advance() // burn and deal the next street
//	}
//	awards, err := h.Settle()
//
// # Deterministic Testing
//
// Pass a deck built with poker.NewStackedDeck to replay a known deal. Hole
// cards are dealt one at a time starting left of the button, and each street
// burns one card before the board cards.
package game
