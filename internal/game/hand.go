package game

import (
	"fmt"

	"github.com/lox/holdem/poker"
)

// HandConfig holds the table parameters for one hand.
type HandConfig struct {
	SmallBlind int
	BigBlind   int
	Button     int // Seat index of the dealer button
}

// Hand is the state of a single hand of no-limit hold'em. It owns the deck and
// the players' per-hand fields; nothing is shared between hands.
type Hand struct {
	Players []*Player
	Street  Street
	Board   []poker.Card

	cfg  HandConfig
	deck *poker.Deck
	pot  PotManager

	toAct      int // Seat to act, -1 once the betting round is closed
	currentBet int
	minRaise   int
	acted      []bool
	settled    bool
}

// NewHand seats the players, posts blinds and deals hole cards. Players keep
// their names and stacks; everything else is reset for the new hand.
func NewHand(cfg HandConfig, players []*Player, deck *poker.Deck) (*Hand, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 players, got %d", poker.ErrInvalidArgument, len(players))
	}
	if cfg.SmallBlind <= 0 || cfg.BigBlind < cfg.SmallBlind {
		return nil, fmt.Errorf("%w: blinds %d/%d", poker.ErrInvalidArgument, cfg.SmallBlind, cfg.BigBlind)
	}
	if cfg.Button < 0 || cfg.Button >= len(players) {
		return nil, fmt.Errorf("%w: button seat %d out of range", poker.ErrInvalidArgument, cfg.Button)
	}
	if deck == nil || deck.Remaining() < 2*len(players)+8 {
		return nil, fmt.Errorf("%w: not enough cards to deal %d players", poker.ErrInvalidArgument, len(players))
	}

	for seat, p := range players {
		if p.Stack <= 0 {
			return nil, fmt.Errorf("%w: %s has no chips", poker.ErrInvalidArgument, p.Name)
		}
		p.reset(seat)
	}

	h := &Hand{
		Players:  players,
		Street:   Preflop,
		cfg:      cfg,
		deck:     deck,
		minRaise: cfg.BigBlind,
		acted:    make([]bool, len(players)),
	}

	h.postBlinds()
	if err := h.dealHoleCards(); err != nil {
		return nil, err
	}
	h.toAct = -1
	if !h.bettingComplete() {
		h.toAct = h.nextToAct(h.BigBlindSeat() + 1)
	}
	return h, nil
}

// SmallBlindSeat returns the seat posting the small blind. Heads-up the
// button posts it.
func (h *Hand) SmallBlindSeat() int {
	if len(h.Players) == 2 {
		return h.cfg.Button
	}
	return h.seatAfter(h.cfg.Button, 1)
}

// BigBlindSeat returns the seat posting the big blind.
func (h *Hand) BigBlindSeat() int {
	return h.seatAfter(h.SmallBlindSeat(), 1)
}

// Button returns the dealer seat.
func (h *Hand) Button() int {
	return h.cfg.Button
}

func (h *Hand) seatAfter(seat, n int) int {
	return (seat + n) % len(h.Players)
}

func (h *Hand) postBlinds() {
	h.Players[h.SmallBlindSeat()].commit(h.cfg.SmallBlind)
	h.Players[h.BigBlindSeat()].commit(h.cfg.BigBlind)
	h.currentBet = h.cfg.BigBlind
	// Bets stay in player.Bet until the street is collected
}

// dealHoleCards deals one card at a time round the table, starting left of
// the button.
func (h *Hand) dealHoleCards() error {
	var cards [2][]poker.Card
	for round := range cards {
		cards[round] = make([]poker.Card, len(h.Players))
		for i := range h.Players {
			c, err := h.deck.DealOne()
			if err != nil {
				return err
			}
			cards[round][h.seatAfter(h.cfg.Button, i+1)] = c
		}
	}
	for seat, p := range h.Players {
		hole, err := poker.NewHoleCards(cards[0][seat], cards[1][seat])
		if err != nil {
			return err
		}
		p.Hole = hole
	}
	return nil
}

// ToAct returns the player whose decision is pending, or false when the
// betting round is closed.
func (h *Hand) ToAct() (*Player, bool) {
	if h.toAct < 0 || h.Done() {
		return nil, false
	}
	return h.Players[h.toAct], true
}

// LegalActions returns what the player to act may do.
func (h *Hand) LegalActions() Legal {
	p, ok := h.ToAct()
	if !ok {
		return Legal{}
	}
	return legalActions(p, h.currentBet, h.minRaise, h.cfg.BigBlind)
}

// Apply performs an action for the player to act.
func (h *Hand) Apply(a Action) error {
	p, ok := h.ToAct()
	if !ok {
		return fmt.Errorf("%w: no player to act", ErrIllegalAction)
	}
	if err := h.LegalActions().Validate(a); err != nil {
		return err
	}

	switch a.Kind {
	case Fold:
		if err := p.Fold(); err != nil {
			return err
		}

	case Check:
		// Nothing to do

	case Call:
		p.commit(h.currentBet - p.Bet)

	case Bet, Raise:
		target := a.Amount
		if a.Kind == Bet {
			target = p.Bet + a.Amount
		}
		p.commit(target - p.Bet)

		// An all-in short of a full raise does not change the minimum
		// raise for the players behind.
		if raise := p.Bet - h.currentBet; raise >= h.minRaise {
			h.minRaise = raise
		}
		h.currentBet = p.Bet

		// Reset acted flags when someone raises (everyone needs to act again)
		clear(h.acted)
	}

	h.acted[p.Seat] = true

	if h.bettingComplete() {
		h.toAct = -1
	} else {
		h.toAct = h.nextToAct(p.Seat + 1)
	}
	return nil
}

// bettingComplete checks if betting is complete for this street
func (h *Hand) bettingComplete() bool {
	if h.inHand() <= 1 {
		return true
	}

	canAct := 0
	for _, p := range h.Players {
		if !p.CanAct() {
			continue
		}
		canAct++
		if p.Bet < h.currentBet {
			return false
		}
	}

	// A lone player with chips behind has nobody left to bet against.
	if canAct <= 1 {
		return true
	}

	for _, p := range h.Players {
		if p.CanAct() && !h.acted[p.Seat] {
			return false
		}
	}
	return true
}

// nextToAct returns the first seat from start, clockwise, that still owes a
// decision this street.
func (h *Hand) nextToAct(start int) int {
	for i := range h.Players {
		seat := h.seatAfter(start, i)
		p := h.Players[seat]
		if p.CanAct() && (!h.acted[seat] || p.Bet < h.currentBet) {
			return seat
		}
	}
	return -1
}

func (h *Hand) inHand() int {
	n := 0
	for _, p := range h.Players {
		if p.InHand() {
			n++
		}
	}
	return n
}

// RoundComplete reports whether the current street's betting is closed.
func (h *Hand) RoundComplete() bool {
	return h.toAct < 0
}

// Done returns true once the hand needs no more actions or cards: everyone
// else folded or the showdown has been reached.
func (h *Hand) Done() bool {
	return h.Street == Showdown || h.inHand() <= 1
}

// Advance collects the street's bets and moves to the next street, burning a
// card and dealing three cards for the flop and one each for turn and river.
func (h *Hand) Advance() error {
	if h.Done() {
		return fmt.Errorf("%w: hand is over", ErrIllegalAction)
	}
	if !h.RoundComplete() {
		return fmt.Errorf("%w: betting on the %s is still open", ErrIllegalAction, h.Street)
	}

	h.pot.CollectBets(h.Players)

	deal := map[Street]int{Preflop: 3, Flop: 1, Turn: 1}[h.Street]
	if deal > 0 {
		if err := h.deck.Burn(); err != nil {
			return err
		}
		cards, err := h.deck.Deal(deal)
		if err != nil {
			return err
		}
		h.Board = append(h.Board, cards...)
	}
	h.Street++

	h.currentBet = 0
	h.minRaise = h.cfg.BigBlind
	clear(h.acted)
	if h.Street == Showdown || h.bettingComplete() {
		h.toAct = -1
	} else {
		h.toAct = h.nextToAct(h.cfg.Button + 1)
	}
	return nil
}

// Pot returns every chip in the middle, including bets not yet collected.
func (h *Hand) Pot() int {
	total := h.pot.Total()
	for _, p := range h.Players {
		total += p.Bet
	}
	return total
}

// Pots returns the main pot and any side pots.
func (h *Hand) Pots() []Pot {
	return BuildPots(h.Players)
}

// CurrentBet returns the highest bet on this street.
func (h *Hand) CurrentBet() int {
	return h.currentBet
}
