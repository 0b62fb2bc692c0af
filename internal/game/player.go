package game

import (
	"fmt"

	"github.com/lox/holdem/poker"
)

// PlayerStatus tracks whether a player is still contesting the hand.
type PlayerStatus int

const (
	Active PlayerStatus = iota
	Folded
)

func (s PlayerStatus) String() string {
	if s == Folded {
		return "folded"
	}
	return "active"
}

// Player represents a player in a hand
type Player struct {
	Seat      int
	Name      string
	Stack     int
	Hole      poker.HoleCards
	Status    PlayerStatus
	AllIn     bool
	Bet       int // Current bet in this round
	Committed int // Total put in the pot this hand
}

// NewPlayer creates a player with a stack.
func NewPlayer(name string, stack int) *Player {
	return &Player{Name: name, Stack: stack}
}

// Fold marks the player folded. A player can only fold once per hand.
func (p *Player) Fold() error {
	if p.Status == Folded {
		return fmt.Errorf("%w: %s has already folded", ErrIllegalAction, p.Name)
	}
	p.Status = Folded
	return nil
}

// InHand reports whether the player can still win the pot.
func (p *Player) InHand() bool {
	return p.Status == Active
}

// CanAct returns true if the player can still make betting decisions
func (p *Player) CanAct() bool {
	return p.Status == Active && !p.AllIn
}

// reset prepares the player for a new hand.
func (p *Player) reset(seat int) {
	p.Seat = seat
	p.Hole = poker.HoleCards{}
	p.Status = Active
	p.AllIn = p.Stack == 0
	p.Bet = 0
	p.Committed = 0
}

// commit moves up to amount chips from the stack into the current bet and
// returns how many moved.
func (p *Player) commit(amount int) int {
	amount = min(amount, p.Stack)
	p.Stack -= amount
	p.Bet += amount
	p.Committed += amount
	if p.Stack == 0 {
		p.AllIn = true
	}
	return amount
}
