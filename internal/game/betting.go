package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lox/holdem/poker"
)

// ErrIllegalAction is returned when an action breaks the betting rules or is
// made out of turn.
var ErrIllegalAction = errors.New("illegal action")

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// ActionKind identifies a betting decision.
type ActionKind int

const (
	Check ActionKind = iota
	Call
	Bet
	Raise
	Fold
)

func (a ActionKind) String() string {
	return [...]string{"check", "call", "bet", "raise", "fold"}[a]
}

// HasAmount reports whether the action needs a chip amount.
func (a ActionKind) HasAmount() bool {
	return a == Bet || a == Raise
}

// Action is a player decision. Amount is the bet size for Bet and the total
// the player raises to on this street for Raise; other kinds ignore it.
type Action struct {
	Kind   ActionKind
	Amount int
}

func (a Action) String() string {
	switch a.Kind {
	case Bet:
		return fmt.Sprintf("bet %d", a.Amount)
	case Raise:
		return fmt.Sprintf("raise to %d", a.Amount)
	default:
		return a.Kind.String()
	}
}

// ParseActionKind reads an action name: "check", "call", "bet", "raise",
// "fold" or their first letter. "x" also checks.
func ParseActionKind(text string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "check", "k", "x":
		return Check, nil
	case "call", "c":
		return Call, nil
	case "bet", "b":
		return Bet, nil
	case "raise", "r":
		return Raise, nil
	case "fold", "f":
		return Fold, nil
	}
	return 0, &poker.ParseError{Input: text, Reason: "unknown action"}
}

// ParseAction reads an action name with the amount used by bets and raises.
func ParseAction(text string, amount int) (Action, error) {
	kind, err := ParseActionKind(text)
	if err != nil {
		return Action{}, err
	}
	if kind.HasAmount() && amount <= 0 {
		return Action{}, fmt.Errorf("%w: %s needs a positive amount", poker.ErrInvalidArgument, kind)
	}
	if !kind.HasAmount() {
		amount = 0
	}
	return Action{Kind: kind, Amount: amount}, nil
}

// Legal describes what the player to act may do. MinAmount and MaxAmount bound
// the amount of a Bet or Raise; MaxAmount is always the all-in amount.
type Legal struct {
	Kinds     []ActionKind
	ToCall    int
	MinAmount int
	MaxAmount int
}

// Allows reports whether the action kind is available.
func (l Legal) Allows(kind ActionKind) bool {
	return slices.Contains(l.Kinds, kind)
}

// legalActions applies no-limit rules to one player. currentBet is the highest
// bet on this street and minRaise the size of the last full bet or raise.
func legalActions(p *Player, currentBet, minRaise, bigBlind int) Legal {
	toCall := currentBet - p.Bet
	allIn := p.Bet + p.Stack

	if toCall <= 0 {
		legal := Legal{Kinds: []ActionKind{Check}}
		switch {
		case p.Stack == 0:
		case currentBet == 0:
			legal.Kinds = append(legal.Kinds, Bet)
			legal.MinAmount = min(bigBlind, p.Stack)
			legal.MaxAmount = p.Stack
		default:
			// The big blind's option: the blind already counts as a bet
			legal.Kinds = append(legal.Kinds, Raise)
			legal.MinAmount = min(currentBet+minRaise, allIn)
			legal.MaxAmount = allIn
		}
		return legal
	}

	legal := Legal{Kinds: []ActionKind{Call}, ToCall: min(toCall, p.Stack)}
	if p.Stack > toCall {
		legal.Kinds = append(legal.Kinds, Raise)
		legal.MinAmount = min(currentBet+minRaise, allIn)
		legal.MaxAmount = allIn
	}
	legal.Kinds = append(legal.Kinds, Fold)
	return legal
}

// Validate checks an action against the legal set for the player.
func (l Legal) Validate(a Action) error {
	if !l.Allows(a.Kind) {
		return fmt.Errorf("%w: cannot %s now", ErrIllegalAction, a.Kind)
	}
	if !a.Kind.HasAmount() {
		return nil
	}
	if a.Amount > l.MaxAmount {
		return fmt.Errorf("%w: %s of %d exceeds the %d available", ErrIllegalAction, a.Kind, a.Amount, l.MaxAmount)
	}
	if a.Amount < l.MinAmount {
		return fmt.Errorf("%w: minimum %s is %d", ErrIllegalAction, a.Kind, l.MinAmount)
	}
	return nil
}
