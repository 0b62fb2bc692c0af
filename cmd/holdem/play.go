package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem/analysis"
	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/internal/tui"
	"github.com/lox/holdem/poker"
)

// PlayCmd runs hands where every seat is played from the same terminal.
type PlayCmd struct {
	Config  string `short:"c" help:"HCL table configuration file" default:"holdem.hcl" type:"path"`
	Players int    `short:"p" help:"Players at the table (overrides config)"`
	Samples int    `short:"n" help:"Samples for the hand strength estimate (overrides config)"`
	Seed    *int64 `help:"Random seed for reproducible deals (overrides config)"`
	Hands   int    `help:"Stop after this many hands (0 = until you quit)"`
}

// loadConfig reads the config file and applies flag overrides.
func (cmd *PlayCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return nil, err
	}
	if cmd.Players > 0 {
		cfg.Table.Players = cmd.Players
	}
	if cmd.Samples > 0 {
		cfg.Equity.Samples = cmd.Samples
	}
	if cmd.Seed != nil {
		cfg.Session.Seed = *cmd.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (cmd *PlayCmd) Run(e *env) error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}
	if !e.levelSet {
		lvl, _ := log.ParseLevel(cfg.Session.LogLevel)
		e.logger.SetLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprint(e.out, titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Fprintln(e.out)

	s := newSession(cfg, e)
	s.maxHands = cmd.Hands
	s.decide = func(ctx context.Context, info tui.TurnInfo, legal game.Legal) (game.Action, error) {
		return tui.Prompt(ctx, info, legal, e.logger, tea.WithInput(e.in), tea.WithOutput(e.out))
	}
	s.next = func(ctx context.Context) (bool, error) {
		return tui.Continue(ctx, e.logger, tea.WithInput(e.in), tea.WithOutput(e.out))
	}

	err = s.run(ctx)
	if errors.Is(err, tui.ErrQuit) {
		return nil
	}
	return err
}

// session plays consecutive hands at one table, moving the button each hand.
type session struct {
	cfg       *config.Config
	players   []*game.Player
	estimator *analysis.Estimator
	rng       *rand.Rand
	out       io.Writer
	logger    *log.Logger
	maxHands  int

	decide func(context.Context, tui.TurnInfo, game.Legal) (game.Action, error)
	next   func(context.Context) (bool, error)
}

func newSession(cfg *config.Config, e *env) *session {
	seed := cfg.Session.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}
	e.logger.Info("Starting session", "players", cfg.Table.Players, "blinds", fmt.Sprintf("%d/%d", cfg.Table.SmallBlind, cfg.Table.BigBlind), "seed", seed)

	opts := []analysis.Option{
		analysis.WithSeed(seed),
		analysis.WithLogger(e.logger),
		analysis.WithClock(e.clock),
	}
	if cfg.Equity.Workers > 0 {
		opts = append(opts, analysis.WithWorkers(cfg.Equity.Workers))
	}

	players := make([]*game.Player, cfg.Table.Players)
	for i := range players {
		players[i] = game.NewPlayer(fmt.Sprintf("Player %d", i), cfg.Table.StartingStack)
	}

	return &session{
		cfg:       cfg,
		players:   players,
		estimator: analysis.NewEstimator(opts...),
		rng:       randutil.New(seed),
		out:       e.out,
		logger:    e.logger.WithPrefix("play"),
	}
}

func (s *session) run(ctx context.Context) error {
	button := 0
	for hand := 1; s.maxHands == 0 || hand <= s.maxHands; hand++ {
		seated := s.seated()
		if len(seated) < 2 {
			fmt.Fprintf(s.out, "\n%s wins the table!\n", seated[0].Name)
			return nil
		}
		button %= len(seated)

		fmt.Fprintf(s.out, "\n%s\n", headerStyle.Render(fmt.Sprintf("Hand #%d", hand)))
		if err := s.playHand(ctx, seated, button); err != nil {
			return err
		}
		button++

		if s.maxHands != 0 && hand == s.maxHands {
			break
		}
		more, err := s.next(ctx)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

// seated returns the players who still have chips.
func (s *session) seated() []*game.Player {
	var seated []*game.Player
	for _, p := range s.players {
		if p.Stack > 0 {
			seated = append(seated, p)
		}
	}
	return seated
}

func (s *session) playHand(ctx context.Context, players []*game.Player, button int) error {
	h, err := game.NewHand(game.HandConfig{
		SmallBlind: s.cfg.Table.SmallBlind,
		BigBlind:   s.cfg.Table.BigBlind,
		Button:     button,
	}, players, poker.NewDeck(s.rng))
	if err != nil {
		return err
	}
	s.logger.Debug("Dealt hand", "button", h.Players[button].Name, "pot", h.Pot())

	fmt.Fprintf(s.out, "\n%s round:\n", streetTitle(h.Street))
	for !h.Done() {
		p, ok := h.ToAct()
		if !ok {
			if err := h.Advance(); err != nil {
				return err
			}
			if h.Street != game.Showdown {
				fmt.Fprintf(s.out, "\n%s round: %s\n", streetTitle(h.Street), tui.FormatCards(h.Board))
			}
			continue
		}

		action, err := s.decide(ctx, s.turnInfo(ctx, h, p), h.LegalActions())
		if err != nil {
			return err
		}
		if err := h.Apply(action); err != nil {
			// The prompt only offers legal actions, so ask again
			s.logger.Warn("Rejected action", "player", p.Name, "action", action, "error", err)
			continue
		}
		fmt.Fprintf(s.out, "%s: %s\n", p.Name, action)
	}

	return s.showdown(h)
}

// turnInfo gathers what the player to act sees, including their estimated
// hand strength against the other players still in the hand.
func (s *session) turnInfo(ctx context.Context, h *game.Hand, p *game.Player) tui.TurnInfo {
	info := tui.TurnInfo{
		Player: p.Name,
		Street: h.Street,
		Pot:    h.Pot(),
		Stack:  p.Stack,
		Hole:   p.Hole,
		Board:  h.Board,
	}

	inHand := 0
	for _, other := range h.Players {
		if other.InHand() {
			inHand++
		}
	}
	result, err := s.estimator.EstimateHand(ctx, p.Hole, inHand, h.Board, s.cfg.Equity.Samples)
	if err != nil {
		s.logger.Warn("Hand strength estimate failed", "player", p.Name, "error", err)
		return info
	}
	info.Strength = result.Equity()
	info.Samples = result.Trials
	return info
}

func (s *session) showdown(h *game.Hand) error {
	awards, err := h.Settle()
	if err != nil {
		return err
	}

	if h.Street == game.Showdown {
		fmt.Fprintf(s.out, "\nFinal hands:\n")
		fmt.Fprintf(s.out, "Board Cards: %s\n", tui.FormatCards(h.Board))
		for _, p := range h.Players {
			if !p.InHand() {
				continue
			}
			rank, err := h.Rank(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "%s: %s %s\n", p.Name, tui.FormatCards(p.Hole.Cards()), handStyle.Render(rank.String()))
		}
	}

	fmt.Fprintln(s.out)
	for _, award := range awards {
		names := make([]string, len(award.Winners))
		for i, seat := range award.Winners {
			names[i] = h.Players[seat].Name
		}
		pot := "the pot"
		if len(awards) > 1 {
			pot = "the main pot"
			if award.Pot > 0 {
				pot = fmt.Sprintf("side pot %d", award.Pot)
			}
		}
		if award.Shown {
			fmt.Fprintf(s.out, "%s %s %d from %s with %s\n", strings.Join(names, " and "), winVerb(len(names)), award.Amount, pot, award.Rank)
		} else {
			fmt.Fprintf(s.out, "%s %s %d from %s\n", strings.Join(names, " and "), winVerb(len(names)), award.Amount, pot)
		}
	}

	for _, p := range h.Players {
		s.logger.Debug("Stack after hand", "player", p.Name, "stack", p.Stack)
	}
	return nil
}

func winVerb(winners int) string {
	if winners > 1 {
		return "split"
	}
	return "wins"
}

func streetTitle(street game.Street) string {
	switch street {
	case game.Preflop:
		return "Pre-flop"
	default:
		name := street.String()
		return strings.ToUpper(name[:1]) + name[1:]
	}
}
