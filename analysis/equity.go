package analysis

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/poker"
)

const maxWorkers = 8

// Request describes one equity estimate.
type Request struct {
	// Hero is the hero's hand or range. Exact hole cards are written as a
	// literal, e.g. "KsKh".
	Hero RangeSpec
	// Players counts everyone at showdown, hero included.
	Players int
	// Board holds the known community cards: 0, 3, 4 or 5 of them.
	Board []poker.Card
	// BoardTarget is the board size hands are evaluated at (3 to 5). Zero
	// means a full five card board.
	BoardTarget int
	// Samples is the number of trials to run.
	Samples int
}

// Estimator runs Monte Carlo equity simulations on a pool of workers. It holds
// no state between calls and is safe for concurrent use.
type Estimator struct {
	workers int
	seed    int64
	seeded  bool
	clock   quartz.Clock
	logger  *log.Logger
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithWorkers sets how many goroutines share the trials.
func WithWorkers(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithSeed makes every estimate reproducible for a given request and worker
// count.
func WithSeed(seed int64) Option {
	return func(e *Estimator) {
		e.seed = seed
		e.seeded = true
	}
}

// WithClock sets the clock used to time estimates.
func WithClock(clock quartz.Clock) Option {
	return func(e *Estimator) {
		e.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Estimator) {
		e.logger = logger
	}
}

// NewEstimator creates an estimator. By default it uses one worker per CPU (at
// most 8), a real clock, a fresh seed per estimate and no logging.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{
		workers: min(runtime.NumCPU(), maxWorkers),
		clock:   quartz.NewReal(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EstimateHand estimates equity for exact hole cards against players-1 random
// hands on a completed board.
func (e *Estimator) EstimateHand(ctx context.Context, hole poker.HoleCards, players int, board []poker.Card, samples int) (EquityResult, error) {
	return e.Estimate(ctx, Request{
		Hero:        RangeSpec(hole.String()),
		Players:     players,
		Board:       board,
		BoardTarget: 5,
		Samples:     samples,
	})
}

// Estimate samples random completions of the deal consistent with the known
// cards and counts how often the hero wins, ties or loses. Opponents hold
// uniformly random hands.
//
// If ctx is cancelled the workers stop starting new trials and Estimate
// returns the partial counts together with ctx.Err().
func (e *Estimator) Estimate(ctx context.Context, req Request) (EquityResult, error) {
	j, err := newJob(req)
	if err != nil {
		return EquityResult{}, err
	}

	seed := e.seed
	if !e.seeded {
		seed = randutil.Seed()
	}
	workers := max(1, min(e.workers, req.Samples))

	e.logger.Debug("estimating equity",
		"hero", req.Hero,
		"combos", len(j.hands),
		"players", req.Players,
		"board", poker.FormatCards(req.Board),
		"samples", req.Samples,
		"workers", workers)

	start := e.clock.Now()

	// Divide samples among workers
	samplesPerWorker := req.Samples / workers
	remainder := req.Samples % workers
	tallies := make([]tally, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		workerSamples := samplesPerWorker
		if w < remainder {
			workerSamples++ // Distribute remainder samples
		}

		g.Go(func() error {
			t, err := j.run(ctx, workerSamples, randutil.Stream(seed, w))
			tallies[w] = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	result := j.merge(tallies)
	result.Requested = req.Samples
	result.Duration = e.clock.Since(start)

	if err := ctx.Err(); err != nil {
		e.logger.Warn("estimate cancelled", "trials", result.Trials, "requested", result.Requested)
		return result, err
	}

	e.logger.Debug("estimate complete",
		"trials", result.Trials,
		"win", fmt.Sprintf("%.3f", result.WinRate()),
		"tie", fmt.Sprintf("%.3f", result.TieRate()),
		"duration", result.Duration)
	return result, nil
}

// job is a validated request, shared read-only by the workers.
type job struct {
	hands     []poker.HoleCards
	classOf   []int
	classes   []string
	board     []poker.Card
	base      []poker.Card
	opponents int
	target    int
	draw      int
}

func newJob(req Request) (*job, error) {
	if req.Samples <= 0 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d", poker.ErrInvalidArgument, req.Samples)
	}
	if req.Players < 2 {
		return nil, fmt.Errorf("%w: need at least 2 players, got %d", poker.ErrInvalidArgument, req.Players)
	}
	if err := poker.ValidateBoard(req.Board); err != nil {
		return nil, err
	}
	if err := poker.CheckDistinct(req.Board); err != nil {
		return nil, err
	}

	target := req.BoardTarget
	if target == 0 {
		target = 5
	}
	if target < 3 || target > 5 || target < len(req.Board) {
		return nil, fmt.Errorf("%w: board target %d with %d cards on board", poker.ErrInvalidArgument, req.BoardTarget, len(req.Board))
	}

	known := poker.NewCardSet(req.Board...)
	hands, err := Expand(req.Hero, known)
	if err != nil {
		return nil, err
	}

	j := &job{
		hands:     hands,
		classOf:   make([]int, len(hands)),
		board:     req.Board,
		base:      poker.Remaining(known),
		opponents: req.Players - 1,
		target:    target,
	}
	j.draw = 2*j.opponents + target - len(req.Board)
	if j.draw > len(j.base)-2 {
		return nil, fmt.Errorf("%w: %d players need %d cards, only %d left", poker.ErrInvalidArgument, req.Players, j.draw, len(j.base)-2)
	}

	index := map[string]int{}
	for i, h := range hands {
		class := h.Class()
		id, ok := index[class]
		if !ok {
			id = len(j.classes)
			index[class] = id
			j.classes = append(j.classes, class)
		}
		j.classOf[i] = id
	}
	return j, nil
}

// tally holds one worker's counts.
type tally struct {
	wins, ties, losses int
	classes            []ClassResult
}

// run plays up to samples trials, stopping early if ctx is done.
func (j *job) run(ctx context.Context, samples int, rng *rand.Rand) (tally, error) {
	t := tally{classes: make([]ClassResult, len(j.classes))}

	deck := make([]poker.Card, 0, len(j.base))
	board := make([]poker.Card, j.target)
	copy(board, j.board)

	for i := 0; i < samples; i++ {
		if ctx.Err() != nil {
			break
		}

		h := rng.IntN(len(j.hands))
		hero := j.hands[h]

		deck = deck[:0]
		for _, c := range j.base {
			if c != hero[0] && c != hero[1] {
				deck = append(deck, c)
			}
		}
		poker.Partial(deck, j.draw, rng)

		dealt := 2 * j.opponents
		copy(board[len(j.board):], deck[dealt:j.draw])

		heroRank, err := poker.Evaluate(hero, board)
		if err != nil {
			return t, err
		}

		var best poker.HandRank
		for o := 0; o < j.opponents; o++ {
			oppRank, err := poker.Evaluate(poker.HoleCards{deck[2*o], deck[2*o+1]}, board)
			if err != nil {
				return t, err
			}
			if o == 0 || oppRank.Beats(best) {
				best = oppRank
			}
		}

		class := &t.classes[j.classOf[h]]
		class.Trials++
		switch heroRank.Compare(best) {
		case 1:
			t.wins++
			class.Wins++
		case 0:
			t.ties++
			class.Ties++
		default:
			t.losses++
			class.Losses++
		}
	}
	return t, nil
}

func (j *job) merge(tallies []tally) EquityResult {
	var result EquityResult
	classes := make([]ClassResult, len(j.classes))
	for _, t := range tallies {
		result.Wins += t.wins
		result.Ties += t.ties
		result.Losses += t.losses
		for i, c := range t.classes {
			classes[i].Wins += c.Wins
			classes[i].Ties += c.Ties
			classes[i].Losses += c.Losses
			classes[i].Trials += c.Trials
		}
	}
	result.Trials = result.Wins + result.Ties + result.Losses

	result.Classes = make(map[string]ClassResult, len(classes))
	for i, c := range classes {
		result.Classes[j.classes[i]] = c
	}
	return result
}
