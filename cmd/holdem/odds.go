package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem/analysis"
	"github.com/lox/holdem/internal/tui"
	"github.com/lox/holdem/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// OddsCmd estimates how often a hand or range wins against random hands.
type OddsCmd struct {
	Hero    string        `arg:"" help:"Hero hand or range (e.g. 'KsKh', 'AKs,QQ+', 'random')"`
	Players int           `short:"p" help:"Players in the hand, including the hero" default:"2"`
	Board   string        `short:"b" help:"Community board cards (e.g. 'QsJs2d')"`
	Samples int           `short:"n" help:"Number of Monte Carlo samples" default:"10000"`
	Workers int           `short:"w" help:"Sampling workers (0 = one per CPU)"`
	Seed    *int64        `help:"Random seed for reproducible results"`
	Timeout time.Duration `help:"Stop sampling after this long and report what was sampled (0 = no limit)"`
}

func (cmd *OddsCmd) Run(e *env) error {
	board, err := poker.ParseCards(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	result, err := cmd.estimate(ctx, e, board)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		e.logger.Warn("Sampling stopped early", "trials", result.Trials, "requested", result.Requested)
	case err != nil:
		return err
	}

	renderOdds(e.out, cmd.Hero, board, result)
	return nil
}

func (cmd *OddsCmd) estimate(ctx context.Context, e *env, board []poker.Card) (analysis.EquityResult, error) {
	opts := []analysis.Option{
		analysis.WithLogger(e.logger),
		analysis.WithClock(e.clock),
	}
	if cmd.Workers > 0 {
		opts = append(opts, analysis.WithWorkers(cmd.Workers))
	}
	if cmd.Seed != nil {
		opts = append(opts, analysis.WithSeed(*cmd.Seed))
	}

	return analysis.NewEstimator(opts...).Estimate(ctx, analysis.Request{
		Hero:        analysis.RangeSpec(cmd.Hero),
		Players:     cmd.Players,
		Board:       board,
		BoardTarget: 5,
		Samples:     cmd.Samples,
	})
}

func percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

func renderOdds(out io.Writer, hero string, board []poker.Card, result analysis.EquityResult) {
	if len(board) > 0 {
		fmt.Fprintf(out, "%s\n", headerStyle.Render("board"))
		fmt.Fprintf(out, "%s\n\n", tui.FormatCards(board))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("loss"),
		headerStyle.Render("equity"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		handStyle.Render(hero),
		winStyle.Render(percent(result.WinRate())),
		tieStyle.Render(percent(result.TieRate())),
		lossStyle.Render(percent(result.LossRate())),
		percent(result.Equity()))
	w.Flush()

	if len(result.Classes) > 1 {
		fmt.Fprintln(out)
		renderClasses(out, result.Classes)
	}

	lower, upper := result.ConfidenceInterval()
	fmt.Fprintf(out, "\nwin rate 95%% interval %s - %s\n", percent(lower), percent(upper))
	fmt.Fprintf(out, "%d/%d samples in %v\n", result.Trials, result.Requested, result.Duration.Truncate(time.Millisecond))
}

// renderClasses prints one row per starting hand class in the hero's range,
// strongest win rate first.
func renderClasses(out io.Writer, classes map[string]analysis.ClassResult) {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(classes[b].WinRate(), classes[a].WinRate()); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		categoryStyle.Render("class"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("loss"),
		headerStyle.Render("samples"))
	for _, name := range names {
		c := classes[name]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			categoryStyle.Render(name),
			winStyle.Render(percent(c.WinRate())),
			tieStyle.Render(percent(c.TieRate())),
			lossStyle.Render(percent(c.LossRate())),
			c.Trials)
	}
	w.Flush()
}
