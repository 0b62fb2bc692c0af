package main

import (
	"fmt"

	"github.com/lox/holdem/internal/tui"
	"github.com/lox/holdem/poker"
)

// RankCmd prints the best hand a player makes on a board.
type RankCmd struct {
	Hole  string `arg:"" help:"Hole cards (e.g. 'KsKh')"`
	Board string `arg:"" optional:"" help:"Board cards (e.g. 'QsJs2d')"`
}

func (cmd *RankCmd) Run(e *env) error {
	hole, err := poker.ParseHoleCards(cmd.Hole)
	if err != nil {
		return fmt.Errorf("hole cards: %w", err)
	}
	board, err := poker.ParseCards(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	rank, err := poker.Evaluate(hole, board)
	if err != nil {
		return err
	}
	e.logger.Debug("Ranked hand", "hole", hole, "board", poker.FormatCards(board), "category", rank.Category)

	fmt.Fprintf(e.out, "%s %s\n", headerStyle.Render("hand"), tui.FormatCards(hole.Cards()))
	if len(board) > 0 {
		fmt.Fprintf(e.out, "%s %s\n", headerStyle.Render("board"), tui.FormatCards(board))
	}
	fmt.Fprintf(e.out, "%s %s\n", headerStyle.Render("rank"), handStyle.Render(rank.String()))
	return nil
}
