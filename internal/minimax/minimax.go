// Package minimax scores tic-tac-toe positions by exhaustive search.
//
// Scores are always from X's point of view: 1 is a forced win for X, -1 a forced
// win for O and 0 a draw. X maximizes, O minimizes.
package minimax

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tree/internal/tictactoe"
)

const (
	Win  = 1.0
	Draw = 0.0
	Loss = -1.0
)

// Evaluate - the minimax score of a board on which X has just moved, so O is to move.
func Evaluate(board entity.Board) float64 {
	return evaluate(board, entity.PlayerX)
}

// Score - the minimax score of a board produced by last; the other mark moves next.
func Score(board entity.Board, last entity.Mark) float64 {
	return evaluate(board, last)
}

// evaluate scores board where last is the mark that produced it.
func evaluate(board entity.Board, last entity.Mark) float64 {
	if tictactoe.IsSolved(board, entity.PlayerX) {
		return Win
	}
	if tictactoe.IsSolved(board, entity.PlayerO) {
		return Loss
	}
	if tictactoe.IsTied(board) {
		return Draw
	}

	if last == entity.PlayerX {
		return minimize(tictactoe.NextBoards(board, entity.PlayerO), entity.PlayerO)
	}

	return maximize(tictactoe.NextBoards(board, entity.PlayerX), entity.PlayerX)
}

func maximize(boards []entity.Board, last entity.Mark) float64 {
	value := math.Inf(-1)
	for _, board := range boards {
		value = math.Max(value, evaluate(board, last))
	}

	return value
}

func minimize(boards []entity.Board, last entity.Mark) float64 {
	value := math.Inf(1)
	for _, board := range boards {
		value = math.Min(value, evaluate(board, last))
	}

	return value
}

// BestMove - the first X move with the highest score.
//
// ok is false both when X has no move and when every move loses. Callers cannot
// tell these apart; check tictactoe.IsTerminal first if it matters.
func BestMove(board entity.Board) (entity.Board, bool) {
	highest := math.Inf(-1)

	var (
		best  entity.Board
		found bool
	)

	for _, next := range tictactoe.NextBoards(board, entity.PlayerX) {
		value := Evaluate(next)

		if value > highest {
			highest = value
			best = next
			found = true
		}
	}

	if highest == Loss {
		return entity.Board{}, false
	}

	return best, found
}
