package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tree/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
)

// MakeTurn - places mark on cell and advances the session.
func MakeTurn(game *entity.Game, mark entity.Mark, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = mark
	UpdateGameStatus(game)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark entity.Mark, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Board[cell] != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// UpdateGameStatus - finishes the game on a win or a tie, otherwise passes the turn.
func UpdateGameStatus(game *entity.Game) {
	if winner, ok := Winner(game.Board); ok {
		game.Finish(winner, false)
		return
	}

	if IsTied(game.Board) {
		game.Finish(entity.Empty, true)
		return
	}

	game.Status = entity.StatusOngoing
	game.Turn = SwitchMark(game.Turn)
}
