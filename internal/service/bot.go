package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tree/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tree/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-tree/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

// botService plays X with minimax.
type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the best X move. When every move loses the bot resigns and O wins.
func (that *botService) MakeTurn(game *entity.Game) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != entity.PlayerX {
		return apperror.ErrNotYourTurn
	}

	if game.Board.Empties() == 0 {
		return ErrNoAvailableMoves
	}

	next, ok := minimax.BestMove(game.Board)
	if !ok {
		game.Finish(entity.PlayerO, false)
		return nil
	}

	cell := changedCell(game.Board, next)
	if err := tictactoe.MakeTurn(game, entity.PlayerX, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func changedCell(before, after entity.Board) int {
	for i := range before {
		if before[i] != after[i] {
			return i
		}
	}

	return -1
}
