package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tree/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tree/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tree/internal/service"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.Empty
)

var errRedisDown = errors.New("redis down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type brokenRepo struct {
	repository.GameRepository
}

func (brokenRepo) CreateOrUpdate(context.Context, *entity.Game) error {
	return errRedisDown
}

func newManager() (*GameManager, repository.GameRepository) {
	repo := repository.NewMemoryGameRepository()
	return NewGameManager(discardLogger(), repo, service.NewBotService()), repo
}

func TestGameManager_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("stores an ongoing game with O to move", func(t *testing.T) {
		manager, repo := newManager()

		game, err := manager.NewGame(ctx, entity.Board{})

		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.True(t, game.IsOngoing())
		assert.Equal(t, o, game.Turn)

		stored, err := repo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("a won board starts finished", func(t *testing.T) {
		manager, _ := newManager()

		game, err := manager.NewGame(ctx, entity.Board{x, x, x, o, o, e, e, e, e})

		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, x, game.Winner)
	})

	t.Run("storage failure", func(t *testing.T) {
		manager := NewGameManager(discardLogger(), brokenRepo{}, service.NewBotService())

		_, err := manager.NewGame(ctx, entity.Board{})

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("human move is answered by the computer", func(t *testing.T) {
		// Given: a fresh game
		manager, repo := newManager()
		game, err := manager.NewGame(ctx, entity.Board{})
		require.NoError(t, err)

		// When: O takes the center
		game, err = manager.MakeTurn(ctx, game.ID, 4)

		// Then: X has replied and it is O's turn again
		require.NoError(t, err)
		assert.Equal(t, o, game.Board[4])
		assert.Equal(t, 7, game.Board.Empties())
		assert.Equal(t, o, game.Turn)

		stored, err := repo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("computer wins when O does not block", func(t *testing.T) {
		// Given: X threatens the top row
		manager, _ := newManager()
		game, err := manager.NewGame(ctx, entity.Board{x, x, e, o, e, e, e, e, e})
		require.NoError(t, err)

		// When: O plays elsewhere
		game, err = manager.MakeTurn(ctx, game.ID, 8)

		// Then
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, x, game.Winner)
		assert.Equal(t, x, game.Board[2])
	})

	t.Run("human win ends the game without a reply", func(t *testing.T) {
		manager, _ := newManager()
		game, err := manager.NewGame(ctx, entity.Board{o, o, e, x, x, e, x, e, e})
		require.NoError(t, err)

		game, err = manager.MakeTurn(ctx, game.ID, 2)

		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, o, game.Winner)
		assert.Equal(t, 3, game.Board.Empties())
	})

	t.Run("occupied cell", func(t *testing.T) {
		manager, _ := newManager()
		game, err := manager.NewGame(ctx, entity.Board{x})
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, game.ID, 0)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("finished game", func(t *testing.T) {
		manager, _ := newManager()
		game, err := manager.NewGame(ctx, entity.Board{x, x, x})
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, game.ID, 5)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("unknown game", func(t *testing.T) {
		manager, _ := newManager()

		_, err := manager.MakeTurn(ctx, "nope", 0)

		require.ErrorIs(t, err, repository.ErrGameNotFound)
	})
}

func TestGameManager_DeleteGame(t *testing.T) {
	ctx := context.Background()
	manager, _ := newManager()

	game, err := manager.NewGame(ctx, entity.Board{})
	require.NoError(t, err)

	require.NoError(t, manager.DeleteGame(ctx, game.ID))

	_, err = manager.GetGame(ctx, game.ID)
	require.ErrorIs(t, err, repository.ErrGameNotFound)

	err = manager.DeleteGame(ctx, game.ID)
	require.ErrorIs(t, err, repository.ErrGameNotFound)
}
