package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tree/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tree/internal/service"
	"github.com/rocketscienceinc/tictactoe-tree/internal/usecase"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.Empty
)

func newConsole(board entity.Board, in io.Reader) (*Console, *bytes.Buffer) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository(), service.NewBotService())

	var out bytes.Buffer

	return New(logger, manager, board, 0, in, termenv.NewOutput(&out, termenv.WithProfile(termenv.Ascii))), &out
}

func TestConsole_Run_HumanWins(t *testing.T) {
	// Given: O can complete the top row
	console, out := newConsole(entity.Board{o, o, e, x, x, e, x, e, e}, strings.NewReader("2\n"))

	// When
	err := console.Run(context.Background())

	// Then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "You win!")
	assert.Contains(t, out.String(), "Game over!")
}

func TestConsole_Run_ComputerWins(t *testing.T) {
	// Given: X threatens the top row and O plays elsewhere
	console, out := newConsole(entity.Board{x, x, e, o, e, e, e, e, e}, strings.NewReader("8\n"))

	// When
	err := console.Run(context.Background())

	// Then: the human move is shown before the winning reply
	require.NoError(t, err)
	assert.Contains(t, out.String(), " X X E\n O E E\n E E O\n")
	assert.Contains(t, out.String(), " X X X\n O E E\n E E O\n")
	assert.Contains(t, out.String(), "Computer wins.")
	assert.Contains(t, out.String(), "Game over!")
}

func TestConsole_Run_BadInput(t *testing.T) {
	// Given: garbage, an out of range cell, a good move and a repeated cell
	console, out := newConsole(entity.Board{}, strings.NewReader("foo\n9\n4\n4\n"))

	// When: the input runs out mid-game
	err := console.Run(context.Background())

	// Then: every bad line was reported and the game was left unfinished
	require.NoError(t, err)
	assert.Contains(t, out.String(), `not a cell number: "foo"`)
	assert.Contains(t, out.String(), "invalid cell index")
	assert.Contains(t, out.String(), "cell is already occupied")
	assert.NotContains(t, out.String(), "Game over!")
	assert.Equal(t, 5, strings.Count(out.String(), "Your move (0-8): "))
}

func TestConsole_Run_Canceled(t *testing.T) {
	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	console, _ := newConsole(entity.Board{}, reader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := console.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
}
