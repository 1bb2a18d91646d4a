// Package console plays a game against the computer in a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-tree/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
)

const (
	colorX = "1"
	colorO = "2"
)

type gamePlayer interface {
	NewGame(ctx context.Context, board entity.Board) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
}

type Console struct {
	logger *slog.Logger
	games  gamePlayer
	board  entity.Board
	delay  time.Duration

	in  io.Reader
	out *termenv.Output
}

func New(logger *slog.Logger, games gamePlayer, board entity.Board, delay time.Duration, in io.Reader, out *termenv.Output) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		games:  games,
		board:  board,
		delay:  delay,
		in:     in,
		out:    out,
	}
}

// Run - plays one game. It returns nil when the game ends or the input is exhausted.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	game, err := that.games.NewGame(ctx, that.board)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	log.Info("game started", "game_id", game.ID)

	lines := that.readLines(ctx)

	that.printBoard(game.Board)

	for game.IsOngoing() {
		fmt.Fprint(that.out, "Your move (0-8): ")

		var (
			line string
			ok   bool
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			fmt.Fprintln(that.out)
			return nil
		}

		cell, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(that.out, "not a cell number: %q\n", line)
			continue
		}

		before := game.Board

		next, err := that.games.MakeTurn(ctx, game.ID, cell)
		if isBadMove(err) {
			fmt.Fprintln(that.out, err)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		if next.Board.Empties() < before.Empties()-1 {
			before[cell] = entity.PlayerO
			that.printBoard(before)

			if err = that.wait(ctx); err != nil {
				return err
			}
		}

		game = next
		that.printBoard(game.Board)
	}

	fmt.Fprintln(that.out, that.result(game))
	fmt.Fprintln(that.out, "Game over!")

	return nil
}

func isBadMove(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrNotYourTurn)
}

func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

func (that *Console) wait(ctx context.Context) error {
	if that.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (that *Console) printBoard(board entity.Board) {
	var sb strings.Builder

	for row := 0; row < entity.GridSize; row++ {
		for col := 0; col < entity.GridSize; col++ {
			sb.WriteString(" ")
			sb.WriteString(that.mark(board[row*entity.GridSize+col]))
		}

		sb.WriteString("\n")
	}

	fmt.Fprintln(that.out, sb.String())
}

func (that *Console) mark(mark entity.Mark) string {
	style := that.out.String(mark.String())

	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.out.Color(colorX))
	case entity.PlayerO:
		style = style.Foreground(that.out.Color(colorO))
	}

	return style.String()
}

func (that *Console) result(game *entity.Game) string {
	switch {
	case game.Tie:
		return "It's a tie."
	case game.Winner == entity.PlayerO:
		return "You win!"
	case game.Winner == entity.PlayerX:
		return "Computer wins."
	default:
		return ""
	}
}
