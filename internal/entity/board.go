package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	GridSize = 3
	Cells    = GridSize * GridSize
)

// Mark - what occupies a single cell of the board.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

var ErrInvalidBoard = errors.New("invalid board")

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "E"
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	runes := []rune(string(text))
	if len(runes) != 1 {
		return fmt.Errorf("%w: mark %q", ErrInvalidBoard, text)
	}

	mark, ok := ParseMark(runes[0])
	if !ok {
		return fmt.Errorf("%w: mark %q", ErrInvalidBoard, text)
	}

	*that = mark

	return nil
}

func ParseMark(r rune) (Mark, bool) {
	switch r {
	case 'X', 'x':
		return PlayerX, true
	case 'O', 'o':
		return PlayerO, true
	case 'E', 'e', '_', '.', '-':
		return Empty, true
	}

	return Empty, false
}

// Board - the 9 cells of a tic-tac-toe board in row-major order.
type Board [Cells]Mark

// Point - a 2-D coordinate.
type Point struct {
	X float64
	Y float64
}

// ParseBoard reads nine marks. Whitespace and the separators '/', '|' and ',' are skipped.
func ParseBoard(s string) (Board, error) {
	var board Board

	i := 0
	for _, r := range s {
		if strings.ContainsRune(" \t\n/|,", r) {
			continue
		}

		mark, ok := ParseMark(r)
		if !ok {
			return Board{}, fmt.Errorf("%w: unexpected mark %q", ErrInvalidBoard, r)
		}

		if i == Cells {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, Cells)
		}

		board[i] = mark
		i++
	}

	if i != Cells {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, i, Cells)
	}

	return board, nil
}

func (that Board) String() string {
	var sb strings.Builder
	for _, mark := range that {
		sb.WriteString(mark.String())
	}

	return sb.String()
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// Empties - number of empty cells.
func (that Board) Empties() int {
	count := 0
	for _, mark := range that {
		if mark == Empty {
			count++
		}
	}

	return count
}

func PositionToIndex(row, col, gridSize int) int {
	return row*gridSize + col
}

// IndexToPosition - inverse of PositionToIndex: X is the column, Y is the row.
func IndexToPosition(index, gridSize int) Point {
	return Point{
		X: float64(index % gridSize),
		Y: float64(index / gridSize),
	}
}
