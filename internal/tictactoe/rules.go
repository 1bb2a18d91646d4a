package tictactoe

import "github.com/rocketscienceinc/tictactoe-tree/internal/entity"

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsSolved - reports whether mark holds a whole row, column or diagonal.
func IsSolved(board entity.Board, mark entity.Mark) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// IsTied - reports whether the board is full. It does not look for a winner,
// so callers check IsSolved for both marks first.
func IsTied(board entity.Board) bool {
	for _, mark := range board {
		if mark == entity.Empty {
			return false
		}
	}

	return true
}

// IsTerminal - solved for either player or tied.
func IsTerminal(board entity.Board) bool {
	return IsSolved(board, entity.PlayerX) || IsSolved(board, entity.PlayerO) || IsTied(board)
}

// Winner - the mark that completed a line, X checked first.
func Winner(board entity.Board) (entity.Mark, bool) {
	switch {
	case IsSolved(board, entity.PlayerX):
		return entity.PlayerX, true
	case IsSolved(board, entity.PlayerO):
		return entity.PlayerO, true
	default:
		return entity.Empty, false
	}
}

// NextBoards - every board reachable by placing mark on one empty cell, in cell order.
// A mark other than X or O leaves the copied board unchanged.
func NextBoards(board entity.Board, mark entity.Mark) []entity.Board {
	boards := make([]entity.Board, 0, board.Empties())

	for i, cell := range board {
		if cell != entity.Empty {
			continue
		}

		next := board
		if mark == entity.PlayerX || mark == entity.PlayerO {
			next[i] = mark
		}

		boards = append(boards, next)
	}

	return boards
}

func SwitchMark(mark entity.Mark) entity.Mark {
	switch mark {
	case entity.PlayerX:
		return entity.PlayerO
	case entity.PlayerO:
		return entity.PlayerX
	default:
		return entity.Empty
	}
}
