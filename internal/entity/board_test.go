package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionIndexRoundTrip(t *testing.T) {
	for i := 0; i < Cells; i++ {
		// When: converting an index to a position and back
		pos := IndexToPosition(i, GridSize)
		index := PositionToIndex(int(pos.Y), int(pos.X), GridSize)

		// Then: the original index is returned
		assert.Equal(t, i, index)
	}
}

func TestIndexToPosition(t *testing.T) {
	// Given: the last cell of the middle row
	// When: converting it to a position
	pos := IndexToPosition(5, GridSize)

	// Then: column 2, row 1
	assert.Equal(t, Point{X: 2, Y: 1}, pos)
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses marks with separators", func(t *testing.T) {
		// When: parsing a board written in rows
		board, err := ParseBoard("_OO/_X_/XO_")

		// Then: every cell is read in row-major order
		require.NoError(t, err)
		assert.Equal(t, Board{Empty, PlayerO, PlayerO, Empty, PlayerX, Empty, PlayerX, PlayerO, Empty}, board)
		assert.Equal(t, "EOOEXEXOE", board.String())
	})

	t.Run("Rejects short boards", func(t *testing.T) {
		// When: parsing only eight cells
		_, err := ParseBoard("XOXOXOXO")

		// Then: ErrInvalidBoard is returned
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects long boards", func(t *testing.T) {
		_, err := ParseBoard("XOXOXOXOXO")

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects unknown marks", func(t *testing.T) {
		_, err := ParseBoard("XOXOXOXOZ")

		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestBoard_Empties(t *testing.T) {
	board := Board{Empty, PlayerO, PlayerO, Empty, PlayerX, Empty, PlayerX, PlayerO, Empty}

	assert.Equal(t, 4, board.Empties())
	assert.Equal(t, 9, Board{}.Empties())
}

func TestBoard_JSON(t *testing.T) {
	// Given: a game holding a partly filled board
	game := NewGame("123", Board{PlayerX, Empty, PlayerO})

	// When: it is encoded to JSON
	data, err := json.Marshal(game)
	require.NoError(t, err)

	// Then: the board and marks are written as text
	assert.Contains(t, string(data), `"board":"XEOEEEEEE"`)
	assert.Contains(t, string(data), `"turn":"O"`)

	// And: decoding restores the same game
	var decoded Game
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *game, decoded)
}
