package entity

import (
	"testing"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Addressing(t *testing.T) {
	board := NewBoard(4)

	require.Equal(t, 16, board.Len())

	row, col := board.RowCol(7)
	assert.Equal(t, 1, row)
	assert.Equal(t, 3, col)
	assert.Equal(t, 7, board.Index(1, 3))
	assert.Equal(t, -1, board.Index(4, 0))
	assert.Equal(t, -1, board.Index(0, -1))
	assert.False(t, board.Contains(16))
}

func TestBoard_FromCells(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		// Given: a board with a couple of marks
		board := NewBoard(3)
		board.Set(0, PlayerX)
		board.Set(4, PlayerO)

		// When: it is rebuilt from its flat cells
		rebuilt, err := NewBoardFromCells(board.Width(), board.Cells())

		// Then: the contents are identical
		require.NoError(t, err)
		assert.Equal(t, board, rebuilt)
	})

	t.Run("Wrong length", func(t *testing.T) {
		_, err := NewBoardFromCells(3, make([]Mark, 8))

		require.ErrorIs(t, err, apperror.ErrMalformedBoard)
	})
}

func TestBoard_Counting(t *testing.T) {
	board := NewBoard(3)
	board.Set(1, PlayerX)
	board.Set(2, PlayerX)
	board.Set(5, PlayerO)

	assert.Equal(t, 2, board.Count(PlayerX))
	assert.Equal(t, 1, board.Count(PlayerO))
	assert.Equal(t, []int{0, 3, 4, 6, 7, 8}, board.EmptyCells())
	assert.False(t, board.IsFull())

	clone := board.Clone()
	clone.Set(0, PlayerO)
	assert.True(t, board.IsEmpty(0))
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, PlayerWhite, PlayerGreen.Opponent())
	assert.Equal(t, PlayerGreen, PlayerWhite.Opponent())
	assert.Equal(t, EmptyCell, Mark("?").Opponent())
}
