package reversi

import (
	"testing"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMove(t *testing.T) {
	t.Run("Ties go to the lowest cell", func(t *testing.T) {
		// Given: two moves for white that each flip two discs
		board := boardOf(t,
			". G G W . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". G G W . . . .",
		)
		require.Equal(t, []int{0, 56}, LegalMoves(board, entity.PlayerWhite))

		// When: the greedy AI picks
		cell, err := BestMove(board, entity.PlayerWhite)

		// Then: the lower index wins the tie
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Most flips wins", func(t *testing.T) {
		board := boardOf(t,
			". G G W . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". G G G W . . .",
		)

		cell, err := BestMove(board, entity.PlayerWhite)

		require.NoError(t, err)
		assert.Equal(t, 56, cell)
	})

	t.Run("Opening", func(t *testing.T) {
		// Every opening flips one disc, so the first one is chosen
		cell, err := BestMove(NewBoard(), entity.PlayerWhite)

		require.NoError(t, err)
		assert.Equal(t, 20, cell)
	})

	t.Run("Pass when nothing flips", func(t *testing.T) {
		// Given: white has no disc to close a run with
		board := boardOf(t,
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . G G . . .",
			". . . G G . . .",
			". . . . . . . .",
			". . . . . . . .",
			". . . . . . . .",
		)

		_, err := BestMove(board, entity.PlayerWhite)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})
}
