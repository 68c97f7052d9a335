package reversi

import (
	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

// BestMove is the greedy one-ply AI: the legal move flipping the most discs, lowest cell first on ties.
// ErrNoLegalMove means the player has to pass.
func BestMove(board *entity.Board, player entity.Mark) (int, error) {
	bestCell, bestCount := -1, 0

	for _, cell := range LegalMoves(board, player) {
		if count := len(Flips(board, cell, player)); count > bestCount {
			bestCell, bestCount = cell, count
		}
	}

	if bestCell < 0 {
		return 0, apperror.ErrNoLegalMove
	}

	return bestCell, nil
}
