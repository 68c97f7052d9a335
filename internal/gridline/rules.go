package gridline

import (
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

// ApplyMove places the move's mark on an empty cell. Turn order is left to the caller.
func ApplyMove(board *entity.Board, move entity.Move) error {
	if err := validateMove(board, move); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	board.Set(move.Cell, move.Mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, move entity.Move) error {
	if !board.Contains(move.Cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, move.Cell)
	}

	if move.Mark != entity.PlayerX && move.Mark != entity.PlayerO {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrIllegalMove, move.Mark)
	}

	if !board.IsEmpty(move.Cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, move.Cell)
	}

	return nil
}
