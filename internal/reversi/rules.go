package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

// Flips returns the discs player would turn over by playing cell, without touching the board.
// An occupied or out-of-range cell flips nothing.
func Flips(board *entity.Board, cell int, player entity.Mark) []int {
	mustFit(board)

	if !board.Contains(cell) || !board.IsEmpty(cell) || !isPlayer(player) {
		return nil
	}

	var flipped []int
	for _, dir := range directions {
		flipped = append(flipped, ray(board, cell, player, dir[0], dir[1])...)
	}

	return flipped
}

// ray collects the opponent run next to cell in one direction. The run only counts
// when a disc of player closes it before the edge or an empty cell.
func ray(board *entity.Board, cell int, player entity.Mark, dx, dy int) []int {
	opponent := player.Opponent()
	row, col := board.RowCol(cell)

	var run []int
	for x, y := col+dx, row+dy; board.InBounds(y, x); x, y = x+dx, y+dy {
		i := board.Index(y, x)

		switch board.At(i) {
		case opponent:
			run = append(run, i)
		case player:
			return run
		default:
			return nil
		}
	}

	return nil
}

// LegalMoves lists, in ascending order, every cell where player flips at least one disc.
func LegalMoves(board *entity.Board, player entity.Mark) []int {
	mustFit(board)

	var moves []int
	for cell := 0; cell < board.Len(); cell++ {
		if len(Flips(board, cell, player)) > 0 {
			moves = append(moves, cell)
		}
	}

	return moves
}

func HasLegalMove(board *entity.Board, player entity.Mark) bool {
	mustFit(board)

	for cell := 0; cell < board.Len(); cell++ {
		if len(Flips(board, cell, player)) > 0 {
			return true
		}
	}

	return false
}

// ApplyMove places the disc and flips every closed run. It returns the flipped cells
// and leaves the board untouched when the move is illegal.
func ApplyMove(board *entity.Board, move entity.Move) ([]int, error) {
	mustFit(board)

	if !board.Contains(move.Cell) {
		return nil, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, move.Cell)
	}

	if !isPlayer(move.Mark) {
		return nil, fmt.Errorf("%w: unknown disc %q", apperror.ErrIllegalMove, move.Mark)
	}

	if !board.IsEmpty(move.Cell) {
		return nil, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, move.Cell)
	}

	flipped := Flips(board, move.Cell, move.Mark)
	if len(flipped) == 0 {
		return nil, fmt.Errorf("%w: cell %d flips no disc", apperror.ErrIllegalMove, move.Cell)
	}

	board.Set(move.Cell, move.Mark)
	for _, cell := range flipped {
		board.Set(cell, move.Mark)
	}

	return flipped, nil
}

// Classify only ends the game once all cells are filled; the side with more discs wins.
// A position where neither side can move but cells remain stays in progress.
func Classify(board *entity.Board) entity.Outcome {
	green, white := Score(board)
	if green+white < Cells {
		return entity.InProgress()
	}

	switch {
	case green > white:
		return entity.Win(entity.PlayerGreen)
	case white > green:
		return entity.Win(entity.PlayerWhite)
	default:
		return entity.Draw()
	}
}
