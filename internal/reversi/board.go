// Package reversi implements the 8x8 disc-flipping game: ray-cast legality,
// flipping, a greedy one-ply AI and a board-full outcome rule.
package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/entity"
)

const (
	Size  = entity.ReversiSize
	Cells = Size * Size
)

// directions are the eight compass rays as (dx, dy).
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NewBoard returns the starting position with the four centre discs.
func NewBoard() *entity.Board {
	board := entity.NewBoard(Size)
	board.Set(27, entity.PlayerWhite)
	board.Set(28, entity.PlayerGreen)
	board.Set(35, entity.PlayerGreen)
	board.Set(36, entity.PlayerWhite)

	return board
}

// Score returns the disc counts for green and white.
func Score(board *entity.Board) (int, int) {
	mustFit(board)

	return board.Count(entity.PlayerGreen), board.Count(entity.PlayerWhite)
}

func isPlayer(mark entity.Mark) bool {
	return mark == entity.PlayerGreen || mark == entity.PlayerWhite
}

func mustFit(board *entity.Board) {
	if board.Width() != Size || board.Len() != Cells {
		panic(fmt.Sprintf("reversi: board of width %d, want %d", board.Width(), Size))
	}
}
