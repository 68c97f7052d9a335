package gridline

import (
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

// Line is a run of cell indices that wins when uniformly held by one mark.
type Line []int

// GenerateWinLines lists every horizontal, vertical and diagonal run of runLength cells
// on a size x size board, in that order.
func GenerateWinLines(size, runLength int) ([]Line, error) {
	if size < entity.MinGridSize || runLength < entity.MinRunLength || runLength > size {
		return nil, fmt.Errorf("%w: size %d, run length %d", apperror.ErrInvalidOptions, size, runLength)
	}

	starts := size - runLength + 1
	lines := make([]Line, 0, 2*size*starts+2*starts*starts)

	// rows
	for row := 0; row < size; row++ {
		for col := 0; col < starts; col++ {
			lines = append(lines, run(size, runLength, row, col, 0, 1))
		}
	}

	// columns
	for col := 0; col < size; col++ {
		for row := 0; row < starts; row++ {
			lines = append(lines, run(size, runLength, row, col, 1, 0))
		}
	}

	// diagonals going down-right
	for row := 0; row < starts; row++ {
		for col := 0; col < starts; col++ {
			lines = append(lines, run(size, runLength, row, col, 1, 1))
		}
	}

	// diagonals going down-left
	for row := 0; row < starts; row++ {
		for col := runLength - 1; col < size; col++ {
			lines = append(lines, run(size, runLength, row, col, 1, -1))
		}
	}

	return lines, nil
}

func run(size, length, row, col, dRow, dCol int) Line {
	line := make(Line, length)
	for i := range line {
		line[i] = (row+i*dRow)*size + col + i*dCol
	}
	return line
}

// Classify reports the first fully held line as a win, a full board as a draw,
// and anything else as in progress.
func Classify(board *entity.Board, lines []Line) entity.Outcome {
	for _, line := range lines {
		if mark := owner(board, line); mark != entity.EmptyCell {
			return entity.Win(mark)
		}
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}

func owner(board *entity.Board, line Line) entity.Mark {
	first := board.At(line[0])
	if first == entity.EmptyCell {
		return entity.EmptyCell
	}

	for _, cell := range line[1:] {
		if board.At(cell) != first {
			return entity.EmptyCell
		}
	}

	return first
}
