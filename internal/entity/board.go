package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
)

type Mark string

const (
	EmptyCell Mark = ""

	PlayerX Mark = "X"
	PlayerO Mark = "O"

	PlayerGreen Mark = "green"
	PlayerWhite Mark = "white"
)

// Opponent returns the other mark of the same pair, or EmptyCell for an unknown mark.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	case PlayerGreen:
		return PlayerWhite
	case PlayerWhite:
		return PlayerGreen
	default:
		return EmptyCell
	}
}

// Move is a cell index plus the acting mark.
type Move struct {
	Cell int  `json:"cell"`
	Mark Mark `json:"mark"`
}

// Board is a square, row-major grid of marks addressed by a single linear index.
// Its length never changes after creation.
type Board struct {
	width int
	cells []Mark
}

func NewBoard(width int) *Board {
	return &Board{
		width: width,
		cells: make([]Mark, width*width),
	}
}

// NewBoardFromCells rebuilds a board from its flat cell sequence.
func NewBoardFromCells(width int, cells []Mark) (*Board, error) {
	if width <= 0 || len(cells) != width*width {
		return nil, fmt.Errorf("%w: %d cells for width %d", apperror.ErrMalformedBoard, len(cells), width)
	}

	board := NewBoard(width)
	copy(board.cells, cells)

	return board, nil
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Len() int {
	return len(that.cells)
}

// Index converts a row and column to a linear index, or -1 when out of bounds.
func (that *Board) Index(row, col int) int {
	if !that.InBounds(row, col) {
		return -1
	}
	return row*that.width + col
}

func (that *Board) RowCol(i int) (int, int) {
	return i / that.width, i % that.width
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.width && col >= 0 && col < that.width
}

func (that *Board) Contains(i int) bool {
	return i >= 0 && i < len(that.cells)
}

func (that *Board) At(i int) Mark {
	return that.cells[i]
}

func (that *Board) Set(i int, mark Mark) {
	that.cells[i] = mark
}

func (that *Board) IsEmpty(i int) bool {
	return that.cells[i] == EmptyCell
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	empty := make([]int, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == EmptyCell {
			empty = append(empty, i)
		}
	}
	return empty
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that.cells {
		if cell == mark {
			count++
		}
	}
	return count
}

// Cells returns a copy of the flat cell sequence.
func (that *Board) Cells() []Mark {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)
	return cells
}

func (that *Board) Clone() *Board {
	return &Board{
		width: that.width,
		cells: that.Cells(),
	}
}
