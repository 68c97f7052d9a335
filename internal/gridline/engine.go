// Package gridline implements the N x N line-forming game of the tic-tac-toe family:
// win-line generation for any board size and run length, outcome classification,
// move application and a depth-limited minimax AI.
package gridline

import (
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/entity"
	"golang.org/x/exp/rand"
)

// Engine binds the rules to one board size and run length.
type Engine struct {
	size      int
	runLength int
	lines     []Line
}

func NewEngine(size, runLength int) (*Engine, error) {
	lines, err := GenerateWinLines(size, runLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate win lines: %w", err)
	}

	return &Engine{
		size:      size,
		runLength: runLength,
		lines:     lines,
	}, nil
}

func (that *Engine) Size() int {
	return that.size
}

func (that *Engine) RunLength() int {
	return that.runLength
}

func (that *Engine) Lines() []Line {
	return that.lines
}

func (that *Engine) NewBoard() *entity.Board {
	return entity.NewBoard(that.size)
}

func (that *Engine) Classify(board *entity.Board) entity.Outcome {
	that.mustFit(board)

	return Classify(board, that.lines)
}

func (that *Engine) ApplyMove(board *entity.Board, move entity.Move) error {
	that.mustFit(board)

	return ApplyMove(board, move)
}

func (that *Engine) BestMove(board *entity.Board, aiMark entity.Mark, config SearchConfig, rnd *rand.Rand) (int, error) {
	that.mustFit(board)

	return BestMove(board, that.lines, aiMark, config, rnd)
}

// mustFit rejects boards of another size; that is a programming error, not a game condition.
func (that *Engine) mustFit(board *entity.Board) {
	if board.Width() != that.size || board.Len() != that.size*that.size {
		panic(fmt.Sprintf("gridline: board of width %d used with a %dx%d engine", board.Width(), that.size, that.size))
	}
}
