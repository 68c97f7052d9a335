package gridline

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"golang.org/x/exp/rand"
)

const (
	winScore  = 10
	drawScore = 0

	// Unbounded disables the depth cutoff.
	Unbounded = 0
)

// SearchConfig bounds how hard the AI looks for a move.
type SearchConfig struct {
	// MaxDepth is the number of plies searched after the AI's candidate move, Unbounded for a full search.
	MaxDepth int `json:"max_depth" yaml:"max-depth"`
	// RandomMoveProbability is the chance of skipping the search for a uniformly random empty cell.
	RandomMoveProbability float64 `json:"random_move_probability" yaml:"random-move-probability"`
}

// BestMove returns the empty cell with the highest minimax score for aiMark, the lowest index on ties.
// The board is left as it was found. rnd may be nil when RandomMoveProbability is zero.
func BestMove(board *entity.Board, lines []Line, aiMark entity.Mark, config SearchConfig, rnd *rand.Rand) (int, error) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	if config.RandomMoveProbability > 0 {
		if rnd == nil {
			return 0, fmt.Errorf("random move probability %v needs a random source", config.RandomMoveProbability)
		}
		if rnd.Float64() < config.RandomMoveProbability {
			return empty[rnd.Intn(len(empty))], nil
		}
	}

	s := &search{
		board:    board,
		lines:    lines,
		aiMark:   aiMark,
		maxDepth: config.MaxDepth,
	}

	bestCell := empty[0]
	bestScore := math.MinInt
	for _, cell := range empty {
		score := s.try(cell, aiMark, func() int {
			return s.minimax(0, false, bestScore, math.MaxInt)
		})

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, nil
}

type search struct {
	board    *entity.Board
	lines    []Line
	aiMark   entity.Mark
	maxDepth int
}

// try places mark on cell for the duration of eval and always clears it afterwards.
func (that *search) try(cell int, mark entity.Mark, eval func() int) int {
	that.board.Set(cell, mark)
	defer that.board.Set(cell, entity.EmptyCell)

	return eval()
}

// minimax scores the current board with alpha-beta pruning. Values outside (alpha, beta)
// are bounds only, so callers must not rely on them beyond the comparison.
func (that *search) minimax(depth int, maximizing bool, alpha, beta int) int {
	outcome := Classify(that.board, that.lines)
	switch {
	case outcome.IsWin() && outcome.Winner == that.aiMark:
		return winScore - depth
	case outcome.IsWin():
		return depth - winScore
	case outcome.IsFinished():
		return drawScore
	}

	if that.maxDepth > Unbounded && depth >= that.maxDepth {
		return drawScore
	}

	mark := that.aiMark
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	} else {
		mark = that.aiMark.Opponent()
	}

	for _, cell := range that.board.EmptyCells() {
		score := that.try(cell, mark, func() int {
			return that.minimax(depth+1, !maximizing, alpha, beta)
		})

		if maximizing {
			best = max(best, score)
			alpha = max(alpha, score)
		} else {
			best = min(best, score)
			beta = min(beta, score)
		}

		if alpha >= beta {
			break
		}
	}

	return best
}
