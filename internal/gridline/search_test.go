package gridline

import (
	"math"
	"testing"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var perfect = SearchConfig{MaxDepth: Unbounded}

func classicLines(t *testing.T) []Line {
	t.Helper()

	lines, err := GenerateWinLines(3, 3)
	require.NoError(t, err)

	return lines
}

func TestBestMove(t *testing.T) {
	lines := classicLines(t)

	t.Run("Empty board picks the first cell", func(t *testing.T) {
		// Given: an empty board, where every opening is a draw under perfect play
		board := entity.NewBoard(3)

		// When: the AI searches the whole tree
		cell, err := BestMove(board, lines, entity.PlayerO, perfect, nil)

		// Then: the tie is broken by the lowest index
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Takes an immediate win over a block", func(t *testing.T) {
		// Given: both players threaten to complete a row and O is to move
		board := boardOf(t, "XX.", "OO.", "X..")

		// When: O searches
		cell, err := BestMove(board, lines, entity.PlayerO, perfect, nil)

		// Then: O completes its own row
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		board := boardOf(t, "XX.", ".O.", "...")

		cell, err := BestMove(board, lines, entity.PlayerO, perfect, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Shallow search still blocks", func(t *testing.T) {
		board := boardOf(t, "XX.", ".O.", "...")

		cell, err := BestMove(board, lines, entity.PlayerO, SearchConfig{MaxDepth: 1}, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Negative depth is unbounded", func(t *testing.T) {
		// Given: O cannot win at once and X threatens cell 2
		board := boardOf(t, "XX.", ".O.", "...")

		// When: a negative depth is configured
		cell, err := BestMove(board, lines, entity.PlayerO, SearchConfig{MaxDepth: -1}, nil)
		require.NoError(t, err)

		// Then: the search runs to the end and still blocks
		assert.Equal(t, 2, cell)
	})

	t.Run("Board is left untouched", func(t *testing.T) {
		board := boardOf(t, "X..", ".O.", "..X")
		before := board.Cells()

		_, err := BestMove(board, lines, entity.PlayerO, perfect, nil)

		require.NoError(t, err)
		assert.Equal(t, before, board.Cells())
	})

	t.Run("Full board has no legal move", func(t *testing.T) {
		board := boardOf(t, "OXO", "OXX", "XOX")

		_, err := BestMove(board, lines, entity.PlayerO, perfect, nil)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})
}

func TestBestMove_RandomFallback(t *testing.T) {
	lines := classicLines(t)

	t.Run("Always random", func(t *testing.T) {
		// Given: a board with a winning move for O and a forced random fallback
		board := boardOf(t, "XX.", "OO.", "X..")
		empty := board.EmptyCells()

		// When: the AI is asked with probability one
		cell, err := BestMove(board, lines, entity.PlayerO, SearchConfig{RandomMoveProbability: 1}, rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		// Then: the cell is the one the same seed draws
		replay := rand.New(rand.NewSource(7))
		replay.Float64()
		assert.Equal(t, empty[replay.Intn(len(empty))], cell)
	})

	t.Run("Never random", func(t *testing.T) {
		board := boardOf(t, "XX.", "OO.", "X..")

		for seed := uint64(0); seed < 20; seed++ {
			cell, err := BestMove(board, lines, entity.PlayerO, SearchConfig{}, rand.New(rand.NewSource(seed)))

			require.NoError(t, err)
			require.Equal(t, 5, cell)
		}
	})

	t.Run("Missing random source", func(t *testing.T) {
		board := entity.NewBoard(3)

		_, err := BestMove(board, lines, entity.PlayerO, SearchConfig{RandomMoveProbability: 0.5}, nil)

		require.Error(t, err)
	})
}

func TestBestMove_NeverLoses(t *testing.T) {
	engine, err := NewEngine(3, 3)
	require.NoError(t, err)

	t.Run("AI moves second", func(t *testing.T) {
		games := playEveryLine(t, engine, engine.NewBoard(), entity.PlayerX, entity.PlayerO, entity.PlayerX)

		assert.Positive(t, games)
	})

	t.Run("AI moves first", func(t *testing.T) {
		games := playEveryLine(t, engine, engine.NewBoard(), entity.PlayerO, entity.PlayerX, entity.PlayerX)

		assert.Positive(t, games)
	})
}

// playEveryLine lets the human try every reply while the AI answers with a full search.
// It returns the number of finished games and fails if the human ever wins.
func playEveryLine(t *testing.T, engine *Engine, board *entity.Board, human, ai, turn entity.Mark) int {
	t.Helper()

	outcome := engine.Classify(board)
	if outcome.IsFinished() {
		require.NotEqual(t, entity.Win(human), outcome, "AI lost on %v", board.Cells())
		return 1
	}

	if turn == ai {
		cell, err := engine.BestMove(board, ai, perfect, nil)
		require.NoError(t, err)
		require.NoError(t, engine.ApplyMove(board, entity.Move{Cell: cell, Mark: ai}))
		defer board.Set(cell, entity.EmptyCell)

		return playEveryLine(t, engine, board, human, ai, human)
	}

	games := 0
	for _, cell := range board.EmptyCells() {
		board.Set(cell, human)
		games += playEveryLine(t, engine, board, human, ai, ai)
		board.Set(cell, entity.EmptyCell)
	}

	return games
}

func TestBestMove_MatchesPlainMinimax(t *testing.T) {
	cases := []struct {
		name      string
		size      int
		runLength int
		config    SearchConfig
		moves     int
	}{
		{name: "3x3 full search", size: 3, runLength: 3, config: perfect, moves: 3},
		{name: "3x3 depth two", size: 3, runLength: 3, config: SearchConfig{MaxDepth: 2}, moves: 2},
		{name: "4x4 depth two", size: 4, runLength: 3, config: SearchConfig{MaxDepth: 2}, moves: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, err := NewEngine(tc.size, tc.runLength)
			require.NoError(t, err)

			rnd := rand.New(rand.NewSource(42))
			for i := 0; i < 25; i++ {
				// Given: a random in-progress position
				board, toMove := randomPosition(engine, rnd, tc.moves)
				if engine.Classify(board).IsFinished() {
					continue
				}

				// When: both searches pick a move
				got, err := engine.BestMove(board, toMove, tc.config, nil)
				require.NoError(t, err)

				// Then: pruning never changes the chosen cell
				assert.Equal(t, referenceBestMove(board, engine.Lines(), toMove, tc.config.MaxDepth), got, "%v", board.Cells())
			}
		})
	}
}

func randomPosition(engine *Engine, rnd *rand.Rand, moves int) (*entity.Board, entity.Mark) {
	board := engine.NewBoard()
	mark := entity.PlayerX

	for i := 0; i < moves; i++ {
		empty := board.EmptyCells()
		board.Set(empty[rnd.Intn(len(empty))], mark)
		mark = mark.Opponent()
	}

	return board, mark
}

// referenceBestMove is a textbook minimax without pruning, used as an oracle.
func referenceBestMove(board *entity.Board, lines []Line, ai entity.Mark, maxDepth int) int {
	var score func(depth int, maximizing bool) int
	score = func(depth int, maximizing bool) int {
		outcome := Classify(board, lines)
		switch {
		case outcome.IsWin() && outcome.Winner == ai:
			return 10 - depth
		case outcome.IsWin():
			return depth - 10
		case outcome.IsFinished():
			return 0
		}
		if maxDepth > 0 && depth >= maxDepth {
			return 0
		}

		best := math.MaxInt
		mark := ai.Opponent()
		if maximizing {
			best = math.MinInt
			mark = ai
		}
		for _, cell := range board.EmptyCells() {
			board.Set(cell, mark)
			value := score(depth+1, !maximizing)
			board.Set(cell, entity.EmptyCell)

			if maximizing && value > best || !maximizing && value < best {
				best = value
			}
		}
		return best
	}

	bestCell, bestScore := -1, math.MinInt
	for _, cell := range board.EmptyCells() {
		board.Set(cell, ai)
		value := score(0, false)
		board.Set(cell, entity.EmptyCell)

		if value > bestScore {
			bestCell, bestScore = cell, value
		}
	}

	return bestCell
}
