package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/rocketscienceinc/gridgames/internal/usecase"
	"github.com/rocketscienceinc/gridgames/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, opts entity.GameOptions, input ...string) string {
	t.Helper()
	ctx, st := suite.New(t)

	var out bytes.Buffer
	session := usecase.NewGameManager(st.Logger, st.Bot(), entity.DifficultyHard)
	term := New(st.Logger, session, strings.NewReader(strings.Join(input, "\n")+"\n"), &out)

	require.NoError(t, term.Run(ctx, opts))

	return out.String()
}

func TestTerminal_Run(t *testing.T) {
	t.Run("Start and quit", func(t *testing.T) {
		out := play(t, entity.GameOptions{}, "quit")

		assert.Contains(t, out, "new gridline game 3x3, 3 in a row, hard, you play X")
		assert.Contains(t, out, "  0 1 2\n0 . . .\n1 . . .\n2 . . .\n")
		assert.Contains(t, out, "your move (X)")
		assert.True(t, strings.HasSuffix(out, "bye\n"))
	})

	t.Run("End of input", func(t *testing.T) {
		out := play(t, entity.GameOptions{}, "show")

		assert.NotContains(t, out, "bye")
	})

	t.Run("Move by row and column", func(t *testing.T) {
		// When: the human plays the centre as row 1, col 1
		out := play(t, entity.GameOptions{}, "move 1 1", "quit")

		// Then: the mark lands on cell 4 and the AI answers
		assert.Contains(t, out, "1 . X .")
		assert.Contains(t, out, "AI is thinking...")
		assert.Contains(t, out, "AI plays ")
	})

	t.Run("AI opens when the human plays O", func(t *testing.T) {
		out := play(t, entity.GameOptions{HumanMark: entity.PlayerO}, "quit")

		assert.Contains(t, out, "you play O")
		assert.Contains(t, out, "AI plays ")
		assert.Contains(t, out, "your move (O)")
	})

	t.Run("Occupied cell", func(t *testing.T) {
		out := play(t, entity.GameOptions{}, "move 4", "move 4", "quit")

		assert.Contains(t, out, "error: ")
		assert.Contains(t, out, "occupied")
	})

	t.Run("Unknown command and help", func(t *testing.T) {
		out := play(t, entity.GameOptions{}, "jump", "help", "quit")

		assert.Contains(t, out, `unknown command "jump"`)
		assert.Contains(t, out, helpText)
	})

	t.Run("Reversi game", func(t *testing.T) {
		out := play(t, entity.GameOptions{}, "new reversi", "pass", "move 19", "quit")

		assert.Contains(t, out, "new reversi game 8x8, you play green")
		assert.Contains(t, out, "score: green 2, white 2")
		assert.Contains(t, out, "3 . . . W G . . .")
		assert.Contains(t, out, "illegal move")
		assert.Contains(t, out, "score: green 4, white 1")
	})

	t.Run("Invalid new game keeps the old one", func(t *testing.T) {
		out := play(t, entity.GameOptions{}, "new 4 5", "show", "quit")

		assert.Contains(t, out, "invalid game options")
		assert.Equal(t, 1, strings.Count(out, "new gridline game"))
	})
}

func TestTerminal_RunStopsOnCancel(t *testing.T) {
	_, st := suite.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := usecase.NewGameManager(st.Logger, st.Bot(), entity.DifficultyEasy)
	term := New(st.Logger, session, strings.NewReader("show\n"), &bytes.Buffer{})

	err := term.Run(ctx, entity.GameOptions{})

	require.ErrorIs(t, err, context.Canceled)
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"hard", "5", "4", "gridline"})
	require.NoError(t, err)
	assert.Equal(t, entity.GameOptions{Kind: entity.KindGridLine, Size: 5, RunLength: 4, Difficulty: entity.DifficultyHard}, opts)

	opts, err = parseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, entity.GameOptions{}, opts)

	_, err = parseOptions([]string{"huge"})
	require.ErrorIs(t, err, errUsage)

	_, err = parseOptions([]string{"3", "3", "3"})
	require.ErrorIs(t, err, errUsage)
}

func TestParseCell(t *testing.T) {
	cell, err := parseCell([]string{"7"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, cell)

	cell, err = parseCell([]string{"2", "1"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, cell)

	_, err = parseCell([]string{"3", "0"}, 3)
	require.ErrorIs(t, err, apperror.ErrIllegalMove)

	_, err = parseCell(nil, 3)
	require.ErrorIs(t, err, errUsage)
}
