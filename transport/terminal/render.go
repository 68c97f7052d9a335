package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/gridgames/internal/entity"
)

var symbols = map[entity.Mark]string{
	entity.EmptyCell:   ".",
	entity.PlayerX:     "X",
	entity.PlayerO:     "O",
	entity.PlayerGreen: "G",
	entity.PlayerWhite: "W",
}

// render prints the board with row and column numbers, followed by the game status.
func render(w io.Writer, state *entity.State) {
	var sb strings.Builder

	width := len(fmt.Sprint(state.Size - 1))
	cellFormat := fmt.Sprintf(" %%%ds", width)
	rowFormat := fmt.Sprintf("%%%dd", width)

	sb.WriteString(strings.Repeat(" ", width))
	for col := 0; col < state.Size; col++ {
		sb.WriteString(fmt.Sprintf(cellFormat, fmt.Sprint(col)))
	}
	sb.WriteString("\n")

	for row := 0; row < state.Size; row++ {
		sb.WriteString(fmt.Sprintf(rowFormat, row))
		for col := 0; col < state.Size; col++ {
			sb.WriteString(fmt.Sprintf(cellFormat, symbols[state.Board[row*state.Size+col]]))
		}
		sb.WriteString("\n")
	}

	if state.Score != nil {
		sb.WriteString(fmt.Sprintf("score: green %d, white %d\n",
			state.Score[entity.PlayerGreen], state.Score[entity.PlayerWhite]))
	}

	sb.WriteString(status(state))
	sb.WriteString("\n")

	_, _ = io.WriteString(w, sb.String())
}

func status(state *entity.State) string {
	if state.Outcome.IsFinished() {
		return "game over: " + state.Outcome.String()
	}

	if state.Turn == state.HumanMark {
		return fmt.Sprintf("your move (%s)", state.Turn)
	}

	return fmt.Sprintf("%s to move", state.Turn)
}

// cellName prints a cell as its index with the row and column.
func cellName(cell, size int) string {
	return fmt.Sprintf("%d (row %d, col %d)", cell, cell/size, cell%size)
}
