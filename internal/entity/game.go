package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
)

type Kind string

const (
	KindGridLine Kind = "gridline"
	KindReversi  Kind = "reversi"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const (
	DefaultGridSize = 3
	MinGridSize     = 3
	MinRunLength    = 2
	ReversiSize     = 8

	noMove = -1
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// GameOptions is what a driver asks for when it starts a new game.
type GameOptions struct {
	Kind       Kind       `json:"kind"`
	Size       int        `json:"size,omitempty"`
	RunLength  int        `json:"run_length,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	HumanMark  Mark       `json:"human_mark,omitempty"`
}

// Normalize fills defaults and validates the options for their game kind.
func (that GameOptions) Normalize(defaultDifficulty Difficulty) (GameOptions, error) {
	opts := that
	if opts.Kind == "" {
		opts.Kind = KindGridLine
	}

	switch opts.Kind {
	case KindGridLine:
		return opts.normalizeGridLine(defaultDifficulty)
	case KindReversi:
		return opts.normalizeReversi()
	default:
		return GameOptions{}, fmt.Errorf("%w: unknown game kind %q", apperror.ErrInvalidOptions, opts.Kind)
	}
}

func (that GameOptions) normalizeGridLine(defaultDifficulty Difficulty) (GameOptions, error) {
	if that.Size == 0 {
		that.Size = DefaultGridSize
	}
	if that.Size < MinGridSize {
		return GameOptions{}, fmt.Errorf("%w: board size %d", apperror.ErrInvalidOptions, that.Size)
	}

	if that.RunLength == 0 {
		that.RunLength = that.Size
	}
	if that.RunLength < MinRunLength || that.RunLength > that.Size {
		return GameOptions{}, fmt.Errorf("%w: run length %d on size %d", apperror.ErrInvalidOptions, that.RunLength, that.Size)
	}

	if that.Difficulty == "" {
		that.Difficulty = defaultDifficulty
	}
	if !that.Difficulty.IsValid() {
		return GameOptions{}, fmt.Errorf("%w: difficulty %q", apperror.ErrInvalidOptions, that.Difficulty)
	}

	if that.HumanMark == "" {
		that.HumanMark = PlayerX
	}
	if that.HumanMark != PlayerX && that.HumanMark != PlayerO {
		return GameOptions{}, fmt.Errorf("%w: mark %q", apperror.ErrInvalidOptions, that.HumanMark)
	}

	return that, nil
}

func (that GameOptions) normalizeReversi() (GameOptions, error) {
	if that.Size != 0 && that.Size != ReversiSize {
		return GameOptions{}, fmt.Errorf("%w: reversi is played on %dx%d only", apperror.ErrInvalidOptions, ReversiSize, ReversiSize)
	}
	that.Size = ReversiSize
	that.RunLength = 0
	that.Difficulty = ""

	if that.HumanMark == "" {
		that.HumanMark = PlayerGreen
	}
	if that.HumanMark != PlayerGreen && that.HumanMark != PlayerWhite {
		return GameOptions{}, fmt.Errorf("%w: mark %q", apperror.ErrInvalidOptions, that.HumanMark)
	}

	return that, nil
}

// Game is the state of one transient single-player-vs-AI session.
type Game struct {
	ID         string
	Kind       Kind
	Board      *Board
	RunLength  int
	Difficulty Difficulty
	HumanMark  Mark
	AIMark     Mark
	Turn       Mark
	LastMove   int
	Flipped    []int
	Passed     bool
}

// NewGame expects normalized options. The first mover is X for grid-line games and green for reversi.
func NewGame(id string, opts GameOptions, board *Board) *Game {
	first := PlayerX
	if opts.Kind == KindReversi {
		first = PlayerGreen
	}

	return &Game{
		ID:         id,
		Kind:       opts.Kind,
		Board:      board,
		RunLength:  opts.RunLength,
		Difficulty: opts.Difficulty,
		HumanMark:  opts.HumanMark,
		AIMark:     opts.HumanMark.Opponent(),
		Turn:       first,
		LastMove:   noMove,
	}
}

func (that *Game) Size() int {
	return that.Board.Width()
}

func (that *Game) IsHumanTurn() bool {
	return that.Turn == that.HumanMark
}

func (that *Game) IsAITurn() bool {
	return that.Turn == that.AIMark
}

// RecordMove notes the last accepted move and hands the turn to the opponent.
func (that *Game) RecordMove(move Move, flipped []int) {
	that.LastMove = move.Cell
	that.Flipped = flipped
	that.Passed = false
	that.Turn = move.Mark.Opponent()
}

// RecordPass hands the turn over without touching the board.
func (that *Game) RecordPass(mark Mark) {
	that.Flipped = nil
	that.Passed = true
	that.Turn = mark.Opponent()
}

// State is the snapshot handed back to drivers after every call.
type State struct {
	ID         string       `json:"id"`
	Kind       Kind         `json:"kind"`
	Size       int          `json:"size"`
	RunLength  int          `json:"run_length,omitempty"`
	Difficulty Difficulty   `json:"difficulty,omitempty"`
	Board      []Mark       `json:"board"`
	Turn       Mark         `json:"turn,omitempty"`
	HumanMark  Mark         `json:"human_mark"`
	AIMark     Mark         `json:"ai_mark"`
	Outcome    Outcome      `json:"outcome"`
	LastMove   *int         `json:"last_move,omitempty"`
	Flipped    []int        `json:"flipped,omitempty"`
	Passed     bool         `json:"passed,omitempty"`
	Score      map[Mark]int `json:"score,omitempty"`
	LegalMoves []int        `json:"legal_moves,omitempty"`
}

// Snapshot copies the session into a State carrying the given, freshly computed outcome.
func (that *Game) Snapshot(outcome Outcome) *State {
	state := &State{
		ID:         that.ID,
		Kind:       that.Kind,
		Size:       that.Board.Width(),
		RunLength:  that.RunLength,
		Difficulty: that.Difficulty,
		Board:      that.Board.Cells(),
		Turn:       that.Turn,
		HumanMark:  that.HumanMark,
		AIMark:     that.AIMark,
		Outcome:    outcome,
		Passed:     that.Passed,
	}

	if outcome.IsFinished() {
		state.Turn = ""
	}

	if that.LastMove != noMove {
		last := that.LastMove
		state.LastMove = &last
	}

	if len(that.Flipped) > 0 {
		state.Flipped = append([]int(nil), that.Flipped...)
	}

	return state
}
