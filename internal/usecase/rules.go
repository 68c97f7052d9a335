package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/rocketscienceinc/gridgames/internal/gridline"
	"github.com/rocketscienceinc/gridgames/internal/reversi"
)

// rules is what a session needs from a game engine.
type rules interface {
	NewBoard() *entity.Board
	Apply(board *entity.Board, move entity.Move) ([]int, error)
	Classify(board *entity.Board) entity.Outcome
	LegalMoves(board *entity.Board, mark entity.Mark) []int
	Score(board *entity.Board) map[entity.Mark]int
}

func rulesFor(opts entity.GameOptions) (rules, error) {
	switch opts.Kind {
	case entity.KindGridLine:
		engine, err := gridline.NewEngine(opts.Size, opts.RunLength)
		if err != nil {
			return nil, err
		}
		return &gridLineRules{engine: engine}, nil
	case entity.KindReversi:
		return &reversiRules{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown game kind %q", apperror.ErrInvalidOptions, opts.Kind)
	}
}

type gridLineRules struct {
	engine *gridline.Engine
}

func (that *gridLineRules) NewBoard() *entity.Board {
	return that.engine.NewBoard()
}

func (that *gridLineRules) Apply(board *entity.Board, move entity.Move) ([]int, error) {
	return nil, that.engine.ApplyMove(board, move)
}

func (that *gridLineRules) Classify(board *entity.Board) entity.Outcome {
	return that.engine.Classify(board)
}

func (that *gridLineRules) LegalMoves(board *entity.Board, _ entity.Mark) []int {
	return board.EmptyCells()
}

func (that *gridLineRules) Score(_ *entity.Board) map[entity.Mark]int {
	return nil
}

type reversiRules struct{}

func (that *reversiRules) NewBoard() *entity.Board {
	return reversi.NewBoard()
}

func (that *reversiRules) Apply(board *entity.Board, move entity.Move) ([]int, error) {
	return reversi.ApplyMove(board, move)
}

func (that *reversiRules) Classify(board *entity.Board) entity.Outcome {
	return reversi.Classify(board)
}

func (that *reversiRules) LegalMoves(board *entity.Board, mark entity.Mark) []int {
	return reversi.LegalMoves(board, mark)
}

func (that *reversiRules) Score(board *entity.Board) map[entity.Mark]int {
	green, white := reversi.Score(board)

	return map[entity.Mark]int{
		entity.PlayerGreen: green,
		entity.PlayerWhite: white,
	}
}
